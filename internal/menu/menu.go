// Package menu holds the navigation dropdowns and their open/closed state.
package menu

// Item is one dropdown entry. URL is empty for plain text entries.
type Item struct {
	Label string
	URL   string
}

// Section is a titled sub-menu inside a dropdown.
type Section struct {
	Title string
	Items []string
}

// wideSection is the item count above which a sub-menu splits into two columns.
const wideSection = 12

// Columns returns how many columns the section's items are laid out in.
func (s Section) Columns() int {
	if len(s.Items) > wideSection {
		return 2
	}
	return 1
}

// Menu is a nav button and the dropdown it opens. A dropdown lists either
// Items or Sections.
type Menu struct {
	Name     string
	Items    []Item
	Sections []Section
	Columns  int
}

// Len returns the number of focusable rows in the dropdown.
func (m Menu) Len() int {
	return len(m.Items) + len(m.Sections)
}

// Bar tracks which dropdown is open, the focused row and which sub-menus are
// expanded. At most one dropdown is open at a time.
type Bar struct {
	menus    []Menu
	open     int
	cursor   int
	sections []bool
}

// NewBar returns a bar with every dropdown closed.
func NewBar(menus []Menu) *Bar {
	return &Bar{menus: menus, open: -1}
}

// Menus returns the bar's dropdowns in button order.
func (b *Bar) Menus() []Menu { return b.menus }

// Open returns the index of the open dropdown.
func (b *Bar) Open() (int, bool) {
	return b.open, b.open >= 0
}

// Toggle opens dropdown i, closing every other one, or closes it when it is
// already open. Out-of-range indices are ignored.
func (b *Bar) Toggle(i int) {
	if i < 0 || i >= len(b.menus) {
		return
	}
	if b.open == i {
		b.CloseAll()
		return
	}
	b.CloseAll()
	b.open = i
	b.sections = make([]bool, len(b.menus[i].Sections))
}

// CloseAll closes the open dropdown and collapses its sub-menus.
func (b *Bar) CloseAll() {
	b.open = -1
	b.cursor = 0
	b.sections = nil
}

// ToggleSection expands or collapses sub-menu j of the open dropdown.
// Sub-menus open independently of each other.
func (b *Bar) ToggleSection(j int) {
	if j < 0 || j >= len(b.sections) {
		return
	}
	b.sections[j] = !b.sections[j]
}

// SectionOpen reports whether sub-menu j of the open dropdown is expanded.
func (b *Bar) SectionOpen(j int) bool {
	return j >= 0 && j < len(b.sections) && b.sections[j]
}

// Cursor returns the focused row of the open dropdown.
func (b *Bar) Cursor() int { return b.cursor }

// Move shifts the focus by delta rows, clamped to the open dropdown.
func (b *Bar) Move(delta int) {
	if b.open < 0 {
		return
	}
	n := b.menus[b.open].Len()
	b.cursor = min(max(b.cursor+delta, 0), max(n-1, 0))
}

// Selected returns the focused entry. For a section row the label is the
// section title and the URL is empty.
func (b *Bar) Selected() (Item, bool) {
	if b.open < 0 {
		return Item{}, false
	}
	m := b.menus[b.open]
	if b.cursor < len(m.Items) {
		return m.Items[b.cursor], true
	}
	j := b.cursor - len(m.Items)
	if j < len(m.Sections) {
		return Item{Label: m.Sections[j].Title}, true
	}
	return Item{}, false
}

// Activate acts on the focused row: a section row toggles its sub-menu.
// It reports whether a sub-menu changed.
func (b *Bar) Activate() bool {
	if b.open < 0 {
		return false
	}
	j := b.cursor - len(b.menus[b.open].Items)
	if j < 0 || j >= len(b.sections) {
		return false
	}
	b.ToggleSection(j)
	return true
}
