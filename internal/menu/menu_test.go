package menu

import "testing"

func TestDefaultMenus(t *testing.T) {
	menus := Default()
	want := []string{"Contact", "Projects", "Skills", "Education"}
	if len(menus) != len(want) {
		t.Fatalf("got %d menus, want %d", len(menus), len(want))
	}
	for i, name := range want {
		if menus[i].Name != name {
			t.Errorf("menu %d = %q, want %q", i, menus[i].Name, name)
		}
		if menus[i].Len() == 0 {
			t.Errorf("menu %q is empty", name)
		}
	}
	if got := len(menus[2].Sections); got != 6 {
		t.Fatalf("Skills has %d sections, want 6", got)
	}
	if menus[2].Sections[2].Columns() != 2 || menus[2].Sections[1].Columns() != 1 {
		t.Fatal("only sections with more than 12 items should split into columns")
	}
}

func TestToggleKeepsOneOpen(t *testing.T) {
	b := NewBar(Default())
	if _, ok := b.Open(); ok {
		t.Fatal("bar should start closed")
	}

	b.Toggle(0)
	b.Toggle(2)
	if i, ok := b.Open(); !ok || i != 2 {
		t.Fatalf("Open() = %d, %v; want 2, true", i, ok)
	}

	b.Toggle(2)
	if _, ok := b.Open(); ok {
		t.Fatal("toggling the open dropdown should close it")
	}

	b.Toggle(7)
	if _, ok := b.Open(); ok {
		t.Fatal("out-of-range toggle should be ignored")
	}
}

func TestSectionsAreIndependentAndResetOnClose(t *testing.T) {
	b := NewBar(Default())
	b.Toggle(2)
	b.ToggleSection(0)
	b.ToggleSection(3)
	if !b.SectionOpen(0) || !b.SectionOpen(3) || b.SectionOpen(1) {
		t.Fatal("sub-menus should open independently")
	}

	b.ToggleSection(0)
	if b.SectionOpen(0) || !b.SectionOpen(3) {
		t.Fatal("toggling one sub-menu must not affect another")
	}

	b.Toggle(0)
	b.Toggle(2)
	if b.SectionOpen(3) {
		t.Fatal("reopening Skills should start with sub-menus collapsed")
	}

	b.ToggleSection(1)
	b.CloseAll()
	if b.SectionOpen(1) {
		t.Fatal("CloseAll should collapse sub-menus")
	}
}

func TestMoveAndSelected(t *testing.T) {
	b := NewBar(Default())
	b.Move(1)
	if _, ok := b.Selected(); ok {
		t.Fatal("nothing is selected while closed")
	}

	b.Toggle(0)
	b.Move(-3)
	if it, _ := b.Selected(); it.Label != "Mail" {
		t.Fatalf("Selected() = %+v, want Mail", it)
	}
	b.Move(10)
	it, ok := b.Selected()
	if !ok || it.Label != "GitHub" || it.URL != "https://github.com/dorijanhabek" {
		t.Fatalf("Selected() = %+v, %v", it, ok)
	}

	b.Toggle(1)
	if b.Cursor() != 0 {
		t.Fatalf("Cursor() = %d after switching menus, want 0", b.Cursor())
	}
}

func TestActivateTogglesFocusedSection(t *testing.T) {
	b := NewBar(Default())
	b.Toggle(0)
	if b.Activate() {
		t.Fatal("Contact has no sub-menus")
	}

	b.Toggle(2)
	b.Move(1)
	if it, _ := b.Selected(); it.Label != "Microsoft Technologies" {
		t.Fatalf("Selected() = %+v", it)
	}
	if !b.Activate() || !b.SectionOpen(1) {
		t.Fatal("Activate should expand the focused section")
	}
	b.Activate()
	if b.SectionOpen(1) {
		t.Fatal("second Activate should collapse it")
	}
}
