package player

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dorijanhabek/orbfolio/internal/ease"
	"github.com/ebitengine/oto/v3"
)

const (
	// DefaultVolume is the music level once faded in.
	DefaultVolume = 0.15
	// FadeInDuration and FadeOutDuration match the landing page toggle.
	FadeInDuration  = 900 * time.Millisecond
	FadeOutDuration = 700 * time.Millisecond

	fadeInterval = 16 * time.Millisecond
	audibleFloor = 0.001
)

// Tap receives a copy of every PCM chunk handed to the audio device.
type Tap interface {
	Write(p []byte)
	Clear()
}

// sink is the part of an oto player that the music toggle drives.
type sink interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// Player loops one background track. It starts playing muted; Toggle fades
// the music in and out.
type Player struct {
	file     *os.File
	src      pcmSource
	out      sink
	tap      Tap
	channels int

	volume  float64 // element volume, kept while muted
	muted   bool
	paused  bool
	labelOn bool

	gainBits atomic.Uint64 // output gain, read by the device goroutine

	fadeIn     time.Duration
	fadeOut    time.Duration
	cancelFade context.CancelFunc
	settled    chan struct{}

	mu     sync.Mutex
	closed bool
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
	otoRate      int
	otoChannels  int
)

func initOto(rate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
			otoRate, otoChannels = rate, channels
		}
	})
	if otoInitErr != nil {
		return nil, otoInitErr
	}
	if rate != otoRate || channels != otoChannels {
		return nil, fmt.Errorf("audio device already opened at %d Hz/%d ch, track is %d Hz/%d ch", otoRate, otoChannels, rate, channels)
	}
	return globalOtoCtx, nil
}

// New opens path and starts it looping, muted. tap may be nil.
func New(path string, tap Tap) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := newSource(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	ctx, err := initOto(src.SampleRate(), src.ChannelCount())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	p := newPlayer(src, tap)
	p.file = f
	p.out = ctx.NewPlayer(&tapReader{r: &loopReader{src: src}, p: p})
	p.apply()
	p.out.Play()
	return p, nil
}

func newPlayer(src pcmSource, tap Tap) *Player {
	p := &Player{
		src:     src,
		tap:     tap,
		volume:  DefaultVolume,
		muted:   true,
		fadeIn:  FadeInDuration,
		fadeOut: FadeOutDuration,
		settled: make(chan struct{}),
	}
	if src != nil {
		p.channels = src.ChannelCount()
	}
	close(p.settled)
	return p
}

// Channels returns the channel count of the PCM written to the tap.
func (p *Player) Channels() int { return p.channels }

// On reports whether music is audible: unmuted, playing and above the floor.
func (p *Player) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.onLocked()
}

func (p *Player) onLocked() bool {
	return !p.muted && !p.paused && p.volume > audibleFloor
}

// LabelOn reports the state the toggle button shows. It flips as soon as the
// user toggles and is re-synced with On when a fade completes.
func (p *Player) LabelOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.labelOn
}

// Volume returns the current element volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Settled returns a channel closed once the running fade has finished or was
// superseded.
func (p *Player) Settled() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settled
}

// Toggle fades the music out and pauses it when it is on, or unmutes and fades
// it in otherwise. A toggle during a fade takes over from the current volume.
func (p *Player) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	turningOff := p.onLocked()
	p.labelOn = !turningOff
	if turningOff {
		p.fadeLocked(0, p.fadeOut, func() {
			p.paused = true
			p.muted = true
			p.out.Pause()
			if p.tap != nil {
				p.tap.Clear()
			}
		})
		return
	}

	p.muted = false
	p.volume = 0
	p.paused = false
	p.apply()
	if !p.out.IsPlaying() {
		p.out.Play()
	}
	p.fadeLocked(DefaultVolume, p.fadeIn, nil)
}

// fadeLocked eases the volume to target over d on its own goroutine, then
// runs done and re-syncs the label. Must be called with p.mu held.
func (p *Player) fadeLocked(target float64, d time.Duration, done func()) {
	if p.cancelFade != nil {
		p.cancelFade()
	}
	ctx, cancel := context.WithCancel(context.Background())
	settled := make(chan struct{})
	p.cancelFade = cancel
	p.settled = settled

	from := p.volume
	start := time.Now()
	go func() {
		defer close(settled)
		ticker := time.NewTicker(fadeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				k := ease.Progress(now.Sub(start).Seconds(), d.Seconds())
				p.mu.Lock()
				if ctx.Err() != nil || p.closed {
					p.mu.Unlock()
					return
				}
				p.volume = from + (target-from)*ease.InOutCubic(k)
				p.apply()
				if k >= 1 {
					if done != nil {
						done()
					}
					p.labelOn = p.onLocked()
					p.cancelFade = nil
					p.mu.Unlock()
					return
				}
				p.mu.Unlock()
			}
		}
	}()
}

// gain is the factor applied to the output: zero while muted. Safe to call
// without p.mu.
func (p *Player) gain() float64 {
	return math.Float64frombits(p.gainBits.Load())
}

// apply publishes the output gain. Must be called with p.mu held.
func (p *Player) apply() {
	g := p.volume
	if p.muted {
		g = 0
	}
	p.gainBits.Store(math.Float64bits(g))
	if p.out != nil {
		p.out.SetVolume(g)
	}
}

// Close stops playback and releases the track. It is safe to call twice.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	if p.cancelFade != nil {
		p.cancelFade()
	}
	if p.out != nil {
		p.out.Pause()
	}
	if p.file != nil {
		p.file.Close()
	}
}

// loopReader restarts the source whenever it runs dry.
type loopReader struct {
	src pcmSource
}

func (l *loopReader) Read(b []byte) (int, error) {
	n, err := l.src.Read(b)
	if err != io.EOF {
		return n, err
	}
	if err := l.src.Rewind(); err != nil {
		return n, err
	}
	if n > 0 {
		return n, nil
	}
	// an empty pass straight after a rewind means the track has no audio
	n, err = l.src.Read(b)
	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}
	if err == io.EOF {
		err = l.src.Rewind()
	}
	return n, err
}

// tapReader copies what the device pulls, scaled by the current gain, into the
// player's tap. It runs on the device goroutine and never takes p.mu.
// A read may end mid-sample; the dangling byte is held for the next read so
// samples stay aligned.
type tapReader struct {
	r      io.Reader
	p      *Player
	buf    []byte
	odd    byte
	hasOdd bool
}

func (t *tapReader) Read(b []byte) (int, error) {
	n, err := t.r.Read(b)
	if n > 0 && t.p.tap != nil {
		if out := t.scale(b[:n], t.p.gain()); len(out) > 0 {
			t.p.tap.Write(out)
		}
	}
	return n, err
}

func (t *tapReader) scale(pcm []byte, g float64) []byte {
	need := len(pcm)
	if t.hasOdd {
		need++
	}
	if cap(t.buf) < need {
		t.buf = make([]byte, need)
	}
	src := t.buf[:need]
	k := 0
	if t.hasOdd {
		src[0] = t.odd
		k = 1
	}
	copy(src[k:], pcm)

	even := need - need%2
	t.hasOdd = need%2 == 1
	if t.hasOdd {
		t.odd = src[need-1]
	}
	out := src[:even]
	for i := 0; i < even; i += 2 {
		v := float64(int16(binary.LittleEndian.Uint16(out[i:])))
		binary.LittleEndian.PutUint16(out[i:], uint16(clamp16(int(v*g))))
	}
	return out
}
