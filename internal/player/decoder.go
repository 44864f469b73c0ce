package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// pcmSource yields interleaved signed 16-bit little-endian PCM and can start
// over from the first sample.
type pcmSource interface {
	io.Reader
	Rewind() error
	SampleRate() int
	ChannelCount() int
}

// SupportedExts lists the background track formats, in display order.
var SupportedExts = []string{".mp3", ".wav", ".flac", ".ogg"}

// IsSupportedExt reports whether ext names a playable format.
func IsSupportedExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range SupportedExts {
		if e == ext {
			return true
		}
	}
	return false
}

// newSource picks a decoder by file extension.
func newSource(f *os.File) (pcmSource, error) {
	ext := strings.ToLower(filepath.Ext(f.Name()))
	switch ext {
	case ".mp3":
		return newMP3Source(f)
	case ".wav":
		return newWAVSource(f)
	case ".flac":
		return newFLACSource(f)
	case ".ogg":
		return newOGGSource(f)
	default:
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}
}

// pending holds converted PCM that did not fit the caller's buffer.
type pending []byte

func (b *pending) drain(p []byte) int {
	n := copy(p, *b)
	*b = (*b)[n:]
	return n
}

func (b *pending) fill(p, raw []byte) int {
	n := copy(p, raw)
	*b = raw[n:]
	return n
}

func clamp16(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// --- MP3 ---

type mp3Source struct {
	dec *mp3.Decoder
}

func newMP3Source(f *os.File) (*mp3Source, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Source{dec: dec}, nil
}

func (s *mp3Source) Read(p []byte) (int, error) { return s.dec.Read(p) }
func (s *mp3Source) Rewind() error {
	_, err := s.dec.Seek(0, io.SeekStart)
	return err
}
func (s *mp3Source) SampleRate() int   { return s.dec.SampleRate() }
func (s *mp3Source) ChannelCount() int { return 2 } // go-mp3 always decodes to stereo

// --- WAV ---

type wavSource struct {
	file       *os.File
	buf        pending
	pcmStart   int64
	pcmEnd     int64
	sampleRate int
	channels   int
	bitDepth   int
}

func newWAVSource(f *os.File) (*wavSource, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("unsupported WAV bit depth: %d", dec.BitDepth)
	}

	start, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating WAV PCM data: %w", err)
	}
	return &wavSource{
		file:       f,
		pcmStart:   start,
		pcmEnd:     start + dec.PCMLen(),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
	}, nil
}

func (s *wavSource) Read(p []byte) (int, error) {
	if len(s.buf) > 0 {
		return s.buf.drain(p), nil
	}

	pos, err := s.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	width := s.bitDepth / 8
	samples := max(len(p)/2, 1)
	want := int64(samples * width)
	if left := s.pcmEnd - pos; left < want {
		want = left - left%int64(width)
	}
	if want <= 0 {
		return 0, io.EOF
	}

	src := make([]byte, want)
	n, err := io.ReadFull(s.file, src)
	samples = n / width
	if samples == 0 {
		if err == nil || err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}

	raw := make([]byte, samples*2)
	for i := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(wavSample(src[i*width:], s.bitDepth)))
	}
	return s.buf.fill(p, raw), nil
}

// wavSample converts one source sample to 16-bit.
func wavSample(b []byte, depth int) int16 {
	switch depth {
	case 8:
		return int16((int(b[0]) - 128) << 8) // 8-bit WAV is unsigned
	case 16:
		return int16(binary.LittleEndian.Uint16(b))
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v |= ^0xFFFFFF
		}
		return clamp16(int(v >> 8))
	default:
		return int16(int32(binary.LittleEndian.Uint32(b)) >> 16)
	}
}

func (s *wavSource) Rewind() error {
	s.buf = nil
	_, err := s.file.Seek(s.pcmStart, io.SeekStart)
	return err
}
func (s *wavSource) SampleRate() int   { return s.sampleRate }
func (s *wavSource) ChannelCount() int { return s.channels }

// --- FLAC ---

type flacSource struct {
	stream     *flac.Stream
	buf        pending
	sampleRate int
	channels   int
	bps        int
}

func newFLACSource(f *os.File) (*flacSource, error) {
	stream, err := flac.NewSeek(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	return &flacSource{
		stream:     stream,
		sampleRate: int(stream.Info.SampleRate),
		channels:   int(stream.Info.NChannels),
		bps:        int(stream.Info.BitsPerSample),
	}, nil
}

func (s *flacSource) Read(p []byte) (int, error) {
	if len(s.buf) > 0 {
		return s.buf.drain(p), nil
	}

	frame, err := s.stream.ParseNext()
	if err != nil {
		return 0, err
	}

	n := int(frame.Subframes[0].NSamples)
	raw := make([]byte, n*s.channels*2)
	for i := range n {
		for ch := range s.channels {
			v := int(frame.Subframes[ch].Samples[i])
			if s.bps > 16 {
				v >>= s.bps - 16
			} else if s.bps < 16 {
				v <<= 16 - s.bps
			}
			binary.LittleEndian.PutUint16(raw[(i*s.channels+ch)*2:], uint16(clamp16(v)))
		}
	}
	return s.buf.fill(p, raw), nil
}

func (s *flacSource) Rewind() error {
	s.buf = nil
	_, err := s.stream.Seek(0)
	return err
}
func (s *flacSource) SampleRate() int   { return s.sampleRate }
func (s *flacSource) ChannelCount() int { return s.channels }

// --- OGG Vorbis ---

type oggSource struct {
	reader *oggvorbis.Reader
	buf    pending
}

func newOGGSource(f *os.File) (*oggSource, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	return &oggSource{reader: reader}, nil
}

func (s *oggSource) Read(p []byte) (int, error) {
	if len(s.buf) > 0 {
		return s.buf.drain(p), nil
	}

	samples := make([]float32, max(len(p)/2, 1))
	n, err := s.reader.Read(samples)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	raw := make([]byte, n*2)
	for i, v := range samples[:n] {
		v = min(max(v, -1), 1)
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(v*32767)))
	}
	written := s.buf.fill(p, raw)
	if err == io.EOF && len(s.buf) > 0 {
		err = nil
	}
	return written, err
}

func (s *oggSource) Rewind() error {
	s.buf = nil
	return s.reader.SetPosition(0)
}
func (s *oggSource) SampleRate() int   { return s.reader.SampleRate() }
func (s *oggSource) ChannelCount() int { return s.reader.Channels() }
