// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory Source and Stream fakes for the
// package tests. Not for use outside this module.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audscribe/audio"
)

// Source emits generated float32 samples and satisfies audio.Source.
type Source struct {
	Rate  int
	Chans int
	Total int // total samples across all channels
	Gen   func(i int) float32

	pos    int
	Closed bool
}

// NewSine builds a mono-phase sine source; every channel carries the
// same waveform.
func NewSine(rate, chans int, freq float64, total int) *Source {
	step := 2 * math.Pi * freq / float64(rate)

	return &Source{
		Rate:  rate,
		Chans: chans,
		Total: total,
		Gen: func(i int) float32 {
			frame := i / chans
			return float32(math.Sin(step * float64(frame)))
		},
	}
}

// NewConstant builds a source where every sample has the same value.
func NewConstant(rate, chans int, value float32, total int) *Source {
	return &Source{
		Rate:  rate,
		Chans: chans,
		Total: total,
		Gen:   func(int) float32 { return value },
	}
}

// NewSilence builds an all-zero source.
func NewSilence(rate, chans, total int) *Source {
	return NewConstant(rate, chans, 0, total)
}

func (s *Source) SampleRate() int { return s.Rate }
func (s *Source) Channels() int   { return s.Chans }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.Total {
		return 0, io.EOF
	}

	n := min(len(dst), s.Total-s.pos)
	for i := 0; i < n; i++ {
		dst[i] = s.Gen(s.pos + i)
	}
	s.pos += n

	return n, nil
}

func (s *Source) Close() error {
	s.Closed = true
	return nil
}

// Stream serves a canned byte payload and satisfies audio.Stream.
// MaxRead, when positive, caps each Read to force short reads.
type Stream struct {
	Payload []byte
	Fmt     audio.Format
	Rate    int
	Chans   int
	MaxRead int

	pos    int
	Closed bool
}

func (s *Stream) Format() audio.Format { return s.Fmt }
func (s *Stream) SampleRate() int      { return s.Rate }
func (s *Stream) Channels() int        { return s.Chans }

func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= len(s.Payload) {
		return 0, io.EOF
	}

	n := min(len(p), len(s.Payload)-s.pos)
	if s.MaxRead > 0 && n > s.MaxRead {
		n = s.MaxRead
	}
	copy(p, s.Payload[s.pos:s.pos+n])
	s.pos += n

	return n, nil
}

func (s *Stream) Close() error {
	s.Closed = true
	return nil
}
