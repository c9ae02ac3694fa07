// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audscribe/utils"
)

// Stream is a byte-level PCM stream tagged with its wire format.
// Read follows io.Reader semantics; a Stream is forward-only and
// single-consumer.
type Stream interface {
	Format() Format
	SampleRate() int
	Channels() int
	Read(p []byte) (n int, err error)
	Close() error
}

// BytesPerSecond returns the payload byte rate of s.
func BytesPerSecond(s Stream) int {
	return s.SampleRate() * s.Format().BytesPerSample() * s.Channels()
}

// RawStream wraps a headerless byte source (a raw audio file, or the stdout
// pipe of a filtering subprocess) as a Stream. The caller supplies the
// format metadata the container header would otherwise carry.
type RawStream struct {
	r          io.ReadCloser
	format     Format
	sampleRate int
	channels   int
}

func NewRawStream(r io.ReadCloser, format Format, sampleRate, channels int) *RawStream {
	return &RawStream{
		r:          r,
		format:     format,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *RawStream) Format() Format  { return s.format }
func (s *RawStream) SampleRate() int { return s.sampleRate }
func (s *RawStream) Channels() int   { return s.channels }

func (s *RawStream) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *RawStream) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// SourceStream adapts a float32 Source into an L16 Stream. Samples are
// clamped and scaled by utils.Float32ToInt16, then serialized little-endian.
type SourceStream struct {
	src Source

	// leftover byte of a split sample when Read is called with an odd length
	pending   []byte
	sampleBuf []float32
}

func NewSourceStream(src Source) *SourceStream {
	return &SourceStream{
		src:       src,
		sampleBuf: make([]float32, 4096),
	}
}

func (s *SourceStream) Format() Format  { return L16 }
func (s *SourceStream) SampleRate() int { return s.src.SampleRate() }
func (s *SourceStream) Channels() int   { return s.src.Channels() }

func (s *SourceStream) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *SourceStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	written := 0

	if len(s.pending) > 0 {
		n := copy(p, s.pending)
		s.pending = s.pending[n:]
		written += n
		if written == len(p) {
			return written, nil
		}
	}

	samplesWanted := (len(p) - written + 1) / 2
	if cap(s.sampleBuf) < samplesWanted {
		s.sampleBuf = make([]float32, samplesWanted)
	}

	n, err := s.src.ReadSamples(s.sampleBuf[:samplesWanted])
	for i := 0; i < n; i++ {
		v := uint16(utils.Float32ToInt16(s.sampleBuf[i]))

		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], v)

		m := copy(p[written:], b[:])
		written += m
		if m < 2 {
			s.pending = append(s.pending[:0], b[m:]...)
		}
	}

	if written == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	if err != nil && err != io.EOF {
		return written, fmt.Errorf("%w", err)
	}

	return written, nil
}
