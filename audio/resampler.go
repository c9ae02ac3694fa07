// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams from src to a target sample rate using linear
// interpolation. Works on interleaved samples; preserves channel count.
// Telephone-band speech is the intended payload, so the simpler kernel is a
// deliberate trade against filter quality.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames advanced per output frame
	channels int

	// prev and next bracket the interpolation position.
	prev, next []float32
	primed     bool
	pos        float64 // fractional offset between prev and next, [0,1)

	frameBuf []float32
	eof      bool // source reported io.EOF
	drained  bool // every producible output has been emitted
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	return &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		prev:     make([]float32, channels),
		next:     make([]float32, channels),
		frameBuf: make([]float32, channels),
	}
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts next into prev and reads one source frame into next.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.prev, r.next)

	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(r.next, r.frameBuf[:n])
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.drained {
		return 0, io.EOF
	}

	if !r.primed {
		n, err := r.src.ReadSamples(r.frameBuf)
		if n > 0 {
			copy(r.prev, r.frameBuf[:n])
			copy(r.next, r.frameBuf[:n])
		}
		if err == io.EOF {
			r.eof = true
			if n == 0 {
				r.drained = true
				return 0, io.EOF
			}
		} else if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		if err := r.advance(); err != nil && err != io.EOF {
			return 0, err
		}
		r.primed = true
	}

	written := 0
	framesWanted := len(dst) / r.channels

	for written < framesWanted {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					r.drained = true
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = r.prev[c] + (r.next[c]-r.prev[c])*alpha
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
