// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audscribe/g711"
)

// ChunkConfig controls how a Chunker slices its stream. The zero value of
// Encoding means "keep the source encoding". Pace, when positive, delays the
// emission of every frame by that duration (realtime playback simulation).
type ChunkConfig struct {
	Duration time.Duration
	Encoding Format
	Pace     time.Duration
}

// DefaultChunkDuration is used when ChunkConfig.Duration is not positive.
const DefaultChunkDuration = 100 * time.Millisecond

// Chunker re-slices a Stream into frames of a fixed duration. It is a
// pull-based, single-consumer sequence: each frame is produced only when
// Next is called, so the underlying stream sees natural backpressure.
//
// When the configured output encoding differs from the stream encoding the
// frame is transcoded through the G.711 codec before it is returned, and
// frame sizes are computed against the post-transcode byte rate.
type Chunker struct {
	src Stream
	cfg ChunkConfig

	outFormat Format
	frameSize int // output bytes per full frame
	blockSize int // output bytes per sample frame (all channels)
	srcPerOut float64

	convert func([]byte) []byte
	done    bool
}

// NewChunker validates cfg against src and returns a ready Chunker.
func NewChunker(src Stream, cfg ChunkConfig) (*Chunker, error) {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultChunkDuration
	}

	out := cfg.Encoding
	if out == 0 {
		out = src.Format()
	}

	var convert func([]byte) []byte
	switch {
	case out == src.Format():
		// passthrough
	case src.Format() == PCMU && out == L16:
		convert = g711.DecodeToBytes
	case src.Format() == L16 && out == PCMU:
		convert = g711.EncodeBytes
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedTranscode, src.Format(), out)
	}

	blockSize := out.BytesPerSample() * src.Channels()
	byteRate := src.SampleRate() * out.BytesPerSample() * src.Channels()

	frameSize := int(int64(byteRate) * cfg.Duration.Milliseconds() / 1000)
	frameSize -= frameSize % blockSize
	if frameSize < blockSize {
		frameSize = blockSize
	}

	return &Chunker{
		src:       src,
		cfg:       cfg,
		outFormat: out,
		frameSize: frameSize,
		blockSize: blockSize,
		srcPerOut: float64(src.Format().BytesPerSample()) / float64(out.BytesPerSample()),
		convert:   convert,
	}, nil
}

// Format returns the encoding of emitted frames.
func (c *Chunker) Format() Format { return c.outFormat }

// FrameSize returns the byte length of a full frame.
func (c *Chunker) FrameSize() int { return c.frameSize }

// Next returns the next frame. The final frame may be shorter than
// FrameSize but is never empty; afterwards Next returns io.EOF on every
// call. Ownership of the returned buffer passes to the caller.
func (c *Chunker) Next(ctx context.Context) ([]byte, error) {
	if c.done {
		return nil, io.EOF
	}

	srcWant := int(float64(c.frameSize) * c.srcPerOut)
	buf := make([]byte, srcWant)

	filled := 0
	for filled < srcWant {
		n, err := c.src.Read(buf[filled:])
		filled += n
		if err == io.EOF {
			c.done = true
			break
		}
		if err != nil {
			c.done = true
			return nil, fmt.Errorf("%w", err)
		}
	}

	if c.convert != nil {
		buf = c.convert(buf[:filled])
	} else {
		buf = buf[:filled]
	}

	// Never emit a partial sample frame.
	buf = buf[:len(buf)-len(buf)%c.blockSize]
	if len(buf) == 0 {
		c.done = true
		return nil, io.EOF
	}

	if c.cfg.Pace > 0 {
		t := time.NewTimer(c.cfg.Pace)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		}
	}

	return buf, nil
}

// Close closes the underlying stream and terminates the sequence; any
// in-progress Next observes end-of-stream afterwards.
func (c *Chunker) Close() error {
	c.done = true

	err := c.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
