// SPDX-License-Identifier: EPL-2.0

package audscribe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audscribe/audio"
	"github.com/ik5/audscribe/formats/aiff"
	"github.com/ik5/audscribe/formats/mp3"
	"github.com/ik5/audscribe/formats/vorbis"
	"github.com/ik5/audscribe/formats/wav"
)

// ErrUnknownMediaFormat indicates the file extension maps to no registered
// decoder.
var ErrUnknownMediaFormat = errors.New("unknown media format")

// DefaultRegistry returns a Registry with every built-in lossy decoder
// registered. WAV is not in the registry; its payload is streamed without
// decoding.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

func formatKey(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "wav"
	case ".mp3":
		return "mp3"
	case ".ogg", ".oga":
		return "ogg"
	case ".aiff", ".aif":
		return "aiff"
	}
	return ""
}

// OpenMedia opens a recording as a byte-level PCM stream.
//
// WAV files take the direct path: the mu-law or L16 payload is streamed
// exactly as stored, at its native rate, and targetRate is ignored. Other
// formats are decoded, resampled to targetRate (when positive and different
// from the native rate), downmixed to mono and serialized as L16.
//
// The returned stream owns the file; Close releases it.
func OpenMedia(path string, targetRate int) (audio.Stream, error) {
	key := formatKey(path)
	if key == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMediaFormat, filepath.Ext(path))
	}

	if key == "wav" {
		r, err := wav.OpenFile(path, nil)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return r, nil
	}

	dec, ok := DefaultRegistry().Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMediaFormat, key)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}

	if targetRate > 0 && targetRate != src.SampleRate() {
		src = audio.NewResampler(src, targetRate)
	}
	if src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	return &fileStream{Stream: audio.NewSourceStream(src), file: f}, nil
}

// fileStream couples a decoded stream to the file it reads from so one
// Close releases both.
type fileStream struct {
	audio.Stream
	file *os.File
}

func (s *fileStream) Close() error {
	err := s.Stream.Close()

	if cerr := s.file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w", cerr)
	}
	return err
}

// StreamFrames pumps stream through a Chunker and hands each frame to
// handler in order. It returns nil at end of stream, the handler's error if
// one stops the pump, or the context error on cancellation. The stream is
// not closed; the caller owns it.
func StreamFrames(ctx context.Context, stream audio.Stream, cfg audio.ChunkConfig, handler audio.FrameHandler) error {
	chunker, err := audio.NewChunker(stream, cfg)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := chunker.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		if err := handler.Frame(ctx, frame); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
}
