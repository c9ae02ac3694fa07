// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/ik5/audscribe/audio"
	"github.com/ik5/audscribe/internal/audiotest"
)

func TestBytesPerSecond(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream audio.Stream
		want   int
	}{
		{
			name:   "l16 stereo 8kHz",
			stream: &audiotest.Stream{Fmt: audio.L16, Rate: 8000, Chans: 2},
			want:   32000,
		},
		{
			name:   "ulaw mono 8kHz",
			stream: &audiotest.Stream{Fmt: audio.PCMU, Rate: 8000, Chans: 1},
			want:   8000,
		},
		{
			name:   "l16 mono 16kHz",
			stream: &audiotest.Stream{Fmt: audio.L16, Rate: 16000, Chans: 1},
			want:   32000,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := audio.BytesPerSecond(tt.stream); got != tt.want {
				t.Errorf("BytesPerSecond() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRawStream(t *testing.T) {
	t.Parallel()

	payload := []byte{1, 2, 3, 4}
	s := audio.NewRawStream(io.NopCloser(bytes.NewReader(payload)), audio.PCMU, 8000, 1)

	if s.Format() != audio.PCMU || s.SampleRate() != 8000 || s.Channels() != 1 {
		t.Fatalf("metadata = (%v, %d, %d), want (PCMU, 8000, 1)", s.Format(), s.SampleRate(), s.Channels())
	}

	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ReadAll() = %v, want %v", got, payload)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSourceStream_Read(t *testing.T) {
	t.Parallel()

	// 0.5 scales to 16383 (0x3FFF), little-endian on the wire.
	src := audiotest.NewConstant(16000, 1, 0.5, 4)
	s := audio.NewSourceStream(src)

	if s.Format() != audio.L16 {
		t.Fatalf("Format() = %v, want L16", s.Format())
	}
	if s.SampleRate() != 16000 || s.Channels() != 1 {
		t.Fatalf("metadata = (%d, %d), want (16000, 1)", s.SampleRate(), s.Channels())
	}

	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := bytes.Repeat([]byte{0xFF, 0x3F}, 4)
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll() = %x, want %x", got, want)
	}
}

func TestSourceStream_OddLengthReads(t *testing.T) {
	t.Parallel()

	// 0.1, 0.2, 0.3 scale to 3276, 6553, 9830.
	src := &audiotest.Source{
		Rate:  8000,
		Chans: 1,
		Total: 3,
		Gen:   func(i int) float32 { return float32(i+1) / 10 },
	}
	s := audio.NewSourceStream(src)

	var got []byte
	buf := make([]byte, 3)
	for {
		n, err := s.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	want := []byte{0xCC, 0x0C, 0x99, 0x19, 0x66, 0x26}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = %x, want %x", got, want)
	}
}

func TestSourceStream_EOF(t *testing.T) {
	t.Parallel()

	s := audio.NewSourceStream(audiotest.NewSilence(8000, 1, 2))

	if _, err := io.ReadAll(s); err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	n, err := s.Read(make([]byte, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("Read() after exhaustion = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSourceStream_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilence(8000, 1, 0)
	s := audio.NewSourceStream(src)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed {
		t.Error("Close() did not close the underlying source")
	}
}
