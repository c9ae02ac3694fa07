// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audscribe/audio"
)

const (
	headerSize = 44

	// maxWindowSeconds bounds a single ReadSamples request.
	maxWindowSeconds = 10

	// streamedDataSize marks a data chunk that extends to end of file.
	streamedDataSize = 0xFFFFFFFF

	formatPCM  = 1
	formatULaw = 7
)

// DefaultRates are the sample rates accepted when Options.AllowedRates is
// not set.
var DefaultRates = []int{8000, 16000, 44100, 48000}

// Options constrain what Open accepts. The zero value (or nil) applies the
// defaults: DefaultRates, 1 to 16 channels.
type Options struct {
	AllowedRates []int
	ChannelMin   int
	ChannelMax   int
}

func (o *Options) rates() []int {
	if o == nil || len(o.AllowedRates) == 0 {
		return DefaultRates
	}
	return o.AllowedRates
}

func (o *Options) channelBounds() (int, int) {
	min, max := 1, 16
	if o != nil && o.ChannelMin > 0 {
		min = o.ChannelMin
	}
	if o != nil && o.ChannelMax > 0 {
		max = o.ChannelMax
	}
	return min, max
}

// Reader exposes the data chunk of a validated WAV file as a bounded
// sequential byte stream. It implements audio.Stream. Format, rate and
// channel count never change after Open.
type Reader struct {
	src io.ReaderAt

	format     audio.Format
	sampleRate int
	channels   int

	dataStart int64
	dataLen   int64
	cursor    int64

	closer io.Closer
	closed bool
}

// OpenFile opens and validates path. The returned Reader owns the file:
// Close releases it, and validation failures release it before returning.
func OpenFile(path string, opts *Options) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w", err)
	}

	return Open(f, st.Size(), opts)
}

// Open validates the container found in src and returns a Reader over its
// data chunk. Ownership of src transfers to the Reader; when src is also an
// io.Closer it is released by Close, and on validation failure before Open
// returns. The caller must not use src afterward.
func Open(src io.ReaderAt, size int64, opts *Options) (r *Reader, err error) {
	defer func() {
		if err == nil {
			return
		}
		if c, ok := src.(io.Closer); ok {
			c.Close()
		}
	}()

	if size < headerSize {
		return nil, ErrHeaderTooSmall
	}

	header := make([]byte, headerSize)
	if _, err := src.ReadAt(header, 0); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrInvalidContainer
	}
	if string(header[12:16]) != "fmt " {
		return nil, ErrInvalidContainer
	}

	fmtSize := binary.LittleEndian.Uint32(header[16:20])
	if fmtSize != 16 && fmtSize != 18 && fmtSize != 40 {
		return nil, ErrInvalidContainer
	}

	var format audio.Format
	switch binary.LittleEndian.Uint16(header[20:22]) {
	case formatPCM:
		format = audio.L16
	case formatULaw:
		format = audio.PCMU
	default:
		return nil, ErrUnsupportedFormat
	}

	channels := int(binary.LittleEndian.Uint16(header[22:24]))
	chMin, chMax := opts.channelBounds()
	if channels < chMin || channels > chMax {
		return nil, ErrInvalidChannels
	}

	sampleRate := int(binary.LittleEndian.Uint32(header[24:28]))
	rateOK := false
	for _, r := range opts.rates() {
		if sampleRate == r {
			rateOK = true
			break
		}
	}
	if !rateOK {
		return nil, ErrUnsupportedRate
	}

	blockAlign := int(binary.LittleEndian.Uint16(header[32:34]))
	if blockAlign != channels*format.BytesPerSample() {
		return nil, ErrInvalidContainer
	}

	dataStart, dataLen, err := findDataChunk(src, size, 20+int64(fmtSize))
	if err != nil {
		return nil, err
	}

	closer, _ := src.(io.Closer)

	return &Reader{
		src:        src,
		format:     format,
		sampleRate: sampleRate,
		channels:   channels,
		dataStart:  dataStart,
		dataLen:    dataLen,
		closer:     closer,
	}, nil
}

// findDataChunk scans consecutive sub-chunk headers starting at offset until
// it finds the data chunk. Chunk contents are padded to even sizes per RIFF.
func findDataChunk(src io.ReaderAt, size, offset int64) (start, length int64, err error) {
	var hdr [8]byte

	for offset+8 <= size {
		if _, err := src.ReadAt(hdr[:], offset); err != nil {
			return 0, 0, fmt.Errorf("%w", err)
		}

		chunkSize := binary.LittleEndian.Uint32(hdr[4:8])

		if string(hdr[0:4]) == "data" {
			if chunkSize == streamedDataSize {
				// Streamed recordings leave the size unset; the
				// chunk runs to end of file.
				return offset + 8, size - (offset + 8), nil
			}
			return offset + 8, int64(chunkSize), nil
		}

		offset += 8 + int64(chunkSize) + int64(chunkSize%2)
	}

	return 0, 0, ErrNoDataChunk
}

func (r *Reader) Format() audio.Format { return r.format }
func (r *Reader) SampleRate() int      { return r.sampleRate }
func (r *Reader) Channels() int        { return r.channels }

// BytesPerSecond returns the payload byte rate.
func (r *Reader) BytesPerSecond() int {
	return r.sampleRate * r.format.BytesPerSample() * r.channels
}

// Len returns the total data chunk length in bytes.
func (r *Reader) Len() int64 { return r.dataLen }

// ReadSamples returns up to n sample frames from the cursor. A request of
// zero or less asks for one second of audio; every request is clamped to a
// ten second window and then to the remaining payload. The returned buffer
// is sized to exactly the bytes read. At end of payload it returns io.EOF,
// repeatedly and safely.
//
// A positioned read that comes back short of the declared chunk size means
// the file was truncated or is being concurrently modified; that surfaces
// as ErrTruncatedData, never as silently padded audio.
func (r *Reader) ReadSamples(n int) ([]byte, error) {
	blockSize := r.format.BytesPerSample() * r.channels

	if n <= 0 {
		n = r.sampleRate
	}
	if n > r.sampleRate*maxWindowSeconds {
		n = r.sampleRate * maxWindowSeconds
	}

	want := int64(n) * int64(blockSize)
	if remaining := r.dataLen - r.cursor; want > remaining {
		want = remaining
	}
	if want <= 0 {
		return nil, io.EOF
	}

	buf := make([]byte, want)
	read, err := r.src.ReadAt(buf, r.dataStart+r.cursor)
	if err != nil && (err != io.EOF || int64(read) < want) {
		return nil, fmt.Errorf("%w: %d of %d bytes at offset %d",
			ErrTruncatedData, read, want, r.cursor)
	}

	r.cursor += want
	return buf, nil
}

// Read implements audio.Stream over the data chunk.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	want := int64(len(p))
	if remaining := r.dataLen - r.cursor; want > remaining {
		want = remaining
	}
	if want <= 0 {
		return 0, io.EOF
	}

	read, err := r.src.ReadAt(p[:want], r.dataStart+r.cursor)
	if err != nil && (err != io.EOF || int64(read) < want) {
		return 0, fmt.Errorf("%w: %d of %d bytes at offset %d",
			ErrTruncatedData, read, want, r.cursor)
	}

	r.cursor += want
	return int(want), nil
}

// Close releases the underlying file (when the Reader owns one) and pins
// the cursor to the end of the payload, so subsequent reads report
// end-of-stream. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.cursor = r.dataLen

	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
