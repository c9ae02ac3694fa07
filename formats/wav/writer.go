// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audscribe/audio"
)

// WriteWAV16 writes a canonical mono 16-bit PCM WAV file at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if err := writeHeader(w, audio.L16, sampleRate, 1, uint32(len(samples)*2)); err != nil {
		return err
	}

	const batch = 8192
	buf := make([]byte, 2*min(len(samples), batch))

	for start := 0; start < len(samples); start += batch {
		part := samples[start:min(start+batch, len(samples))]
		for i, s := range part {
			binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
		}
		if _, err := w.Write(buf[:2*len(part)]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// writeHeader emits the canonical 44-byte header for a data chunk of
// dataSize bytes.
func writeHeader(w io.Writer, format audio.Format, sampleRate, channels int, dataSize uint32) error {
	formatTag := uint16(formatPCM)
	if format == audio.PCMU {
		formatTag = formatULaw
	}

	bytesPerSample := format.BytesPerSample()
	blockAlign := uint16(channels * bytesPerSample)
	byteRate := uint32(sampleRate * channels * bytesPerSample)

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatTag)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bytesPerSample*8))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteRaw writes a canonical WAV file around an already-encoded payload.
// The payload must match the declared format, rate and channel count.
func WriteRaw(w io.Writer, format audio.Format, sampleRate, channels int, payload []byte) error {
	if err := writeHeader(w, format, sampleRate, channels, uint32(len(payload))); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
