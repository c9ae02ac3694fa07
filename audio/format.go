// SPDX-License-Identifier: EPL-2.0

package audio

// Format identifies the wire encoding of a PCM byte stream.
type Format int

const (
	// L16 is signed 16-bit linear PCM, little-endian.
	L16 Format = iota + 1
	// PCMU is G.711 mu-law, 8-bit.
	PCMU
)

// BytesPerSample returns the width of one encoded sample.
func (f Format) BytesPerSample() int {
	if f == PCMU {
		return 1
	}
	return 2
}

func (f Format) String() string {
	switch f {
	case L16:
		return "L16"
	case PCMU:
		return "PCMU"
	}
	return "unknown"
}
