// SPDX-License-Identifier: EPL-2.0

package g711

import "encoding/binary"

const (
	bias = 0x84 // 132
	clip = 32635
)

// encodeExp maps the biased magnitude's high byte to its segment exponent.
var encodeExp = [128]byte{
	0, 1, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 4,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
}

// decodeTable holds the linear value for every mu-law byte. Built once at
// init from the segment structure; spot values: Decode(0xFF) == 0,
// Decode(0x7F) == -8, Decode(0x80) == 32124.
var decodeTable [256]int16

func init() {
	for b := 0; b < 256; b++ {
		u := ^byte(b)
		exponent := (u >> 4) & 0x07
		mantissa := u & 0x0F

		magnitude := (int32(mantissa)<<3 + bias) << exponent
		magnitude -= bias

		if u&0x80 != 0 {
			// Negation happens in the 13-bit domain by bitwise
			// complement, so the negative side sits 8 below the
			// mirrored positive value.
			decodeTable[b] = int16(-magnitude - 8)
		} else {
			decodeTable[b] = int16(magnitude)
		}
	}
}

// Encode compands one L16 sample to its mu-law byte. Total over all int16
// inputs: magnitudes beyond the mu-law clip saturate, nothing fails.
func Encode(sample int16) byte {
	var polarity int32 = 0xFF

	magnitude := int32(sample)
	if magnitude < 0 {
		magnitude = -magnitude
		polarity = 0x7F
	}
	if magnitude > clip {
		magnitude = clip
	}
	magnitude += bias

	exponent := int32(encodeExp[magnitude>>8])
	mantissa := (magnitude >> (exponent + 3)) & 0x0F

	return byte(polarity - (exponent<<4 | mantissa))
}

// Decode expands one mu-law byte to L16. Never fails; the table covers the
// full 8-bit domain.
func Decode(b byte) int16 {
	return decodeTable[b]
}

// EncodeSamples compands a slice of L16 samples, preserving order and
// length.
func EncodeSamples(samples []int16) []byte {
	out := make([]byte, len(samples))
	for i, s := range samples {
		out[i] = Encode(s)
	}
	return out
}

// EncodeBytes compands a raw little-endian L16 byte buffer. A trailing odd
// byte (a partial sample) is ignored.
func EncodeBytes(le []byte) []byte {
	n := len(le) / 2
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Encode(int16(binary.LittleEndian.Uint16(le[2*i:])))
	}
	return out
}

// DecodeSamples expands a mu-law buffer into L16 samples.
func DecodeSamples(data []byte) []int16 {
	out := make([]int16, len(data))
	for i, b := range data {
		out[i] = decodeTable[b]
	}
	return out
}

// DecodeToBytes expands a mu-law buffer into raw little-endian L16 bytes.
func DecodeToBytes(data []byte) []byte {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(decodeTable[b]))
	}
	return out
}
