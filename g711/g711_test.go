// SPDX-License-Identifier: EPL-2.0

package g711

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestDecode_SpotValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   byte
		want int16
	}{
		{"positive zero", 0xFF, 0},
		{"negative zero", 0x7F, -8},
		{"positive max", 0x80, 32124},
		{"negative max", 0x00, -32132},
		{"positive step one", 0xFE, 8},
		{"negative step one", 0x7E, -16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Decode(tt.in); got != tt.want {
				t.Errorf("Decode(%#02x) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode_SpotValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int16
		want byte
	}{
		{"zero", 0, 0xFF},
		{"max positive", 32767, 0x80},
		{"max negative", -32768, 0x00},
		{"clip boundary", 32635, 0x80},
		{"minus one", -1, 0x7F},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%d) = %#02x, want %#02x", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode_Saturation(t *testing.T) {
	t.Parallel()

	// The extremes must land in the top segment, not wrap.
	if got := Encode(32767); got != 0x80 {
		t.Errorf("Encode(32767) = %#02x, want 0x80", got)
	}
	if got := Encode(-32768); got != 0x00 {
		t.Errorf("Encode(-32768) = %#02x, want 0x00", got)
	}
}

func TestRoundTrip_ErrorBound(t *testing.T) {
	t.Parallel()

	// Mu-law is lossy; the round trip must stay within the quantization
	// interval of each segment. 650 covers the widest interval plus the
	// clip region at full scale.
	const maxErr = 650

	for s := -32768; s <= 32767; s++ {
		got := int(Decode(Encode(int16(s))))
		diff := got - s
		if diff < 0 {
			diff = -diff
		}
		if diff > maxErr {
			t.Fatalf("round trip %d -> %d, error %d exceeds %d", s, got, diff, maxErr)
		}
	}
}

func TestRoundTrip_TightNearZero(t *testing.T) {
	t.Parallel()

	// The logarithmic segments make quantization much finer near zero.
	for s := -1000; s <= 1000; s++ {
		got := int(Decode(Encode(int16(s))))
		diff := got - s
		if diff < 0 {
			diff = -diff
		}
		if diff > 64 {
			t.Fatalf("round trip %d -> %d, error %d exceeds 64", s, got, diff)
		}
	}
}

func TestDecode_Monotonic(t *testing.T) {
	t.Parallel()

	// Walking the positive codes from loudest (0x80) to zero (0xFF) must
	// be strictly decreasing; likewise the negative side increases toward
	// its zero code.
	for b := 0x80; b < 0xFF; b++ {
		if Decode(byte(b)) <= Decode(byte(b+1)) {
			t.Fatalf("positive codes not decreasing at %#02x: %d <= %d",
				b, Decode(byte(b)), Decode(byte(b+1)))
		}
	}
	for b := 0x00; b < 0x7F; b++ {
		if Decode(byte(b)) >= Decode(byte(b+1)) {
			t.Fatalf("negative codes not increasing at %#02x: %d >= %d",
				b, Decode(byte(b)), Decode(byte(b+1)))
		}
	}
}

func TestEncodeSamples_PreservesOrderAndLength(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768, 8, -8}
	out := EncodeSamples(samples)

	if len(out) != len(samples) {
		t.Fatalf("EncodeSamples() length = %d, want %d", len(out), len(samples))
	}

	for i, s := range samples {
		if out[i] != Encode(s) {
			t.Errorf("out[%d] = %#02x, want %#02x", i, out[i], Encode(s))
		}
	}
}

func TestEncodeBytes_MatchesEncodeSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 12345, -12345, 32767, -32768}

	le := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(le[2*i:], uint16(s))
	}

	if !bytes.Equal(EncodeBytes(le), EncodeSamples(samples)) {
		t.Error("EncodeBytes() differs from EncodeSamples() over the same data")
	}
}

func TestEncodeBytes_IgnoresTrailingOddByte(t *testing.T) {
	t.Parallel()

	le := []byte{0x00, 0x00, 0x7F} // one sample plus a dangling byte
	out := EncodeBytes(le)

	if len(out) != 1 {
		t.Fatalf("EncodeBytes() length = %d, want 1", len(out))
	}
}

func TestDecodeSamples_Length(t *testing.T) {
	t.Parallel()

	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}

	out := DecodeSamples(in)
	if len(out) != len(in) {
		t.Fatalf("DecodeSamples() length = %d, want %d", len(out), len(in))
	}

	for i := range in {
		if out[i] != Decode(in[i]) {
			t.Errorf("out[%d] = %d, want %d", i, out[i], Decode(in[i]))
		}
	}
}

func TestDecodeToBytes_LittleEndian(t *testing.T) {
	t.Parallel()

	in := []byte{0xFF, 0x80, 0x00}
	out := DecodeToBytes(in)

	if len(out) != len(in)*2 {
		t.Fatalf("DecodeToBytes() length = %d, want %d", len(out), len(in)*2)
	}

	for i, b := range in {
		got := int16(binary.LittleEndian.Uint16(out[2*i:]))
		if got != Decode(b) {
			t.Errorf("sample %d = %d, want %d", i, got, Decode(b))
		}
	}
}

func BenchmarkEncodeBytes(b *testing.B) {
	le := make([]byte, 16000) // one second of 8 kHz mono L16
	for i := range le {
		le[i] = byte(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		_ = EncodeBytes(le)
	}
}

func BenchmarkDecodeToBytes(b *testing.B) {
	mu := make([]byte, 8000) // one second of 8 kHz mono PCMU
	for i := range mu {
		mu[i] = byte(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		_ = DecodeToBytes(mu)
	}
}
