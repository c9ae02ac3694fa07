// SPDX-License-Identifier: EPL-2.0

// Package g711 implements the G.711 mu-law companding codec (PCMU).
//
// Telephony call recordings are commonly stored as 8-bit mu-law while
// transcription services expect 16-bit linear PCM, so both directions are
// provided as scalar and bulk operations:
//
//	b := g711.Encode(sample)        // L16 -> mu-law
//	s := g711.Decode(b)             // mu-law -> L16
//	out := g711.EncodeSamples(pcm)  // []int16 -> mu-law bytes
//	out := g711.EncodeBytes(le)     // raw little-endian L16 -> mu-law bytes
//	pcm := g711.DecodeSamples(mu)   // mu-law bytes -> []int16
//	le := g711.DecodeToBytes(mu)    // mu-law bytes -> raw little-endian L16
//
// All functions are total: encoding saturates at the mu-law clip level
// (32635) instead of wrapping, and decoding is a table lookup over the full
// byte domain. There are no error returns.
//
// Mu-law is lossy. Round-tripping a sample lands within its quantization
// interval (at most ~2% of full scale at the loudest segment, much tighter
// near zero).
package g711
