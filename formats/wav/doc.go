// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE containers for the call streaming
// pipeline.
//
// The reader side differs from a general decoder on purpose: call
// recordings arrive as L16 or PCMU payloads that must reach the chunker
// bit-for-bit, so the Reader validates the container and then exposes the
// raw data chunk as a bounded byte stream instead of decoding samples.
//
// # Reading
//
//	r, err := wav.OpenFile("call.wav", nil)
//	if err != nil {
//	    // one of the typed validation errors below
//	}
//	defer r.Close()
//
//	frame, err := r.ReadSamples(8000) // one second at 8 kHz
//
// Open performs a strict validation sequence, failing fast with the first
// violation:
//
//   - ErrHeaderTooSmall: fewer than 44 bytes available
//   - ErrInvalidContainer: RIFF/WAVE/fmt tags wrong, fmt chunk size not one
//     of 16, 18 or 40, or block-align inconsistent with the declared layout
//   - ErrUnsupportedFormat: format tag other than PCM (1) or mu-law (7)
//   - ErrUnsupportedRate: sample rate outside Options.AllowedRates
//   - ErrInvalidChannels: channel count outside Options bounds
//   - ErrNoDataChunk: the sub-chunk scan exhausted the file
//
// After validation, reads can still fail with ErrTruncatedData when the
// file is shorter than its declared data chunk. That is a corruption
// signal and is never papered over with zero padding.
//
// Extensible fmt chunks (sizes 18 and 40) are accepted; their extra fields
// are ignored. A data chunk size of 0xFFFFFFFF is treated as "runs to end
// of file", as written by streaming recorders.
//
// # Writing
//
// WriteWAV16 produces canonical mono PCM files; WriteRaw wraps an
// already-encoded payload (L16 or PCMU) in a canonical header. Both are
// used by the example tool and by tests.
package wav
