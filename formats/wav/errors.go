// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrHeaderTooSmall    = errors.New("file smaller than WAV header")
	ErrInvalidContainer  = errors.New("invalid RIFF/WAVE container")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnsupportedRate   = errors.New("unsupported sample rate")
	ErrInvalidChannels   = errors.New("channel count out of range")
	ErrNoDataChunk       = errors.New("no data chunk")
	ErrTruncatedData     = errors.New("truncated data chunk")
)
