// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF container.
	ErrNotAiffFile = errors.New("not an aiff file")
	// ErrUnsupportedBitDepth indicates the file carries PCM at a bit
	// depth other than 16.
	ErrUnsupportedBitDepth = errors.New("only 16-bit pcm aiff is supported")
	// ErrUnsupportedAiffLayout indicates the container is valid but its
	// channel layout could not be determined.
	ErrUnsupportedAiffLayout = errors.New("unsupported aiff layout")
)
