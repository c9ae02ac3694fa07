// SPDX-License-Identifier: EPL-2.0

package audio

import "context"

// FrameHandler receives chunked audio frames in order. Implementations are
// the boundary to the transcription transport: they own delivery, retries
// and transcript handling. A returned error stops the stream.
type FrameHandler interface {
	Frame(ctx context.Context, frame []byte) error
}

// FrameHandlerFunc adapts a function to the FrameHandler interface.
type FrameHandlerFunc func(ctx context.Context, frame []byte) error

func (f FrameHandlerFunc) Frame(ctx context.Context, frame []byte) error {
	return f(ctx, frame)
}
