// SPDX-License-Identifier: EPL-2.0

// Package audscribe turns recorded calls into ordered, fixed-duration PCM
// frames ready for a transcription transport.
//
// The building blocks live in the subpackages: formats/wav reads WAV
// containers without touching the payload, formats/mp3, formats/vorbis and
// formats/aiff decode lossy or packed recordings into float32 samples,
// g711 converts between L16 and mu-law, and audio chunks any byte stream
// into frames. This package ties them together:
//
//	stream, err := audscribe.OpenMedia("call.wav", 16000)
//	if err != nil {
//		return err
//	}
//	defer stream.Close()
//
//	err = audscribe.StreamFrames(ctx, stream, audio.ChunkConfig{},
//		audio.FrameHandlerFunc(func(ctx context.Context, frame []byte) error {
//			return client.Send(ctx, frame)
//		}))
package audscribe
