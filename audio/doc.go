// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that carry recorded call
// audio toward a transcription consumer.
//
// Two stream abstractions coexist here:
//
//   - Stream is a byte-level PCM stream tagged with its wire format (L16 or
//     PCMU). The WAV container reader and RawStream produce Streams; the
//     Chunker consumes one.
//   - Source is the float32 sample domain used by the lossy format decoders
//     (mp3, vorbis, aiff). A Source is bridged into a Stream with
//     NewSourceStream, usually after Resampler and MonoMixer stages.
//
// # Chunking
//
// The Chunker slices a Stream into frames of a fixed duration:
//
//	chunker, err := audio.NewChunker(stream, audio.ChunkConfig{
//	    Duration: 100 * time.Millisecond,
//	})
//	for {
//	    frame, err := chunker.Next(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    // hand frame to the transcription client
//	}
//
// Every frame is a whole multiple of the sample-frame size. Only the final
// frame may be short; it is emitted once and then Next keeps returning
// io.EOF. Requesting past end-of-stream is always safe.
//
// Setting ChunkConfig.Pace delays each frame's emission by the configured
// duration, simulating realtime capture when replaying a recording into a
// live transcription session. Pacing only delays: frames are never
// reordered, dropped, or duplicated.
//
// Setting ChunkConfig.Encoding to an encoding different from the stream's
// transcodes each frame through the G.711 codec before emission. Frame
// sizes are computed against the post-transcode byte rate.
//
// # Pipelines
//
// Lossy inputs are adapted to the transcriber's expected layout first:
//
//	res := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(res)
//	stream := audio.NewSourceStream(mono)
//
// # Concurrency
//
// Everything in this package is single-consumer and synchronous. The only
// suspension point is the pacing delay, which honors context cancellation.
package audio
