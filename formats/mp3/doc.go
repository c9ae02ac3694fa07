// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings into the float32 sample domain via
// github.com/hajimehoshi/go-mp3.
//
// Call exports frequently arrive as MP3. The decoder turns them into an
// audio.Source (stereo, the file's sample rate) so they can flow through
// the standard resample/downmix stages before chunking:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	stream := audio.NewSourceStream(mono)
package mp3
