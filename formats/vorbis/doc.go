// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings into the float32 sample
// domain via github.com/jfreymuth/oggvorbis, for the same pipeline the
// other format decoders feed.
package vorbis
