// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF recordings into the float32
// sample domain via github.com/go-audio/aiff.
//
// go-audio needs an io.ReadSeeker; non-seekable inputs are buffered in
// memory first, so prefer handing the decoder an *os.File.
package aiff
