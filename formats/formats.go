// SPDX-License-Identifier: EPL-2.0

// Package formats wires every recording decoder into one trace.Registry.
package formats

import (
	"github.com/ik5/ppgbeat/formats/aiff"
	"github.com/ik5/ppgbeat/formats/mp3"
	"github.com/ik5/ppgbeat/formats/vorbis"
	"github.com/ik5/ppgbeat/formats/wav"
	"github.com/ik5/ppgbeat/trace"
)

// NewRegistry returns a registry keyed by file extension.
func NewRegistry() *trace.Registry {
	r := trace.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})

	return r
}
