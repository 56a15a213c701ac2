// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ik5/ppgbeat/formats/internal/pcm"

// SeekBuffer is an in-memory io.WriteSeeker. The WAV encoder patches its
// header sizes on Close, so it cannot write to a plain io.Writer.
type SeekBuffer = pcm.SeekBuffer
