// SPDX-License-Identifier: EPL-2.0

package trace

import "fmt"

// Mix selects the average of all channels.
const Mix = -1

// ChannelReader reduces an interleaved Source to a single channel.
type ChannelReader struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelReader keeps channel (0-based) of src, or averages all channels
// when channel is Mix. Use Validate to check the index against src.
func NewChannelReader(src Source, channel int) *ChannelReader {
	return &ChannelReader{
		src:     src,
		channel: channel,
		tmp:     make([]float32, 4096),
	}
}

// Validate reports ErrInvalidChannel if the channel does not exist in src.
func (c *ChannelReader) Validate() error {
	if c.channel == Mix {
		return nil
	}
	if c.channel < 0 || c.channel >= c.src.Channels() {
		return fmt.Errorf("%w: %d of %d", ErrInvalidChannel, c.channel, c.src.Channels())
	}
	return nil
}

func (c *ChannelReader) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelReader) Channels() int   { return 1 }
func (c *ChannelReader) BufSize() int    { return c.src.BufSize() }

func (c *ChannelReader) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with one value per source frame.
func (c *ChannelReader) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	channels := c.src.Channels()
	if channels == 1 {
		return c.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(c.tmp) < needed {
		c.tmp = make([]float32, needed)
	}
	c.tmp = c.tmp[:needed]

	n, err := c.src.ReadSamples(c.tmp)
	frames := n / channels

	if c.channel == Mix {
		inv := 1 / float32(channels)
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for ch := range channels {
				sum += c.tmp[base+ch]
			}
			dst[f] = sum * inv
		}
	} else {
		for f := range frames {
			dst[f] = c.tmp[f*channels+c.channel]
		}
	}

	return frames, err
}
