// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// Connect dials NATS and keeps reconnecting forever. Connection state
// changes are logged.
func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(
		url,
		nats.Name(name),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("%s: nats disconnected: %v", name, err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("%s: nats reconnected to %s", name, c.ConnectedUrlRedacted())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats at %s: %w", url, err)
	}

	return nc, nil
}

// Relay broadcasts every reading published under prefix to hub. Payloads
// are forwarded as they arrive without decoding.
func Relay(nc *nats.Conn, prefix string, hub *Hub) (*nats.Subscription, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	sub, err := nc.Subscribe(prefix+".reading", func(msg *nats.Msg) {
		hub.BroadcastText(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s.reading: %w", prefix, err)
	}

	return sub, nil
}
