package pubsub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/msgtype"
)

// Publisher publishes raw message payloads for one topic. A publisher
// obtained from Advertise with an invalid message type is inert: it is
// unbound, and Publish on it silently does nothing.
type Publisher struct {
	id      string
	client  *Client
	topic   string
	subject string
	msgType msgtype.MessageType

	queueDepth int
	latch      bool

	mu          sync.Mutex
	lastPayload []byte
	hasPayload  bool

	bound bool
}

// ConnectCallback is invoked when a bound publisher's transport
// attachment is established.
type ConnectCallback func(*Publisher)

// Advertise produces a publisher for the topic. The publisher is live
// and bound only if the message type is valid; an invalid message type
// yields an inert, unbound handle, which is a silent no-op rather than
// an error. With latch enabled the last published payload is retained
// and redelivered to subscribers that bind later through this client.
func (c *Client) Advertise(t msgtype.MessageType, topic string, queueDepth int,
	latch bool, connectCallback ConnectCallback) *Publisher {
	p := &Publisher{
		id:         uuid.NewString(),
		topic:      topic,
		subject:    subjectForTopic(topic),
		msgType:    t,
		queueDepth: queueDepth,
		latch:      latch,
	}

	if !t.IsValid() {
		c.logger.Debug("advertising invalid message type, publisher unbound",
			"topic", topic, "type", t.DataType())
		return p
	}

	p.client = c
	p.bound = true

	if latch {
		c.rememberLatched(p)
	}

	c.logger.Info("advertised topic",
		"topic", topic, "type", t.DataType(), "publisher", p.id, "latch", latch)

	if connectCallback != nil {
		connectCallback(p)
	}

	return p
}

// ID returns the publisher's instance identifier; empty for unbound
// handles created without binding.
func (p *Publisher) ID() string {
	return p.id
}

// IsBound reports whether the publisher is attached to a transport
func (p *Publisher) IsBound() bool {
	return p.bound
}

// Topic returns the advertised topic name
func (p *Publisher) Topic() string {
	return p.topic
}

// MessageType returns the message type the publisher was advertised with
func (p *Publisher) MessageType() msgtype.MessageType {
	return p.msgType
}

// Publish sends a raw payload. On an unbound publisher this is a silent
// no-op. On a bound publisher without a live connection it fails with
// ErrNotConnected.
func (p *Publisher) Publish(payload []byte) error {
	if !p.bound {
		return nil
	}

	conn, err := p.client.connection()
	if err != nil {
		return err
	}

	if err := conn.Publish(p.subject, payload); err != nil {
		return errors.WrapFatal(err, "Publisher", "Publish", "publishing on "+p.subject)
	}

	if p.latch {
		p.mu.Lock()
		p.lastPayload = append([]byte(nil), payload...)
		p.hasPayload = true
		p.mu.Unlock()
	}

	p.client.countPublished(p.topic)
	return nil
}

// LastPayload returns a copy of the latched payload, if any
func (p *Publisher) LastPayload() ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasPayload {
		return nil, false
	}
	return append([]byte(nil), p.lastPayload...), true
}
