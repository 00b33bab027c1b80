package pubsub

import (
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/msgtype"
)

// SubscriberCallback receives the advertised message type and the raw
// payload bytes of one delivered message.
type SubscriberCallback func(t msgtype.MessageType, payload []byte)

// Subscriber delivers raw payloads for one topic to a callback
type Subscriber struct {
	id      string
	client  *Client
	topic   string
	subject string
	msgType msgtype.MessageType
	sub     *nats.Subscription
}

// Subscribe produces a bound subscriber for the topic. Unlike
// Advertise, subscribing binds regardless of the message type's
// validity. The queue depth bounds the pending message buffer; messages
// beyond it are dropped by the transport.
func (c *Client) Subscribe(t msgtype.MessageType, topic string, queueDepth int,
	callback SubscriberCallback) (*Subscriber, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	s := &Subscriber{
		id:      uuid.NewString(),
		client:  c,
		topic:   topic,
		subject: subjectForTopic(topic),
		msgType: t,
	}

	sub, err := conn.Subscribe(s.subject, func(msg *nats.Msg) {
		c.countReceived(topic)
		callback(t, msg.Data)
	})
	if err != nil {
		return nil, errors.WrapFatal(err, "Subscriber", "Subscribe", "subscribing to "+s.subject)
	}

	if queueDepth > 0 {
		if err := sub.SetPendingLimits(queueDepth, -1); err != nil {
			c.logger.Warn("cannot set pending limits",
				"topic", topic, "depth", queueDepth, "error", err)
		}
	}

	s.sub = sub
	c.logger.Info("subscribed to topic",
		"topic", topic, "type", t.DataType(), "subscriber", s.id)

	// Redeliver the latched payload of a local latched publisher.
	if payload, ok := c.latchedPayload(topic); ok {
		c.countReceived(topic)
		callback(t, payload)
	}

	return s, nil
}

// ID returns the subscriber's instance identifier
func (s *Subscriber) ID() string {
	return s.id
}

// Topic returns the subscribed topic name
func (s *Subscriber) Topic() string {
	return s.topic
}

// MessageType returns the message type the subscriber was created with
func (s *Subscriber) MessageType() msgtype.MessageType {
	return s.msgType
}

// Unsubscribe detaches the subscriber from the transport
func (s *Subscriber) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	if err := s.sub.Unsubscribe(); err != nil {
		return errors.WrapFatal(err, "Subscriber", "Unsubscribe", "unsubscribing from "+s.subject)
	}
	s.sub = nil
	return nil
}
