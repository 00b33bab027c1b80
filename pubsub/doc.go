// Package pubsub binds message types to a NATS transport. A Client
// manages the connection; Advertise produces publishers and Subscribe
// produces subscribers for a topic.
//
// # Quick Start
//
//	client := pubsub.NewClient("nats://localhost:4222")
//	if err := client.Connect(); err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	pub := client.Advertise(mt, "/sensors/pose", 100, false, nil)
//	err := pub.Publish(payload)
//
//	sub, err := client.Subscribe(mt, "/sensors/pose", 100,
//	    func(t msgtype.MessageType, payload []byte) {
//	        // handle payload
//	    })
//	defer sub.Unsubscribe()
//
// Topic names use '/' separators and are mapped to NATS subjects by
// replacing separators with '.'.
//
// # Validity Gating
//
// Advertise and Subscribe gate message-type validity asymmetrically:
// advertising an invalid message type yields an inert, unbound publisher
// whose Publish is a silent no-op, while subscribing always yields a
// bound subscriber regardless of the message type's validity. A
// subscriber with a wildcard type can still observe topics it cannot
// resolve, while a publisher vouches for what it sends and must hold a
// complete type.
//
// # Latching
//
// A publisher advertised with latch enabled retains its most recent
// payload, and the client redelivers it to every later subscriber of the
// same topic immediately on subscription.
package pubsub
