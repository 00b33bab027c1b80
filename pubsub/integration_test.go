package pubsub

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethz-asl/variant/msgtype"
)

// Integration tests require a live NATS server; set VARIANT_NATS_URL to
// run them, e.g. VARIANT_NATS_URL=nats://localhost:4222.
func integrationClient(t *testing.T) *Client {
	t.Helper()

	url := os.Getenv("VARIANT_NATS_URL")
	if url == "" {
		t.Skip("VARIANT_NATS_URL not set, skipping integration test")
	}

	c := NewClient(url, WithClientName("variant-test"))
	require.NoError(t, c.Connect())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestIntegration_PublishSubscribe(t *testing.T) {
	c := integrationClient(t)

	mt := msgtype.New("pkg/Sample", "*", "int32 value\n")

	received := make(chan []byte, 1)
	sub, err := c.Subscribe(mt, "/variant/test/roundtrip", 16,
		func(_ msgtype.MessageType, payload []byte) {
			received <- payload
		})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	pub := c.Advertise(mt, "/variant/test/roundtrip", 16, false, nil)
	require.True(t, pub.IsBound())
	require.NoError(t, pub.Publish([]byte("hello")))

	select {
	case payload := <-received:
		assert.Equal(t, []byte("hello"), payload)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestIntegration_SubscribeWithInvalidTypeStillBinds(t *testing.T) {
	c := integrationClient(t)

	invalid := msgtype.New("", "", "")
	sub, err := c.Subscribe(invalid, "/variant/test/invalid", 1,
		func(msgtype.MessageType, []byte) {})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID())
	require.NoError(t, sub.Unsubscribe())
}

func TestIntegration_LatchedRedelivery(t *testing.T) {
	c := integrationClient(t)

	mt := msgtype.New("pkg/Sample", "*", "int32 value\n")

	pub := c.Advertise(mt, "/variant/test/latched", 1, true, nil)
	require.NoError(t, pub.Publish([]byte("latched-payload")))

	// A subscriber binding after the publish still sees the payload.
	received := make(chan []byte, 1)
	sub, err := c.Subscribe(mt, "/variant/test/latched", 1,
		func(_ msgtype.MessageType, payload []byte) {
			received <- payload
		})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	select {
	case payload := <-received:
		assert.Equal(t, []byte("latched-payload"), payload)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for latched payload")
	}
}
