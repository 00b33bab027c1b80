package pubsub

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ethz-asl/variant/errors"
	"github.com/ethz-asl/variant/metric"
)

// Connection errors
var (
	ErrNotConnected  = errors.New("not connected to NATS")
	ErrAlreadyClosed = errors.New("client already closed")
)

// Client manages a NATS connection for publishers and subscribers
type Client struct {
	url    string
	logger *slog.Logger

	conn *nats.Conn

	// Connection options
	clientName    string
	timeout       time.Duration
	reconnectWait time.Duration
	maxReconnects int
	drainTimeout  time.Duration
	username      string
	password      string
	token         string

	// Latched publishers by topic, consulted when new subscribers bind
	latched   map[string]*Publisher
	latchedMu sync.RWMutex

	metrics *metric.Metrics

	mu     sync.Mutex
	closed bool
}

// NewClient creates a new NATS client with optional configuration. The
// client does not connect until Connect is called.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:           url,
		logger:        slog.Default(),
		clientName:    "variant",
		timeout:       5 * time.Second,
		reconnectWait: 2 * time.Second,
		maxReconnects: -1,
		drainTimeout:  30 * time.Second,
		latched:       make(map[string]*Publisher),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect establishes the NATS connection
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.WrapFatal(ErrAlreadyClosed, "Client", "Connect", "connecting")
	}
	if c.conn != nil && c.conn.IsConnected() {
		return nil
	}

	opts := []nats.Option{
		nats.Name(c.clientName),
		nats.Timeout(c.timeout),
		nats.ReconnectWait(c.reconnectWait),
		nats.MaxReconnects(c.maxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			c.logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			c.logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	if c.username != "" {
		opts = append(opts, nats.UserInfo(c.username, c.password))
	}
	if c.token != "" {
		opts = append(opts, nats.Token(c.token))
	}

	conn, err := nats.Connect(c.url, opts...)
	if err != nil {
		return errors.WrapFatal(err, "Client", "Connect", "connecting to "+c.url)
	}

	c.conn = conn
	c.logger.Info("connected to NATS", "url", c.url, "name", c.clientName)
	return nil
}

// IsConnected reports whether the client holds a live connection
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && c.conn.IsConnected()
}

// Close drains and closes the connection. Safe to call once; later
// calls fail with ErrAlreadyClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.WrapInvalid(ErrAlreadyClosed, "Client", "Close", "closing")
	}
	c.closed = true

	if c.conn == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.conn.Drain(); err != nil {
			c.logger.Warn("NATS drain failed", "error", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(c.drainTimeout):
		c.logger.Warn("NATS drain timed out", "timeout", c.drainTimeout)
		c.conn.Close()
	}

	c.conn = nil
	return nil
}

// subjectForTopic maps a topic name onto a NATS subject: slashes become
// dots and leading separators are dropped, so "/sensors/imu" publishes
// on "sensors.imu".
func subjectForTopic(topic string) string {
	subject := strings.Trim(topic, "/")
	subject = strings.ReplaceAll(subject, "/", ".")
	return subject
}

func (c *Client) rememberLatched(p *Publisher) {
	c.latchedMu.Lock()
	defer c.latchedMu.Unlock()
	c.latched[p.topic] = p
}

func (c *Client) latchedPayload(topic string) ([]byte, bool) {
	c.latchedMu.RLock()
	p, ok := c.latched[topic]
	c.latchedMu.RUnlock()
	if !ok {
		return nil, false
	}
	return p.LastPayload()
}

func (c *Client) countPublished(topic string) {
	if c.metrics != nil {
		c.metrics.MessagesPublished.WithLabelValues(topic).Inc()
	}
}

func (c *Client) countReceived(topic string) {
	if c.metrics != nil {
		c.metrics.MessagesReceived.WithLabelValues(topic).Inc()
	}
}

func (c *Client) connection() (*nats.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || !c.conn.IsConnected() {
		return nil, errors.WrapFatal(ErrNotConnected, "Client", "connection",
			fmt.Sprintf("using client for [%s]", c.url))
	}
	return c.conn, nil
}
