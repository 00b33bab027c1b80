package pubsub

import (
	"log/slog"
	"time"

	"github.com/ethz-asl/variant/metric"
)

// ClientOption configures a Client
type ClientOption func(*Client)

// WithClientName sets the connection name reported to the server
func WithClientName(name string) ClientOption {
	return func(c *Client) {
		c.clientName = name
	}
}

// WithTimeout sets the connection timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithReconnectWait sets the wait between reconnection attempts
func WithReconnectWait(wait time.Duration) ClientOption {
	return func(c *Client) {
		c.reconnectWait = wait
	}
}

// WithMaxReconnects sets the reconnection attempt limit; -1 means
// unlimited
func WithMaxReconnects(max int) ClientOption {
	return func(c *Client) {
		c.maxReconnects = max
	}
}

// WithDrainTimeout bounds how long Close waits for in-flight messages
func WithDrainTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.drainTimeout = timeout
	}
}

// WithCredentials sets username/password authentication
func WithCredentials(username, password string) ClientOption {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithToken sets token authentication
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithClientLogger sets the structured logger
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClientMetrics enables Prometheus traffic counters
func WithClientMetrics(m *metric.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}
