package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/yourusername/mado-cli/internal/models"
)

// Connection manages the unix domain socket connection to the host
type Connection struct {
	socketPath string
	conn       net.Conn
	reader     *bufio.Reader
	timeout    time.Duration
}

// NewConnection creates a new connection instance
func NewConnection(socketPath string, timeout time.Duration) *Connection {
	return &Connection{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Connect establishes the unix domain socket connection
func (c *Connection) Connect() error {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// SendRequest sends a request and waits for the matching response. Any
// transport failure drops the connection so the next request redials.
func (c *Connection) SendRequest(ctx context.Context, req *models.MessageEnvelope) (*models.Response, error) {
	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		c.Close()
		return nil, err
	}
	return resp, nil
}

func (c *Connection) roundTrip(ctx context.Context, req *models.MessageEnvelope) (*models.Response, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("not connected")
	}

	// Apply timeout if not already set
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	deadline, _ := ctx.Deadline()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Send with newline delimiter
	data = append(data, '\n')
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set write deadline: %w", err)
	}

	if _, err := c.conn.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write request: %w", err)
	}

	// Read response with context cancellation support
	respChan := make(chan *models.Response, 1)
	errChan := make(chan error, 1)
	conn, reader := c.conn, c.reader

	go func() {
		if err := conn.SetReadDeadline(deadline); err != nil {
			errChan <- fmt.Errorf("failed to set read deadline: %w", err)
			return
		}

		for {
			line, err := reader.ReadBytes('\n')
			if err != nil {
				errChan <- fmt.Errorf("failed to read response: %w", err)
				return
			}

			var envelope models.MessageEnvelope
			if err := json.Unmarshal(line, &envelope); err != nil {
				errChan <- fmt.Errorf("failed to unmarshal response: %w", err)
				return
			}

			// Events may be interleaved with responses
			if envelope.Type == models.TypeEvent {
				continue
			}

			if envelope.Type != models.TypeResponse {
				errChan <- fmt.Errorf("expected response, got %s", envelope.Type)
				return
			}

			if envelope.Response == nil {
				errChan <- fmt.Errorf("response envelope has nil response")
				return
			}

			if envelope.Response.ID != req.Request.ID {
				errChan <- fmt.Errorf("response id %s does not match request id %s", envelope.Response.ID, req.Request.ID)
				return
			}

			respChan <- envelope.Response
			return
		}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("request cancelled or timed out: %w", ctx.Err())
	case err := <-errChan:
		return nil, err
	case resp := <-respChan:
		return resp, nil
	}
}

// IsConnected returns true if the connection is established
func (c *Connection) IsConnected() bool {
	return c.conn != nil
}
