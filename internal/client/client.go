package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/mado-cli/internal/logging"
	"github.com/yourusername/mado-cli/internal/models"
)

const (
	DefaultSocketPath = "/tmp/mado-host.sock"
	DefaultTimeout    = 5 * time.Second
)

// ServerError is an error response returned by the accessibility host
type ServerError struct {
	Method  string
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Message)
}

// Client talks to the accessibility host over a unix socket
type Client struct {
	conn *Connection
}

// NewClient creates a new host client
func NewClient(socketPath string, timeout time.Duration) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		conn: NewConnection(socketPath, timeout),
	}
}

// Connect establishes connection to the host
func (c *Client) Connect() error {
	return c.conn.Connect()
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// SocketPath returns the socket the client dials
func (c *Client) SocketPath() string {
	return c.conn.socketPath
}

// request is a helper to send a request and get the result
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	if !c.conn.IsConnected() {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}

	id := uuid.New().String()
	req := models.NewRequest(id, method, params)
	resp, err := c.conn.SendRequest(ctx, req)
	if err != nil {
		logging.Debug().Str("method", method).Str("id", id).Err(err).Msg("request failed")
		return nil, err
	}

	if resp.IsError() {
		logging.Debug().Str("method", method).Int("code", resp.Error.Code).Str("error", resp.GetError()).Msg("server error")
		return nil, &ServerError{Method: method, Code: resp.Error.Code, Message: resp.GetError()}
	}

	return resp.Result, nil
}

// Ping sends a ping request to test connectivity
func (c *Client) Ping(ctx context.Context) (map[string]interface{}, error) {
	return c.request(ctx, "ping", nil)
}

// GetServerInfo retrieves host information
func (c *Client) GetServerInfo(ctx context.Context) (*models.ServerInfo, error) {
	result, err := c.request(ctx, "getServerInfo", nil)
	if err != nil {
		return nil, err
	}

	var info models.ServerInfo
	if err := models.DecodeResult(result, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// FrontmostApplication returns the application that currently has focus
func (c *Client) FrontmostApplication(ctx context.Context) (*models.Application, error) {
	return c.application(ctx, "ax.frontmostApplication", nil)
}

// Application returns the running application with the given pid
func (c *Client) Application(ctx context.Context, pid int) (*models.Application, error) {
	return c.application(ctx, "ax.application", map[string]interface{}{"pid": pid})
}

func (c *Client) application(ctx context.Context, method string, params map[string]interface{}) (*models.Application, error) {
	result, err := c.request(ctx, method, params)
	if err != nil {
		return nil, err
	}

	var app models.Application
	if err := models.DecodeResult(result, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetAttribute reads one attribute of an accessibility element
func (c *Client) GetAttribute(ctx context.Context, element, attribute string) (*models.AttributeValue, error) {
	result, err := c.request(ctx, "ax.getAttribute", map[string]interface{}{
		"element":   element,
		"attribute": attribute,
	})
	if err != nil {
		return nil, err
	}

	var res models.GetAttributeResult
	if err := models.DecodeResult(result, &res); err != nil {
		return nil, err
	}
	return &res.Value, nil
}

// SetAttribute writes one attribute of an accessibility element
func (c *Client) SetAttribute(ctx context.Context, element, attribute string, value models.AttributeValue) error {
	encoded, err := models.EncodeParams(value)
	if err != nil {
		return err
	}

	_, err = c.request(ctx, "ax.setAttribute", map[string]interface{}{
		"element":   element,
		"attribute": attribute,
		"value":     encoded,
	})
	return err
}

// Activate brings the application with the given pid to the front
func (c *Client) Activate(ctx context.Context, pid int, options []string) error {
	opts := make([]interface{}, len(options))
	for i, o := range options {
		opts[i] = o
	}

	_, err := c.request(ctx, "app.activate", map[string]interface{}{
		"pid":     pid,
		"options": opts,
	})
	return err
}

// ListDisplays retrieves the ordered display list
func (c *Client) ListDisplays(ctx context.Context) ([]models.Display, error) {
	result, err := c.request(ctx, "displays.list", nil)
	if err != nil {
		return nil, err
	}
	return models.ParseDisplays(result)
}

// CallMethod sends a generic RPC request with the given method and parameters
func (c *Client) CallMethod(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	return c.request(ctx, method, params)
}
