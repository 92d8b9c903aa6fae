// Package clienttest runs an in-process accessibility host on a unix socket
// for tests that exercise the real client transport.
package clienttest

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/yourusername/mado-cli/internal/models"
)

// HandlerFunc answers one request. Returning nil sends nothing back.
type HandlerFunc func(req *models.Request) *models.MessageEnvelope

// Host is a fake accessibility host
type Host struct {
	SocketPath string

	listener net.Listener
	handler  HandlerFunc

	mu       sync.Mutex
	requests []models.Request
	conns    []net.Conn
	wg       sync.WaitGroup
}

// NewHost starts a host answering with handler and stops it when the test ends
func NewHost(t *testing.T, handler HandlerFunc) *Host {
	t.Helper()

	// Unix socket paths are length-limited, so avoid the long t.TempDir paths
	dir, err := os.MkdirTemp("", "mado")
	if err != nil {
		t.Fatalf("MkdirTemp() error = %v", err)
	}
	socketPath := filepath.Join(dir, "host.sock")

	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("Listen() error = %v", err)
	}

	h := &Host{
		SocketPath: socketPath,
		listener:   ln,
		handler:    handler,
	}

	h.wg.Add(1)
	go h.serve()

	t.Cleanup(func() {
		ln.Close()
		h.mu.Lock()
		for _, c := range h.conns {
			c.Close()
		}
		h.mu.Unlock()
		h.wg.Wait()
		os.RemoveAll(dir)
	})
	return h
}

// Requests returns every request received so far
func (h *Host) Requests() []models.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Request(nil), h.requests...)
}

// Methods returns the method names received so far, in order
func (h *Host) Methods() []string {
	var methods []string
	for _, r := range h.Requests() {
		methods = append(methods, r.Method)
	}
	return methods
}

func (h *Host) serve() {
	defer h.wg.Done()
	for {
		conn, err := h.listener.Accept()
		if err != nil {
			return
		}
		h.mu.Lock()
		h.conns = append(h.conns, conn)
		h.mu.Unlock()
		h.wg.Add(1)
		go h.handle(conn)
	}
}

func (h *Host) handle(conn net.Conn) {
	defer h.wg.Done()
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}

		var env models.MessageEnvelope
		if err := json.Unmarshal(line, &env); err != nil || env.Request == nil {
			return
		}

		h.mu.Lock()
		h.requests = append(h.requests, *env.Request)
		h.mu.Unlock()

		reply := h.handler(env.Request)
		if reply == nil {
			continue
		}
		data, err := json.Marshal(reply)
		if err != nil {
			return
		}
		if _, err := conn.Write(append(data, '\n')); err != nil {
			return
		}
	}
}
