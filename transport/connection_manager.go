package transport

import (
	"chat-room/contract"
	"chat-room/errors"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ConnectionManager owns the live websocket of the current session.
// It never touches the transcript: inbound frames are handed to the
// InboundHandler given at Open.
type ConnectionManager struct {
	baseURL       *url.URL
	dialer        *websocket.Dialer
	dialAttempts  uint
	writeTimeout  time.Duration
	maxFrameBytes int64
	log           *slog.Logger

	mu      sync.Mutex
	conn    *connection
	opening bool
}

type connection struct {
	id       uuid.UUID
	ws       *websocket.Conn
	roomID   string
	nickname string
	writeMu  sync.Mutex
	closing  bool // set under ConnectionManager.mu by a local Close
}

// DefaultMaxFrameBytes is the inbound frame cap when none is configured.
const DefaultMaxFrameBytes = 64 << 10

type Option func(*ConnectionManager)

// WithDialAttempts bounds the number of dial tries; retries back off exponentially.
func WithDialAttempts(attempts uint) Option {
	return func(m *ConnectionManager) {
		if attempts > 0 {
			m.dialAttempts = attempts
		}
	}
}

// WithMaxFrameBytes caps the size of an inbound frame. Larger frames are dropped.
func WithMaxFrameBytes(size int64) Option {
	return func(m *ConnectionManager) {
		if size > 0 {
			m.maxFrameBytes = size
		}
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(m *ConnectionManager) { m.writeTimeout = timeout }
}

func WithHandshakeTimeout(timeout time.Duration) Option {
	return func(m *ConnectionManager) { m.dialer.HandshakeTimeout = timeout }
}

// NewConnectionManager builds a manager for the room service at baseURL.
// http and https schemes are mapped to ws and wss.
func NewConnectionManager(baseURL string, log *slog.Logger, opts ...Option) (*ConnectionManager, error) {
	u, err := websocketURL(baseURL)
	if err != nil {
		return nil, err
	}
	m := &ConnectionManager{
		baseURL:       u,
		dialer:        &websocket.Dialer{Proxy: http.ProxyFromEnvironment, HandshakeTimeout: 10 * time.Second},
		dialAttempts:  1,
		maxFrameBytes: DefaultMaxFrameBytes,
		log:           log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Open dials /ws/{room}/{nickname} and starts delivering inbound frames to handler.
// Only one connection may be open at a time.
func (m *ConnectionManager) Open(ctx context.Context, roomID, nickname string, handler contract.InboundHandler) error {
	endpoint, err := m.endpoint(roomID, nickname)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.conn != nil || m.opening {
		m.mu.Unlock()
		return errors.ErrAlreadyConnected
	}
	m.opening = true
	m.mu.Unlock()

	ws, err := m.dial(ctx, endpoint)

	m.mu.Lock()
	m.opening = false
	if err != nil {
		m.mu.Unlock()
		m.log.Warn("Connection failed", "room_id", roomID, "nickname", nickname, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrNotConnected, err)
	}
	c := &connection{id: uuid.New(), ws: ws, roomID: roomID, nickname: nickname}
	m.conn = c
	m.mu.Unlock()

	m.log.Info("Connected",
		"connection_id", c.id,
		"room_id", roomID,
		"nickname", nickname)
	go m.readLoop(c, handler)
	return nil
}

// endpoint builds {base}/ws/{room}/{nickname} with each value kept as one escaped segment.
func (m *ConnectionManager) endpoint(roomID, nickname string) (string, error) {
	for _, segment := range []string{roomID, nickname} {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("%w: %q is not a usable path segment", errors.ErrInvalidInput, segment)
		}
	}
	u := *m.baseURL
	u.Path = strings.TrimRight(m.baseURL.Path, "/") + "/ws/" + roomID + "/" + nickname
	u.RawPath = strings.TrimRight(m.baseURL.EscapedPath(), "/") +
		"/ws/" + url.PathEscape(roomID) + "/" + url.PathEscape(nickname)
	return u.String(), nil
}

func (m *ConnectionManager) dial(ctx context.Context, endpoint string) (*websocket.Conn, error) {
	attempt := 0
	return backoff.Retry(ctx, func() (*websocket.Conn, error) {
		attempt++
		ws, response, err := m.dialer.DialContext(ctx, endpoint, nil)
		if err == nil {
			return ws, nil
		}
		// A refused handshake will not get better by retrying.
		if response != nil && response.StatusCode >= 400 && response.StatusCode < 500 {
			return nil, backoff.Permanent(fmt.Errorf("handshake refused with %d: %w", response.StatusCode, err))
		}
		m.log.Debug(fmt.Sprintf("Dial attempt %d/%d failed", attempt, m.dialAttempts), "error", err)
		return nil, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(m.dialAttempts),
	)
}

// Send writes content as a single text frame.
// It reports ErrNotConnected instead of failing when no connection is ready.
func (m *ConnectionManager) Send(content string) error {
	m.mu.Lock()
	c := m.conn
	m.mu.Unlock()
	if c == nil {
		return errors.ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(m.deadline())
	if err := c.ws.WriteMessage(websocket.TextMessage, []byte(content)); err != nil {
		m.log.Warn("Send failed", "connection_id", c.id, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrNotConnected, err)
	}
	return nil
}

// Close ends the connection with a normal closure. Closing twice is a no-op.
func (m *ConnectionManager) Close() error {
	m.mu.Lock()
	c := m.conn
	m.conn = nil
	if c != nil {
		c.closing = true
	}
	m.mu.Unlock()
	if c == nil {
		return nil
	}

	closeFrame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "leaving")
	_ = c.ws.WriteControl(websocket.CloseMessage, closeFrame, m.deadline())
	m.log.Info("Connection closed", "connection_id", c.id, "room_id", c.roomID)
	return c.ws.Close()
}

// Connected tells whether a connection is currently open.
func (m *ConnectionManager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil
}

func (m *ConnectionManager) readLoop(c *connection, handler contract.InboundHandler) {
	for {
		data, err := m.readFrame(c)
		if err != nil {
			m.release(c, handler, err)
			return
		}
		if data == nil {
			m.log.Warn("Dropping oversized inbound frame", "connection_id", c.id, "max_bytes", m.maxFrameBytes)
			continue
		}
		frame, err := decodeFrame(data)
		if err != nil {
			m.log.Warn("Dropping inbound frame", "connection_id", c.id, "error", err)
			continue
		}
		handler.OnInboundMessage(frame.Nickname, frame.Content)
	}
}

// readFrame reads the next message without buffering more than maxFrameBytes of it.
// An oversized message is consumed and reported as nil data.
func (m *ConnectionManager) readFrame(c *connection) ([]byte, error) {
	_, r, err := c.ws.NextReader()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(r, m.maxFrameBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) <= m.maxFrameBytes {
		return data, nil
	}
	if _, err = io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return nil, nil
}

// release forgets a connection ended by a read error.
// The handler only hears about it when the close did not come from us.
func (m *ConnectionManager) release(c *connection, handler contract.InboundHandler, cause error) {
	m.mu.Lock()
	local := c.closing
	if m.conn == c {
		m.conn = nil
	}
	m.mu.Unlock()
	_ = c.ws.Close()

	if local {
		return
	}
	m.log.Warn("Connection lost", "connection_id", c.id, "room_id", c.roomID, "error", cause)
	handler.OnConnectionClosed(cause)
}

func (m *ConnectionManager) deadline() time.Time {
	if m.writeTimeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(m.writeTimeout)
}

func websocketURL(baseURL string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return nil, fmt.Errorf("invalid server url %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	return u, nil
}
