package api

import (
	"bytes"
	"chat-room/auth"
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
)

type roomRequest struct {
	RoomID   string `json:"room_id"`
	Password string `json:"password"`
}

type historyEntry struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
}

// RoomClient talks to the room service over HTTP.
// Each call is a single attempt; failures are mapped to the room service errors.
type RoomClient struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewRoomClient(baseURL string, timeout time.Duration, log *slog.Logger) *RoomClient {
	return &RoomClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// CreateRoom registers a new room. It does not join it.
func (c *RoomClient) CreateRoom(ctx context.Context, credentials domain.RoomCredentials) error {
	if err := auth.ValidateCredentials(credentials); err != nil {
		return err
	}
	status, err := c.postRoom(ctx, "/create_room", credentials)
	if err != nil {
		return err
	}
	switch {
	case isSuccess(status):
		c.log.Info("Room created", "room_id", credentials.RoomID)
		return nil
	case status == http.StatusBadRequest, status == http.StatusConflict:
		return fmt.Errorf("%w: %s", errors.ErrConflict, credentials.RoomID)
	default:
		return fmt.Errorf("%w: create_room answered %d", errors.ErrUnreachable, status)
	}
}

func (c *RoomClient) JoinRoom(ctx context.Context, credentials domain.RoomCredentials) error {
	if err := auth.ValidateCredentials(credentials); err != nil {
		return err
	}
	status, err := c.postRoom(ctx, "/join_room", credentials)
	if err != nil {
		return err
	}
	switch {
	case isSuccess(status):
		c.log.Info("Room joined", "room_id", credentials.RoomID)
		return nil
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", errors.ErrUnauthorized, credentials.RoomID)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", errors.ErrNotFound, credentials.RoomID)
	default:
		return fmt.Errorf("%w: join_room answered %d", errors.ErrUnreachable, status)
	}
}

// FetchHistory returns the room messages in the order the server recorded them.
// An empty history is a valid, non-nil result.
func (c *RoomClient) FetchHistory(ctx context.Context, roomID string) ([]domain.Message, error) {
	endpoint := fmt.Sprintf("%s/history/%s", c.baseURL, url.PathEscape(roomID))
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnreachable, err)
	}
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnreachable, err)
	}
	defer drain(response.Body)

	switch {
	case isSuccess(response.StatusCode):
	case response.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", errors.ErrNotFound, roomID)
	default:
		return nil, fmt.Errorf("%w: history answered %d", errors.ErrUnreachable, response.StatusCode)
	}

	var entries []historyEntry
	if err = json.NewDecoder(response.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: undecodable history: %v", errors.ErrUnreachable, err)
	}
	c.log.Debug(fmt.Sprintf("Fetched %d history messages for room %s", len(entries), roomID))

	return lo.Map(entries, func(e historyEntry, _ int) domain.Message {
		return domain.Message{SenderNickname: e.Nickname, Content: e.Content, Origin: domain.OriginHistory}
	}), nil
}

func (c *RoomClient) postRoom(ctx context.Context, path string, credentials domain.RoomCredentials) (int, error) {
	body, err := json.Marshal(roomRequest{RoomID: credentials.RoomID, Password: credentials.Password})
	if err != nil {
		return 0, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrUnreachable, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.log.Warn("Room service call failed", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %v", errors.ErrUnreachable, err)
	}
	defer drain(response.Body)
	return response.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
