//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-room/domain"
	"context"
)

// IRoomApi is the request/response side of the room service.
// Failures are returned verbatim, nothing is retried at this layer.
type IRoomApi interface {
	CreateRoom(ctx context.Context, credentials domain.RoomCredentials) error
	JoinRoom(ctx context.Context, credentials domain.RoomCredentials) error
	FetchHistory(ctx context.Context, roomID string) ([]domain.Message, error)
}

// InboundHandler receives what the live connection delivers.
// Calls come from the connection's read goroutine.
type InboundHandler interface {
	OnInboundMessage(senderNickname, content string)
	// OnConnectionClosed is called once when the peer or the network ends the
	// connection. It is not called after a local Close.
	OnConnectionClosed(err error)
}

// IConnectionManager owns at most one live connection at a time.
type IConnectionManager interface {
	Open(ctx context.Context, roomID, nickname string, handler InboundHandler) error
	Send(content string) error
	Close() error
}

// ISessionStore keeps the durable projection of the current session.
// Load returns nil when nothing is stored.
type ISessionStore interface {
	Save(record domain.PersistedSessionRecord) error
	Load() (*domain.PersistedSessionRecord, error)
	Clear() error
}
