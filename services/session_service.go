package services

import (
	"chat-room/auth"
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type ISessionService interface {
	CreateRoom(ctx context.Context, roomID, password string) error
	JoinRoom(ctx context.Context, roomID, password, nickname string) error
	SendMessage(content string) error
	LeaveRoom() error
	Resume(ctx context.Context) (bool, error)
	Reconnect(ctx context.Context) error
	View() domain.SessionView
	Updates() <-chan struct{}
}

// SessionService owns the current Session and is the only writer of the session store.
//
// Every mutation runs under mu, store write included, so inbound frames and
// user actions are applied one at a time. The lock is released around network
// calls; each join or resume takes an attempt number and results that come
// back for an older attempt are discarded.
type SessionService struct {
	api              contract.IRoomApi
	connections      contract.IConnectionManager
	store            contract.ISessionStore
	log              *slog.Logger
	suppressSelfEcho bool

	mu      sync.Mutex
	session *domain.Session
	attempt uint64
	updates chan struct{}
}

type Option func(*SessionService)

// WithSelfEchoSuppression drops inbound frames signed with our own nickname.
// Only useful against a server that echoes messages back to their sender.
func WithSelfEchoSuppression(enabled bool) Option {
	return func(s *SessionService) { s.suppressSelfEcho = enabled }
}

func NewSessionService(
	roomApi contract.IRoomApi,
	connections contract.IConnectionManager,
	store contract.ISessionStore,
	log *slog.Logger,
	opts ...Option,
) *SessionService {
	s := &SessionService{
		api:         roomApi,
		connections: connections,
		store:       store,
		log:         log,
		updates:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRoom registers a room on the service. Creating a room does not join it.
func (s *SessionService) CreateRoom(ctx context.Context, roomID, password string) error {
	if err := s.api.CreateRoom(ctx, domain.RoomCredentials{RoomID: roomID, Password: password}); err != nil {
		s.log.Warn("Room creation failed", "room_id", roomID, "error", err)
		return err
	}
	return nil
}

// JoinRoom enters a room: Idle -> Joining -> Connected.
// Any API or transport failure brings the service back to Idle with nothing persisted.
func (s *SessionService) JoinRoom(ctx context.Context, roomID, password, nickname string) error {
	if err := auth.ValidateParticipant(domain.Participant{Nickname: nickname}); err != nil {
		return err
	}

	s.mu.Lock()
	if s.session != nil {
		current := s.session.RoomID
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", errors.ErrAlreadyInRoom, current)
	}
	attempt := s.nextAttempt()
	s.session = domain.NewSession(roomID, nickname, nil)
	s.notify()
	s.mu.Unlock()

	if err := s.api.JoinRoom(ctx, domain.RoomCredentials{RoomID: roomID, Password: password}); err != nil {
		s.log.Warn("Join failed", "room_id", roomID, "error", err)
		s.discard(attempt)
		return err
	}
	if !s.current(attempt) {
		return errors.ErrAbandoned
	}

	history, err := s.api.FetchHistory(ctx, roomID)
	if err != nil {
		// History is best effort, the room is usable without it.
		s.log.Warn("History unavailable, starting with an empty transcript", "room_id", roomID, "error", err)
		history = nil
	}

	s.mu.Lock()
	if !s.isCurrent(attempt) {
		s.mu.Unlock()
		return errors.ErrAbandoned
	}
	for _, message := range history {
		s.session.Append(message)
	}
	s.persist()
	s.notify()
	s.mu.Unlock()

	return s.connect(ctx, attempt, roomID, nickname, func() {
		s.session = nil
		s.clearStore()
	})
}

// Resume rebuilds the session left in the store by a previous process and reconnects it.
// It returns false when there was nothing to resume.
func (s *SessionService) Resume(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.session != nil {
		s.mu.Unlock()
		return false, errors.ErrAlreadyInRoom
	}
	record, err := s.store.Load()
	if err != nil {
		s.mu.Unlock()
		s.log.Error("Unable to read the stored session", "error", err)
		return false, err
	}
	if record == nil {
		s.mu.Unlock()
		return false, nil
	}
	attempt := s.nextAttempt()
	s.session = domain.RestoreSession(*record)
	s.notify()
	s.mu.Unlock()

	s.log.Info("Resuming session",
		"room_id", record.RoomID,
		"nickname", record.Nickname,
		"messages", len(record.Transcript))
	return true, s.connect(ctx, attempt, record.RoomID, record.Nickname, s.markDisconnected)
}

// Reconnect re-enters a Disconnected session through the same path as Resume.
func (s *SessionService) Reconnect(ctx context.Context) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return errors.ErrNoSession
	}
	if s.session.State != domain.Disconnected {
		state := s.session.State
		s.mu.Unlock()
		return fmt.Errorf("%w: session is %s", errors.ErrAlreadyConnected, state)
	}
	attempt := s.nextAttempt()
	s.session.State = domain.Joining
	roomID, nickname := s.session.RoomID, s.session.Nickname
	s.notify()
	s.mu.Unlock()

	return s.connect(ctx, attempt, roomID, nickname, s.markDisconnected)
}

// connect opens the transport for a Joining session. onFailure runs under the
// lock when the transport cannot be opened, or is lost before the session is
// Connected, and the attempt is still current.
func (s *SessionService) connect(ctx context.Context, attempt uint64, roomID, nickname string, onFailure func()) error {
	err := s.connections.Open(ctx, roomID, nickname, &attemptHandler{service: s, attempt: attempt})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isCurrent(attempt) {
		if err == nil {
			_ = s.connections.Close()
		}
		return errors.ErrAbandoned
	}
	if err != nil {
		s.log.Warn("Unable to open connection", "room_id", roomID, "error", err)
		onFailure()
		s.notify()
		return err
	}
	if s.session.State == domain.Disconnected {
		// The peer hung up between Open and here.
		s.log.Warn("Connection lost while joining", "room_id", roomID)
		onFailure()
		s.notify()
		return fmt.Errorf("%w: connection lost while joining", errors.ErrNotConnected)
	}
	s.session.State = domain.Connected
	s.notify()
	s.log.Info("Session connected", "room_id", roomID, "nickname", nickname)
	return nil
}

// SendMessage echoes content locally, mirrors the transcript, then forwards it.
// Outside Connected it fails with ErrNotConnected and changes nothing.
func (s *SessionService) SendMessage(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || s.session.State != domain.Connected {
		return errors.ErrNotConnected
	}

	s.session.Append(domain.Message{
		SenderNickname: s.session.Nickname,
		Content:        content,
		Origin:         domain.OriginLocal,
	})
	s.persist()
	s.notify()

	if err := s.connections.Send(content); err != nil {
		s.log.Warn("Message kept locally but not sent", "room_id", s.session.RoomID, "error", err)
		return err
	}
	return nil
}

// OnInboundMessage appends a message delivered by the live connection.
// It is a no-op when no session is active.
func (s *SessionService) OnInboundMessage(senderNickname, content string) {
	s.mu.Lock()
	attempt := s.attempt
	s.mu.Unlock()
	s.onInbound(attempt, senderNickname, content)
}

// OnConnectionClosed moves a Connected session to Disconnected, keeping its transcript.
func (s *SessionService) OnConnectionClosed(err error) {
	s.mu.Lock()
	attempt := s.attempt
	s.mu.Unlock()
	s.onClosed(attempt, err)
}

func (s *SessionService) onInbound(attempt uint64, senderNickname, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isCurrent(attempt) || s.session.State == domain.Disconnected {
		s.log.Debug("Ignoring inbound message without active session", "sender", senderNickname)
		return
	}
	if s.suppressSelfEcho && senderNickname == s.session.Nickname {
		s.log.Debug("Ignoring echo of our own message")
		return
	}
	s.session.Append(domain.Message{
		SenderNickname: senderNickname,
		Content:        content,
		Origin:         domain.OriginLive,
	})
	s.persist()
	s.notify()
}

func (s *SessionService) onClosed(attempt uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isCurrent(attempt) || s.session.State == domain.Disconnected {
		return
	}
	s.log.Warn("Connection lost, session kept", "room_id", s.session.RoomID, "error", err)
	s.markDisconnected()
	s.notify()
}

// LeaveRoom closes the transport and forgets the session, in memory and on disk.
// Leaving without a session is a no-op.
func (s *SessionService) LeaveRoom() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	roomID := s.session.RoomID
	// Any join or resume still in flight is now stale.
	s.nextAttempt()
	if err := s.connections.Close(); err != nil {
		s.log.Warn("Error while closing connection", "room_id", roomID, "error", err)
	}
	s.session = nil
	s.clearStore()
	s.notify()
	s.log.Info("Left room", "room_id", roomID)
	return nil
}

func (s *SessionService) View() domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.SessionView{State: domain.Idle}
	}
	return domain.SessionView{
		State:      s.session.State,
		RoomID:     s.session.RoomID,
		Nickname:   s.session.Nickname,
		Transcript: s.session.Transcript(),
	}
}

// Updates signals that View may have changed. Signals are coalesced.
func (s *SessionService) Updates() <-chan struct{} {
	return s.updates
}

func (s *SessionService) discard(attempt uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isCurrent(attempt) {
		s.session = nil
		s.notify()
	}
}

func (s *SessionService) current(attempt uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isCurrent(attempt)
}

// isCurrent must be called with mu held.
func (s *SessionService) isCurrent(attempt uint64) bool {
	return s.session != nil && s.attempt == attempt
}

func (s *SessionService) nextAttempt() uint64 {
	s.attempt++
	return s.attempt
}

func (s *SessionService) markDisconnected() {
	s.session.State = domain.Disconnected
}

// persist mirrors the session as it is right now. Store failures are logged only:
// the store is a cache for the next start, not the source of truth.
func (s *SessionService) persist() {
	if err := s.store.Save(s.session.Record()); err != nil {
		s.log.Error("Unable to persist session", "room_id", s.session.RoomID, "error", err)
	}
}

func (s *SessionService) clearStore() {
	if err := s.store.Clear(); err != nil {
		s.log.Error("Unable to clear stored session", "error", err)
	}
}

func (s *SessionService) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// attemptHandler binds connection callbacks to the attempt that opened the connection.
type attemptHandler struct {
	service *SessionService
	attempt uint64
}

func (h *attemptHandler) OnInboundMessage(senderNickname, content string) {
	h.service.onInbound(h.attempt, senderNickname, content)
}

func (h *attemptHandler) OnConnectionClosed(err error) {
	h.service.onClosed(h.attempt, err)
}
