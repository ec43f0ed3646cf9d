package domain

import "slices"

// ConnectionState is the lifecycle position of a Session.
type ConnectionState int

const (
	Idle ConnectionState = iota
	Joining
	Connected
	Disconnected
)

func (s ConnectionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Joining:
		return "joining"
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Session is the client-side record of the current room membership.
// It only exists while the user is in a room.
type Session struct {
	RoomID     string
	Nickname   string
	State      ConnectionState
	transcript []Message
}

func NewSession(roomID, nickname string, transcript []Message) *Session {
	return &Session{
		RoomID:     roomID,
		Nickname:   nickname,
		State:      Joining,
		transcript: slices.Clone(transcript),
	}
}

// RestoreSession rebuilds a Session in Joining state from its persisted projection.
func RestoreSession(record PersistedSessionRecord) *Session {
	return NewSession(record.RoomID, record.Nickname, record.Transcript)
}

// Append adds a message at the end of the transcript. The transcript never shrinks.
func (s *Session) Append(message Message) {
	s.transcript = append(s.transcript, message)
}

// Transcript returns a copy of the messages in insertion order.
func (s *Session) Transcript() []Message {
	return slices.Clone(s.transcript)
}

// Record projects the session onto what is kept in durable storage.
// It is always built from the current transcript, never from an earlier snapshot.
func (s *Session) Record() PersistedSessionRecord {
	return PersistedSessionRecord{
		RoomID:     s.RoomID,
		Nickname:   s.Nickname,
		Transcript: s.Transcript(),
	}
}

// PersistedSessionRecord is the durable projection of a Session.
type PersistedSessionRecord struct {
	RoomID     string
	Nickname   string
	Transcript []Message
}

// SessionView is a read-only snapshot of the controller state handed to a shell.
type SessionView struct {
	State      ConnectionState
	RoomID     string
	Nickname   string
	Transcript []Message
}

// Lines renders the transcript as "nickname: content" lines.
func (v SessionView) Lines() []string {
	lines := make([]string, 0, len(v.Transcript))
	for _, m := range v.Transcript {
		lines = append(lines, m.Line())
	}
	return lines
}
