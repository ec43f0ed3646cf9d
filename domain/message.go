// Package domain contains core concepts of the chat client.
// This file defines transcript messages.
// Messages are immutable once appended to a transcript.
package domain

import "fmt"

// Origin tells where a transcript message came from.
type Origin int

const (
	OriginHistory Origin = iota // fetched from the room history
	OriginLive                  // delivered over the live connection
	OriginLocal                 // echoed locally before the transport acknowledged it
)

func (o Origin) String() string {
	switch o {
	case OriginHistory:
		return "history"
	case OriginLive:
		return "live"
	case OriginLocal:
		return "local"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// Message represents an immutable transcript entry.
// The server supplies neither timestamps nor sequence numbers,
// so insertion order in the transcript is the only ordering.
type Message struct {
	SenderNickname string
	Content        string
	Origin         Origin
}

// Line renders the message the way it is displayed: "nickname: content".
func (m Message) Line() string {
	return fmt.Sprintf("%s: %s", m.SenderNickname, m.Content)
}
