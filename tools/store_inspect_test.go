package main

import (
	"bytes"
	"chat-room/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderRecord(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderRecord(&out, domain.PersistedSessionRecord{
		RoomID:   "r1",
		Nickname: "alice",
		Transcript: []domain.Message{
			{SenderNickname: "bob", Content: "hi", Origin: domain.OriginHistory},
			{SenderNickname: "alice", Content: "hello", Origin: domain.OriginLocal},
		},
	})

	req.Contains(out.String(), "Room: r1")
	req.Contains(out.String(), "Messages: 2")
	req.Contains(out.String(), "history")
	req.Contains(out.String(), "hello")
}
