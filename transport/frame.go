package transport

import (
	"chat-room/errors"
	"encoding/json"
	"fmt"
)

// Frame is what the room service pushes for every message posted in the room.
type Frame struct {
	Nickname string
	Content  string
}

type wireFrame struct {
	Nickname *string `json:"nickname"`
	Content  *string `json:"content"`
}

// decodeFrame parses {"nickname": ..., "content": ...}.
// Both fields must be present and the nickname must not be empty.
func decodeFrame(data []byte) (Frame, error) {
	var w wireFrame
	if err := json.Unmarshal(data, &w); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
	}
	if w.Nickname == nil || *w.Nickname == "" {
		return Frame{}, fmt.Errorf("%w: missing nickname", errors.ErrMalformedFrame)
	}
	if w.Content == nil {
		return Frame{}, fmt.Errorf("%w: missing content", errors.ErrMalformedFrame)
	}
	return Frame{Nickname: *w.Nickname, Content: *w.Content}, nil
}
