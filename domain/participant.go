// Package domain contains core concepts of the chat client.
// This file defines what a participant hands over to enter a room.
// No runtime, network, or UI logic should be added here.
package domain

// RoomCredentials are only used for a create or join call.
// They are never kept on a Session nor persisted.
type RoomCredentials struct {
	RoomID   string `validate:"required,max=64,excludesall=/?#"`
	Password string `validate:"required,max=128"`
}

// Participant is the identity a client joins a room with.
type Participant struct {
	Nickname string `validate:"required,max=32,excludesall=/?#"`
}
