package errors

import "fmt"

// Room service failures.
var (
	ErrConflict     = fmt.Errorf("room already exists")
	ErrUnauthorized = fmt.Errorf("invalid room id or password")
	ErrNotFound     = fmt.Errorf("room not found")
	ErrUnreachable  = fmt.Errorf("room service unreachable")
)

// Transport failures.
var (
	ErrNotConnected     = fmt.Errorf("connection is not open")
	ErrMalformedFrame   = fmt.Errorf("malformed frame")
	ErrAlreadyConnected = fmt.Errorf("connection already open")
)

// Persistence failures.
var (
	ErrReadFailure  = fmt.Errorf("session store read failure")
	ErrWriteFailure = fmt.Errorf("session store write failure")
)

var (
	ErrInvalidInput  = fmt.Errorf("invalid input")
	ErrAlreadyInRoom = fmt.Errorf("already in a room")
	ErrNoSession     = fmt.Errorf("no session to resume")
)

// ErrAbandoned is returned by a join or resume whose session was left while it was in flight.
var ErrAbandoned = fmt.Errorf("session attempt abandoned")
