package auth

import (
	"chat-room/domain"
	"chat-room/errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateCredentials checks room id and password before anything leaves the process.
// The password is only forwarded to the room service, never inspected further.
func ValidateCredentials(credentials domain.RoomCredentials) error {
	if err := validate.Struct(credentials); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	if !isPrintable(credentials.RoomID) {
		return fmt.Errorf("%w: room id contains control characters", errors.ErrInvalidInput)
	}
	if isDotSegment(credentials.RoomID) {
		return fmt.Errorf("%w: room id cannot be %q", errors.ErrInvalidInput, credentials.RoomID)
	}
	return nil
}

// ValidateParticipant checks the nickname, which addresses the live connection.
func ValidateParticipant(participant domain.Participant) error {
	if err := validate.Struct(participant); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	if !isPrintable(participant.Nickname) || strings.TrimSpace(participant.Nickname) != participant.Nickname {
		return fmt.Errorf("%w: nickname must be printable without surrounding spaces", errors.ErrInvalidInput)
	}
	if isDotSegment(participant.Nickname) {
		return fmt.Errorf("%w: nickname cannot be %q", errors.ErrInvalidInput, participant.Nickname)
	}
	return nil
}

// isDotSegment reports values a URL path would resolve away.
func isDotSegment(s string) bool {
	return s == "." || s == ".."
}

func isPrintable(s string) bool {
	for _, char := range s {
		if !unicode.IsPrint(char) {
			return false
		}
	}
	return true
}
