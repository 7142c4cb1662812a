package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorIs(t *testing.T) {
	assert.ErrorIs(t, ErrStudentNotFound, ErrStudentNotFound)
	assert.NotErrorIs(t, ErrStudentNotFound, ErrTeamNotFound)

	wrapped := fmt.Errorf("loading state: %w", ErrTrackNotFound)
	assert.ErrorIs(t, wrapped, ErrTrackNotFound)
	assert.True(t, IsNotFound(wrapped))
}

func TestConflictErrorMatchesAnyEmptyTarget(t *testing.T) {
	// an empty-message ConflictError target matches every conflict
	assert.ErrorIs(t, ErrCannotAddStudent, &ConflictError{})
	assert.ErrorIs(t, NewConflictError("team is not on a track"), &ConflictError{})
	assert.NotErrorIs(t, NewConflictError("team is not on a track"), ErrCannotAddStudent)
}

func TestKindHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", ErrUserNotFound, IsNotFound, true},
		{"conflict", ErrCannotAddStudent, IsConflict, true},
		{"validation", NewValidationError("course", "out of range"), IsValidation, true},
		{"authentication", NewAuthenticationError("invalid token"), IsAuthentication, true},
		{"authorization", NewAuthorizationError("admin only"), IsAuthorization, true},
		{"plain error is no kind", errors.New("boom"), IsNotFound, false},
		{"conflict is not validation", ErrCannotAddStudent, IsValidation, false},
		{"not found is not conflict", ErrTeamNotFound, IsConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestKindHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("approving: %w", ErrCannotAddStudent)
	assert.True(t, IsConflict(wrapped))
	assert.ErrorIs(t, wrapped, ErrCannotAddStudent)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("course", "out of range")
	assert.Equal(t, "validation error: course - out of range", err.Error())

	bare := &ValidationError{Message: "bad payload"}
	assert.Equal(t, "validation error: bad payload", bare.Error())
}
