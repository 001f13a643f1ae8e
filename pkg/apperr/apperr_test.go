package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("classified errors", func(t *testing.T) {
		assert.Equal(t, KindNotFound, KindOf(NotFound("movie", "id", "abc")))
		assert.Equal(t, KindConflict, KindOf(Conflict("already liked")))
		assert.Equal(t, KindPermissionDenied, KindOf(PermissionDenied("not yours")))
		assert.Equal(t, KindInvalid, KindOf(Invalid("bad input")))
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := fmt.Errorf("like movie: %w", Conflict("already liked"))
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
		assert.Equal(t, KindInternal, KindOf(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("not found includes field and value", func(t *testing.T) {
		err := NotFound("user", "username", "ghost")
		assert.Equal(t, "user not found with username: ghost", err.Error())
	})

	t.Run("internal includes cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Internal("query failed", cause)
		assert.Equal(t, "query failed: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("movie", "id", 1)))
	assert.False(t, IsNotFound(Conflict("nope")))
}
