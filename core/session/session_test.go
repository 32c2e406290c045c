package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharp0802/humus/core/session"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("pair is stamped at one instant for the subject", func(t *testing.T) {
		t.Parallel()

		sess, err := session.New("user-42")
		require.NoError(t, err)

		assert.Equal(t, "user-42", sess.Who())
		assert.Equal(t, "user-42", sess.Access().Who())
		assert.Equal(t, "user-42", sess.Refresh().Who())
		assert.Equal(t, sess.Access().IssuedAt(), sess.Refresh().IssuedAt())
		assert.WithinDuration(t, time.Now(), sess.Access().IssuedAt(), 2*time.Second)
	})

	t.Run("fresh pair is not rotated", func(t *testing.T) {
		t.Parallel()

		sess, err := session.New("user-42")
		require.NoError(t, err)

		assert.False(t, sess.Rotated())
	})

	t.Run("empty subject is allowed", func(t *testing.T) {
		t.Parallel()

		sess, err := session.New("")
		require.NoError(t, err)
		assert.Empty(t, sess.Who())
	})
}

func TestConstants(t *testing.T) {
	t.Parallel()

	// The cookie names and horizons are part of the credential contract;
	// renaming or retuning them strands every outstanding pair.
	assert.Equal(t, "__HT_ACCESS_TOKEN", session.AccessCookieName)
	assert.Equal(t, "__HT_REFRESH_TOKEN", session.RefreshCookieName)
	assert.Equal(t, 15*time.Minute, session.RotationWindow)
	assert.Equal(t, 90*24*time.Hour, session.RefreshLifetime)
}
