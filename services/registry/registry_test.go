package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation and session bookkeeping run before any persistence, so these
// paths are exercised without a database.

func TestClaimValidation(t *testing.T) {
	r := New(nil, nil, 20)

	invalid := []string{
		"",
		"a",
		"has space",
		"ünïcode",
		"semi;colon",
		strings.Repeat("x", 21),
	}
	for _, name := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := r.Claim(name)
			assert.ErrorIs(t, err, ErrUsernameInvalid)
		})
	}
}

func TestClaimValidationRespectsConfiguredMax(t *testing.T) {
	r := New(nil, nil, 8)
	_, err := r.Claim("ninechars")
	assert.ErrorIs(t, err, ErrUsernameInvalid)
}

func TestUnknownSession(t *testing.T) {
	r := New(nil, nil, 20)

	_, ok := r.UsernameOf("nope")
	assert.False(t, ok)

	assert.ErrorIs(t, r.RecordWin("nope"), ErrUnknownSession)
	assert.ErrorIs(t, r.RecordGame("nope"), ErrUnknownSession)

	// Releasing an unknown session is a no-op.
	r.Release("nope")
	assert.Empty(t, r.OnlineUsernames())
}
