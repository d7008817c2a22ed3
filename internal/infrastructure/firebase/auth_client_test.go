package firebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFromClaims(t *testing.T) {
	assert.True(t, identityFromClaims("u1", map[string]interface{}{"admin": true}).Admin)
	assert.False(t, identityFromClaims("u2", map[string]interface{}{"admin": "true"}).Admin)

	identity := identityFromClaims("u3", nil)
	assert.Equal(t, "u3", identity.UID)
	assert.False(t, identity.Admin)
}
