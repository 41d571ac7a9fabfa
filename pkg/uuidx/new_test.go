package uuidx

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	assert.Equal(t, uuid.Version(7), id.Version(), "UUID should be version 7")
	assert.Equal(t, uuid.RFC4122, id.Variant(), "UUID should have RFC4122 variant")
	assert.NotEqual(t, id, New(), "Generated UUIDs should be unique")
}

func TestNewString(t *testing.T) {
	idStr := NewString()
	assert.Regexp(t, "^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$", idStr)
	assert.NotEqual(t, idStr, NewString())
}

func TestPrefixed(t *testing.T) {
	t.Run("with kind", func(t *testing.T) {
		id := Prefixed("relay")
		require.True(t, strings.HasPrefix(id, "relay-"))
		parsed, err := uuid.Parse(strings.TrimPrefix(id, "relay-"))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("without kind", func(t *testing.T) {
		_, err := uuid.Parse(Prefixed(""))
		assert.NoError(t, err)
	})

	t.Run("unique", func(t *testing.T) {
		assert.NotEqual(t, Prefixed("topic"), Prefixed("topic"))
	})
}
