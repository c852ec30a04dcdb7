package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token, err := Encode(Cursor{UserID: "u-42", CreatedMicros: 1700000000000123})
	require.NoError(t, err)

	c, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", c.UserID)
	assert.Equal(t, int64(1700000000000123), c.CreatedMicros)
	assert.False(t, c.IsZero())
}

func TestDecodeEmptyAndGarbage(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = Decode("%%%not-base64")
	assert.Error(t, err)
}
