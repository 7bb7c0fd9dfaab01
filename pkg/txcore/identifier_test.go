package txcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierBase58RoundTrip(t *testing.T) {
	var id Identifier
	copy(id[:], "some-program-identifier-bytes!!")

	s := id.String()
	got, err := ParseIdentifier(s)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestParseIdentifierWrongLength(t *testing.T) {
	_, err := ParseIdentifier("2NEpo7TZRRrLZSi2U")
	require.Error(t, err)
}

func TestIdentifierIsZero(t *testing.T) {
	var zero Identifier
	require.True(t, zero.IsZero())
	require.False(t, SystemProgramID.IsZero())
}
