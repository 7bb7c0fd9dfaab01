package txcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalizeErrorShortCustomErrorUnchanged(t *testing.T) {
	short := NewCustomError([]byte{1, 2, 3})
	got := canonicalizeError(short)
	require.Equal(t, []byte{1, 2, 3}, got.CustomErrorData)
}

func TestCanonicalizeErrorLongCustomErrorTruncated(t *testing.T) {
	long := NewCustomError(bytesOf(8, 40))
	got := canonicalizeError(long)
	require.Equal(t, bytesOf(8, 32), got.CustomErrorData)
}

func TestCanonicalizeErrorOtherKindUnchanged(t *testing.T) {
	other := &InstructionError{Kind: GenericError}
	got := canonicalizeError(other)
	require.Same(t, other, got)
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
