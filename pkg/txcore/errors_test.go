package txcore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransactionErrorUnwrap(t *testing.T) {
	instrErr := &InstructionError{Kind: ModifiedProgramId}
	txErr := newTransactionError(3, instrErr)

	require.Equal(t, 3, txErr.InstructionIndex)
	require.True(t, errors.Is(txErr, instrErr))
}

func TestInstructionErrorKindString(t *testing.T) {
	require.Equal(t, "DuplicateAccountIndex", DuplicateAccountIndex.String())
	require.Equal(t, "GenericError", InstructionErrorKind(99).String())
}
