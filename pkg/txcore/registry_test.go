package txcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistrySeedsSystemProgram(t *testing.T) {
	r := NewRegistry()
	handler, ok := r.Resolve(SystemProgramID)
	require.True(t, ok)
	require.NotNil(t, handler)
}

func TestRegistryResolveMiss(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Resolve(Identifier{9, 9, 9})
	require.False(t, ok)
}

func TestRegistryRegisterFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	id := Identifier{1, 2, 3}
	first := func(Identifier, []KeyedAccount, []byte, uint64) *InstructionError {
		return &InstructionError{Kind: GenericError}
	}
	second := func(Identifier, []KeyedAccount, []byte, uint64) *InstructionError {
		return NewCustomError([]byte("second"))
	}
	r.Register(id, first)
	r.Register(id, second)

	handler, ok := r.Resolve(id)
	require.True(t, ok)
	err := handler(id, nil, nil, 0)
	require.Equal(t, GenericError, err.Kind)
}
