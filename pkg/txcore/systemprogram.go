package txcore

import "encoding/binary"

// The system program instruction variants and their little-endian wire
// encoding (u32 LE variant tag, then payload) mirror the real Solana system
// program's SystemInstruction enum, the same encoding shown building a
// system transfer instruction in the pack's Solana-shaped serializer
// (other_examples/85d46da9_Fantasim-hdpay.../sol_serialize.go).
const (
	systemInstructionAssign   uint32 = 1
	systemInstructionTransfer uint32 = 2
)

// SystemProgramHandler implements the distinguished system program (§3,
// §4.5): it is the only program that may reassign an account's owner away
// from itself, and it is exempt from the non-owner data-immutability rule.
//
// Transfer (variant 2, data = u64 LE lamports): keyedAccounts = [from, to].
// Moves the amount from from.Balance to to.Balance.
//
// Assign (variant 1, data = 32-byte new owner): keyedAccounts = [account].
// Sets account.Owner to the given identifier.
func SystemProgramHandler(programID Identifier, keyedAccounts []KeyedAccount, data []byte, tickHeight uint64) *InstructionError {
	if len(data) < 4 {
		return &InstructionError{Kind: GenericError}
	}
	variant := binary.LittleEndian.Uint32(data[0:4])

	switch variant {
	case systemInstructionTransfer:
		if len(data) != 12 || len(keyedAccounts) != 2 {
			return &InstructionError{Kind: GenericError}
		}
		amount := binary.LittleEndian.Uint64(data[4:12])
		from := keyedAccounts[0].Account
		to := keyedAccounts[1].Account
		if from.Balance < amount {
			return NewCustomError([]byte("insufficient funds"))
		}
		from.Balance -= amount
		to.Balance += amount
		return nil

	case systemInstructionAssign:
		if len(data) != 4+identifierSize || len(keyedAccounts) != 1 {
			return &InstructionError{Kind: GenericError}
		}
		var newOwner Identifier
		copy(newOwner[:], data[4:4+identifierSize])
		keyedAccounts[0].Account.Owner = newOwner
		return nil

	default:
		return &InstructionError{Kind: GenericError}
	}
}

// NewTransferInstructionData encodes a system-program Transfer instruction
// payload for the given lamport amount.
func NewTransferInstructionData(amount uint64) []byte {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:4], systemInstructionTransfer)
	binary.LittleEndian.PutUint64(data[4:12], amount)
	return data
}

// NewAssignInstructionData encodes a system-program Assign instruction
// payload reassigning an account to newOwner.
func NewAssignInstructionData(newOwner Identifier) []byte {
	data := make([]byte, 4+identifierSize)
	binary.LittleEndian.PutUint32(data[0:4], systemInstructionAssign)
	copy(data[4:], newOwner[:])
	return data
}
