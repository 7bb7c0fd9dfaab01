package txcore

import "fmt"

// InstructionErrorKind is the closed taxonomy of instruction-level failures
// the core itself can raise (§7). Handlers may also return CustomError or
// any other kind verbatim; those pass through the canonicalizer unchanged
// except for the CustomError payload bound.
type InstructionErrorKind int

const (
	// GenericError is the catch-all kind for handler-surfaced failures that
	// don't fit a more specific kind below.
	GenericError InstructionErrorKind = iota
	// DuplicateAccountIndex — the instruction's account-index list contains
	// repeats.
	DuplicateAccountIndex
	// ModifiedProgramId — a non-system invoked program changed an account's
	// owner.
	ModifiedProgramId
	// ExternalAccountLamportSpend — balance decreased on an account not
	// owned by the invoked program.
	ExternalAccountLamportSpend
	// ExternalAccountDataModified — byte payload changed on an account not
	// owned by the invoked program (and invoked program is not system).
	ExternalAccountDataModified
	// UnbalancedInstruction — sum of balances over the instruction's
	// accounts changed.
	UnbalancedInstruction
	// ProgramAccountNotFound — no built-in handler and no native loader
	// could resolve the invoked program id.
	ProgramAccountNotFound
	// CustomError — handler-defined, size-bounded by the canonicalizer.
	CustomError
)

func (k InstructionErrorKind) String() string {
	switch k {
	case DuplicateAccountIndex:
		return "DuplicateAccountIndex"
	case ModifiedProgramId:
		return "ModifiedProgramId"
	case ExternalAccountLamportSpend:
		return "ExternalAccountLamportSpend"
	case ExternalAccountDataModified:
		return "ExternalAccountDataModified"
	case UnbalancedInstruction:
		return "UnbalancedInstruction"
	case ProgramAccountNotFound:
		return "ProgramAccountNotFound"
	case CustomError:
		return "CustomError"
	default:
		return "GenericError"
	}
}

// maxCustomErrorBytes is the bound the error canonicalizer enforces on
// CustomError payloads (§3, §4.6).
const maxCustomErrorBytes = 32

// InstructionError is the error a handler, or the core itself, raises for a
// single instruction. CustomErrorData is only meaningful when Kind is
// CustomError.
type InstructionError struct {
	Kind            InstructionErrorKind
	CustomErrorData []byte
}

func (e *InstructionError) Error() string {
	if e.Kind == CustomError {
		return fmt.Sprintf("CustomError(%d bytes)", len(e.CustomErrorData))
	}
	return e.Kind.String()
}

// NewCustomError builds a CustomError InstructionError from a handler-chosen
// payload. The canonicalizer truncates it to maxCustomErrorBytes before it
// ever leaves the core.
func NewCustomError(data []byte) *InstructionError {
	return &InstructionError{Kind: CustomError, CustomErrorData: data}
}

// TransactionError wraps an InstructionError with the index of the
// instruction that produced it (§7 propagation).
type TransactionError struct {
	InstructionIndex int
	Err              *InstructionError
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("instruction %d failed: %s", e.InstructionIndex, e.Err.Error())
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

func newTransactionError(index int, err *InstructionError) *TransactionError {
	return &TransactionError{InstructionIndex: index, Err: err}
}
