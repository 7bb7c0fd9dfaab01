package txcore

// Instruction is one program invocation within a transaction (§3).
type Instruction struct {
	// ProgramIDsIndex selects which loader slot (and, via the
	// transaction's ProgramIDs, which program identifier) this
	// instruction invokes.
	ProgramIDsIndex int
	// Accounts is an ordered list of indices into the transaction's
	// account array, naming the accounts this instruction reads/writes.
	Accounts []int
	// Data is the instruction's opaque program-input payload.
	Data []byte
}

// Transaction is an ordered sequence of instructions plus the account-key
// and signature bookkeeping needed to build keyed accounts for each one
// (§3).
type Transaction struct {
	// AccountKeys is the ordered account-key array; instruction.Accounts
	// indexes into the parallel account array the caller passes to
	// Execute.
	AccountKeys []Identifier
	// SignatureCount is k: the first k entries of AccountKeys are signers.
	SignatureCount int
	// ProgramIDs is indexed by Instruction.ProgramIDsIndex and gives the
	// program identifier invoked by each loader slot.
	ProgramIDs []Identifier
	// Instructions are executed strictly in this order.
	Instructions []Instruction
}

// ProgramID recovers the program identifier invoked by instruction i.
func (tx *Transaction) ProgramID(i int) Identifier {
	return tx.ProgramIDs[tx.Instructions[i].ProgramIDsIndex]
}

// isSigner reports whether the account at position idx in AccountKeys
// signed the transaction.
func (tx *Transaction) isSigner(idx int) bool {
	return idx < tx.SignatureCount
}

// ExecutableAccount is one entry of a loader slot: the program-key and
// account pair the native/built-in dispatch chain consumes ahead of the
// instruction's own accounts (§6).
type ExecutableAccount struct {
	Key     Identifier
	Account *Account
}
