package txcore

// buildKeyedAccounts prepends the instruction's executable accounts (the
// loader chain for its program-ids-index slot) to one keyed account per
// index the instruction names in its own account list (§4.3 step 2).
// Executable accounts are never signers; an account named in the
// instruction's own list is a signer iff its position in the transaction's
// key array is below the signature count.
func buildKeyedAccounts(tx *Transaction, instructionIndex int, executableAccounts []ExecutableAccount, programAccounts []*Account) []KeyedAccount {
	instr := tx.Instructions[instructionIndex]
	keyed := make([]KeyedAccount, 0, len(executableAccounts)+len(programAccounts))
	for _, ea := range executableAccounts {
		keyed = append(keyed, KeyedAccount{Key: ea.Key, IsSigner: false, Account: ea.Account})
	}
	for i, acctIdx := range instr.Accounts {
		keyed = append(keyed, KeyedAccount{
			Key:      tx.AccountKeys[acctIdx],
			IsSigner: tx.isSigner(acctIdx),
			Account:  programAccounts[i],
		})
	}
	return keyed
}

// dispatch resolves programID against the registry and, on a miss, falls
// through to the native loader. Built-in handlers receive the keyed-account
// slice with its first entry dropped (the registered built-ins don't
// consume loader accounts); the native loader receives the full slice. This
// asymmetry is carried over from the runtime this core is modeled on and is
// not resolved here — see the Open Questions note in SPEC_FULL.md.
func dispatch(registry *Registry, loader NativeLoader, programID Identifier, keyedAccounts []KeyedAccount, data []byte, tickHeight uint64) *InstructionError {
	if handler, ok := registry.Resolve(programID); ok {
		rest := keyedAccounts
		if len(rest) > 0 {
			rest = rest[1:]
		}
		return handler(programID, rest, data, tickHeight)
	}
	return loader.Invoke(programID, keyedAccounts, data, tickHeight)
}

// executeInstruction runs a single instruction: snapshot, dispatch, verify,
// canonicalize (§4.3). programAccounts is the instruction's own account
// subset, already deduplicated by subsetUncheckedMut.
func executeInstruction(
	registry *Registry,
	loader NativeLoader,
	tx *Transaction,
	instructionIndex int,
	executableAccounts []ExecutableAccount,
	programAccounts []*Account,
	tickHeight uint64,
) *InstructionError {
	programID := tx.ProgramID(instructionIndex)

	var preTotal uint64
	pre := make([]preAccountSnapshot, len(programAccounts))
	for i, acct := range programAccounts {
		pre[i] = snapshotAccount(acct)
		preTotal += acct.Balance
	}

	keyedAccounts := buildKeyedAccounts(tx, instructionIndex, executableAccounts, programAccounts)
	data := tx.Instructions[instructionIndex].Data

	if err := dispatch(registry, loader, programID, keyedAccounts, data, tickHeight); err != nil {
		return canonicalizeError(err)
	}

	var postTotal uint64
	for i, acct := range programAccounts {
		if err := verifyAccount(programID, pre[i], acct); err != nil {
			return err
		}
		postTotal += acct.Balance
	}
	if preTotal != postTotal {
		return &InstructionError{Kind: UnbalancedInstruction}
	}
	return nil
}
