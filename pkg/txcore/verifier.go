package txcore

import "bytes"

// preAccountSnapshot is the (owner, balance, data copy) recorded before a
// handler runs, per §3's "Snapshot pre-state" step.
type preAccountSnapshot struct {
	owner   Identifier
	balance uint64
	data    []byte
}

func snapshotAccount(a *Account) preAccountSnapshot {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return preAccountSnapshot{owner: a.Owner, balance: a.Balance, data: data}
}

// verifyAccount enforces the §4.5 decision table for a single account,
// given the pre-snapshot and the invoked program id.
func verifyAccount(programID Identifier, pre preAccountSnapshot, post *Account) *InstructionError {
	systemInvoked := programID == SystemProgramID

	if pre.owner != post.Owner && !systemInvoked {
		return &InstructionError{Kind: ModifiedProgramId}
	}
	if programID != post.Owner && pre.balance > post.Balance {
		return &InstructionError{Kind: ExternalAccountLamportSpend}
	}
	if programID != post.Owner && !systemInvoked && !bytes.Equal(pre.data, post.Data) {
		return &InstructionError{Kind: ExternalAccountDataModified}
	}
	return nil
}
