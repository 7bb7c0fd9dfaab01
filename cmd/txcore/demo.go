package main

import "github.com/shimpidhoopar/txcore/pkg/txcore"

// buildDemoTransaction mirrors the teacher's original cmd/main.go smoke
// transaction (A->B 5, B->C 10, B->C 30 — the third transfer is expected to
// fail) but expressed as system-program Transfer instructions over owned
// accounts instead of the teacher's named AccountValue/Updates model.
func buildDemoTransaction() (*txcore.Transaction, [][]txcore.ExecutableAccount, []*txcore.Account) {
	var a, b, c txcore.Identifier
	copy(a[:], "account-a")
	copy(b[:], "account-b")
	copy(c[:], "account-c")

	accounts := []*txcore.Account{
		{Owner: txcore.SystemProgramID, Balance: 20},
		{Owner: txcore.SystemProgramID, Balance: 30},
		{Owner: txcore.SystemProgramID, Balance: 40},
	}

	tx := &txcore.Transaction{
		AccountKeys:    []txcore.Identifier{a, b, c},
		SignatureCount: 3,
		ProgramIDs:     []txcore.Identifier{txcore.SystemProgramID},
		Instructions: []txcore.Instruction{
			{ProgramIDsIndex: 0, Accounts: []int{0, 1}, Data: txcore.NewTransferInstructionData(5)},
			{ProgramIDsIndex: 0, Accounts: []int{1, 2}, Data: txcore.NewTransferInstructionData(10)},
			{ProgramIDsIndex: 0, Accounts: []int{1, 2}, Data: txcore.NewTransferInstructionData(30)},
		},
	}

	// Slot 0's loader chain is just the system program's own self-entry,
	// which the built-in dispatch path drops before handing accounts to
	// the handler (see instruction_executor.go's dispatch asymmetry note).
	loaders := [][]txcore.ExecutableAccount{
		{{Key: txcore.SystemProgramID, Account: &txcore.Account{Owner: txcore.SystemProgramID}}},
	}

	return tx, loaders, accounts
}
