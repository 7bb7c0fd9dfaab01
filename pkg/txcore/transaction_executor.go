package txcore

import (
	"go.uber.org/zap"

	"github.com/shimpidhoopar/txcore/internal/logging"
)

// Executor walks a transaction's instructions over a caller-loaded account
// array, dispatching each to a built-in handler or the native loader, which
// mutate the accounts in place, and checking the invariants after each
// instruction (§4.4). Effects of a failed instruction are not rolled back.
// It is single-threaded per transaction: there is no intra-transaction
// parallelism, matching §5.
type Executor struct {
	Registry *Registry
	Loader   NativeLoader
	Log      *zap.SugaredLogger
}

// NewExecutor returns an Executor seeded with the default registry (system
// program only) and an unimplemented native loader. Callers may register
// more built-ins and swap in a real loader.
func NewExecutor() *Executor {
	return &Executor{
		Registry: NewRegistry(),
		Loader:   UnimplementedNativeLoader{},
		Log:      &logging.Sugar,
	}
}

// Execute runs tx's instructions in order against accounts, using loaders
// for the executable-account chain of each instruction's program-ids-index
// slot. It returns nil on full success. On the first instruction failure it
// aborts immediately and returns a TransactionError naming the failing
// instruction's index; instructions after it are never attempted (§4.4,
// §7). The account array's state on a failed path is unspecified to the
// caller per §7 — it must assume partial mutation and discard.
func (e *Executor) Execute(tx *Transaction, loaders [][]ExecutableAccount, accounts []*Account, tickHeight uint64) *TransactionError {
	log := e.Log
	if log == nil {
		log = &logging.Sugar
	}
	log.Infow("executing transaction", "instructions", len(tx.Instructions), "tick_height", tickHeight)

	for i, instr := range tx.Instructions {
		executableAccounts := loaders[instr.ProgramIDsIndex]

		programAccounts, subsetErr := subsetUncheckedMut(accounts, instr.Accounts)
		if subsetErr != nil {
			log.Warnw("instruction failed", "index", i, "kind", subsetErr.Kind.String())
			return newTransactionError(i, subsetErr)
		}

		if err := executeInstruction(e.Registry, e.Loader, tx, i, executableAccounts, programAccounts, tickHeight); err != nil {
			log.Warnw("instruction failed", "index", i, "kind", err.Kind.String())
			return newTransactionError(i, err)
		}
	}

	log.Infow("transaction executed", "instructions", len(tx.Instructions))
	return nil
}
