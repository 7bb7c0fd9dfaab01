package txcore

// NativeLoader is the opaque external collaborator the dispatcher falls
// through to when the registry has no built-in for a program id (§4.1,
// §6). The core treats it as a black box sharing the handler ABI; how it
// actually resolves and runs a program (a BPF loader, a plugin process, a
// test double) is outside the core's concern.
type NativeLoader interface {
	Invoke(programID Identifier, keyedAccounts []KeyedAccount, data []byte, tickHeight uint64) *InstructionError
}

// UnimplementedNativeLoader is the default loader NewExecutor installs:
// every unresolved program id surfaces ProgramAccountNotFound, so an
// Executor from NewExecutor is usable without wiring a real loader.
type UnimplementedNativeLoader struct{}

// Invoke always fails with ProgramAccountNotFound.
func (UnimplementedNativeLoader) Invoke(Identifier, []KeyedAccount, []byte, uint64) *InstructionError {
	return &InstructionError{Kind: ProgramAccountNotFound}
}

// NativeLoaderFunc adapts a plain function to the NativeLoader interface,
// for tests and small in-process loaders that don't need their own type.
type NativeLoaderFunc func(programID Identifier, keyedAccounts []KeyedAccount, data []byte, tickHeight uint64) *InstructionError

// Invoke calls f.
func (f NativeLoaderFunc) Invoke(programID Identifier, keyedAccounts []KeyedAccount, data []byte, tickHeight uint64) *InstructionError {
	return f(programID, keyedAccounts, data, tickHeight)
}
