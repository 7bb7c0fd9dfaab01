package txcore

// canonicalizeError truncates an oversize CustomError payload to
// maxCustomErrorBytes (§4.6). Every other error kind passes through
// unchanged.
func canonicalizeError(err *InstructionError) *InstructionError {
	if err == nil || err.Kind != CustomError {
		return err
	}
	if len(err.CustomErrorData) <= maxCustomErrorBytes {
		return err
	}
	truncated := make([]byte, maxCustomErrorBytes)
	copy(truncated, err.CustomErrorData)
	return &InstructionError{Kind: CustomError, CustomErrorData: truncated}
}
