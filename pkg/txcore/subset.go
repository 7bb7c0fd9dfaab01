package txcore

// hasDuplicates reports whether xs contains any repeated element. Pairwise
// comparison, O(n^2) but allocation-free — the preferred algorithm per §4.2
// for the short index lists (≤ ~16) instructions actually carry; a hash set
// would be asymptotically better but loses on constant factors at this size.
func hasDuplicates(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		for _, x := range xs[i:] {
			if x == xs[i-1] {
				return true
			}
		}
	}
	return false
}

// subsetUncheckedMut returns one *Account per index into xs. Indices are not
// bounds-checked here — an out-of-range index is a caller bug and is allowed
// to panic (§9 Open Question, left as specified); bounds validation belongs
// to the account-loading stage. The only error this returns is
// DuplicateAccountIndex, and it is returned before any reference is handed
// out, which is what makes the resulting slice non-aliasing.
func subsetUncheckedMut(xs []*Account, indexes []int) ([]*Account, *InstructionError) {
	if hasDuplicates(indexes) {
		return nil, &InstructionError{Kind: DuplicateAccountIndex}
	}
	out := make([]*Account, len(indexes))
	for i, idx := range indexes {
		out[i] = xs[idx]
	}
	return out, nil
}
