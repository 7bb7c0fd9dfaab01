// Package txcore implements the transaction execution core: instruction
// dispatch, account aliasing control, and the ownership/balance invariants
// that must hold between instructions of one transaction.
package txcore

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// identifierSize is the width of a program or account identifier, matching
// the fixed-width pubkeys the rest of the pack's Solana-shaped code uses.
const identifierSize = 32

// Identifier is an opaque fixed-width byte string naming a program or an
// account. Equality is by value.
type Identifier [identifierSize]byte

// SystemProgramID is the distinguished system program identifier recognized
// by the core. Its value is arbitrary but fixed so tests and callers can
// refer to it by name instead of by magic bytes.
var SystemProgramID = Identifier{'s', 'y', 's', 't', 'e', 'm', '_', 'p', 'r', 'o', 'g', 'r', 'a', 'm'}

// String renders the identifier as base58, the same encoding
// other Solana-shaped Go code in the wild uses for pubkeys.
func (id Identifier) String() string {
	return base58.Encode(id[:])
}

// IsZero reports whether id is the zero identifier.
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

// ParseIdentifier decodes a base58-encoded identifier.
func ParseIdentifier(s string) (Identifier, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Identifier{}, fmt.Errorf("decode base58 identifier %q: %w", s, err)
	}
	if len(b) != identifierSize {
		return Identifier{}, fmt.Errorf("invalid identifier length %d, expected %d", len(b), identifierSize)
	}
	var id Identifier
	copy(id[:], b)
	return id, nil
}
