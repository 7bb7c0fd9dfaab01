package txcore

// Account is the triple (owning-program identifier, balance in indivisible
// units, opaque byte payload) described in the data model. Accounts are
// loaded by the caller before execution begins; the core only mutates them
// through the handler it dispatches to.
type Account struct {
	Owner   Identifier
	Balance uint64
	Data    []byte
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() Account {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return Account{Owner: a.Owner, Balance: a.Balance, Data: data}
}

// KeyedAccount pairs an account-key with the is-signer flag and a mutable
// reference to the account, the shape handlers consume for each account
// they are granted.
type KeyedAccount struct {
	Key      Identifier
	IsSigner bool
	Account  *Account
}
