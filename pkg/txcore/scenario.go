package txcore

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// accountJSON is the on-disk shape of one account in a scenario file: a
// base58 key/owner pair, a balance, and hex-encoded opaque data. Scenario
// files are a CLI/testing convenience, not a persisted wire format (§6
// explicitly keeps wire formats out of the core).
type accountJSON struct {
	Key     string `json:"key"`
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
	DataHex string `json:"data_hex"`
}

type instructionJSON struct {
	ProgramIDsIndex int    `json:"program_ids_index"`
	Accounts        []int  `json:"accounts"`
	DataHex         string `json:"data_hex"`
}

// Scenario describes a complete execute_transaction input: the account
// array, the loader slots (one per distinct program-ids-index, each a
// chain of executable accounts), and the instructions to run against them.
type Scenario struct {
	TickHeight     uint64             `json:"tick_height"`
	SignatureCount int                `json:"signature_count"`
	Accounts       []accountJSON      `json:"accounts"`
	Loaders        [][]accountJSON    `json:"loaders"`
	Instructions   []instructionJSON  `json:"instructions"`
}

// LoadScenario reads and parses a scenario file from path.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var s Scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

func decodeAccount(a accountJSON) (Identifier, *Account, error) {
	key, err := ParseIdentifier(a.Key)
	if err != nil {
		return Identifier{}, nil, fmt.Errorf("account key: %w", err)
	}
	owner, err := ParseIdentifier(a.Owner)
	if err != nil {
		return Identifier{}, nil, fmt.Errorf("account owner: %w", err)
	}
	data, err := hex.DecodeString(a.DataHex)
	if err != nil {
		return Identifier{}, nil, fmt.Errorf("account data: %w", err)
	}
	return key, &Account{Owner: owner, Balance: a.Balance, Data: data}, nil
}

// Build turns the scenario into the Transaction, loader slots, and account
// array Executor.Execute expects.
func (s *Scenario) Build() (*Transaction, [][]ExecutableAccount, []*Account, error) {
	accountKeys := make([]Identifier, len(s.Accounts))
	accounts := make([]*Account, len(s.Accounts))
	for i, a := range s.Accounts {
		key, acct, err := decodeAccount(a)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}
		accountKeys[i] = key
		accounts[i] = acct
	}

	loaders := make([][]ExecutableAccount, len(s.Loaders))
	programIDs := make([]Identifier, len(s.Loaders))
	for slot, chain := range s.Loaders {
		entries := make([]ExecutableAccount, len(chain))
		for i, a := range chain {
			key, acct, err := decodeAccount(a)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("loaders[%d][%d]: %w", slot, i, err)
			}
			entries[i] = ExecutableAccount{Key: key, Account: acct}
		}
		loaders[slot] = entries
		if len(entries) > 0 {
			programIDs[slot] = entries[0].Key
		}
	}

	instructions := make([]Instruction, len(s.Instructions))
	for i, ins := range s.Instructions {
		data, err := hex.DecodeString(ins.DataHex)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("instructions[%d]: data: %w", i, err)
		}
		instructions[i] = Instruction{
			ProgramIDsIndex: ins.ProgramIDsIndex,
			Accounts:        ins.Accounts,
			Data:            data,
		}
	}

	tx := &Transaction{
		AccountKeys:    accountKeys,
		SignatureCount: s.SignatureCount,
		ProgramIDs:     programIDs,
		Instructions:   instructions,
	}
	return tx, loaders, accounts, nil
}
