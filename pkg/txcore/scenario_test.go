package txcore

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioBuildAndExecute(t *testing.T) {
	a := Identifier{1}
	b := Identifier{2}
	sys := SystemProgramID

	scenario := &Scenario{
		TickHeight:     7,
		SignatureCount: 1,
		Accounts: []accountJSON{
			{Key: a.String(), Owner: sys.String(), Balance: 100, DataHex: ""},
			{Key: b.String(), Owner: sys.String(), Balance: 0, DataHex: ""},
		},
		Loaders: [][]accountJSON{
			{{Key: sys.String(), Owner: sys.String(), Balance: 0, DataHex: ""}},
		},
		Instructions: []instructionJSON{
			{ProgramIDsIndex: 0, Accounts: []int{0, 1}, DataHex: newTransferHex(50)},
		},
	}

	tx, loaders, accounts, err := scenario.Build()
	require.NoError(t, err)

	e := newTestExecutor()
	txErr := e.Execute(tx, loaders, accounts, scenario.TickHeight)
	require.Nil(t, txErr)
	require.Equal(t, uint64(50), accounts[0].Balance)
	require.Equal(t, uint64(50), accounts[1].Balance)
}

func TestLoadScenarioFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	content := `{
		"tick_height": 1,
		"signature_count": 1,
		"accounts": [],
		"loaders": [],
		"instructions": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, uint64(1), s.TickHeight)
}

func newTransferHex(amount uint64) string {
	return hex.EncodeToString(NewTransferInstructionData(amount))
}
