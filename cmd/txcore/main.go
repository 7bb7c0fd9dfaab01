// Command txcore runs a transaction against a JSON-described scenario of
// accounts and loader slots through the transaction execution core, and
// prints the resulting account state.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/shimpidhoopar/txcore/internal/logging"
	"github.com/shimpidhoopar/txcore/pkg/txcore"
)

var tickHeightFlag = cli.Uint64Flag{
	Name:  "tick-height",
	Usage: "tick height passed opaquely to every handler invocation",
	Value: 0,
}

func main() {
	app := &cli.App{
		Name:      "txcore",
		Usage:     "execute a transaction scenario against the transaction execution core",
		Copyright: "(c) shimpidhoopar",
		Commands: []*cli.Command{
			&runCommand,
			&demoCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Sugar.Errorw("txcore failed", "error", err)
		os.Exit(1)
	}
}

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "execute a scenario file",
	ArgsUsage: "<scenario.json>",
	Flags:     []cli.Flag{&tickHeightFlag},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return fmt.Errorf("usage: txcore run <scenario.json>")
		}
		scenario, err := txcore.LoadScenario(path)
		if err != nil {
			return err
		}
		if c.IsSet(tickHeightFlag.Name) {
			scenario.TickHeight = c.Uint64(tickHeightFlag.Name)
		}
		return runScenario(scenario)
	},
}

var demoCommand = cli.Command{
	Name:  "demo",
	Usage: "execute a built-in system-program transfer chain (A->B, B->C, B->C)",
	Action: func(c *cli.Context) error {
		tx, loaders, accounts := buildDemoTransaction()
		return execute(tx, loaders, accounts, 0)
	},
}

func runScenario(scenario *txcore.Scenario) error {
	tx, loaders, accounts, err := scenario.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	return execute(tx, loaders, accounts, scenario.TickHeight)
}

func execute(tx *txcore.Transaction, loaders [][]txcore.ExecutableAccount, accounts []*txcore.Account, tickHeight uint64) error {
	executor := txcore.NewExecutor()
	executor.Log = &logging.Sugar

	if txErr := executor.Execute(tx, loaders, accounts, tickHeight); txErr != nil {
		fmt.Fprintln(os.Stderr, txErr.Error())
		os.Exit(1)
	}

	out := make([]map[string]any, len(accounts))
	for i, acct := range accounts {
		out[i] = map[string]any{
			"key":     tx.AccountKeys[i].String(),
			"owner":   acct.Owner.String(),
			"balance": acct.Balance,
		}
	}
	enc, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(enc))
	return nil
}
