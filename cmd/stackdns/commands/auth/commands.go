package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/catalystcommunity/stackdns/internal/secrets"
	"github.com/urfave/cli/v3"
)

// Command is the top-level auth command
var Command = &cli.Command{
	Name:  "auth",
	Usage: "Manage locally cached ClouDNS credentials",
	Description: `Cache the ClouDNS API password in the OS keyring so sync runs skip the
SSM Parameter Store round-trip. The keyring is consulted before SSM; SSM
remains the source of truth and is still used whenever the keyring has no
entry for the parameter name.`,
	Commands: []*cli.Command{
		storeCommand,
		clearCommand,
	},
}

var storeCommand = &cli.Command{
	Name:      "store",
	Usage:     "Store a secret in the OS keyring",
	ArgsUsage: "<parameter-name>",
	Description: `Read a secret from standard input and store it in the OS keyring under
the given parameter name.

Example:
  stackdns auth store cloudns-password`,
	Action: runStore,
}

var clearCommand = &cli.Command{
	Name:      "clear",
	Usage:     "Remove a secret from the OS keyring",
	ArgsUsage: "<parameter-name>",
	Action:    runClear,
}

func runStore(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	if name == "" {
		return fmt.Errorf("requires argument: <parameter-name>")
	}

	fmt.Print("Secret value: ")
	value, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	value = strings.TrimRight(value, "\r\n")

	if err := secrets.StoreSecret(name, value); err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}

	fmt.Printf("Stored %s in OS keyring\n", name)
	return nil
}

func runClear(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	if name == "" {
		return fmt.Errorf("requires argument: <parameter-name>")
	}

	if err := secrets.ClearSecret(name); err != nil {
		return err
	}

	fmt.Printf("Cleared %s from OS keyring\n", name)
	return nil
}
