package main

import (
	"context"
	"fmt"
	"os"

	authcmd "github.com/catalystcommunity/stackdns/cmd/stackdns/commands/auth"
	configcmd "github.com/catalystcommunity/stackdns/cmd/stackdns/commands/config"
	synccmd "github.com/catalystcommunity/stackdns/cmd/stackdns/commands/sync"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "stackdns",
		Usage:   "Sync ClouDNS records from CloudFormation stack exports",
		Version: Version,
		Commands: []*cli.Command{
			synccmd.Command,
			authcmd.Command,
			configcmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
