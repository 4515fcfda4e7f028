package config

import (
	"context"
	"fmt"
	"os"

	"github.com/catalystcommunity/stackdns/internal/config"
	"github.com/urfave/cli/v3"
)

// InitCommand creates a new config file
var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a new configuration file",
	Description: `Write a configuration file so sync runs can omit the positional
arguments. Values left unset fall back to the sync command's own defaults.

Example:
  stackdns config init --auth-user dns-robot --password-parameter cloudns-password`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   config.DefaultConfigPath(),
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "overwrite existing config file",
		},
		&cli.StringFlag{
			Name:  "auth-user",
			Usage: "ClouDNS API sub-auth user",
		},
		&cli.StringFlag{
			Name:  "password-parameter",
			Usage: "SSM parameter name holding the ClouDNS password",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "ClouDNS API base URL",
		},
		&cli.StringFlag{
			Name:  "ttl",
			Usage: "default TTL for created and updated records",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for CloudFormation and SSM",
		},
		&cli.StringSliceFlag{
			Name:  "stack",
			Usage: "stack name or ARN to sync (can be specified multiple times)",
		},
	},
	Action: runInit,
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
	}

	cfg := &config.Config{
		API: config.APIConfig{
			BaseURL:           cmd.String("base-url"),
			AuthUser:          cmd.String("auth-user"),
			PasswordParameter: cmd.String("password-parameter"),
		},
		Sync: config.SyncConfig{
			TTL:    cmd.String("ttl"),
			Stacks: cmd.StringSlice("stack"),
			Region: cmd.String("region"),
		},
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}
