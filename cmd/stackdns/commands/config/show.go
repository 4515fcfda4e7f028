package config

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/stackdns/internal/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ShowCommand displays the current configuration
var ShowCommand = &cli.Command{
	Name:      "show",
	Usage:     "Display the configuration",
	ArgsUsage: "[config-file]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   config.DefaultConfigPath(),
		},
	},
	Action: runShow,
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if cmd.Args().Len() > 0 {
		configPath = cmd.Args().First()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("Configuration: %s\n", configPath)
	fmt.Println("---")
	fmt.Print(string(data))

	return nil
}
