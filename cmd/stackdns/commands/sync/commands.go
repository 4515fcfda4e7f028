package sync

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/catalystcommunity/stackdns/internal/cloudns"
	"github.com/catalystcommunity/stackdns/internal/config"
	"github.com/catalystcommunity/stackdns/internal/secrets"
	"github.com/catalystcommunity/stackdns/internal/stack"
	stacksync "github.com/catalystcommunity/stackdns/internal/sync"
	"github.com/urfave/cli/v3"
)

// Command is the sync command
var Command = &cli.Command{
	Name:      "sync",
	Usage:     "Run one reconciliation pass over the stack exports",
	ArgsUsage: "<username> <password-parameter-name> [ttl [stackName...]]",
	Description: `Run one synchronization pass: list the CloudFormation stack exports,
pick the ones named by the ClouDNS convention, and create or update the
corresponding DNS records.

Export names encode the record as ClouDNS:<type>:<label>:<label>..., so
  ClouDNS:CNAME:www:example:org = d123.cloudfront.net
creates (or updates) the CNAME record www.example.org. The target zone is
auto-detected by probing the account's registered zones; the zone never has
to be spelled out.

The ClouDNS API password is fetched from SSM Parameter Store under
<password-parameter-name> (environment and OS keyring are consulted first,
see 'stackdns auth'). Each decision is printed before the call:

  CREATE www.example.org CNAME 300 d123.cloudfront.net ZONE example.org HOST www

Records are never deleted; the pass stops at the first error and is safe to
re-run.

Examples:
  stackdns sync dns-robot cloudns-password
  stackdns sync dns-robot cloudns-password 600
  stackdns sync dns-robot cloudns-password 300 web-stack infra-stack`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   config.DefaultConfigPath(),
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "ClouDNS API base URL",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for CloudFormation and SSM",
		},
	},
	Action: runSync,
}

func runSync(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	authUser := cmd.Args().Get(0)
	if authUser == "" {
		authUser = cfg.API.AuthUser
	}
	paramName := cmd.Args().Get(1)
	if paramName == "" {
		paramName = cfg.API.PasswordParameter
	}
	if authUser == "" || paramName == "" {
		return fmt.Errorf("requires arguments: <username> <password-parameter-name> [ttl [stackName...]]")
	}

	ttl := cmd.Args().Get(2)
	if ttl == "" {
		ttl = cfg.Sync.TTL
	}

	var stacks []string
	if cmd.Args().Len() > 3 {
		stacks = cmd.Args().Slice()[3:]
	}
	if len(stacks) == 0 {
		stacks = cfg.Sync.Stacks
	}

	region := cmd.String("region")
	if region == "" {
		region = cfg.Sync.Region
	}

	baseURL := cmd.String("base-url")
	if baseURL == "" {
		baseURL = cfg.API.BaseURL
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return fmt.Errorf("failed to create AWS session: %w", err)
	}

	awsCfg := aws.NewConfig()
	if region != "" {
		awsCfg = awsCfg.WithRegion(region)
	}

	resolver := secrets.NewChainResolver(
		secrets.NewEnvResolver(),
		secrets.NewKeyringResolver(),
		secrets.NewSSMResolver(ssm.New(sess, awsCfg)),
	)
	password, err := resolver.Resolve(ctx, paramName)
	if err != nil {
		return fmt.Errorf("failed to resolve ClouDNS password: %w", err)
	}

	dns := cloudns.NewClient(baseURL, authUser, password)
	exports := stack.NewSource(cloudformation.New(sess, awsCfg))

	syncer := stacksync.NewSyncer(dns, exports, ttl, stacks, nil)
	return syncer.Run(ctx)
}
