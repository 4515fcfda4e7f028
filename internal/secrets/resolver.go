package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Resolver is the interface for credential resolution implementations. The
// name is the parameter-store identifier of the secret.
type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// EnvResolver resolves secrets from environment variables
type EnvResolver struct{}

// NewEnvResolver creates a new environment variable resolver
func NewEnvResolver() *EnvResolver {
	return &EnvResolver{}
}

// Resolve resolves a secret from environment variables
// Uses the pattern: STACKDNS_SECRET_<name>
func (e *EnvResolver) Resolve(_ context.Context, name string) (string, error) {
	envVarName := EnvVarName(name)

	value := os.Getenv(envVarName)
	if value == "" {
		return "", fmt.Errorf("environment variable %s not set", envVarName)
	}

	return value, nil
}

// EnvVarName generates the environment variable name for a parameter
// Slashes, hyphens, and dots are replaced with underscores
// All letters are uppercased
func EnvVarName(name string) string {
	folded := strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(name)
	return "STACKDNS_SECRET_" + strings.ToUpper(folded)
}
