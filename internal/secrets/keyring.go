package secrets

import (
	"context"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name used in the OS keyring
const KeyringService = "stackdns"

// KeyringResolver resolves secrets from the OS keyring, keyed by parameter
// name under the stackdns service. Entries are written with `stackdns auth
// store`, so repeated runs skip the parameter-store round-trip.
type KeyringResolver struct {
	service string
}

// NewKeyringResolver creates a new OS keyring resolver
func NewKeyringResolver() *KeyringResolver {
	return &KeyringResolver{service: KeyringService}
}

// Resolve resolves a secret from the OS keyring
func (k *KeyringResolver) Resolve(_ context.Context, name string) (string, error) {
	value, err := keyring.Get(k.service, name)
	if err != nil {
		return "", fmt.Errorf("keyring lookup for %s failed: %w", name, err)
	}
	return value, nil
}

// StoreSecret stores a secret in the OS keyring under the stackdns service
func StoreSecret(name, value string) error {
	if name == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}
	if value == "" {
		return fmt.Errorf("secret value cannot be empty")
	}
	return keyring.Set(KeyringService, name, value)
}

// ClearSecret removes a secret from the OS keyring
func ClearSecret(name string) error {
	if name == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}
	if err := keyring.Delete(KeyringService, name); err != nil {
		return fmt.Errorf("failed to clear secret %s from keyring: %w", name, err)
	}
	return nil
}
