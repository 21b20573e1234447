package tagdb

import (
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/nomarr/nomarr/internal/config"
)

const keyringService = "nomarr"

// keyringUser builds the keyring account name for a database config
func keyringUser(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}

// LookupPassword retrieves the database password from the OS keyring
func LookupPassword(cfg config.DatabaseConfig) (string, error) {
	pw, err := keyring.Get(keyringService, keyringUser(cfg))
	if err != nil {
		return "", fmt.Errorf("failed to read password from keyring: %w", err)
	}
	return pw, nil
}

// StorePassword saves the database password in the OS keyring so it never
// has to live in the config file
func StorePassword(cfg config.DatabaseConfig, password string) error {
	if err := keyring.Set(keyringService, keyringUser(cfg), password); err != nil {
		return fmt.Errorf("failed to save password to keyring: %w", err)
	}
	return nil
}

// DeletePassword removes a stored password from the OS keyring
func DeletePassword(cfg config.DatabaseConfig) error {
	if err := keyring.Delete(keyringService, keyringUser(cfg)); err != nil {
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}
