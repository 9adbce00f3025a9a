package config

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Wrap marks err as an invalid value of key.
func Wrap(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
}

// invalid reports a rule violated by key.
func invalid(key, rule string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, key, rule)
}
