package config

import "github.com/hance08/cybank/internal/constants"

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Transfer   TransferConfig `mapstructure:"transfer"`
	Limits     LimitsConfig   `mapstructure:"limits"`
	ConfigPath string         `mapstructure:"-"`
}

// StorageConfig picks the ledger backend. Both backends live in process
// memory; sqlite adds real commit/rollback underneath the transfer engine.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type TransferConfig struct {
	// RecordFailed keeps FAILED transfers in the history when a transfer
	// was rolled back after its first mutation.
	RecordFailed bool `mapstructure:"record_failed"`
}

type LimitsConfig struct {
	MinAmount string `mapstructure:"min_amount"`
	MaxAmount string `mapstructure:"max_amount"`
}

func NewDefault() *Config {
	return &Config{
		Storage:  StorageConfig{Backend: BackendMemory},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: "warn"},
		Transfer: TransferConfig{RecordFailed: true},
		Limits: LimitsConfig{
			MinAmount: constants.MinAmount,
			MaxAmount: constants.MaxAmount,
		},
	}
}
