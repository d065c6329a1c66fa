package cmd

import (
	"github.com/hance08/cybank/internal/config"
	"github.com/hance08/cybank/internal/ui/views"
	"github.com/hance08/cybank/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, storage backend, amount limits and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: cfg,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	backend := r.cfg.Storage.Backend
	if backend == "" {
		backend = config.BackendMemory
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		StorageBackend:  backend,
		DefaultCurrency: r.cfg.Defaults.Currency,
		AmountLimits:    formatLimits(r.cfg.Limits),
		RecordFailed:    r.cfg.Transfer.RecordFailed,
		LogLevel:        r.cfg.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func formatLimits(l config.LimitsConfig) string {
	lo, err := decimal.NewFromString(l.MinAmount)
	if err != nil {
		return "invalid (" + l.MinAmount + ")"
	}
	hi, err := decimal.NewFromString(l.MaxAmount)
	if err != nil {
		return "invalid (" + l.MaxAmount + ")"
	}
	return utils.FormatAmount(lo) + " - " + utils.FormatAmount(hi)
}

func getAppDataDirOrUnknown() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
