package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	StorageBackend  string
	DefaultCurrency string
	AmountLimits    string
	RecordFailed    bool
	LogLevel        string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	recordFailed := pterm.Green("Yes")
	if !data.RecordFailed {
		recordFailed = pterm.Gray("No")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Backend", data.StorageBackend + pterm.Gray(" (in memory, cleared on exit)")},
		{"Default Currency", data.DefaultCurrency},
		{"Amount Limits", data.AmountLimits},
		{"Record Failed Transfers", recordFailed},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
