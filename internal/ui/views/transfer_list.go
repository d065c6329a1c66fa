package views

import (
	"github.com/hance08/cybank/internal/constants"
	"github.com/hance08/cybank/internal/model"
	"github.com/hance08/cybank/internal/ui"
	"github.com/hance08/cybank/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransfers(transfers []*model.Transfer) error {
	pterm.DefaultSection.Println("Transfer History")

	if len(transfers) == 0 {
		pterm.Warning.Println("No transfers yet")
		return nil
	}

	tableData := pterm.TableData{{"Date", "Kind", "From", "To", "Amount", "Status", "Description"}}

	for _, t := range transfers {
		status := pterm.Green(string(t.Status))
		if t.Status == model.TransferFailed {
			status = pterm.Red(string(t.Status))
		}
		kind := pterm.Blue(string(t.Kind))
		if t.Kind == model.TransferExternal {
			kind = pterm.Magenta(string(t.Kind))
		}

		tableData = append(tableData, []string{
			t.CreatedAt.Local().Format(constants.DateTimeFormat),
			kind,
			t.SourceName,
			t.DestinationName,
			utils.FormatAmount(t.Amount),
			status,
			t.Description,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transfers\n", len(transfers))
	return nil
}

// RenderTransferReceipt prints the details of one transfer.
func RenderTransferReceipt(t *model.Transfer) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Transfer ID"), t.ID},
		{pterm.Blue("Kind"), string(t.Kind)},
		{pterm.Blue("From"), t.SourceName},
		{pterm.Blue("To"), t.DestinationName},
		{pterm.Blue("Amount"), utils.FormatAmount(t.Amount)},
		{pterm.Blue("Description"), t.Description},
		{pterm.Blue("Status"), string(t.Status)},
		{pterm.Blue("Date"), t.CreatedAt.Local().Format(constants.DateTimeFormat)},
	}
	if t.Reason != "" {
		tableData = append(tableData, []string{pterm.Blue("Reason"), t.Reason})
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
