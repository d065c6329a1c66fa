package prompts

import "github.com/charmbracelet/huh"

// MenuItem is one entry of a session menu. Key is what the caller
// switches on; Label is what the user sees.
type MenuItem struct {
	Key   string
	Label string
}

func PromptMenu(title string, items []MenuItem) (string, error) {
	var selected string

	opts := make([]huh.Option[string], 0, len(items))
	for _, item := range items {
		opts = append(opts, huh.NewOption(item.Label, item.Key))
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Height(len(items) + 2).
		Run()

	return selected, err
}
