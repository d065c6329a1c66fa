package session

import (
	"testing"

	"github.com/hance08/cybank/internal/ui/prompts"
)

func TestEveryMenuItemHasAction(t *testing.T) {
	actions := NewRunner(nil).actions()

	for _, menu := range [][]prompts.MenuItem{guestMenu, userMenu} {
		for _, item := range menu {
			if item.Key == menuExit {
				continue
			}
			if _, ok := actions[item.Key]; !ok {
				t.Errorf("menu item %q has no action", item.Key)
			}
		}
	}
}

func TestMenuKeysAreUnique(t *testing.T) {
	for name, menu := range map[string][]prompts.MenuItem{
		"guest":  guestMenu,
		"user":   userMenu,
		"report": reportMenu,
	} {
		seen := map[string]bool{}
		for _, item := range menu {
			if seen[item.Key] {
				t.Errorf("%s menu: duplicate key %q", name, item.Key)
			}
			seen[item.Key] = true
		}
	}
}
