package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"github.com/procon-dev/procon/cli/templates"
	"github.com/procon-dev/procon/cli/util"
)

// templateItems returns menu items for templates.
func templateItems(infos []templates.Info, descriptions map[string]string) []string {
	items := make([]string, 0, len(infos))
	for _, info := range infos {
		item := fmt.Sprintf("%s (%s)", info.Name, info.Kind)
		if info.Overrides {
			item = fmt.Sprintf("%s (%s, overrides built-in)", info.Name, info.Kind)
		} else if description := descriptions[info.Name]; description != "" &&
			info.Kind == templates.SourceBuiltin {
			item = fmt.Sprintf("%s (%s): %s", info.Name, info.Kind, description)
		}
		items = append(items, item)
	}
	return items
}

// ChooseTemplate shows a menu in terminal to choose a template.
func ChooseTemplate(infos []templates.Info, descriptions map[string]string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("interactive template selection requires a terminal")
	}
	if len(infos) == 0 {
		return "", fmt.Errorf("there are no templates available")
	}

	templateSelect := promptui.Select{
		Label:        "Select template",
		Items:        templateItems(infos, descriptions),
		HideSelected: true,
	}
	idx, _, err := templateSelect.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", util.ErrCmdAbort
		}
		return "", err
	}
	return infos[idx].Name, nil
}
