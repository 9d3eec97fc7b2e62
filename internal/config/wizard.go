package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// the given path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to elemex! Let's configure your viewer.")
	fmt.Println()

	cfg := DefaultConfig()

	urlPrompt := promptui.Prompt{
		Label:   "Upstream dataset URL",
		Default: cfg.UpstreamURL,
	}
	upstream, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("upstream prompt: %w", err)
	}
	cfg.UpstreamURL = upstream

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	selPrompt := promptui.Select{
		Label: "Initial selection when the viewer opens",
		Items: []string{
			"hydrogen: start with element 1 selected",
			"none: start with no selection",
		},
	}
	selIdx, _, err := selPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("selection prompt: %w", err)
	}
	if selIdx == 1 {
		cfg.InitialSelection = 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
