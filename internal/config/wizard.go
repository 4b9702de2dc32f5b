package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to researchdesk! Let's point it at your completion proxy.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Proxy origin.
	proxyPrompt := promptui.Prompt{
		Label:    "Completion proxy URL",
		Default:  cfg.ProxyURL,
		Validate: validateProxyURL,
	}
	proxyURL, err := proxyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("proxy url: %w", err)
	}
	cfg.ProxyURL = strings.TrimRight(strings.TrimSpace(proxyURL), "/")

	// 2. Model.
	modelPrompt := promptui.SelectWithAdd{
		Label:    "Select model identifier",
		Items:    knownModels,
		AddLabel: "Other",
	}
	_, model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	// 3. Web UI port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the web UI",
		Default: strconv.Itoa(cfg.ListenPort),
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
		return nil, fmt.Errorf("listen port: %w", err)
	}
	cfg.ListenPort, _ = strconv.Atoi(portStr)

	// 4. Retries.
	retryPrompt := promptui.Select{
		Label: "Retry transient proxy failures?",
		Items: []string{
			"no  — single request per action",
			"yes — one retry on 429/5xx",
		},
	}
	retryIdx, _, err := retryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("retry selection: %w", err)
	}
	cfg.MaxRetries = retryIdx

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateProxyURL(s string) error {
	c := DefaultConfig()
	c.ProxyURL = strings.TrimSpace(s)
	return c.Validate()
}
