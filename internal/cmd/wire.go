package cmd

import (
	"log/slog"

	"github.com/codetidy/codetidy/internal/ai"
	"github.com/codetidy/codetidy/internal/config"
	"github.com/codetidy/codetidy/internal/toolchain"
	"github.com/codetidy/codetidy/internal/workflow"
)

// buildService loads configuration and assembles the workflow service.
// An empty model falls through to the configured default.
func buildService(model string) (*workflow.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if model != "" {
		cfg.Model = model
	}

	client, err := ai.NewClient(ai.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	svc := workflow.NewService(client, toolchain.NewExecRunner(), cfg.WorkDir, slog.Default())
	return svc, cfg, nil
}
