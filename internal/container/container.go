// Package container provides dependency injection for the parsectl
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"parsectl/internal/apiclient"
	"parsectl/internal/config"
	"parsectl/internal/export"
	"parsectl/internal/logging"
	"parsectl/internal/suggest"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation. All fields are private and can only
// be accessed through getter methods, which prevents accidental modification
// of dependencies after initialization.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	apiClient *apiclient.Client
	suggester suggest.Suggester
	closers   []func() error
}

// NewContainer creates and wires all application dependencies.
//
// The Gemini suggester is only constructed when AI suggestions are enabled
// and an API key is configured; GetSuggester returns nil otherwise.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	export.SetLogger(logger)

	client := apiclient.New(
		cfg.API.BaseURL,
		cfg.API.Token,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		logger,
	)

	c := &Container{
		logger:    logger,
		config:    cfg,
		apiClient: client,
	}

	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		suggester, err := suggest.NewGeminiSuggester(ctx, cfg.AI.APIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create suggester: %w", err)
		}
		c.suggester = suggester
		c.closers = append(c.closers, suggester.Close)
		logger.Info("AI pattern suggestions enabled")
	} else {
		logger.Debug("AI pattern suggestions disabled")
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldEndpoint, Value: cfg.API.BaseURL},
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetAPIClient returns the backend API client.
func (c *Container) GetAPIClient() *apiclient.Client {
	return c.apiClient
}

// GetSuggester returns the AI suggester, or nil when AI is not enabled.
func (c *Container) GetSuggester() suggest.Suggester {
	return c.suggester
}

// Close performs cleanup of container resources. It should be called when
// the container is no longer needed.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.logger.Debug("Container closed")
	return firstErr
}
