// Package container provides dependency injection for the finance-tracker
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/finance-tracker/internal/categorizer"
	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/report"
	"fjacquet/finance-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	ledgerStore   store.LedgerStore
	categoryStore *store.CategoryStore
	aiClient      categorizer.AIClient
	categorizer   *categorizer.Categorizer
	ledger        *ledger.Ledger
	reports       *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, logging
// through a logrus adapter configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	ledgerStore, err := store.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)

	// AI client (if enabled)
	var aiClient categorizer.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err := categorizer.NewGeminiClient(context.Background(), categorizer.GeminiOptions{
			APIKey:     cfg.AI.APIKey,
			Model:      cfg.AI.Model,
			Timeout:    time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
			MaxRetries: cfg.AI.MaxRetries,
		}, logger)
		if err != nil {
			logger.WithError(err).Warn("AI categorization unavailable")
		} else {
			aiClient = gemini
			logger.Info("AI categorization enabled", logging.F(logging.FieldModel, cfg.AI.Model))
		}
	} else {
		logger.Debug("AI categorization disabled")
	}

	cat := categorizer.NewCategorizer(categoryStore, aiClient, cfg.Categories.Fallback, logger)

	l := ledger.New(ledgerStore, logger)
	l.SetSuggester(cat)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Ledger.Backend),
		logging.F(logging.FieldFile, ledgerStore.Path()),
		logging.F("ai_enabled", aiClient != nil))

	return &Container{
		logger:        logger,
		config:        cfg,
		ledgerStore:   ledgerStore,
		categoryStore: categoryStore,
		aiClient:      aiClient,
		categorizer:   cat,
		ledger:        l,
		reports:       report.NewReportGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLedger returns the ledger. It is empty until Load is called.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetLedgerStore returns the store backing the ledger.
func (c *Container) GetLedgerStore() store.LedgerStore {
	return c.ledgerStore
}

// GetCategoryStore returns the category definitions store.
func (c *Container) GetCategoryStore() *store.CategoryStore {
	return c.categoryStore
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetAIClient returns the container's AI client instance.
// Returns nil if AI is not enabled.
func (c *Container) GetAIClient() categorizer.AIClient {
	return c.aiClient
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reports
}

// Close releases the ledger store and the AI client.
func (c *Container) Close() error {
	var firstErr error
	if closer, ok := c.aiClient.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			firstErr = err
		}
	}
	if err := c.ledgerStore.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	c.logger.Debug("Container closed")
	return firstErr
}
