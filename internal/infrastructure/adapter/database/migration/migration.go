package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// step is one stage of a migration run
type step struct {
	name string
	run  func(ctx context.Context) error
}

// MigrateAll brings the schema to CurrentSchemaVersion. A database already at
// that version is left alone.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Schema up to date", map[string]any{"version": currentVersion})
		return nil
	}

	m.logger.Info("Migrating schema", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	// Versioned column changes go first so AutoMigrate can index the new columns.
	steps := []step{
		{"versioned", func(ctx context.Context) error { return m.runVersionedMigrations(ctx, currentVersion) }},
		{"models", m.autoMigrateModels},
		{"indexes", func(context.Context) error { return m.advancedIndexMgr.CreateAdvancedIndexes() }},
		{"constraints", func(context.Context) error { return m.advancedIndexMgr.CreateSettlementConstraints() }},
		{"tuning", func(context.Context) error { return m.advancedIndexMgr.CreatePerformanceTweaks() }},
		{"version", func(ctx context.Context) error {
			return m.setVersion(ctx, CurrentSchemaVersion, "Users, transactions and settlement columns")
		}},
	}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := st.run(ctx); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":  st.name,
				"error": err.Error(),
			})
			return fmt.Errorf("migration step %s: %w", st.name, err)
		}
	}

	m.logger.Info("Schema migrated", map[string]any{"version": CurrentSchemaVersion})
	return nil
}

// GetCurrentVersion returns the last applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Transaction{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	switch currentVersion {
	case "":
		// Fresh database, AutoMigrate creates everything
		return nil
	case "1.0.0":
		return NewAddSettlementColumns(m.db, m.logger).Run(ctx)
	}

	return nil
}
