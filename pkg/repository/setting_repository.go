package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/studentscope/pkg/domain"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(database *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: database}
}

// GetSetting retrieves a setting value, empty string when absent
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// GetAllSettings returns every stored setting keyed by name
func (r *SettingRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	var rows []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT key, value FROM settings ORDER BY key"); err != nil {
		return nil, fmt.Errorf("get all settings: %w", err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// QuestionCount returns the configured interview question budget. Absent or
// malformed values fall back to the default; non-positive values are clamped
// to 1 so a bad setting can't make every interview start concluded.
func (r *SettingRepository) QuestionCount(ctx context.Context) (int, error) {
	value, err := r.GetSetting(ctx, domain.SettingQuestionCount)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return domain.DefaultQuestionCount, nil
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return domain.DefaultQuestionCount, nil
	}
	if count < 1 {
		count = 1
	}
	return count, nil
}
