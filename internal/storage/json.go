package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pwl/internal/config"
	"pwl/internal/domain"
)

// Storage persists run history
type Storage interface {
	Append(record domain.RunRecord) error
	Load() (*domain.RunHistory, error)
}

// JSONStorage stores run history in a JSON file under the project
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage creates a new JSONStorage
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Append adds a record to the history file, creating it on first use.
func (s *JSONStorage) Append(record domain.RunRecord) error {
	history, err := s.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		history = &domain.RunHistory{}
	}

	history.Runs = append(history.Runs, record)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run history: %w", err)
	}

	path := s.cfg.GetHistoryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run history: %w", err)
	}
	return nil
}

// Load reads the run history from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunHistory, error) {
	path := s.cfg.GetHistoryPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	var history domain.RunHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}
	return &history, nil
}
