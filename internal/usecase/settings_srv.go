package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

// Settings are console preferences kept locally; nothing here is owned by
// the backend
type Settings struct {
	EmailNotifications bool   `json:"emailNotifications"`
	DarkMode           bool   `json:"darkMode"`
	Language           string `json:"language" validate:"omitempty,oneof=en id"`
	ItemsPerPage       int    `json:"itemsPerPage" validate:"omitempty,gte=5,lte=100"`
}

func defaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		Language:           "en",
		ItemsPerPage:       20,
	}
}

type SettingsService interface {
	Get() Settings
	Update(s Settings) (Settings, error)
}

type settingsService struct {
	mu      sync.Mutex
	path    string
	current Settings
	log     *zap.Logger
}

func NewSettingsService(path string, log *zap.Logger) SettingsService {
	ss := &settingsService{
		path:    path,
		current: defaultSettings(),
		log:     log,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &ss.current); err != nil {
			log.Warn("Corrupt settings file, using defaults", zap.String("path", path), zap.Error(err))
			ss.current = defaultSettings()
		}
	}

	return ss
}

func (ss *settingsService) Get() Settings {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.current
}

func (ss *settingsService) Update(s Settings) (Settings, error) {
	if errs := utils.ValidateStruct(&s); len(errs) > 0 {
		return Settings{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if s.Language == "" {
		s.Language = "en"
	}
	if s.ItemsPerPage == 0 {
		s.ItemsPerPage = 20
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return Settings{}, fmt.Errorf("encode settings: %w", err)
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	if dir := filepath.Dir(ss.path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return Settings{}, fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(ss.path, raw, 0600); err != nil {
		return Settings{}, fmt.Errorf("write settings: %w", err)
	}

	ss.current = s
	ss.log.Info("Settings updated")
	return s, nil
}
