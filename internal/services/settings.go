package services

import (
	"time"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/logging"
)

// SettingsService resolves drag settings with defaults applied
type SettingsService struct {
	settings *config.Settings
}

// NewSettingsService creates a SettingsService over loaded settings. Nil
// settings use every default.
func NewSettingsService(settings *config.Settings) *SettingsService {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &SettingsService{settings: settings}
}

// AllowedOperations returns the operations drags from a shelf permit, in
// declaration order
func (s *SettingsService) AllowedOperations() dnd.Allowed {
	if len(s.settings.DefaultOperations) == 0 {
		return dnd.Allowed{dnd.OpMove, dnd.OpCopy, dnd.OpLink}
	}
	allowed, err := dnd.ParseAllowed(s.settings.DefaultOperations)
	if err != nil {
		logging.Logger.Warn("Invalid default_operations, using default", "error", err)
		return dnd.Allowed{dnd.OpMove, dnd.OpCopy, dnd.OpLink}
	}
	return allowed
}

// Dwell returns the hover time before a pointer drag activates a target
func (s *SettingsService) Dwell() time.Duration {
	return s.settings.Dwell()
}

// FirstWeekday returns the first column of the calendar
func (s *SettingsService) FirstWeekday() time.Weekday {
	day, err := s.settings.Weekday()
	if err != nil {
		logging.Logger.Warn("Invalid first_weekday, using default", "error", err)
		fallback, _ := config.ParseWeekday(config.DefaultFirstWeekday)
		return fallback
	}
	return day
}

// ErrorClearDelay returns how long the error line stays visible
func (s *SettingsService) ErrorClearDelay() time.Duration {
	return s.settings.ErrorClearDuration()
}
