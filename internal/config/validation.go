package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors aggregates validation failures.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateConfig checks the full configuration for errors.
func ValidateConfig(c *Config) error {
	var errs ValidationErrors

	errs = append(errs, validateThresholds(&c.Thresholds)...)
	errs = append(errs, validateStorage(&c.Storage)...)
	errs = append(errs, validateLogging(&c.Logging)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, errs.Error())
	}
	return nil
}

func validateThresholds(t *ThresholdConfig) ValidationErrors {
	var errs ValidationErrors

	if t.ShortPauseMin < 0 {
		errs = append(errs, &ValidationError{
			Field: "thresholds.short_pause_min", Value: t.ShortPauseMin,
			Message: "must be non-negative",
		})
	}
	if t.ShortPauseMax <= t.ShortPauseMin {
		errs = append(errs, &ValidationError{
			Field: "thresholds.short_pause_max", Value: t.ShortPauseMax,
			Message: "must exceed short_pause_min",
		})
	}
	if t.MediumPauseMax <= t.MediumPauseMin {
		errs = append(errs, &ValidationError{
			Field: "thresholds.medium_pause_max", Value: t.MediumPauseMax,
			Message: "must exceed medium_pause_min",
		})
	}
	if t.LongPauseMin < t.MediumPauseMax {
		errs = append(errs, &ValidationError{
			Field: "thresholds.long_pause_min", Value: t.LongPauseMin,
			Message: "must be at least medium_pause_max",
		})
	}
	if t.HesitationMin <= 0 {
		errs = append(errs, &ValidationError{
			Field: "thresholds.hesitation_min", Value: t.HesitationMin,
			Message: "must be positive",
		})
	}
	if t.BurstIntervalMax <= 0 {
		errs = append(errs, &ValidationError{
			Field: "thresholds.burst_interval_max", Value: t.BurstIntervalMax,
			Message: "must be positive",
		})
	}
	if t.BurstMinLength < 2 {
		errs = append(errs, &ValidationError{
			Field: "thresholds.burst_min_length", Value: t.BurstMinLength,
			Message: "must be at least 2",
		})
	}

	return errs
}

func validateStorage(s *StorageConfig) ValidationErrors {
	var errs ValidationErrors

	if s.Path == "" {
		errs = append(errs, &ValidationError{
			Field: "storage.path", Value: s.Path,
			Message: "must not be empty",
		})
	}
	if s.RetainDays < 0 {
		errs = append(errs, &ValidationError{
			Field: "storage.retain_days", Value: s.RetainDays,
			Message: "must be non-negative",
		})
	}
	if s.BusyTimeoutMs < 0 {
		errs = append(errs, &ValidationError{
			Field: "storage.busy_timeout_ms", Value: s.BusyTimeoutMs,
			Message: "must be non-negative",
		})
	}

	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Field: "logging.level", Value: l.Level,
			Message: "must be one of debug, info, warn, error",
		})
	}

	switch strings.ToLower(l.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, &ValidationError{
			Field: "logging.format", Value: l.Format,
			Message: "must be text or json",
		})
	}

	switch strings.ToLower(l.Output) {
	case "", "stdout", "stderr", "file", "both":
	default:
		errs = append(errs, &ValidationError{
			Field: "logging.output", Value: l.Output,
			Message: "must be stdout, stderr, file, or both",
		})
	}

	if (l.Output == "file" || l.Output == "both") && l.FilePath == "" {
		errs = append(errs, &ValidationError{
			Field: "logging.file_path", Value: l.FilePath,
			Message: "required when output includes file",
		})
	}
	if l.MaxSizeMB < 0 {
		errs = append(errs, &ValidationError{
			Field: "logging.max_size_mb", Value: l.MaxSizeMB,
			Message: "must be non-negative",
		})
	}
	if l.MaxBackups < 0 {
		errs = append(errs, &ValidationError{
			Field: "logging.max_backups", Value: l.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errs
}
