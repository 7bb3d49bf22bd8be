package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"motionlab/internal/core/theme"
	"motionlab/internal/ui/preferences"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	envPrefix        = "MOTIONLAB_"
)

type yamlSettings struct {
	Theme             string `yaml:"theme" koanf:"theme"`
	PreviewDebounceMS int    `yaml:"preview_debounce_ms" koanf:"preview_debounce_ms"`
	BoxAnimationMS    int    `yaml:"box_animation_ms" koanf:"box_animation_ms"`
	LoadingSeconds    int    `yaml:"loading_seconds" koanf:"loading_seconds"`
	FeedbackDisplayMS int    `yaml:"feedback_display_ms" koanf:"feedback_display_ms"`
	MaxCalculations   int    `yaml:"max_calculations" koanf:"max_calculations"`
}

// SettingsPath returns the settings file location inside configDir.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

// LoadSettings reads user preferences from the YAML file at path, then
// overlays MOTIONLAB_* environment variables. A missing file yields the
// defaults; invalid values keep their defaults.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return settings, fmt.Errorf("read settings file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return settings, fmt.Errorf("access settings file: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return settings, fmt.Errorf("load env overrides: %w", err)
	}

	var fileData yamlSettings
	if err := k.Unmarshal("", &fileData); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}

	applyYamlSettings(&settings, fileData, k.Exists("preview_debounce_ms"))
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Theme:             settings.Theme.String(),
		PreviewDebounceMS: int(settings.PreviewDebounce / time.Millisecond),
		BoxAnimationMS:    int(settings.BoxAnimation / time.Millisecond),
		LoadingSeconds:    int(settings.LoadingDuration / time.Second),
		FeedbackDisplayMS: int(settings.FeedbackDisplay / time.Millisecond),
		MaxCalculations:   settings.MaxCalculations,
	}

	serialized, err := yamlv3.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings, hasDebounce bool) {
	if selection, err := theme.Parse(fileData.Theme); err == nil {
		settings.Theme = selection
	}
	// Zero is a valid wait: the preview still runs on the next loop turn.
	if hasDebounce && fileData.PreviewDebounceMS >= 0 {
		settings.PreviewDebounce = time.Duration(fileData.PreviewDebounceMS) * time.Millisecond
	}
	if fileData.BoxAnimationMS > 0 {
		settings.BoxAnimation = time.Duration(fileData.BoxAnimationMS) * time.Millisecond
	}
	if fileData.LoadingSeconds > 0 {
		settings.LoadingDuration = time.Duration(fileData.LoadingSeconds) * time.Second
	}
	if fileData.FeedbackDisplayMS > 0 {
		settings.FeedbackDisplay = time.Duration(fileData.FeedbackDisplayMS) * time.Millisecond
	}
	if fileData.MaxCalculations > 0 {
		settings.MaxCalculations = fileData.MaxCalculations
	}
}
