/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config persists the user-editable application configuration as a
// YAML file in the user scope. Environment variables are read-only
// overrides applied at load time. The engine sections translate directly
// into the per-query configs of the snapping/alignment engine.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"godrafter/internal/align"
	"godrafter/internal/distribute"
	"godrafter/internal/engine"
	"godrafter/internal/geom"
	"godrafter/internal/snap"
)

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // "system" | "light" | "dark"
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type GridConfig struct {
	Enabled          bool    `yaml:"enabled"`
	PrimarySpacing   float64 `yaml:"primary_spacing"`
	SecondarySpacing float64 `yaml:"secondary_spacing"`
	OriginX          float64 `yaml:"origin_x"`
	OriginY          float64 `yaml:"origin_y"`
}

type SnapConfig struct {
	Enabled       bool     `yaml:"enabled"`
	SnapRadius    float64  `yaml:"snap_radius"`
	ActiveKinds   []string `yaml:"active_kinds"`
	MaxCandidates int      `yaml:"max_candidates"`
}

type AlignmentConfig struct {
	Enabled           bool    `yaml:"enabled"`
	Threshold         float64 `yaml:"alignment_threshold"`
	SnapStrength      float64 `yaml:"snap_strength"`
	ShowCenterGuides  bool    `yaml:"show_center_guides"`
	ShowEdgeGuides    bool    `yaml:"show_edge_guides"`
	ShowSpacingGuides bool    `yaml:"show_spacing_guides"`
	MaxGuides         int     `yaml:"max_guides"`
}

type DistributionConfig struct {
	MinimumSpacing     float64 `yaml:"minimum_spacing"`
	PreferredDirection string  `yaml:"preferred_direction"` // "", "horizontal", "vertical", "grid"
}

type EngineSection struct {
	Grid         GridConfig         `yaml:"grid"`
	Snap         SnapConfig         `yaml:"snap"`
	Alignment    AlignmentConfig    `yaml:"alignment"`
	Distribution DistributionConfig `yaml:"distribution"`
}

// AppConfig is the persisted configuration. config_version is bumped on
// backward-incompatible structure changes.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Logging       LoggingConfig `yaml:"logging"`
	Engine        EngineSection `yaml:"engine"`
}

// Defaults returns the application defaults, mirroring the engine's own.
func Defaults() AppConfig {
	eng := engine.DefaultConfig()
	kinds := make([]string, 0, len(eng.Snap.ActiveKinds))
	for k := range eng.Snap.ActiveKinds {
		kinds = append(kinds, string(k))
	}
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: "system"},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		Engine: EngineSection{
			Grid: GridConfig{
				Enabled:          eng.Grid.Enabled,
				PrimarySpacing:   eng.Grid.PrimarySpacing,
				SecondarySpacing: eng.Grid.SecondarySpacing,
			},
			Snap: SnapConfig{
				Enabled:       eng.Snap.Enabled,
				SnapRadius:    eng.Snap.SnapRadius,
				ActiveKinds:   kinds,
				MaxCandidates: eng.Snap.MaxCandidates,
			},
			Alignment: AlignmentConfig{
				Enabled:           eng.Alignment.Enabled,
				Threshold:         eng.Alignment.Threshold,
				SnapStrength:      eng.Alignment.SnapStrength,
				ShowCenterGuides:  eng.Alignment.ShowCenterGuides,
				ShowEdgeGuides:    eng.Alignment.ShowEdgeGuides,
				ShowSpacingGuides: eng.Alignment.ShowSpacingGuides,
				MaxGuides:         eng.Alignment.MaxGuides,
			},
			Distribution: DistributionConfig{
				MinimumSpacing: eng.Distribution.MinimumSpacing,
			},
		},
	}
}

// Env var names used as overrides.
const (
	EnvTelemetryOptIn = "GDR_TELEMETRY_OPT_IN"
	EnvLogLevel       = "GDR_LOG_LEVEL"
	EnvLogFormat      = "GDR_LOG_FORMAT"
	EnvLogSource      = "GDR_LOG_SOURCE"
	EnvLogFile        = "GDR_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoDrafter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoDrafter")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".config", "godrafter")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides.
//
// The file is unmarshaled over a defaults-seeded value, so only keys the
// file actually contains override anything; a partial file (say, just a
// logging section) leaves every engine switch at its default.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		merged := cfg
		// decoding must not alias the defaults' slice
		merged.Engine.Snap.ActiveKinds = append([]string(nil), cfg.Engine.Snap.ActiveKinds...)
		if err := yaml.Unmarshal(data, &merged); err == nil {
			cfg = merged
		}
	}
	normalize(&cfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// normalize cleans up user-supplied values after the file merge: string
// fields are canonicalized and numeric fields that must be positive fall
// back to their defaults instead of silently disabling a subsystem.
func normalize(cfg *AppConfig) {
	def := Defaults()
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)

	if cfg.Engine.Grid.PrimarySpacing <= 0 {
		cfg.Engine.Grid.PrimarySpacing = def.Engine.Grid.PrimarySpacing
	}
	if cfg.Engine.Grid.SecondarySpacing <= 0 {
		cfg.Engine.Grid.SecondarySpacing = def.Engine.Grid.SecondarySpacing
	}
	if cfg.Engine.Snap.SnapRadius <= 0 {
		cfg.Engine.Snap.SnapRadius = def.Engine.Snap.SnapRadius
	}
	if cfg.Engine.Snap.MaxCandidates <= 0 {
		cfg.Engine.Snap.MaxCandidates = def.Engine.Snap.MaxCandidates
	}
	if len(cfg.Engine.Snap.ActiveKinds) == 0 {
		cfg.Engine.Snap.ActiveKinds = def.Engine.Snap.ActiveKinds
	}
	if cfg.Engine.Alignment.Threshold <= 0 {
		cfg.Engine.Alignment.Threshold = def.Engine.Alignment.Threshold
	}
	if cfg.Engine.Alignment.SnapStrength <= 0 {
		cfg.Engine.Alignment.SnapStrength = def.Engine.Alignment.SnapStrength
	}
	if cfg.Engine.Alignment.MaxGuides <= 0 {
		cfg.Engine.Alignment.MaxGuides = def.Engine.Alignment.MaxGuides
	}
	if cfg.Engine.Distribution.MinimumSpacing <= 0 {
		cfg.Engine.Distribution.MinimumSpacing = def.Engine.Distribution.MinimumSpacing
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// EngineConfig translates the YAML sections into the engine's config types.
// Unknown snap kind strings are carried through; the selector never matches
// them, which is the documented behavior for unrecognized kinds.
func (c AppConfig) EngineConfig() engine.Config {
	kinds := make(map[snap.Kind]bool, len(c.Engine.Snap.ActiveKinds))
	for _, k := range c.Engine.Snap.ActiveKinds {
		kinds[snap.Kind(strings.ToLower(strings.TrimSpace(k)))] = true
	}
	return engine.Config{
		Grid: snap.GridConfig{
			Enabled:          c.Engine.Grid.Enabled,
			PrimarySpacing:   c.Engine.Grid.PrimarySpacing,
			SecondarySpacing: c.Engine.Grid.SecondarySpacing,
			Origin:           geom.Pt(c.Engine.Grid.OriginX, c.Engine.Grid.OriginY),
		},
		Snap: snap.Config{
			Enabled:       c.Engine.Snap.Enabled,
			SnapRadius:    c.Engine.Snap.SnapRadius,
			ActiveKinds:   kinds,
			MaxCandidates: c.Engine.Snap.MaxCandidates,
		},
		Alignment: align.Config{
			Enabled:           c.Engine.Alignment.Enabled,
			Threshold:         c.Engine.Alignment.Threshold,
			SnapStrength:      c.Engine.Alignment.SnapStrength,
			ShowCenterGuides:  c.Engine.Alignment.ShowCenterGuides,
			ShowEdgeGuides:    c.Engine.Alignment.ShowEdgeGuides,
			ShowSpacingGuides: c.Engine.Alignment.ShowSpacingGuides,
			MaxGuides:         c.Engine.Alignment.MaxGuides,
		},
		Distribution: distribute.Options{
			MinimumSpacing:     c.Engine.Distribution.MinimumSpacing,
			PreferredDirection: distribute.Direction(c.Engine.Distribution.PreferredDirection),
		},
	}
}
