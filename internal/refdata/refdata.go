// Package refdata loads the reference tables the classification and trend
// logic run on: the facility master list with its aliases, the vessel
// classification table, the ordered keyword groups, and the synthetic trend
// baselines. The tables are versioned configuration, not code: the shipped
// defaults are embedded, and deployments can override any of them from a
// YAML file.
package refdata

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Facility is one canonical facility plus the textual variants that should
// normalize to it.
type Facility struct {
	Canonical string   `mapstructure:"canonical" validate:"required"`
	Aliases   []string `mapstructure:"aliases"`
}

// VesselClassRule maps name keywords to a vessel type.
type VesselClassRule struct {
	Type     string   `mapstructure:"type" validate:"required"`
	Keywords []string `mapstructure:"keywords" validate:"min=1"`
}

// KeywordGroup is one ordered entry of a first-match-wins keyword table.
type KeywordGroup struct {
	Type     string   `mapstructure:"type" validate:"required"`
	Keywords []string `mapstructure:"keywords" validate:"min=1"`
}

// FluidGroup is one ordered entry of the fluid classification table.
type FluidGroup struct {
	Family   string   `mapstructure:"family" validate:"required,oneof=drilling completion production-chemical diesel"`
	Keywords []string `mapstructure:"keywords" validate:"min=1"`
}

// Tables is the full reference data surface consumed by the engine.
type Tables struct {
	Facilities          []Facility         `mapstructure:"facilities" validate:"min=1,dive"`
	LocationStripTokens []string           `mapstructure:"location_strip_tokens"`
	VesselClasses       []VesselClassRule  `mapstructure:"vessel_classes" validate:"dive"`
	ProjectKeywords     []KeywordGroup     `mapstructure:"project_keywords" validate:"min=1,dive"`
	FluidKeywords       []FluidGroup       `mapstructure:"fluid_keywords" validate:"dive"`
	TrendBaselines      map[string]float64 `mapstructure:"trend_baselines" validate:"required"`
}

// TrendBaseline returns the synthetic baseline multiplier for a metric key,
// falling back to the "default" entry and then to 0.92.
func (t *Tables) TrendBaseline(metric string) float64 {
	if m, ok := t.TrendBaselines[metric]; ok && m > 0 {
		return m
	}
	if m, ok := t.TrendBaselines["default"]; ok && m > 0 {
		return m
	}
	return 0.92
}

// Load materializes the reference tables. The embedded defaults are read
// first; when path is non-empty the file at path is merged on top, so a site
// file only needs to list the tables it changes.
func Load(path string) (*Tables, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("read embedded refdata defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merge refdata overrides from %s: %w", path, err)
		}
	}

	tables := new(Tables)
	if err := v.Unmarshal(tables); err != nil {
		return nil, fmt.Errorf("unmarshal refdata: %w", err)
	}

	if err := validator.New().Struct(tables); err != nil {
		return nil, fmt.Errorf("invalid refdata: %w", err)
	}

	return tables, nil
}

// MustDefaults loads the embedded tables and panics on failure. The shipped
// defaults are covered by tests, so a panic here means a broken build.
func MustDefaults() *Tables {
	tables, err := Load("")
	if err != nil {
		panic(err)
	}
	return tables
}
