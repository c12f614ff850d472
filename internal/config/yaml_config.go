package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the sources file.
// Template sets are easier to manage in YAML than in env vars.
type YAMLConfig struct {
	Sources   []SourceConfig `yaml:"sources"`
	Countries []OptionConfig `yaml:"countries"`
	Languages []OptionConfig `yaml:"languages"`
}

// SourceConfig overrides the templates of one stub source variant.
type SourceConfig struct {
	Name      string           `yaml:"name"`
	Templates []TemplateConfig `yaml:"templates"`
}

// TemplateConfig produces one row: the seed keyword followed by Suffix.
type TemplateConfig struct {
	Suffix      string  `yaml:"suffix"`
	Volume      int64   `yaml:"volume"`
	CPC         float64 `yaml:"cpc"`
	Competition float64 `yaml:"competition"`
}

// OptionConfig is one selectable entry on the search form.
type OptionConfig struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

// LoadYAMLConfig loads the sources file at path.
// Returns nil without error if the file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Sources file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetSourceByName finds a source override by variant name.
func (c *YAMLConfig) GetSourceByName(name string) *SourceConfig {
	if c == nil {
		return nil
	}
	for i := range c.Sources {
		if c.Sources[i].Name == name {
			return &c.Sources[i]
		}
	}
	return nil
}

// CountryOptions returns the configured countries, or the defaults when unset.
func (c *YAMLConfig) CountryOptions() []OptionConfig {
	if c == nil || len(c.Countries) == 0 {
		return DefaultCountries
	}
	return c.Countries
}

// LanguageOptions returns the configured languages, or the defaults when unset.
func (c *YAMLConfig) LanguageOptions() []OptionConfig {
	if c == nil || len(c.Languages) == 0 {
		return DefaultLanguages
	}
	return c.Languages
}

// DefaultCountries are offered on the search form when no sources file lists any.
var DefaultCountries = []OptionConfig{
	{Code: "KR", Label: "대한민국 (KR)"},
	{Code: "US", Label: "United States (US)"},
	{Code: "JP", Label: "日本 (JP)"},
	{Code: "DE", Label: "Deutschland (DE)"},
}

// DefaultLanguages are offered on the search form when no sources file lists any.
var DefaultLanguages = []OptionConfig{
	{Code: "ko", Label: "한국어 (ko)"},
	{Code: "en", Label: "English (en)"},
	{Code: "ja", Label: "日本語 (ja)"},
	{Code: "de", Label: "Deutsch (de)"},
}
