package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed preferences.schema.json
var preferencesSchema []byte

// legacyCheckKeys maps the camelCase keys of exported browser preferences
// onto check names
var legacyCheckKeys = map[string]string{
	"passiveVoice":  "passive-voice",
	"longSentences": "long-sentences",
	"complexWords":  "complex-words",
	"pronouns":      "pronouns",
	"weVsYou":       "we-vs-you",
	"ambiguous":     "ambiguous",
	"terminology":   "terminology",
	"headings":      "headings",
	"bullets":       "bullets",
	"acronyms":      "acronyms",
	"gendered":      "gendered",
	"imperative":    "imperative",
}

type legacyPreferences struct {
	Checks     map[string]bool `json:"checks"`
	Thresholds struct {
		LongSentence int `json:"longSentence"`
	} `json:"thresholds"`
	DarkMode bool `json:"darkMode"`
}

// ImportPreferences converts an exported preferences record
// ({"checks": {...}, "thresholds": {"longSentence": N}, "darkMode": bool})
// into a Config. The record is validated against an embedded JSON Schema first.
func ImportPreferences(data []byte) (Config, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(preferencesSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return Config{}, fmt.Errorf("read preferences: %w", err)
	}
	if !result.Valid() {
		ve := &ValidationError{}
		for _, e := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{Field: e.Field(), Message: e.Description()})
		}
		return Config{}, ve
	}

	var prefs legacyPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Config{}, fmt.Errorf("decode preferences: %w", err)
	}

	cfg := Default()
	for key, enabled := range prefs.Checks {
		cfg.Checks[legacyCheckKeys[key]] = enabled
	}
	if prefs.Thresholds.LongSentence > 0 {
		cfg.Thresholds.LongSentence = prefs.Thresholds.LongSentence
	}
	if prefs.DarkMode {
		cfg.Theme = ThemeDark
	}
	return cfg, nil
}
