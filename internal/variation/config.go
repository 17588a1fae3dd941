// Package variation holds the SpinText and SyntaxText configurations used to
// derive related URLs for a vehicle.
//
// The defaults ship with the binary. A tenant may override them with a YAML
// file; the loaded Set is passed to the generator instead of mutating any
// package state.
package variation

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownRule  = errors.New("unknown syntax rule")
	ErrEmptyPattern = errors.New("variation pattern is empty")
)

// SpinTextConfig lists interchangeable phrasings. Every variation is rendered
// as its own pattern.
type SpinTextConfig struct {
	Name       string   `json:"name" yaml:"name" validate:"required"`
	Pattern    string   `json:"pattern" yaml:"pattern" validate:"required"`
	Variations []string `json:"variations" yaml:"variations" validate:"required,min=1,dive,required"`
}

// SyntaxTextConfig is a pattern plus the named rules meant to post-process it
type SyntaxTextConfig struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Pattern string `json:"pattern" yaml:"pattern" validate:"required"`
	Rules   []Rule `json:"syntax_rules" yaml:"syntax_rules" validate:"dive,syntaxrule"`
}

// Set bundles both kinds of configuration
type Set struct {
	SpinText   []SpinTextConfig   `json:"spintext" yaml:"spintext" validate:"dive"`
	SyntaxText []SyntaxTextConfig `json:"syntaxtext" yaml:"syntaxtext" validate:"dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("syntaxrule", func(fl validator.FieldLevel) bool {
		return Rule(fl.Field().String()).Valid()
	})
	return v
}

var defaultSpinText = []SpinTextConfig{
	{
		Name:    "comprar-carro",
		Pattern: "/{comprar-carro}/{brand_slug}-{model_slug}-{year}",
		Variations: []string{
			"/comprar-carro/{brand_slug}-{model_slug}-{year}",
			"/comprar-carro-usado/{brand_slug}-{model_slug}-{year}",
			"/comprar-carro-seminovo/{brand_slug}-{model_slug}-{year}",
			"/carros-a-venda/{brand_slug}-{model_slug}-{year}",
		},
	},
	{
		Name:    "slug-do-carro",
		Pattern: "/{slug-do-carro}",
		Variations: []string{
			"/{brand_slug}-{model_slug}-{year}",
			"/{brand_slug}/{model_slug}-{year}",
			"/{model_slug}-{year}",
			"/{brand_slug}-{model_slug}",
		},
	},
	{
		Name:    "cidade-uf",
		Pattern: "/{brand_slug}-{model_slug}-{year}/{cidade-uf}",
		Variations: []string{
			"/{brand_slug}-{model_slug}-{year}/{city_slug}-{state_slug}",
			"/{city_slug}-{state_slug}/{brand_slug}-{model_slug}-{year}",
			"/{city_slug}/{brand_slug}-{model_slug}-{year}",
		},
	},
}

var defaultSyntaxText = []SyntaxTextConfig{
	{
		Name:    "vehicle-basic-path",
		Pattern: "/{brand_slug}/{model_slug}-{year}",
		Rules:   []Rule{RuleLowercase, RuleRemoveAccents, RuleRemoveSpecialChars, RuleReplaceSpaces},
	},
	{
		Name:    "vehicle-city-path",
		Pattern: "/{brand_slug}/{model_slug}-{year}/{city_slug}-{state_slug}",
		Rules:   []Rule{RuleLowercase, RuleReplaceSpaces, RuleAddLocationSuffix},
	},
	{
		Name:    "vehicle-neighborhood-path",
		Pattern: "/{brand_slug}/{model_slug}-{year}/{city_slug}/{neighborhood_slug}-{state_slug}",
		Rules:   []Rule{RuleLowercase, RuleReplaceSpaces, RuleAddNeighborhoodSuffix},
	},
}

// DefaultSet returns a fresh copy of the built-in configuration
func DefaultSet() Set {
	return Set{
		SpinText:   cloneSpin(defaultSpinText),
		SyntaxText: cloneSyntax(defaultSyntaxText),
	}
}

// LoadFile reads a YAML variation file. Sections missing from the file keep
// the defaults.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read variation file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML variation document
func Parse(data []byte) (Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("failed to parse variation file: %w", err)
	}

	defaults := DefaultSet()
	if set.SpinText == nil {
		set.SpinText = defaults.SpinText
	}
	if set.SyntaxText == nil {
		set.SyntaxText = defaults.SyntaxText
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Validate checks required fields and rule names
func (s Set) Validate() error {
	for _, cfg := range s.SyntaxText {
		for _, r := range cfg.Rules {
			if !r.Valid() {
				return fmt.Errorf("syntaxtext %q: %w: %s", cfg.Name, ErrUnknownRule, r)
			}
		}
	}
	for _, cfg := range s.SpinText {
		if cfg.Pattern == "" {
			return fmt.Errorf("spintext %q: %w", cfg.Name, ErrEmptyPattern)
		}
	}
	for _, cfg := range s.SyntaxText {
		if cfg.Pattern == "" {
			return fmt.Errorf("syntaxtext %q: %w", cfg.Name, ErrEmptyPattern)
		}
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid variation config: %w", err)
	}
	return nil
}

func cloneSpin(in []SpinTextConfig) []SpinTextConfig {
	out := make([]SpinTextConfig, len(in))
	for i, c := range in {
		c.Variations = append([]string(nil), c.Variations...)
		out[i] = c
	}
	return out
}

func cloneSyntax(in []SyntaxTextConfig) []SyntaxTextConfig {
	out := make([]SyntaxTextConfig, len(in))
	for i, c := range in {
		c.Rules = append([]Rule(nil), c.Rules...)
		out[i] = c
	}
	return out
}
