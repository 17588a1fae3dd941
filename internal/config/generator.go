package config

import (
	"fmt"

	"vitrine-url-api/internal/generator"
	"vitrine-url-api/internal/variation"
)

// GeneratorOptions turns the generator settings into generator options,
// loading the variation file when one is configured
func (c GeneratorConfig) GeneratorOptions() ([]generator.Option, error) {
	var opts []generator.Option

	if c.VariationsFile != "" {
		set, err := variation.LoadFile(c.VariationsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load variations: %w", err)
		}
		opts = append(opts, generator.WithVariations(set))
	}
	if c.PlaceholderAliases {
		opts = append(opts, generator.WithPlaceholderAliases())
	}
	if c.ApplySyntaxRules {
		opts = append(opts, generator.WithSyntaxRules())
	}

	return opts, nil
}
