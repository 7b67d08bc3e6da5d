package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configSource is one loaded configuration layer.
type configSource struct {
	name string
	cfg  *StructuredConfig
}

// configBuilder stacks configuration layers in priority order. Loading
// errors are collected so that every broken source is reported at once.
type configBuilder struct {
	sources []configSource
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]configSource, 0, 3),
	}
}

// build merges the layers, earlier ones winning, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(config, src.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s configs: %w", src.name, err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) add(name string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", name, err))
		return b
	}

	b.sources = append(b.sources, configSource{name: name, cfg: cfg})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add("env", cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add("flags", ParseFlags(), nil)
}

// withJSON loads the file named by the last layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	return b.add("json", cfg, err)
}

func (b *configBuilder) jsonPath() string {
	var path string
	for _, src := range b.sources {
		if src.cfg.JSONFilePath != "" {
			path = src.cfg.JSONFilePath
		}
	}
	return path
}
