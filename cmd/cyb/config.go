package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seuros/cypher-dsl/src/cypher"
)

type renderConfig struct {
	Indent   string `yaml:"indent"`
	BareCall bool   `yaml:"bare_call"`
}

func loadRenderOptions(path string) (cypher.RenderOptions, error) {
	opts := cypher.DefaultRenderOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	var cfg renderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return opts, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.Indent != "" {
		opts.Indent = cfg.Indent
	}
	opts.BareCall = cfg.BareCall
	return opts, nil
}
