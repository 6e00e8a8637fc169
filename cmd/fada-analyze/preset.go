// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset bundles the analysis settings for one run. Values from a YAML file
// override the command-line flags.
type Preset struct {
	WindowFrames int  `yaml:"window_frames"`
	Bars         int  `yaml:"bars"`
	Channel      int  `yaml:"channel"`
	Step         int  `yaml:"step"`
	Verbose      bool `yaml:"verbose"`
}

// Load merges the settings from a YAML preset file into p.
func (p *Preset) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset: %w", err)
	}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("failed to parse preset: %w", err)
	}
	if p.WindowFrames <= 0 {
		return fmt.Errorf("preset window_frames must be positive, got %d", p.WindowFrames)
	}
	return nil
}
