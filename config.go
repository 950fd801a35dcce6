// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ordtree

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type MissFilterConfig struct {
	Enabled           bool    `yaml:"enabled"`
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	MissFilter MissFilterConfig `yaml:"miss_filter"`
}

var defaultConfig = Config{
	LogLevel: "info",
	MissFilter: MissFilterConfig{
		Enabled:           false,
		ExpectedKeys:      defaultFilterKeys,
		FalsePositiveRate: defaultFalsePositiveRate,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// ParseConfig decodes YAML settings on top of the defaults. On a decoding
// error it returns the defaults together with the error.
func ParseConfig(data []byte) (*Config, error) {
	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrap(err, "failed to parse tree config")
	}
	return &config, nil
}

// Options turns the settings into tree options.
func (c *Config) Options() ([]Option, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	opts := []Option{WithLogger(logger.WithField("component", "ordtree"))}

	if c.MissFilter.Enabled {
		opts = append(opts, WithMissFilter(c.MissFilter.ExpectedKeys, c.MissFilter.FalsePositiveRate))
	}
	return opts, nil
}
