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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/ordset/orderedset"
	"gopkg.in/yaml.v3"
)

const configFileName = ".ordset.yaml"

type DisplayConfig struct {
	Traversal string `yaml:"traversal"`
	ShowTree  bool   `yaml:"show_tree"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	BloomSize    uint `yaml:"bloom_size"`
	BloomHashes  uint `yaml:"bloom_hashes"`
}

type CacheConfig struct {
	Expiration string `yaml:"expiration"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Loader  LoaderConfig  `yaml:"loader"`
	Cache   CacheConfig   `yaml:"cache"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		Traversal: "in",
		ShowTree:  true,
	},
	Loader: LoaderConfig{
		ShowProgress: true,
		BloomSize:    100000,
		BloomHashes:  5,
	},
	Cache: CacheConfig{
		Expiration: renderCacheExpiration.String(),
	},
}

// TraversalOrder returns the configured order, falling back to in-order
func (c *Config) TraversalOrder() orderedset.Order {
	order, err := orderedset.ParseOrder(c.Display.Traversal)
	if err != nil {
		return orderedset.InOrder
	}
	return order
}

// CacheExpiration returns the configured render cache lifetime, falling back to the default
func (c *Config) CacheExpiration() time.Duration {
	d, err := time.ParseDuration(c.Cache.Expiration)
	if err != nil || d <= 0 {
		return renderCacheExpiration
	}
	return d
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfigCopy(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads the file at configPath over the defaults. Missing keys keep
// their default values; a missing or unreadable file yields the defaults.
func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfigCopy(), nil
		}
		return defaultConfigCopy(), fmt.Errorf("failed to read config file: %v", err)
	}

	config := defaultConfigCopy()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfigCopy(), fmt.Errorf("failed to parse config file: %v", err)
	}
	if config.Loader.BloomSize == 0 {
		config.Loader.BloomSize = defaultConfig.Loader.BloomSize
	}
	if config.Loader.BloomHashes == 0 {
		config.Loader.BloomHashes = defaultConfig.Loader.BloomHashes
	}

	return config, nil
}

func defaultConfigCopy() *Config {
	config := defaultConfig
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Ordset Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %straversal%s: %s\n", Green, Reset, config.TraversalOrder())
	fmt.Printf("  • %sshow_tree%s: %t\n\n", Green, Reset, config.Display.ShowTree)

	fmt.Printf("📥 %sLoader:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_progress%s: %t\n", Green, Reset, config.Loader.ShowProgress)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Loader.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Loader.BloomHashes)

	fmt.Printf("🗄  %sRender cache:%s\n", Green, Reset)
	fmt.Printf("  • %sexpiration%s: %s\n\n", Green, Reset, config.CacheExpiration())

	fmt.Printf("💡 Edit %s to change these settings.\n", configPath)
}
