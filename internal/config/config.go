// Package config supplies environment-backed defaults for the fdt command.
// The tool deliberately reads no configuration file; defaults come from
// compiled-in values overridden by FDT_-prefixed environment variables.
package config

import (
	"github.com/spf13/viper"

	"github.com/fdtree/fdt/internal/tokenizer"
	"github.com/fdtree/fdt/internal/types"
)

const (
	environmentPrefix = "FDT"

	formatSettingKey   = "format"
	maxDepthSettingKey = "max_depth"
	modelSettingKey    = "model"

	// DefaultMaxDepth is the recursion budget used when --max-depth is absent.
	DefaultMaxDepth = 10
)

// Settings carries the resolved defaults consumed by the CLI layer. Command
// line flags still override every value here.
type Settings struct {
	Format   string
	MaxDepth int
	Model    string
}

// Load resolves settings from compiled-in defaults and the process
// environment (FDT_FORMAT, FDT_MAX_DEPTH, FDT_MODEL).
func Load() Settings {
	reader := viper.New()
	reader.SetEnvPrefix(environmentPrefix)
	reader.AutomaticEnv()
	reader.SetDefault(formatSettingKey, types.FormatRaw)
	reader.SetDefault(maxDepthSettingKey, DefaultMaxDepth)
	reader.SetDefault(modelSettingKey, tokenizer.DefaultModel)

	return Settings{
		Format:   reader.GetString(formatSettingKey),
		MaxDepth: reader.GetInt(maxDepthSettingKey),
		Model:    reader.GetString(modelSettingKey),
	}
}
