package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alovak/cardcheck/classifier"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"http-addr":     "http_addr",
	"audit-backend": "audit_backend",
	"db-dsn":        "db_dsn",
	"pan-hash-key":  "pan_hash_key",
	"log-level":     "log_level",
}

// Load resolves the classifier configuration from, in increasing precedence:
// defaults, cardcheck.yaml (or cfgFile), CARDCHECK_* environment variables and
// flags set on cmd.
func Load(cmd *cobra.Command, cfgFile string) (*classifier.Config, error) {
	v := viper.New()

	def := classifier.DefaultConfig()
	v.SetDefault("http_addr", def.HTTPAddr)
	v.SetDefault("audit_backend", def.AuditBackend)
	v.SetDefault("db_dsn", def.DBDSN)
	v.SetDefault("pan_hash_key", def.PANHashKey)
	v.SetDefault("log_level", def.LogLevel)

	v.SetConfigName("cardcheck")
	v.SetConfigType("yaml")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "cardcheck"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("cardcheck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var c classifier.Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}
