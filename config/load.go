package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CHARGEBOTS_WORLD_FPS.
const EnvPrefix = "CHARGEBOTS"

// Load reads the config file at path on top of base. Keys missing from the
// file keep base's values. An empty path only applies environment overrides.
func Load(path string, base *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindDefaults(v, base); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := *base
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if c.Ruleset != base.Ruleset {
		if err := c.ApplyRuleset(c.Ruleset); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// bindDefaults registers every leaf key of base as a viper default.
// AutomaticEnv only consults keys viper already knows about, so a key left
// out here could never be overridden from the environment.
func bindDefaults(v *viper.Viper, base *Config) error {
	var tree map[string]interface{}
	if err := mapstructure.Decode(base, &tree); err != nil {
		return fmt.Errorf("flatten config: %w", err)
	}
	for key, value := range flattenKeys("", tree) {
		v.SetDefault(key, value)
	}
	return nil
}

// flattenKeys turns nested maps into dotted viper keys.
func flattenKeys(prefix string, tree map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(tree))
	for k, value := range tree {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if sub, ok := value.(map[string]interface{}); ok {
			for subKey, subValue := range flattenKeys(key, sub) {
				out[subKey] = subValue
			}
			continue
		}
		out[key] = value
	}
	return out
}
