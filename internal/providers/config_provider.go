package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"hubdash/internal/structures"
)

const AppName = "HubDash"

var envBindings = map[string]string{
	"webServer.host":      "HUBDASH_HOST",
	"webServer.port":      "HUBDASH_PORT",
	"logger.level":        "HUBDASH_LOG_LEVEL",
	"logger.dir":          "HUBDASH_LOG_DIR",
	"cache.enabled":       "HUBDASH_CACHE_ENABLED",
	"cache.size":          "HUBDASH_CACHE_SIZE",
	"metrics.enabled":     "HUBDASH_METRICS_ENABLED",
	"store.seed":          "HUBDASH_SEED",
	"monitor.enabled":     "HUBDASH_MONITOR_ENABLED",
	"notifier.enabled":    "HUBDASH_NATS_ENABLED",
	"notifier.url":        "HUBDASH_NATS_URL",
	"cors.allowedOrigins": "HUBDASH_CORS_ORIGINS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 5000)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "./logs")
	v.SetDefault("cache.size", 16)
	v.SetDefault("cache.ttl", 5*time.Second)
	v.SetDefault("store.seed", true)
	v.SetDefault("monitor.interval", time.Minute)
	v.SetDefault("monitor.staleAfter", 5*time.Minute)
	v.SetDefault("notifier.subjectPrefix", "hubdash")
	v.SetDefault("notifier.maxRetries", 3)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("unable to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
