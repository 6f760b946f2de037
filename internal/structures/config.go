package structures

import "time"

type Server struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required|uint|min:1|max:65535"`
	Compress bool   `mapstructure:"compress"`
}

type LoggerConfig struct {
	Level   string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode    uint32 `mapstructure:"mode" validate:"required|uint"`
	Dir     string `mapstructure:"dir" validate:"required"`
	Console bool   `mapstructure:"console"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Size in megabytes
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type CORSConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type StoreConfig struct {
	Seed bool `mapstructure:"seed"`
}

type MonitorConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Interval   time.Duration `mapstructure:"interval"`
	StaleAfter time.Duration `mapstructure:"staleAfter"`
}

type NotifierConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subjectPrefix"`
	MaxRetries    int    `mapstructure:"maxRetries" validate:"min:0|max:10"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `mapstructure:"webServer"`
	Logger    LoggerConfig   `mapstructure:"logger"`
	Cache     CacheConfig    `mapstructure:"cache"`
	Metrics   MetricsConfig  `mapstructure:"metrics"`
	CORS      CORSConfig     `mapstructure:"cors"`
	Store     StoreConfig    `mapstructure:"store"`
	Monitor   MonitorConfig  `mapstructure:"monitor"`
	Notifier  NotifierConfig `mapstructure:"notifier"`
}
