// Package config provides configuration management for the BORICA gateway tooling.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"fmt"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the gateway client and the form preview server.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug  bool   `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Gateway  struct {
		Sandbox            bool   `yaml:"sandbox" env:"BORICA_SANDBOX" env-default:"false"`
		MacMode            string `yaml:"mac_mode" env:"BORICA_MAC_MODE" env-default:"extended"`
		PrivateKey         string `yaml:"private_key" env:"BORICA_PRIVATE_KEY" env-default:""`
		PrivateKeyPassword string `yaml:"private_key_password" env:"BORICA_PRIVATE_KEY_PASSWORD" env-default:""`
		Certificate        string `yaml:"certificate" env:"BORICA_CERTIFICATE" env-default:""`
		// KeyFromString means PrivateKey and Certificate hold PEM text instead of file paths
		KeyFromString      bool   `yaml:"key_from_string" env:"BORICA_KEY_FROM_STRING" env-default:"false"`
		Terminal           string `yaml:"terminal" env:"BORICA_TERMINAL" env-default:""`
		Merchant           string `yaml:"merchant" env:"BORICA_MERCHANT" env-default:""`
		MerchantName       string `yaml:"merchant_name" env:"BORICA_MERCHANT_NAME" env-default:""`
		MerchantUrl        string `yaml:"merchant_url" env:"BORICA_MERCHANT_URL" env-default:""`
		BackRefUrl         string `yaml:"back_ref_url" env:"BORICA_BACK_REF_URL" env-default:""`
		Currency           string `yaml:"currency" env:"BORICA_CURRENCY" env-default:"BGN"`
		Country            string `yaml:"country" env:"BORICA_COUNTRY" env-default:"BG"`
		Timezone           string `yaml:"timezone" env:"BORICA_TIMEZONE" env-default:"+03"`
		Language           string `yaml:"language" env:"BORICA_LANGUAGE" env-default:"BG"`
	} `yaml:"gateway"`
	Listen struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"PORT" env-default:"5100"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"borica"`
	} `yaml:"mongo"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// Configuration values can be overridden by environment variables.
// This function uses a singleton pattern and only loads the config once.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return instance, err
}

// Load reads a fresh configuration without touching the singleton. An empty
// path reads the environment only.
func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(conf)
	} else {
		err = cleanenv.ReadConfig(path, conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	return conf, nil
}
