package cmd

import (
	"fmt"

	"borica/config"
	"borica/internal"
	"borica/services"
)

// App holds what the commands share: the config path and, once loaded, the
// configuration and the optional log sink.
type App struct {
	ConfigPath string
	Version    string

	conf  *config.Config
	mongo *internal.MongoDB
}

func (a *App) Config() (*config.Config, error) {
	if a.conf != nil {
		return a.conf, nil
	}
	conf, err := config.Load(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	a.conf = conf
	return conf, nil
}

// Mongo returns the log sink, nil when disabled.
func (a *App) Mongo() (*internal.MongoDB, error) {
	conf, err := a.Config()
	if err != nil {
		return nil, err
	}
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	if a.mongo == nil {
		if a.mongo, err = internal.NewMongoClient(conf); err != nil {
			return nil, fmt.Errorf("mongo client: %w", err)
		}
	}
	return a.mongo, nil
}

func (a *App) Logger(category string) (*internal.Logger, error) {
	conf, err := a.Config()
	if err != nil {
		return nil, err
	}
	mongo, err := a.Mongo()
	if err != nil {
		return nil, err
	}
	var writer services.LogWriter
	if mongo != nil {
		writer = mongo
	}
	level := conf.LogLevel
	if conf.IsDebug {
		level = "debug"
	}
	return internal.NewLoggerLevel(category, level, writer), nil
}

// Checkout builds the gateway from the configuration.
func (a *App) Checkout(category string) (*internal.Checkout, *internal.Logger, error) {
	conf, err := a.Config()
	if err != nil {
		return nil, nil, err
	}
	logger, err := a.Logger(category)
	if err != nil {
		return nil, nil, err
	}
	gateway, err := internal.NewGatewayFromConfig(conf)
	if err != nil {
		logger.Error("gateway", err)
		return nil, nil, err
	}
	checkout := internal.NewCheckout(conf, gateway)
	checkout.SetLogger(logger)
	return checkout, logger, nil
}
