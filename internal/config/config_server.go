package config

import "fmt"

// ServerStorage holds the draft server's database settings.
type ServerStorage struct {
	DB DBConfig
}

// ServerConfig is the draft server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage ServerStorage
	Server  Server
}

// GetServerConfig builds and validates the draft server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerConfig()
	return serverCfg, serverCfg.validate()
}

// ServerConfig projects the fields the draft server uses.
func (cfg *StructuredConfig) ServerConfig() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: ServerStorage{DB: cfg.Storage.DB},
		Server:  cfg.Server,
	}
}
