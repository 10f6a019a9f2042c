package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultAdapterRequestTimeout = 5 * time.Second
	defaultAutosaveInterval      = 30 * time.Second
	defaultClientDBFile          = "drafts.db"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs request bodies with the HashSHA256 header when set.
	HashKey string
}

// ClientAdapter holds network settings of the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientStorage holds the local cache settings.
type ClientStorage struct {
	DB DBConfig
}

type ClientWorkers struct {
	AutosaveInterval time.Duration
}

// ClientConfig is the exam client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Exam    Exam
}

// GetClientConfig builds the client configuration, fills in defaults and
// validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	clientCfg.setDefaults()

	return clientCfg, clientCfg.validate()
}

// ClientConfig projects the fields the exam client uses.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: cfg.Storage.DB,
		},
		Workers: ClientWorkers{AutosaveInterval: cfg.Workers.AutosaveInterval},
		Exam:    cfg.Exam,
	}
}

func (cfg *ClientConfig) setDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterRequestTimeout
	}
	if cfg.Workers.AutosaveInterval <= 0 {
		cfg.Workers.AutosaveInterval = defaultAutosaveInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultClientDSN()
	}
}

// defaultClientDSN places the cache in the user's config directory, or in
// the working directory when there is none.
func defaultClientDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultClientDBFile
	}
	return filepath.Join(dir, "exam-drafts", defaultClientDBFile)
}
