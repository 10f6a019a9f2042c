// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate rejects values no source could have meant; missing values are
// checked by the client and server views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidConfig)
	}
	if cfg.Workers.AutosaveInterval < 0 {
		return fmt.Errorf("%w: negative autosave interval", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.AutosaveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Exam.UserID == "" && cfg.Adapter.Token == "" {
		return fmt.Errorf("%w: user id or token is required", ErrInvalidExamConfigs)
	}

	if cfg.Exam.ExamID == "" || len(cfg.Exam.Problems) == 0 || len(cfg.Exam.Languages) == 0 {
		return fmt.Errorf("%w: exam id, problems and languages are required", ErrInvalidExamConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidConfig)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
