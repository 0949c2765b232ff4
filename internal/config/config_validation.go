// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultHTTPAddress    = "0.0.0.0:8080"
	DefaultPathPrefix     = "/qccareerschool"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxConns       = 100
	DefaultMailerPort     = 587
	DefaultMailQueueSize  = 100
	DefaultMailWorkers    = 1
	DefaultLogLevel       = "debug"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.PathPrefix == "" {
		cfg.Server.PathPrefix = DefaultPathPrefix
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.MaxConns == 0 {
		cfg.Storage.DB.MaxConns = DefaultMaxConns
	}
	if cfg.Mailer.Port == 0 {
		cfg.Mailer.Port = DefaultMailerPort
	}
	if cfg.Workers.MailQueueSize == 0 {
		cfg.Workers.MailQueueSize = DefaultMailQueueSize
	}
	if cfg.Workers.MailWorkers == 0 {
		cfg.Workers.MailWorkers = DefaultMailWorkers
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.DefaultCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be between %d and %d",
			ErrInvalidAppConfigs, bcrypt.DefaultCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxConns < 0 {
		return fmt.Errorf("%w: max conns must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.MailQueueSize < 0 || cfg.Workers.MailWorkers < 0 {
		return fmt.Errorf("%w: queue size and worker count must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}
