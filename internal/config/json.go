// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string `json:"token_sign_key"`
		PasswordHashCost  int    `json:"password_hash_cost"`
		SiteURL           string `json:"site_url"`
		VerifyURL         string `json:"verify_url"`
		VerifyRedirectURL string `json:"verify_redirect_url"`
		LogLevel          string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN      string `json:"dsn"`
			MaxConns int    `json:"max_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		PathPrefix     string   `json:"path_prefix"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mailer struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
		SSL      bool   `json:"ssl"`
	} `json:"mailer,omitempty"`

	Workers struct {
		MailQueueSize int `json:"mail_queue_size"`
		MailWorkers   int `json:"mail_workers"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			PasswordHashCost:  jsonCfg.App.PasswordHashCost,
			SiteURL:           jsonCfg.App.SiteURL,
			VerifyURL:         jsonCfg.App.VerifyURL,
			VerifyRedirectURL: jsonCfg.App.VerifyRedirectURL,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:      jsonCfg.Storage.DB.DSN,
				MaxConns: jsonCfg.Storage.DB.MaxConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			PathPrefix:     jsonCfg.Server.PathPrefix,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mailer: Mailer{
			Host:     jsonCfg.Mailer.Host,
			Port:     jsonCfg.Mailer.Port,
			Username: jsonCfg.Mailer.Username,
			Password: jsonCfg.Mailer.Password,
			From:     jsonCfg.Mailer.From,
			SSL:      jsonCfg.Mailer.SSL,
		},
		Workers: Workers{
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
			MailWorkers:   jsonCfg.Workers.MailWorkers,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
