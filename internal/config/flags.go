// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-prefix route path prefix
//	-d database DSN
//	-max-conns database pool ceiling
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-password-hash-cost bcrypt cost
//	-site-url public site URL used in the sitemap
//	-verify-url verification endpoint URL used in emails
//	-verify-redirect-url redirect target after verification
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-smtp-host, -smtp-port, -smtp-user, -smtp-password, -smtp-from mailer settings
//	-log-level zerolog level
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var pathPrefix string
	var databaseDSN string
	var maxConns int
	var jsonConfigPath string
	var tokenSignKey string
	var passwordHashCost int
	var siteURL, verifyURL, verifyRedirectURL string
	var requestTimeout time.Duration
	var smtpHost, smtpUser, smtpPassword, smtpFrom string
	var smtpPort int
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&pathPrefix, "prefix", "", "Route path prefix")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.IntVar(&maxConns, "max-conns", 0, "Database pool ceiling")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	flag.StringVar(&siteURL, "site-url", "", "Public site URL")
	flag.StringVar(&verifyURL, "verify-url", "", "Verification endpoint URL")
	flag.StringVar(&verifyRedirectURL, "verify-redirect-url", "", "Redirect target after verification")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&smtpHost, "smtp-host", "", "SMTP host")
	flag.IntVar(&smtpPort, "smtp-port", 0, "SMTP port")
	flag.StringVar(&smtpUser, "smtp-user", "", "SMTP username")
	flag.StringVar(&smtpPassword, "smtp-password", "", "SMTP password")
	flag.StringVar(&smtpFrom, "smtp-from", "", "Sender address")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			PasswordHashCost:  passwordHashCost,
			SiteURL:           siteURL,
			VerifyURL:         verifyURL,
			VerifyRedirectURL: verifyRedirectURL,
			LogLevel:          logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:      databaseDSN,
				MaxConns: maxConns,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			PathPrefix:     pathPrefix,
			RequestTimeout: requestTimeout,
		},
		Mailer: Mailer{
			Host:     smtpHost,
			Port:     smtpPort,
			Username: smtpUser,
			Password: smtpPassword,
			From:     smtpFrom,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
