// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package entrypoint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dell/csm-blockdevice-adapter/internal/backend"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Driver configuration keys
const (
	KeyUsername       = "username"
	KeyPassword       = "password"
	KeyManagementIP   = "management_ip"
	KeyDefaultService = "default_service"
	KeyManagementPort = "management_port"
	KeyLogLevel       = "log_level"
	KeyManagementType = "management_type"
	KeyVerifySSL      = "verify_ssl_certificate"
	KeyHostname       = "hostname"
)

const (
	// DefaultLogLevel is used when log_level is not set
	DefaultLogLevel = "INFO"
	// DefaultVerifySSL is used when verify_ssl_certificate is not set
	DefaultVerifySSL = true
)

var (
	// MandatoryKeys must be present in every driver configuration
	MandatoryKeys = []string{KeyUsername, KeyPassword, KeyManagementIP, KeyDefaultService}

	// LogLevels maps the accepted log_level values to logrus levels
	LogLevels = map[string]logrus.Level{
		"DEBUG": logrus.DebugLevel,
		"INFO":  logrus.InfoLevel,
		"WARN":  logrus.WarnLevel,
		"ERROR": logrus.ErrorLevel,
	}
)

// ConfigError is returned for a missing or malformed configuration value
type ConfigError struct {
	Key      string
	Value    interface{}
	Expected string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Value == nil && e.Err == nil {
		return fmt.Sprintf("missing mandatory configuration key %q", e.Key)
	}
	msg := fmt.Sprintf("wrong value %v for configuration key %q, expected %s", e.Value, e.Key, e.Expected)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DriverConfig is the validated driver configuration
type DriverConfig struct {
	Username       string
	Password       string
	ManagementIP   string
	ManagementPort int
	DefaultService string
	LogLevel       logrus.Level
	ManagementType backend.Type
	VerifySSL      bool
	Hostname       string
}

// ConnectionInfo returns what a backend client needs to reach the management interface
func (c *DriverConfig) ConnectionInfo() backend.ConnectionInfo {
	return backend.ConnectionInfo{
		ManagementIP: c.ManagementIP,
		Port:         c.ManagementPort,
		Username:     c.Username,
		Password:     c.Password,
		VerifySSL:    c.VerifySSL,
		LogLevel:     c.LogLevel,
	}
}

// ConfigFromViper reads and validates the driver configuration
func ConfigFromViper(v *viper.Viper) (*DriverConfig, error) {
	for _, key := range MandatoryKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return nil, &ConfigError{Key: key}
		}
	}

	cfg := &DriverConfig{
		Username:       v.GetString(KeyUsername),
		Password:       v.GetString(KeyPassword),
		ManagementIP:   strings.TrimSpace(v.GetString(KeyManagementIP)),
		DefaultService: v.GetString(KeyDefaultService),
		ManagementType: backend.ParseType(v.GetString(KeyManagementType)),
		Hostname:       strings.TrimSpace(v.GetString(KeyHostname)),
		VerifySSL:      DefaultVerifySSL,
	}

	if v.IsSet(KeyManagementPort) {
		raw := v.Get(KeyManagementPort)
		port, err := cast.ToIntE(raw)
		if err != nil || port <= 0 || port > 65535 {
			return nil, &ConfigError{Key: KeyManagementPort, Value: raw, Expected: "a TCP port number", Err: err}
		}
		cfg.ManagementPort = port
	}

	logLevel := DefaultLogLevel
	if v.IsSet(KeyLogLevel) {
		logLevel = v.GetString(KeyLogLevel)
	}
	level, ok := LogLevels[logLevel]
	if !ok {
		return nil, &ConfigError{Key: KeyLogLevel, Value: logLevel, Expected: "one of " + strings.Join(logLevelNames(), ", ")}
	}
	cfg.LogLevel = level

	if v.IsSet(KeyVerifySSL) {
		raw := v.Get(KeyVerifySSL)
		verify, ok := raw.(bool)
		if !ok {
			return nil, &ConfigError{Key: KeyVerifySSL, Value: raw, Expected: "a boolean"}
		}
		cfg.VerifySSL = verify
	}

	return cfg, nil
}

func logLevelNames() []string {
	names := make([]string, 0, len(LogLevels))
	for name := range LogLevels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
