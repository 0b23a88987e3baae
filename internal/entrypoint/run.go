// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package entrypoint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dell/csm-blockdevice-adapter/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	// MaximumListTickInterval is the maximum allowed interval between volume listings
	MaximumListTickInterval = 10 * time.Minute
	// MinimumListTickInterval is the minimum allowed interval between volume listings
	MinimumListTickInterval = 5 * time.Second
)

var (
	// ConfigValidatorFunc is used to override config validation in testing
	ConfigValidatorFunc func(*Config) error = ValidateConfig
)

// Config holds data that will be used by the watch loop
type Config struct {
	ListTickInterval time.Duration
	Logger           *logrus.Logger
	mu               sync.RWMutex
}

// SetListTickInterval changes the listing interval of a running loop, starting with its next tick
func (c *Config) SetListTickInterval(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ListTickInterval = interval
}

func (c *Config) listTickInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ListTickInterval
}

// Reporter receives every successful volume listing
type Reporter func([]service.BlockDeviceVolume) error

// Run lists the cluster volumes on every tick and hands them to report until ctx is done.
// Listing failures are logged and retried on the next tick; a failing reporter stops the loop.
func Run(ctx context.Context, config *Config, svc service.Service, report Reporter) error {
	err := ConfigValidatorFunc(config)
	if err != nil {
		return err
	}
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}

	//set initial tick interval
	listTickInterval := config.listTickInterval()
	listTicker := time.NewTicker(listTickInterval)
	defer func() { listTicker.Stop() }()

	for {
		select {
		case <-listTicker.C:
			volumes, err := svc.ListVolumes(ctx)
			if err != nil {
				logger.WithError(err).Error("listing volumes")
			} else if err := report(volumes); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}

		//check if tick interval config settings have changed
		if newInterval := config.listTickInterval(); listTickInterval != newInterval {
			logger.WithField("interval", newInterval).Info("list interval changed")
			listTickInterval = newInterval
			listTicker.Stop()
			listTicker = time.NewTicker(listTickInterval)
		}
	}
}

// ValidateConfig will validate the configuration and return any errors
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("no config provided")
	}

	if config.ListTickInterval > MaximumListTickInterval || config.ListTickInterval < MinimumListTickInterval {
		return fmt.Errorf("list polling frequency not within allowed range of %v and %v", MinimumListTickInterval.String(), MaximumListTickInterval.String())
	}

	return nil
}
