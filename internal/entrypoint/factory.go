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
	"errors"

	"github.com/dell/csm-blockdevice-adapter/internal/backend"
	// backends register themselves with the backend registry
	_ "github.com/dell/csm-blockdevice-adapter/internal/backend/powerstore"
	_ "github.com/dell/csm-blockdevice-adapter/internal/backend/scbe"
	"github.com/dell/csm-blockdevice-adapter/internal/hostactions"
	"github.com/dell/csm-blockdevice-adapter/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// HostOperatorFunc is used to override host tool discovery in testing
var HostOperatorFunc = func(logger *logrus.Logger) (service.HostOperator, error) {
	return hostactions.New(&hostactions.CommandExecutor{Logger: logger}, afero.NewOsFs(), logger)
}

// NewBlockDeviceAPI builds the block device service for a cluster from a validated configuration.
// It fails when the backend is unknown or unreachable, when the default service does not exist,
// or when the mandatory host tools are missing.
func NewBlockDeviceAPI(ctx context.Context, clusterID uuid.UUID, cfg *DriverConfig, metrics service.MetricsRecorder, logger *logrus.Logger) (*service.BlockDeviceService, error) {
	if cfg == nil {
		return nil, errors.New("no driver configuration provided")
	}
	logger.SetLevel(cfg.LogLevel)

	client, err := backend.New(ctx, cfg.ManagementType, cfg.ConnectionInfo(), logger)
	if err != nil {
		var unsupported *backend.UnsupportedTypeError
		if errors.As(err, &unsupported) {
			return nil, &ConfigError{Key: KeyManagementType, Value: string(cfg.ManagementType), Expected: "a supported management type", Err: err}
		}
		return nil, err
	}

	if err := service.VerifyDefaultResource(ctx, cfg.DefaultService, client); err != nil {
		return nil, err
	}

	hostOps, err := HostOperatorFunc(logger)
	if err != nil {
		return nil, err
	}

	return service.New(service.Config{
		ClusterID:       clusterID,
		Client:          client,
		HostOps:         hostOps,
		DefaultResource: cfg.DefaultService,
		Hostname:        cfg.Hostname,
		MetricsWrapper:  metrics,
		Logger:          logger,
	})
}
