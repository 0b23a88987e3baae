// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package entrypoint_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dell/csm-blockdevice-adapter/internal/entrypoint"
	"github.com/dell/csm-blockdevice-adapter/internal/service"
	"github.com/dell/csm-blockdevice-adapter/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
)

func Test_Run(t *testing.T) {
	volumes := []service.BlockDeviceVolume{{BlockDeviceID: "6001738cfc9035e8", Size: 1 << 30}}

	tests := map[string]func(t *testing.T) (expectError bool, config *entrypoint.Config, svc service.Service, report entrypoint.Reporter, prevConfigValidationFunc func(*entrypoint.Config) error, ctrl *gomock.Controller, validatingConfig bool){
		"success": func(*testing.T) (bool, *entrypoint.Config, service.Service, entrypoint.Reporter, func(*entrypoint.Config) error, *gomock.Controller, bool) {
			ctrl := gomock.NewController(t)

			config := &entrypoint.Config{}
			prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
			entrypoint.ConfigValidatorFunc = noCheckConfig

			svc := mocks.NewMockService(ctrl)
			svc.EXPECT().ListVolumes(gomock.Any()).AnyTimes().Return(volumes, nil)

			report := func(got []service.BlockDeviceVolume) error {
				if len(got) != 1 {
					t.Errorf("expected 1 volume, got %d", len(got))
				}
				return nil
			}

			return false, config, svc, report, prevConfigValidationFunc, ctrl, false
		},
		"success even if listing fails": func(*testing.T) (bool, *entrypoint.Config, service.Service, entrypoint.Reporter, func(*entrypoint.Config) error, *gomock.Controller, bool) {
			ctrl := gomock.NewController(t)

			config := &entrypoint.Config{}
			prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
			entrypoint.ConfigValidatorFunc = noCheckConfig

			svc := mocks.NewMockService(ctrl)
			svc.EXPECT().ListVolumes(gomock.Any()).AnyTimes().Return(nil, errors.New("management interface unreachable"))

			report := func([]service.BlockDeviceVolume) error {
				t.Errorf("reporter must not be called when listing fails")
				return nil
			}

			return false, config, svc, report, prevConfigValidationFunc, ctrl, false
		},
		"error from reporter": func(*testing.T) (bool, *entrypoint.Config, service.Service, entrypoint.Reporter, func(*entrypoint.Config) error, *gomock.Controller, bool) {
			ctrl := gomock.NewController(t)

			config := &entrypoint.Config{}
			prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
			entrypoint.ConfigValidatorFunc = noCheckConfig

			svc := mocks.NewMockService(ctrl)
			svc.EXPECT().ListVolumes(gomock.Any()).Times(1).Return(volumes, nil)

			report := func([]service.BlockDeviceVolume) error {
				return errors.New("broken pipe")
			}

			return true, config, svc, report, prevConfigValidationFunc, ctrl, false
		},
		"error with invalid list ticker interval": func(*testing.T) (bool, *entrypoint.Config, service.Service, entrypoint.Reporter, func(*entrypoint.Config) error, *gomock.Controller, bool) {
			ctrl := gomock.NewController(t)
			config := &entrypoint.Config{
				ListTickInterval: 1 * time.Second,
			}
			prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
			entrypoint.ConfigValidatorFunc = entrypoint.ValidateConfig
			svc := mocks.NewMockService(ctrl)

			return true, config, svc, nil, prevConfigValidationFunc, ctrl, true
		},
		"error nil config": func(*testing.T) (bool, *entrypoint.Config, service.Service, entrypoint.Reporter, func(*entrypoint.Config) error, *gomock.Controller, bool) {
			ctrl := gomock.NewController(t)
			prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
			entrypoint.ConfigValidatorFunc = entrypoint.ValidateConfig
			svc := mocks.NewMockService(ctrl)

			return true, nil, svc, nil, prevConfigValidationFunc, ctrl, true
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			expectError, config, svc, report, prevConfValidation, ctrl, validateConfig := test(t)
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if config != nil {
				config.Logger = logrus.New()
				if !validateConfig {
					// smaller intervals than ValidateConfig allows keep the test short
					config.ListTickInterval = 100 * time.Millisecond
				}
			}
			err := entrypoint.Run(ctx, config, svc, report)
			errorOccurred := err != nil
			if expectError != errorOccurred {
				t.Errorf("Unexpected result from test \"%v\": wanted error (%v), but got (%v)", name, expectError, errorOccurred)
			}
			entrypoint.ConfigValidatorFunc = prevConfValidation
			ctrl.Finish()
		})
	}
}

func Test_RunReportsEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
	entrypoint.ConfigValidatorFunc = noCheckConfig
	defer func() { entrypoint.ConfigValidatorFunc = prevConfigValidationFunc }()

	config := &entrypoint.Config{ListTickInterval: 50 * time.Millisecond, Logger: logrus.New()}

	var calls int32
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().ListVolumes(gomock.Any()).AnyTimes().Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	report := func([]service.BlockDeviceVolume) error {
		if atomic.AddInt32(&calls, 1) == 2 {
			cancel()
		}
		return nil
	}

	if err := entrypoint.Run(ctx, config, svc, report); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got < 2 {
		t.Errorf("expected at least 2 reports, got %d", got)
	}
}

func noCheckConfig(_ *entrypoint.Config) error {
	return nil
}

func Test_ValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *entrypoint.Config
		wantErr bool
	}{
		{"valid config", &entrypoint.Config{ListTickInterval: 10 * time.Second}, false},
		{"minimum interval", &entrypoint.Config{ListTickInterval: entrypoint.MinimumListTickInterval}, false},
		{"nil config", nil, true},
		{"interval too short", &entrypoint.Config{ListTickInterval: 1 * time.Second}, true},
		{"interval too long", &entrypoint.Config{ListTickInterval: 11 * time.Minute}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entrypoint.ValidateConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_RunPicksUpIntervalChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prevConfigValidationFunc := entrypoint.ConfigValidatorFunc
	entrypoint.ConfigValidatorFunc = noCheckConfig
	defer func() { entrypoint.ConfigValidatorFunc = prevConfigValidationFunc }()

	config := &entrypoint.Config{ListTickInterval: 50 * time.Millisecond, Logger: logrus.New()}

	var calls int32
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().ListVolumes(gomock.Any()).AnyTimes().Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	report := func([]service.BlockDeviceVolume) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			// a reloaded configuration slows the loop down before the next tick
			config.SetListTickInterval(time.Hour)
		}
		return nil
	}

	if err := entrypoint.Run(ctx, config, svc, report); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected a single report after the interval change, got %d", got)
	}
}
