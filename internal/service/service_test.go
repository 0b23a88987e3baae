// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package service_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/dell/csm-blockdevice-adapter/internal/backend"
	backendmocks "github.com/dell/csm-blockdevice-adapter/internal/backend/mocks"
	"github.com/dell/csm-blockdevice-adapter/internal/hostactions"
	"github.com/dell/csm-blockdevice-adapter/internal/service"
	"github.com/dell/csm-blockdevice-adapter/internal/service/mocks"
	"github.com/dell/csm-blockdevice-adapter/internal/volname"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clusterIDStr = "737d4ea0-28bf-11e6-b12e-68f7288f1809"
	otherCluster = "11111111-2222-3333-4444-555555555555"
	wwn          = "6001738cfc9035e80000000000013ab1"
	hostName     = "node1"
	devicePath   = "/dev/mapper/mpathb"
)

var (
	clusterID = uuid.MustParse(clusterIDStr)
	datasetID = uuid.MustParse("47eae400-28ce-11e6-b1ca-68f7288f1809")
	ownedName = volname.Build(datasetID, volname.EncodeClusterID(clusterID))
	otherName = volname.Build(datasetID, volname.EncodeClusterID(uuid.MustParse(otherCluster)))
)

type fixture struct {
	svc     *service.BlockDeviceService
	client  *backendmocks.MockClient
	hostOps *mocks.MockHostOperator
	metrics *mocks.MockMetricsRecorder
}

func newFixture(t *testing.T, multipath bool) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		client:  backendmocks.NewMockClient(ctrl),
		hostOps: mocks.NewMockHostOperator(ctrl),
		metrics: mocks.NewMockMetricsRecorder(ctrl),
	}
	f.client.EXPECT().Type().Return(backend.TypeSCBE).AnyTimes()
	f.client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{ManagementIP: "10.0.0.1", Username: "flocker"}).AnyTimes()
	f.hostOps.EXPECT().IsMultipathActive().Return(multipath).Times(1)
	f.metrics.EXPECT().RecordOperation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := service.New(service.Config{
		ClusterID:       clusterID,
		Client:          f.client,
		HostOps:         f.hostOps,
		DefaultResource: backend.DefaultResource,
		Hostname:        hostName,
		MetricsWrapper:  f.metrics,
		Logger:          logrus.New(),
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

// expectVolume sets up the lookup of an owned volume and its current host
func (f *fixture) expectVolume(attachedTo string) {
	f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
		Return([]backend.VolInfo{{Name: ownedName, Size: 1 << 30, ID: "101", WWN: wwn}}, nil)
	f.client.EXPECT().VolumeMapping(gomock.Any(), wwn).Return(attachedTo, nil)
}

func Test_New(t *testing.T) {
	tests := map[string]func(t *testing.T) (service.Config, string, bool){
		"hostname override": func(t *testing.T) (service.Config, string, bool) {
			f := newFixture(t, true)
			return service.Config{ClusterID: clusterID, Client: f.client, HostOps: f.hostOps, Hostname: "custom"}, "custom", false
		},
		"os hostname": func(t *testing.T) (service.Config, string, bool) {
			f := newFixture(t, false)
			hostname, err := os.Hostname()
			require.NoError(t, err)
			return service.Config{ClusterID: clusterID, Client: f.client, HostOps: f.hostOps}, hostname, false
		},
		"no client": func(t *testing.T) (service.Config, string, bool) {
			ctrl := gomock.NewController(t)
			return service.Config{HostOps: mocks.NewMockHostOperator(ctrl)}, "", true
		},
		"no host operator": func(t *testing.T) (service.Config, string, bool) {
			ctrl := gomock.NewController(t)
			return service.Config{Client: backendmocks.NewMockClient(ctrl)}, "", true
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, want, expectError := test(t)
			if cfg.HostOps != nil && cfg.Client != nil {
				cfg.HostOps.(*mocks.MockHostOperator).EXPECT().IsMultipathActive().Return(true)
			}
			svc, err := service.New(cfg)
			if expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, svc.ComputeInstanceID())
		})
	}
}

func Test_VerifyDefaultResource(t *testing.T) {
	tests := map[string]func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)){
		"default with services": func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)) {
			client := backendmocks.NewMockClient(gomock.NewController(t))
			client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{ManagementIP: "10.0.0.1"})
			client.EXPECT().ListResourceNames(gomock.Any()).Return([]string{"gold"}, nil)
			return backend.DefaultResource, client, func(t *testing.T, err error) { assert.NoError(t, err) }
		},
		"default without services": func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)) {
			client := backendmocks.NewMockClient(gomock.NewController(t))
			client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{ManagementIP: "10.0.0.1"})
			client.EXPECT().ListResourceNames(gomock.Any()).Return(nil, nil)
			return backend.DefaultResource, client, func(t *testing.T, err error) {
				var target *service.NoServicesExistError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "10.0.0.1", target.ManagementIP)
			}
		},
		"default listing fails": func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)) {
			client := backendmocks.NewMockClient(gomock.NewController(t))
			client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{})
			client.EXPECT().ListResourceNames(gomock.Any()).Return(nil, errors.New("listing failed"))
			return backend.DefaultResource, client, func(t *testing.T, err error) { assert.EqualError(t, err, "listing failed") }
		},
		"named pool exists": func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)) {
			client := backendmocks.NewMockClient(gomock.NewController(t))
			client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{})
			client.EXPECT().ResourceExists(gomock.Any(), "gold").Return(true, nil)
			return "gold", client, func(t *testing.T, err error) { assert.NoError(t, err) }
		},
		"named pool missing": func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)) {
			client := backendmocks.NewMockClient(gomock.NewController(t))
			client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{ManagementIP: "10.0.0.1"})
			client.EXPECT().ResourceExists(gomock.Any(), "bronze").Return(false, nil)
			return "bronze", client, func(t *testing.T, err error) {
				var target *service.StoragePoolNotExistError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "bronze", target.Pool)
			}
		},
		"existence check fails": func(t *testing.T) (string, *backendmocks.MockClient, func(t *testing.T, err error)) {
			client := backendmocks.NewMockClient(gomock.NewController(t))
			client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{})
			client.EXPECT().ResourceExists(gomock.Any(), "gold").Return(false, errors.New("unreachable"))
			return "gold", client, func(t *testing.T, err error) { assert.EqualError(t, err, "unreachable") }
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			resource, client, check := test(t)
			check(t, service.VerifyDefaultResource(context.Background(), resource, client))
		})
	}
}

func Test_AllocationUnit(t *testing.T) {
	f := newFixture(t, true)
	f.client.EXPECT().AllocationUnit().Return(backend.AllocationUnit)
	assert.Equal(t, int64(1024*1024), f.svc.AllocationUnit())
}

func Test_CreateVolume(t *testing.T) {
	tests := map[string]func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error){
		"success": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.client.EXPECT().HandleDefaultResource(gomock.Any(), backend.DefaultResource).Return("gold", nil)
			f.client.EXPECT().CreateVolume(gomock.Any(), ownedName, "gold", int64(1<<30)).
				Return(backend.VolInfo{Name: ownedName, Size: 1 << 30, ID: "101", WWN: wwn}, nil)
			return func(t *testing.T, vol service.BlockDeviceVolume, err error) {
				require.NoError(t, err)
				assert.Equal(t, service.BlockDeviceVolume{BlockDeviceID: wwn, Size: 1 << 30, DatasetID: datasetID}, vol)
				assert.False(t, vol.IsAttached())
			}
		},
		"ambiguous default": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.client.EXPECT().HandleDefaultResource(gomock.Any(), backend.DefaultResource).
				Return("", &backend.AmbiguousResourceError{Available: []string{"gold", "silver"}})
			return func(t *testing.T, _ service.BlockDeviceVolume, err error) {
				var target *backend.AmbiguousResourceError
				assert.True(t, errors.As(err, &target))
			}
		},
		"resource absent": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.client.EXPECT().HandleDefaultResource(gomock.Any(), backend.DefaultResource).Return("gold", nil)
			f.client.EXPECT().CreateVolume(gomock.Any(), ownedName, "gold", int64(1<<30)).
				Return(backend.VolInfo{}, &backend.CreateVolumeError{Volume: ownedName, Resource: "gold"})
			return func(t *testing.T, _ service.BlockDeviceVolume, err error) {
				var target *backend.CreateVolumeError
				assert.True(t, errors.As(err, &target))
			}
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, true)
			check := test(t, f)
			vol, err := f.svc.CreateVolume(context.Background(), datasetID, 1<<30)
			check(t, vol, err)
		})
	}
}

func Test_CreateVolumeWithProfile(t *testing.T) {
	f := newFixture(t, true)
	f.client.EXPECT().CreateVolume(gomock.Any(), ownedName, "silver", int64(8<<30)).
		Return(backend.VolInfo{Name: ownedName, Size: 8 << 30, ID: "102", WWN: wwn}, nil)

	vol, err := f.svc.CreateVolumeWithProfile(context.Background(), datasetID, 8<<30, "silver")
	require.NoError(t, err)
	assert.Equal(t, wwn, vol.BlockDeviceID)
	assert.Equal(t, datasetID, vol.DatasetID)
	assert.Equal(t, int64(8<<30), vol.Size)
}

func Test_DestroyVolume(t *testing.T) {
	tests := map[string]func(t *testing.T, f *fixture) bool{
		"success": func(t *testing.T, f *fixture) bool {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: ownedName, WWN: wwn}}, nil)
			f.client.EXPECT().DeleteVolume(gomock.Any(), wwn).Return(nil)
			return false
		},
		"unknown volume": func(t *testing.T, f *fixture) bool {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).Return(nil, nil)
			return true
		},
		"volume of another cluster": func(t *testing.T, f *fixture) bool {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: otherName, WWN: wwn}}, nil)
			return true
		},
		"foreign volume with the same wwn": func(t *testing.T, f *fixture) bool {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: otherName, WWN: wwn}, {Name: ownedName, WWN: wwn}}, nil)
			f.client.EXPECT().DeleteVolume(gomock.Any(), wwn).Return(nil)
			return false
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, true)
			unknown := test(t, f)
			err := f.svc.DestroyVolume(context.Background(), wwn)
			if unknown {
				var target *service.UnknownVolumeError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, wwn, target.BlockDeviceID)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_AttachVolume(t *testing.T) {
	tests := map[string]func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error){
		"success": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.expectVolume("")
			gomock.InOrder(
				f.client.EXPECT().MapVolume(gomock.Any(), wwn, hostName).Return(nil),
				f.hostOps.EXPECT().Rescan(gomock.Any(), wwn).Return(nil),
			)
			return func(t *testing.T, vol service.BlockDeviceVolume, err error) {
				require.NoError(t, err)
				assert.Equal(t, hostName, vol.AttachedTo)
				assert.Equal(t, datasetID, vol.DatasetID)
			}
		},
		"already attached": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.expectVolume("node2")
			return func(t *testing.T, _ service.BlockDeviceVolume, err error) {
				var target *service.AlreadyAttachedVolumeError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "node2", target.AttachedTo)
			}
		},
		"unknown volume": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: otherName, WWN: wwn}}, nil)
			return func(t *testing.T, _ service.BlockDeviceVolume, err error) {
				var target *service.UnknownVolumeError
				assert.True(t, errors.As(err, &target))
			}
		},
		"map fails": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.expectVolume("")
			f.client.EXPECT().MapVolume(gomock.Any(), wwn, hostName).
				Return(&backend.HostNotFoundByWWNError{WWN: wwn, Host: hostName, Array: "xiv1"})
			return func(t *testing.T, _ service.BlockDeviceVolume, err error) {
				var target *backend.HostNotFoundByWWNError
				assert.True(t, errors.As(err, &target))
			}
		},
		"mapped to an unknown host id": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: ownedName, WWN: wwn}}, nil)
			f.client.EXPECT().VolumeMapping(gomock.Any(), wwn).Return("", &backend.HostIDNotFoundError{HostID: "99", WWN: wwn})
			f.client.EXPECT().MapVolume(gomock.Any(), wwn, hostName).Return(nil)
			f.hostOps.EXPECT().Rescan(gomock.Any(), wwn).Return(nil)
			return func(t *testing.T, vol service.BlockDeviceVolume, err error) {
				require.NoError(t, err)
				assert.Equal(t, hostName, vol.AttachedTo)
			}
		},
		"multiple mappings": func(t *testing.T, f *fixture) func(t *testing.T, vol service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: ownedName, WWN: wwn}}, nil)
			f.client.EXPECT().VolumeMapping(gomock.Any(), wwn).Return("", backend.ErrMultipleMappings)
			return func(t *testing.T, _ service.BlockDeviceVolume, err error) {
				assert.True(t, errors.Is(err, backend.ErrMultipleMappings))
			}
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, true)
			check := test(t, f)
			vol, err := f.svc.AttachVolume(context.Background(), wwn, hostName)
			check(t, vol, err)
		})
	}
}

func Test_DetachVolume(t *testing.T) {
	tests := map[string]func(t *testing.T) (*fixture, func(t *testing.T, err error)){
		"success": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, true)
			f.expectVolume(hostName)
			gomock.InOrder(
				f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).Return(devicePath, nil),
				f.hostOps.EXPECT().CleanupBeforeUnmap(gomock.Any(), devicePath).Return(nil),
				f.client.EXPECT().UnmapVolume(gomock.Any(), wwn, hostName).Return(nil),
				f.hostOps.EXPECT().Rescan(gomock.Any(), "").Return(nil),
			)
			return f, func(t *testing.T, err error) { assert.NoError(t, err) }
		},
		"unattached": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, true)
			f.expectVolume("")
			return f, func(t *testing.T, err error) {
				var target *service.UnattachedVolumeError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, wwn, target.BlockDeviceID)
			}
		},
		"unknown volume": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, true)
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).Return(nil, nil)
			return f, func(t *testing.T, err error) {
				var target *service.UnknownVolumeError
				assert.True(t, errors.As(err, &target))
			}
		},
		"device attached elsewhere": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, true)
			f.expectVolume("node2")
			f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).Return("", &hostactions.DeviceNotFoundError{WWN: wwn})
			f.client.EXPECT().UnmapVolume(gomock.Any(), wwn, "node2").Return(nil)
			f.hostOps.EXPECT().Rescan(gomock.Any(), "").Return(nil)
			return f, func(t *testing.T, err error) { assert.NoError(t, err) }
		},
		"multipath inactive": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, false)
			f.expectVolume(hostName)
			f.client.EXPECT().UnmapVolume(gomock.Any(), wwn, hostName).Return(nil)
			f.hostOps.EXPECT().Rescan(gomock.Any(), "").Return(nil)
			return f, func(t *testing.T, err error) { assert.NoError(t, err) }
		},
		"cleanup fails": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, true)
			f.expectVolume(hostName)
			f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).Return(devicePath, nil)
			f.hostOps.EXPECT().CleanupBeforeUnmap(gomock.Any(), devicePath).
				Return(&hostactions.CommandError{Cmd: "multipath", Args: []string{"-f", "mpathb"}, Attempts: 4, Err: errors.New("map in use")})
			return f, func(t *testing.T, err error) {
				var target *hostactions.CommandError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 4, target.Attempts)
			}
		},
		"multipath listing fails": func(t *testing.T) (*fixture, func(t *testing.T, err error)) {
			f := newFixture(t, true)
			f.expectVolume(hostName)
			f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).
				Return("", &hostactions.CommandError{Cmd: "multipath", Args: []string{"-v2", "-ll"}, Attempts: 1, Err: errors.New("exit status 1")})
			return f, func(t *testing.T, err error) {
				var target *hostactions.CommandError
				assert.True(t, errors.As(err, &target))
			}
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f, check := test(t)
			check(t, f.svc.DetachVolume(context.Background(), wwn))
		})
	}
}

func Test_GetDevicePath(t *testing.T) {
	tests := map[string]func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)){
		"success": func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)) {
			f := newFixture(t, true)
			f.expectVolume(hostName)
			f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).Return(devicePath, nil)
			return f, func(t *testing.T, path string, err error) {
				require.NoError(t, err)
				assert.Equal(t, devicePath, path)
			}
		},
		"unattached": func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)) {
			f := newFixture(t, true)
			f.expectVolume("")
			return f, func(t *testing.T, _ string, err error) {
				var target *service.UnattachedVolumeError
				require.True(t, errors.As(err, &target))
				assert.Nil(t, target.Err)
			}
		},
		"device not found": func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)) {
			f := newFixture(t, true)
			f.expectVolume(hostName)
			f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).Return("", &hostactions.DeviceNotFoundError{WWN: wwn})
			return f, func(t *testing.T, _ string, err error) {
				var target *service.UnattachedVolumeError
				require.True(t, errors.As(err, &target))
				var cause *hostactions.DeviceNotFoundError
				assert.True(t, errors.As(err, &cause))
			}
		},
		"device path missing": func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)) {
			f := newFixture(t, true)
			f.expectVolume(hostName)
			f.hostOps.EXPECT().ResolveDevicePath(gomock.Any(), wwn).
				Return("", &hostactions.DevicePathNotFoundError{WWN: wwn, Path: devicePath})
			return f, func(t *testing.T, _ string, err error) {
				var target *service.UnattachedVolumeError
				assert.True(t, errors.As(err, &target))
			}
		},
		"multipath inactive": func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)) {
			f := newFixture(t, false)
			f.expectVolume(hostName)
			return f, func(t *testing.T, _ string, err error) {
				var target *service.UnattachedVolumeError
				require.True(t, errors.As(err, &target))
				assert.True(t, errors.Is(err, hostactions.ErrMultipathInactive))
			}
		},
		"unknown volume": func(t *testing.T) (*fixture, func(t *testing.T, path string, err error)) {
			f := newFixture(t, true)
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).
				Return([]backend.VolInfo{{Name: "f_manual_vol", WWN: wwn}}, nil)
			return f, func(t *testing.T, _ string, err error) {
				var target *service.UnknownVolumeError
				assert.True(t, errors.As(err, &target))
			}
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f, check := test(t)
			path, err := f.svc.GetDevicePath(context.Background(), wwn)
			check(t, path, err)
		})
	}
}

func Test_ListVolumes(t *testing.T) {
	ds2 := uuid.MustParse("5a1c9b3e-0b7d-4c43-9e1b-2f1d8c7a6b01")
	ds3 := uuid.MustParse("9f0e2d1c-3b4a-4f6e-8d7c-1a2b3c4d5e6f")
	slug := volname.EncodeClusterID(clusterID)

	vols := []backend.VolInfo{
		{Name: ownedName, Size: 1 << 30, WWN: wwn},
		{Name: volname.Build(ds2, slug), Size: 2 << 30, WWN: "wwn2"},
		{Name: volname.Build(ds3, slug), Size: 3 << 30, WWN: "wwn3"},
		// same WWN as an owned volume but another cluster's name
		{Name: otherName, Size: 4 << 30, WWN: "wwn2"},
		{Name: "oracle_data_01", Size: 5 << 30, WWN: "wwn5"},
	}

	tests := map[string]func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error){
		"success": func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{}).Return(vols, nil)
			f.client.EXPECT().VolumeHostMap(gomock.Any()).Return(map[string][]string{
				wwn:    {"11"},
				"wwn2": {"42"},
				"wwn5": {"11"},
			}, nil)
			f.client.EXPECT().HostIDToName(gomock.Any()).Return(map[string]string{"11": hostName}, nil)
			f.metrics.EXPECT().RecordVolumes(gomock.Any(), "SCBE", int64(3), int64(1)).Return(nil)
			return func(t *testing.T, got []service.BlockDeviceVolume, err error) {
				require.NoError(t, err)
				assert.Equal(t, []service.BlockDeviceVolume{
					{BlockDeviceID: wwn, Size: 1 << 30, DatasetID: datasetID, AttachedTo: hostName},
					{BlockDeviceID: "wwn2", Size: 2 << 30, DatasetID: ds2},
					{BlockDeviceID: "wwn3", Size: 3 << 30, DatasetID: ds3},
				}, got)
			}
		},
		"empty array": func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{}).Return(nil, nil)
			f.client.EXPECT().VolumeHostMap(gomock.Any()).Return(map[string][]string{}, nil)
			f.client.EXPECT().HostIDToName(gomock.Any()).Return(map[string]string{}, nil)
			f.metrics.EXPECT().RecordVolumes(gomock.Any(), "SCBE", int64(0), int64(0)).Return(errors.New("no meter"))
			return func(t *testing.T, got []service.BlockDeviceVolume, err error) {
				require.NoError(t, err)
				assert.Empty(t, got)
			}
		},
		"owned volume with multiple mappings": func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{}).Return(vols, nil)
			f.client.EXPECT().VolumeHostMap(gomock.Any()).Return(map[string][]string{"wwn3": {"11", "12"}}, nil)
			f.client.EXPECT().HostIDToName(gomock.Any()).Return(map[string]string{"11": hostName}, nil)
			return func(t *testing.T, _ []service.BlockDeviceVolume, err error) {
				assert.True(t, errors.Is(err, backend.ErrMultipleMappings))
			}
		},
		"foreign volume with multiple mappings": func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{}).Return(vols, nil)
			f.client.EXPECT().VolumeHostMap(gomock.Any()).Return(map[string][]string{"wwn5": {"11", "12"}}, nil)
			f.client.EXPECT().HostIDToName(gomock.Any()).Return(map[string]string{}, nil)
			f.metrics.EXPECT().RecordVolumes(gomock.Any(), "SCBE", int64(3), int64(0)).Return(nil)
			return func(t *testing.T, got []service.BlockDeviceVolume, err error) {
				require.NoError(t, err)
				assert.Len(t, got, 3)
			}
		},
		"listing fails": func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{}).Return(nil, errors.New("timeout"))
			return func(t *testing.T, _ []service.BlockDeviceVolume, err error) {
				assert.EqualError(t, err, "timeout")
			}
		},
		"host listing fails": func(t *testing.T, f *fixture) func(t *testing.T, got []service.BlockDeviceVolume, err error) {
			f.client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{}).Return(vols, nil)
			f.client.EXPECT().VolumeHostMap(gomock.Any()).Return(map[string][]string{}, nil)
			f.client.EXPECT().HostIDToName(gomock.Any()).Return(nil, errors.New("forbidden"))
			return func(t *testing.T, _ []service.BlockDeviceVolume, err error) {
				assert.EqualError(t, err, "forbidden")
			}
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, true)
			check := test(t, f)
			got, err := f.svc.ListVolumes(context.Background())
			check(t, got, err)
		})
	}
}

func Test_OperationMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := backendmocks.NewMockClient(ctrl)
	hostOps := mocks.NewMockHostOperator(ctrl)
	metrics := mocks.NewMockMetricsRecorder(ctrl)

	client.EXPECT().Type().Return(backend.TypeSCBE).AnyTimes()
	client.EXPECT().ConnectionInfo().Return(backend.ConnectionInfo{}).AnyTimes()
	hostOps.EXPECT().IsMultipathActive().Return(true)

	svc, err := service.New(service.Config{
		ClusterID:      clusterID,
		Client:         client,
		HostOps:        hostOps,
		Hostname:       hostName,
		MetricsWrapper: metrics,
		Logger:         logrus.New(),
	})
	require.NoError(t, err)

	client.EXPECT().ListVolumes(gomock.Any(), backend.VolumeFilter{WWN: wwn}).Return(nil, nil)
	metrics.EXPECT().RecordOperation(gomock.Any(), "DestroyVolume", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Duration, opErr error) error {
			var target *service.UnknownVolumeError
			assert.True(t, errors.As(opErr, &target))
			return errors.New("metrics unavailable")
		})

	err = svc.DestroyVolume(context.Background(), wwn)
	var target *service.UnknownVolumeError
	assert.True(t, errors.As(err, &target))
}

func Test_ErrorMessages(t *testing.T) {
	assert.Equal(t, "unknown volume w1", (&service.UnknownVolumeError{BlockDeviceID: "w1"}).Error())
	assert.Equal(t, "volume w1 is not attached", (&service.UnattachedVolumeError{BlockDeviceID: "w1"}).Error())
	assert.Equal(t, "volume w1 is not attached: gone", (&service.UnattachedVolumeError{BlockDeviceID: "w1", Err: errors.New("gone")}).Error())
	assert.Equal(t, "volume w1 is already attached to node1", (&service.AlreadyAttachedVolumeError{BlockDeviceID: "w1", AttachedTo: "node1"}).Error())
	assert.Contains(t, (&service.StoragePoolNotExistError{Pool: "gold", ManagementIP: "10.0.0.1"}).Error(), "[gold]")
	assert.Contains(t, (&service.NoServicesExistError{ManagementIP: "10.0.0.1"}).Error(), "10.0.0.1")
}
