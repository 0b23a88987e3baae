// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dell/csm-blockdevice-adapter/internal/backend"
	"github.com/dell/csm-blockdevice-adapter/internal/hostactions"
	"github.com/dell/csm-blockdevice-adapter/internal/volname"
	tracer "github.com/dell/csm-blockdevice-adapter/opentelemetry/tracers"
	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

var _ Service = (*BlockDeviceService)(nil)

// Service contains the block device operations consumed by the dataset orchestrator.
// Every blockdeviceID is the WWN of an array volume.
//
//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/internal/service Service
type Service interface {
	ComputeInstanceID() string
	AllocationUnit() int64
	CreateVolume(ctx context.Context, datasetID uuid.UUID, size int64) (BlockDeviceVolume, error)
	CreateVolumeWithProfile(ctx context.Context, datasetID uuid.UUID, size int64, profile string) (BlockDeviceVolume, error)
	DestroyVolume(ctx context.Context, blockdeviceID string) error
	AttachVolume(ctx context.Context, blockdeviceID, host string) (BlockDeviceVolume, error)
	DetachVolume(ctx context.Context, blockdeviceID string) error
	GetDevicePath(ctx context.Context, blockdeviceID string) (string, error)
	ListVolumes(ctx context.Context) ([]BlockDeviceVolume, error)
}

// HostOperator contains the device operations run on the local host
//
//go:generate mockgen -destination=mocks/host_operator_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/internal/service HostOperator
type HostOperator interface {
	IsMultipathActive() bool
	Rescan(ctx context.Context, wwn string) error
	ResolveDevicePath(ctx context.Context, wwn string) (string, error)
	CleanupBeforeUnmap(ctx context.Context, devicePath string) error
}

// Config holds what is needed to build a BlockDeviceService
type Config struct {
	ClusterID       uuid.UUID
	Client          backend.Client
	HostOps         HostOperator
	DefaultResource string
	// Hostname overrides the OS hostname as the instance id
	Hostname       string
	MetricsWrapper MetricsRecorder
	Logger         *logrus.Logger
}

// BlockDeviceService maps orchestrator calls onto a storage backend and the local host
type BlockDeviceService struct {
	Client         backend.Client
	HostOps        HostOperator
	MetricsWrapper MetricsRecorder
	Logger         *logrus.Logger

	clusterID       uuid.UUID
	clusterSlug     string
	instanceID      string
	defaultResource string
	multipathActive bool
}

// New creates a BlockDeviceService for the cluster in cfg
func New(cfg Config) (*BlockDeviceService, error) {
	if cfg.Client == nil {
		return nil, errors.New("no backend client provided")
	}
	if cfg.HostOps == nil {
		return nil, errors.New("no host operator provided")
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	hostname := cfg.Hostname
	if hostname == "" {
		var err error
		hostname, err = os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("determining instance id: %v", err)
		}
	}

	s := &BlockDeviceService{
		Client:          cfg.Client,
		HostOps:         cfg.HostOps,
		MetricsWrapper:  cfg.MetricsWrapper,
		Logger:          cfg.Logger,
		clusterID:       cfg.ClusterID,
		clusterSlug:     volname.EncodeClusterID(cfg.ClusterID),
		instanceID:      hostname,
		defaultResource: cfg.DefaultResource,
		multipathActive: cfg.HostOps.IsMultipathActive(),
	}

	info := cfg.Client.ConnectionInfo()
	s.Logger.WithFields(logrus.Fields{
		"backend":          cfg.Client.Type(),
		"management_ip":    info.ManagementIP,
		"username":         info.Username,
		"cluster_id":       cfg.ClusterID,
		"instance_id":      hostname,
		"default_resource": cfg.DefaultResource,
		"multipath":        s.multipathActive,
	}).Info("block device service started")
	return s, nil
}

// VerifyDefaultResource checks that resource can be used for volume creation.
// The default resource sentinel only requires that some resource is available.
func VerifyDefaultResource(ctx context.Context, resource string, client backend.Client) error {
	info := client.ConnectionInfo()
	if resource == backend.DefaultResource {
		names, err := client.ListResourceNames(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return &NoServicesExistError{ManagementIP: info.ManagementIP}
		}
		return nil
	}

	exists, err := client.ResourceExists(ctx, resource)
	if err != nil {
		return err
	}
	if !exists {
		return &StoragePoolNotExistError{Pool: resource, ManagementIP: info.ManagementIP}
	}
	return nil
}

// ComputeInstanceID returns the identifier of this host
func (s *BlockDeviceService) ComputeInstanceID() string {
	return s.instanceID
}

// AllocationUnit returns the size granularity of the backend
func (s *BlockDeviceService) AllocationUnit() int64 {
	return s.Client.AllocationUnit()
}

// CreateVolume creates a volume in the default resource
func (s *BlockDeviceService) CreateVolume(ctx context.Context, datasetID uuid.UUID, size int64) (BlockDeviceVolume, error) {
	var volume BlockDeviceVolume
	err := s.instrument(ctx, "CreateVolume", logrus.Fields{"dataset_id": datasetID, "size": size}, func(ctx context.Context) error {
		resource, err := s.Client.HandleDefaultResource(ctx, s.defaultResource)
		if err != nil {
			return err
		}
		s.Logger.WithFields(logrus.Fields{
			"dataset_id": datasetID,
			"size":       units.BytesSize(float64(size)),
			"resource":   resource,
		}).Info("creating volume in default resource")

		volume, err = s.createVolume(ctx, datasetID, size, resource)
		return err
	})
	return volume, err
}

// CreateVolumeWithProfile creates a volume in the resource named by profile
func (s *BlockDeviceService) CreateVolumeWithProfile(ctx context.Context, datasetID uuid.UUID, size int64, profile string) (BlockDeviceVolume, error) {
	var volume BlockDeviceVolume
	err := s.instrument(ctx, "CreateVolumeWithProfile", logrus.Fields{"dataset_id": datasetID, "size": size, "profile": profile}, func(ctx context.Context) error {
		var err error
		volume, err = s.createVolume(ctx, datasetID, size, profile)
		return err
	})
	return volume, err
}

func (s *BlockDeviceService) createVolume(ctx context.Context, datasetID uuid.UUID, size int64, resource string) (BlockDeviceVolume, error) {
	vol, err := s.Client.CreateVolume(ctx, volname.Build(datasetID, s.clusterSlug), resource, size)
	if err != nil {
		return BlockDeviceVolume{}, err
	}

	s.Logger.WithFields(logrus.Fields{
		"name":     vol.Name,
		"size":     units.BytesSize(float64(vol.Size)),
		"resource": resource,
		"wwn":      vol.WWN,
	}).Info("volume created")

	return BlockDeviceVolume{
		BlockDeviceID: vol.WWN,
		Size:          vol.Size,
		DatasetID:     datasetID,
	}, nil
}

// DestroyVolume deletes a volume of this cluster
func (s *BlockDeviceService) DestroyVolume(ctx context.Context, blockdeviceID string) error {
	return s.instrument(ctx, "DestroyVolume", logrus.Fields{"blockdevice_id": blockdeviceID}, func(ctx context.Context) error {
		vol, err := s.ownedVolume(ctx, blockdeviceID)
		if err != nil {
			return err
		}
		if err := s.Client.DeleteVolume(ctx, blockdeviceID); err != nil {
			return err
		}
		s.Logger.WithFields(logrus.Fields{"name": vol.Name, "wwn": blockdeviceID}).Info("volume destroyed")
		return nil
	})
}

// AttachVolume maps an unattached volume to host and rescans the local host
func (s *BlockDeviceService) AttachVolume(ctx context.Context, blockdeviceID, host string) (BlockDeviceVolume, error) {
	var volume BlockDeviceVolume
	err := s.instrument(ctx, "AttachVolume", logrus.Fields{"blockdevice_id": blockdeviceID, "host": host}, func(ctx context.Context) error {
		var err error
		volume, err = s.volume(ctx, blockdeviceID)
		if err != nil {
			return err
		}
		if volume.IsAttached() {
			return &AlreadyAttachedVolumeError{BlockDeviceID: blockdeviceID, AttachedTo: volume.AttachedTo}
		}

		if err := s.Client.MapVolume(ctx, blockdeviceID, host); err != nil {
			return err
		}
		volume.AttachedTo = host
		s.Logger.WithFields(logrus.Fields{"wwn": blockdeviceID, "host": host}).Info("volume attached, rescanning host")

		return s.HostOps.Rescan(ctx, blockdeviceID)
	})
	return volume, err
}

// DetachVolume cleans the local multipath device, unmaps the volume and rescans the local host
func (s *BlockDeviceService) DetachVolume(ctx context.Context, blockdeviceID string) error {
	return s.instrument(ctx, "DetachVolume", logrus.Fields{"blockdevice_id": blockdeviceID}, func(ctx context.Context) error {
		volume, err := s.volume(ctx, blockdeviceID)
		if err != nil {
			return err
		}
		if !volume.IsAttached() {
			return &UnattachedVolumeError{BlockDeviceID: blockdeviceID}
		}

		if err := s.cleanupDevice(ctx, blockdeviceID); err != nil {
			return err
		}
		if err := s.Client.UnmapVolume(ctx, blockdeviceID, volume.AttachedTo); err != nil {
			return err
		}
		s.Logger.WithFields(logrus.Fields{"wwn": blockdeviceID, "host": volume.AttachedTo}).Info("volume detached, rescanning host")

		return s.HostOps.Rescan(ctx, "")
	})
}

// cleanupDevice flushes the local multipath device of the volume, if this host has one
func (s *BlockDeviceService) cleanupDevice(ctx context.Context, blockdeviceID string) error {
	if !s.multipathActive {
		s.Logger.Debug("multipathing is not active, no device to clean")
		return nil
	}

	devicePath, err := s.HostOps.ResolveDevicePath(ctx, blockdeviceID)
	if err != nil {
		var notFound *hostactions.DeviceNotFoundError
		var pathNotFound *hostactions.DevicePathNotFoundError
		if errors.As(err, &notFound) || errors.As(err, &pathNotFound) {
			s.Logger.WithField("wwn", blockdeviceID).Debug("no local device found for volume, skipping cleanup")
			return nil
		}
		return err
	}
	return s.HostOps.CleanupBeforeUnmap(ctx, devicePath)
}

// GetDevicePath returns the local multipath device of an attached volume
func (s *BlockDeviceService) GetDevicePath(ctx context.Context, blockdeviceID string) (string, error) {
	var devicePath string
	err := s.instrument(ctx, "GetDevicePath", logrus.Fields{"blockdevice_id": blockdeviceID}, func(ctx context.Context) error {
		volume, err := s.volume(ctx, blockdeviceID)
		if err != nil {
			return err
		}
		if !volume.IsAttached() {
			return &UnattachedVolumeError{BlockDeviceID: blockdeviceID}
		}
		if !s.multipathActive {
			return &UnattachedVolumeError{BlockDeviceID: blockdeviceID, Err: hostactions.ErrMultipathInactive}
		}

		devicePath, err = s.HostOps.ResolveDevicePath(ctx, blockdeviceID)
		if err != nil {
			return &UnattachedVolumeError{BlockDeviceID: blockdeviceID, Err: err}
		}
		s.Logger.WithFields(logrus.Fields{"wwn": blockdeviceID, "path": devicePath}).Info("device path resolved")
		return nil
	})
	return devicePath, err
}

// ListVolumes returns the volumes of this cluster annotated with their current host
func (s *BlockDeviceService) ListVolumes(ctx context.Context) ([]BlockDeviceVolume, error) {
	var volumes []BlockDeviceVolume
	err := s.instrument(ctx, "ListVolumes", logrus.Fields{}, func(ctx context.Context) error {
		vols, err := s.Client.ListVolumes(ctx, backend.VolumeFilter{})
		if err != nil {
			return err
		}
		hostMap, err := s.Client.VolumeHostMap(ctx)
		if err != nil {
			return err
		}
		hostNames, err := s.Client.HostIDToName(ctx)
		if err != nil {
			return err
		}

		var totalSize, attached int64
		volumes = make([]BlockDeviceVolume, 0, len(vols))
		for _, vol := range vols {
			if !volname.IsOwnedByCluster(vol.Name, s.clusterSlug) {
				continue
			}
			datasetID, err := volname.DatasetID(vol.Name)
			if err != nil {
				s.Logger.WithError(err).WithField("wwn", vol.WWN).Warn("skipping volume with malformed name")
				continue
			}

			hostIDs := hostMap[vol.WWN]
			if len(hostIDs) > 1 {
				return fmt.Errorf("volume %s is mapped to hosts %v: %w", vol.WWN, hostIDs, backend.ErrMultipleMappings)
			}
			volume := BlockDeviceVolume{
				BlockDeviceID: vol.WWN,
				Size:          vol.Size,
				DatasetID:     datasetID,
			}
			if len(hostIDs) == 1 {
				volume.AttachedTo = hostNames[hostIDs[0]]
			}
			if volume.IsAttached() {
				attached++
			}
			totalSize += vol.Size
			volumes = append(volumes, volume)
		}

		s.Logger.WithFields(logrus.Fields{
			"volumes":  len(volumes),
			"attached": attached,
			"size":     units.BytesSize(float64(totalSize)),
		}).Debug("listed cluster volumes")

		if s.MetricsWrapper != nil {
			if err := s.MetricsWrapper.RecordVolumes(ctx, string(s.Client.Type()), int64(len(volumes)), attached); err != nil {
				s.Logger.WithError(err).Warn("recording volume metrics")
			}
		}
		return nil
	})
	return volumes, err
}

// ownedVolume returns the volume of this cluster exported with wwn.
// A foreign volume with the same WWN is never returned.
func (s *BlockDeviceService) ownedVolume(ctx context.Context, wwn string) (backend.VolInfo, error) {
	vols, err := s.Client.ListVolumes(ctx, backend.VolumeFilter{WWN: wwn})
	if err != nil {
		return backend.VolInfo{}, err
	}
	for _, vol := range vols {
		if volname.IsOwnedByCluster(vol.Name, s.clusterSlug) {
			return vol, nil
		}
	}
	return backend.VolInfo{}, &UnknownVolumeError{BlockDeviceID: wwn}
}

// volume returns the orchestrator view of an owned volume, including its current host
func (s *BlockDeviceService) volume(ctx context.Context, wwn string) (BlockDeviceVolume, error) {
	vol, err := s.ownedVolume(ctx, wwn)
	if err != nil {
		return BlockDeviceVolume{}, err
	}
	datasetID, err := volname.DatasetID(vol.Name)
	if err != nil {
		return BlockDeviceVolume{}, &UnknownVolumeError{BlockDeviceID: wwn}
	}

	host, err := s.Client.VolumeMapping(ctx, wwn)
	if err != nil {
		var hostNotFound *backend.HostIDNotFoundError
		if !errors.As(err, &hostNotFound) {
			return BlockDeviceVolume{}, err
		}
		s.Logger.WithError(err).Warn("volume is mapped to an unknown host, treating it as unattached")
		host = ""
	}

	return BlockDeviceVolume{
		BlockDeviceID: vol.WWN,
		Size:          vol.Size,
		DatasetID:     datasetID,
		AttachedTo:    host,
	}, nil
}

// instrument runs fn inside a span, logging entry, exit and duration and recording call metrics
func (s *BlockDeviceService) instrument(ctx context.Context, operation string, fields logrus.Fields, fn func(context.Context) error) error {
	ctx, span := tracer.GetTracer(ctx, operation)
	defer span.End()

	start := time.Now()
	defer s.timeSince(start, operation)

	log := s.Logger.WithFields(fields).WithField("operation", operation)
	log.Debug("entering")

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Error("operation failed")
	} else {
		log.Debug("exiting")
	}

	if s.MetricsWrapper != nil {
		if merr := s.MetricsWrapper.RecordOperation(ctx, operation, time.Since(start), err); merr != nil {
			s.Logger.WithError(merr).Warn("recording operation metrics")
		}
	}
	return err
}

// timeSince will log the amount of time spent in a given function
func (s *BlockDeviceService) timeSince(start time.Time, fName string) {
	s.Logger.WithFields(logrus.Fields{
		"duration": fmt.Sprintf("%v", time.Since(start)),
		"function": fName,
	}).Debug("function duration")
}
