// Copyright (c) 2025 Dell Inc., or its subsidiaries. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0

package service

import (
	"fmt"

	"github.com/google/uuid"
)

// BlockDeviceVolume is the orchestrator view of an array volume owned by this cluster
type BlockDeviceVolume struct {
	// BlockDeviceID is the volume WWN
	BlockDeviceID string    `yaml:"blockdevice_id" json:"blockdevice_id"`
	Size          int64     `yaml:"size" json:"size"`
	DatasetID     uuid.UUID `yaml:"dataset_id" json:"dataset_id"`
	// AttachedTo is the host name the volume is mapped to, empty when unattached
	AttachedTo string `yaml:"attached_to,omitempty" json:"attached_to,omitempty"`
}

// IsAttached reports whether the volume is mapped to a host
func (v BlockDeviceVolume) IsAttached() bool {
	return v.AttachedTo != ""
}

// UnknownVolumeError is returned when no volume of this cluster carries the WWN
type UnknownVolumeError struct {
	BlockDeviceID string
}

func (e *UnknownVolumeError) Error() string {
	return fmt.Sprintf("unknown volume %s", e.BlockDeviceID)
}

// UnattachedVolumeError is returned when a volume is not attached, or its device cannot be resolved on this host
type UnattachedVolumeError struct {
	BlockDeviceID string
	Err           error
}

func (e *UnattachedVolumeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("volume %s is not attached: %v", e.BlockDeviceID, e.Err)
	}
	return fmt.Sprintf("volume %s is not attached", e.BlockDeviceID)
}

func (e *UnattachedVolumeError) Unwrap() error {
	return e.Err
}

// AlreadyAttachedVolumeError is returned when attaching a volume that is mapped already
type AlreadyAttachedVolumeError struct {
	BlockDeviceID string
	AttachedTo    string
}

func (e *AlreadyAttachedVolumeError) Error() string {
	return fmt.Sprintf("volume %s is already attached to %s", e.BlockDeviceID, e.AttachedTo)
}

// StoragePoolNotExistError is returned when the configured default resource does not exist
type StoragePoolNotExistError struct {
	Pool         string
	ManagementIP string
}

func (e *StoragePoolNotExistError) Error() string {
	return fmt.Sprintf("storage pool [%s] does not exist or is not delegated to this interface on [%s]", e.Pool, e.ManagementIP)
}

// NoServicesExistError is returned when the default resource sentinel is configured and no resource is available
type NoServicesExistError struct {
	ManagementIP string
}

func (e *NoServicesExistError) Error() string {
	return fmt.Sprintf("no storage services are delegated to this interface on [%s]", e.ManagementIP)
}
