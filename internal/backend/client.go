/*
 Copyright (c) 2025 Dell Inc. or its subsidiaries. All Rights Reserved.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package backend defines the storage management client used by the block device service
// and the registry of management backend implementations.
package backend

import (
	"context"

	"github.com/docker/go-units"
)

// DefaultResource asks the backend to pick the storage resource on its own
const DefaultResource = "-DEFAULT-"

// AllocationUnit is the granularity volume sizes are rounded up to before creation
const AllocationUnit = int64(units.MiB)

// Client contains operations for managing volumes on a storage array through its management API
//
//go:generate mockgen -destination=mocks/client_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/internal/backend Client
type Client interface {
	// Type returns the management backend type the client talks to
	Type() Type
	// ConnectionInfo returns the connection details the client was built with
	ConnectionInfo() ConnectionInfo

	CreateVolume(ctx context.Context, name, resource string, size int64) (VolInfo, error)
	ListVolumes(ctx context.Context, filter VolumeFilter) ([]VolInfo, error)
	DeleteVolume(ctx context.Context, wwn string) error
	MapVolume(ctx context.Context, wwn, host string) error
	UnmapVolume(ctx context.Context, wwn, host string) error
	AllocationUnit() int64

	// ResourceExists reports whether volumes can be provisioned from the named resource
	ResourceExists(ctx context.Context, resource string) (bool, error)
	ListResourceNames(ctx context.Context) ([]string, error)
	// HandleDefaultResource resolves DefaultResource into a concrete resource name
	HandleDefaultResource(ctx context.Context, resource string) (string, error)

	// HostIDForVolume resolves the array host id of host on the array that owns the volume
	HostIDForVolume(ctx context.Context, wwn, host string) (string, error)
	// VolumeMapping returns the name of the host the volume is mapped to, or "" when unmapped
	VolumeMapping(ctx context.Context, wwn string) (string, error)
	// VolumeHostMap returns every mapping as volume WWN to the array host ids it is mapped to
	VolumeHostMap(ctx context.Context) (map[string][]string, error)
	// HostIDToName returns every host as array host id to host name
	HostIDToName(ctx context.Context) (map[string]string, error)
}
