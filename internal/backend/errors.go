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

package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMultipleMappings is returned when a volume is mapped to more than one host
var ErrMultipleMappings = errors.New("volume is mapped to more than one host")

// CreateVolumeError is returned when a volume cannot be created on the requested resource
type CreateVolumeError struct {
	Volume       string
	Resource     string
	ManagementIP string
}

func (e *CreateVolumeError) Error() string {
	return fmt.Sprintf("cannot create volume [%s] on resource [%s]: resource does not exist or is not delegated to this interface on [%s]",
		e.Volume, e.Resource, e.ManagementIP)
}

// VolumeNotFoundError is returned when no volume carries the given WWN
type VolumeNotFoundError struct {
	WWN string
}

func (e *VolumeNotFoundError) Error() string {
	return fmt.Sprintf("volume not found: %s", e.WWN)
}

// HostIDNotFoundError is returned when a mapping refers to a host the array no longer reports
type HostIDNotFoundError struct {
	HostID string
	WWN    string
}

func (e *HostIDNotFoundError) Error() string {
	return fmt.Sprintf("host %s was not found for volume %s", e.HostID, e.WWN)
}

// HostNotFoundByWWNError is returned when a host name matches zero or several hosts on the array of a volume
type HostNotFoundByWWNError struct {
	WWN     string
	Host    string
	Array   string
	Matches []string
}

func (e *HostNotFoundByWWNError) Error() string {
	return fmt.Sprintf("host name [%s] was not found exactly once on storage system [%s] related to volume with WWN [%s] (hosts found [%s])",
		e.Host, e.Array, e.WWN, strings.Join(e.Matches, ", "))
}

// AmbiguousResourceError is returned when the default resource cannot be resolved to a single resource
type AmbiguousResourceError struct {
	Available []string
}

func (e *AmbiguousResourceError) Error() string {
	return fmt.Sprintf("default resource is ambiguous, %d resources available: [%s]", len(e.Available), strings.Join(e.Available, ", "))
}

// UnsupportedTypeError is returned when no client is registered for a management type
type UnsupportedTypeError struct {
	Type      string
	Supported []Type
}

func (e *UnsupportedTypeError) Error() string {
	supported := make([]string, 0, len(e.Supported))
	for _, t := range e.Supported {
		supported = append(supported, string(t))
	}
	return fmt.Sprintf("management type %s is not supported, supported types are [%s]", e.Type, strings.Join(supported, ", "))
}
