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
	"github.com/sirupsen/logrus"
)

// ConnectionInfo holds what is needed to reach a storage management system.
// It is treated as immutable once a client has been built from it.
type ConnectionInfo struct {
	ManagementIP string
	Port         int
	Username     string
	Password     string
	VerifySSL    bool
	LogLevel     logrus.Level
}

// WithPort returns a copy of the connection info with the port set when none was given
func (c ConnectionInfo) WithPort(defaultPort int) ConnectionInfo {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	return c
}

// VolInfo is the minimal array-side view of a volume
type VolInfo struct {
	Name string
	// Size in bytes
	Size int64
	// ID is the array native identifier
	ID  string
	WWN string
}

// VolumeFilter narrows a volume listing; empty fields do not filter
type VolumeFilter struct {
	WWN  string
	Name string
	// Resource is honored only by backends that provision straight from a pool
	Resource string
}
