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
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Type identifies a storage management backend
type Type string

const (
	// TypeSCBE talks to IBM Spectrum Control Base Edition
	TypeSCBE Type = "SCBE"
	// TypePowerStore talks straight to a PowerStore array
	TypePowerStore Type = "POWERSTORE"
	// DefaultType is used when the configuration names no management type
	DefaultType = TypeSCBE
)

// Constructor builds a Client for a management backend
type Constructor func(ctx context.Context, info ConnectionInfo, logger *logrus.Logger) (Client, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[Type]Constructor)
)

// ParseType normalizes a configured management type
func ParseType(s string) Type {
	if strings.TrimSpace(s) == "" {
		return DefaultType
	}
	return Type(strings.ToUpper(strings.TrimSpace(s)))
}

// Register makes a backend constructor available under the given type
func Register(t Type, c Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = c
}

// Types returns the registered backend types in sorted order
func Types() []Type {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// New builds a client for the given backend type
func New(ctx context.Context, t Type, info ConnectionInfo, logger *logrus.Logger) (Client, error) {
	registryMu.RLock()
	constructor, ok := registry[t]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnsupportedTypeError{Type: string(t), Supported: Types()}
	}
	return constructor(ctx, info, logger)
}
