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

// Package volname encodes a dataset id and the owning cluster id into an array volume name.
//
// Names look like f_<dataset-id 36 chars>_<cluster-id slug 22 chars>, e.g.
// f_47eae400-28ce-11e6-b1ca-68f7288f1809_c31OoCi_EeaxLmj3KI8YCQ.
// The name is the only link between a dataset and its array volume, so every field is fixed width.
package volname

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// Prefix marks volumes created by this adapter
	Prefix = "f_"
	// Delimiter separates the dataset id from the cluster slug
	Delimiter = "_"
	// SlugLength is the length of an encoded 16 byte cluster id
	SlugLength = 22

	uuidLength       = 36
	datasetIDStart   = len(Prefix)
	datasetIDEnd     = datasetIDStart + uuidLength
	clusterSlugStart = datasetIDEnd + len(Delimiter)
)

var (
	// ErrInvalidName is returned when a volume name does not follow the naming layout
	ErrInvalidName = errors.New("invalid volume name")
	// ErrInvalidSlug is returned when a cluster slug cannot be decoded into a UUID
	ErrInvalidSlug = errors.New("invalid cluster id slug")
)

// EncodeClusterID returns the URL-safe, unpadded base64 form of the 16 raw UUID bytes
func EncodeClusterID(clusterID uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(clusterID[:])
}

// DecodeClusterSlug reverses EncodeClusterID
func DecodeClusterSlug(slug string) (uuid.UUID, error) {
	if len(slug) != SlugLength {
		return uuid.Nil, fmt.Errorf("%w: %q has length %d, expected %d", ErrInvalidSlug, slug, len(slug), SlugLength)
	}
	raw, err := base64.RawURLEncoding.DecodeString(slug)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidSlug, slug, err)
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidSlug, slug, err)
	}
	return id, nil
}

// Build composes the array volume name for a dataset owned by the cluster identified by clusterSlug
func Build(datasetID uuid.UUID, clusterSlug string) string {
	return Prefix + datasetID.String() + Delimiter + clusterSlug
}

// DatasetID extracts the dataset id embedded in a volume name
func DatasetID(name string) (uuid.UUID, error) {
	if len(name) < clusterSlugStart {
		return uuid.Nil, fmt.Errorf("%w: %q is too short", ErrInvalidName, name)
	}
	raw := name[datasetIDStart:datasetIDEnd]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q does not carry a dataset id: %v", ErrInvalidName, name, err)
	}
	return id, nil
}

// ClusterSlug returns everything after the dataset id delimiter
func ClusterSlug(name string) (string, error) {
	if len(name) < clusterSlugStart {
		return "", fmt.Errorf("%w: %q is too short", ErrInvalidName, name)
	}
	return name[clusterSlugStart:], nil
}

// IsOwnedByCluster reports whether name was built for the cluster identified by clusterSlug.
// Foreign names, including those that are too short, are never owned.
func IsOwnedByCluster(name, clusterSlug string) bool {
	if !strings.HasPrefix(name, Prefix) {
		return false
	}
	slug, err := ClusterSlug(name)
	if err != nil {
		return false
	}
	return slug == clusterSlug
}
