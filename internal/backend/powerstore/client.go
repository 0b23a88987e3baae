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

// Package powerstore implements a management client that talks straight to a PowerStore array.
// Storage resources are appliances: a volume created on a resource lands on the appliance of that name.
package powerstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dell/csm-blockdevice-adapter/internal/backend"
	csictx "github.com/dell/gocsi/context"
	"github.com/dell/gopowerstore"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// EnvThrottlingRateLimit sets a number of concurrent requests to the array API
	EnvThrottlingRateLimit = "X_CSI_POWERSTORE_THROTTLING_RATE_LIMIT"
	// DefaultPort is used when the connection info names no port
	DefaultPort = 443

	endpointFormat = "https://%s:%d/api/rest"
	wwnPrefix      = "naa."
)

func init() {
	backend.Register(backend.TypePowerStore, New)
}

// API is the subset of gopowerstore.Client used by the adapter
//
//go:generate mockgen -destination=mocks/api_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/internal/backend/powerstore API
type API interface {
	GetVolumes(ctx context.Context) ([]gopowerstore.Volume, error)
	GetVolume(ctx context.Context, id string) (gopowerstore.Volume, error)
	GetVolumeByName(ctx context.Context, name string) (gopowerstore.Volume, error)
	CreateVolume(ctx context.Context, createParams *gopowerstore.VolumeCreate) (gopowerstore.CreateResponse, error)
	DeleteVolume(ctx context.Context, deleteParams *gopowerstore.VolumeDelete, id string) (gopowerstore.EmptyResponse, error)
	GetHosts(ctx context.Context) ([]gopowerstore.Host, error)
	GetHost(ctx context.Context, id string) (gopowerstore.Host, error)
	GetHostByName(ctx context.Context, name string) (gopowerstore.Host, error)
	AttachVolumeToHost(ctx context.Context, hostID string, attachParams *gopowerstore.HostVolumeAttach) (gopowerstore.EmptyResponse, error)
	DetachVolumeFromHost(ctx context.Context, hostID string, detachParams *gopowerstore.HostVolumeDetach) (gopowerstore.EmptyResponse, error)
	GetHostVolumeMappings(ctx context.Context) ([]gopowerstore.HostVolumeMapping, error)
	GetHostVolumeMappingByVolumeID(ctx context.Context, volumeID string) ([]gopowerstore.HostVolumeMapping, error)
	GetApplianceByName(ctx context.Context, name string) (gopowerstore.ApplianceInstance, error)
}

// Client is the PowerStore implementation of backend.Client
type Client struct {
	api    API
	info   backend.ConnectionInfo
	Logger *logrus.Logger
}

// New builds a gopowerstore client from the connection info
func New(ctx context.Context, info backend.ConnectionInfo, logger *logrus.Logger) (backend.Client, error) {
	info = info.WithPort(DefaultPort)

	clientOptions := gopowerstore.NewClientOptions()
	clientOptions.SetInsecure(!info.VerifySSL)
	if throttlingRateLimit, ok := csictx.LookupEnv(ctx, EnvThrottlingRateLimit); ok {
		rateLimit, err := strconv.Atoi(throttlingRateLimit)
		if err != nil {
			logger.Errorf("can't get throttling rate limit, using default")
		} else {
			clientOptions.SetRateLimit(rateLimit) // #nosec G115 -- This is a false positive
		}
	}

	endpoint := fmt.Sprintf(endpointFormat, info.ManagementIP, info.Port)
	c, err := gopowerstore.NewClientWithArgs(endpoint, info.Username, info.Password, clientOptions)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition,
			"unable to create PowerStore client: %s", err.Error())
	}
	logger.WithField("endpoint", endpoint).Debugf("created %s client", backend.TypePowerStore)
	return NewWithAPI(c, info, logger), nil
}

// NewWithAPI wraps an existing array API
func NewWithAPI(api API, info backend.ConnectionInfo, logger *logrus.Logger) *Client {
	return &Client{api: api, info: info.WithPort(DefaultPort), Logger: logger}
}

// Type returns backend.TypePowerStore
func (c *Client) Type() backend.Type {
	return backend.TypePowerStore
}

// ConnectionInfo returns the connection details the client was built with
func (c *Client) ConnectionInfo() backend.ConnectionInfo {
	return c.info
}

// AllocationUnit returns backend.AllocationUnit
func (c *Client) AllocationUnit() int64 {
	return backend.AllocationUnit
}

// CreateVolume creates a volume on the appliance named by resource
func (c *Client) CreateVolume(ctx context.Context, name, resource string, size int64) (backend.VolInfo, error) {
	defer timeSince(time.Now(), "CreateVolume", c.Logger)

	appliance, err := c.api.GetApplianceByName(ctx, resource)
	if isNotFound(err) {
		c.Logger.WithFields(logrus.Fields{
			"volume":   name,
			"resource": resource,
		}).Error("cannot create volume, appliance does not exist")
		return backend.VolInfo{}, &backend.CreateVolumeError{Volume: name, Resource: resource, ManagementIP: c.info.ManagementIP}
	}
	if err != nil {
		return backend.VolInfo{}, err
	}

	volName := name
	volSize := size
	resp, err := c.api.CreateVolume(ctx, &gopowerstore.VolumeCreate{
		Name:        &volName,
		Size:        &volSize,
		ApplianceID: appliance.ID,
	})
	if err != nil {
		return backend.VolInfo{}, err
	}

	vol, err := c.api.GetVolume(ctx, resp.ID)
	if err != nil {
		return backend.VolInfo{}, errors.Wrapf(err, "unable to read back volume %s", name)
	}
	return toVolInfo(vol), nil
}

// ListVolumes lists volumes matching the filter. A non empty Resource keeps volumes of that appliance only.
func (c *Client) ListVolumes(ctx context.Context, filter backend.VolumeFilter) ([]backend.VolInfo, error) {
	defer timeSince(time.Now(), "ListVolumes", c.Logger)

	var volumes []gopowerstore.Volume
	if filter.Name != "" {
		vol, err := c.api.GetVolumeByName(ctx, filter.Name)
		if isNotFound(err) {
			return []backend.VolInfo{}, nil
		}
		if err != nil {
			return nil, err
		}
		volumes = []gopowerstore.Volume{vol}
	} else {
		var err error
		volumes, err = c.api.GetVolumes(ctx)
		if err != nil {
			return nil, err
		}
	}

	applianceID := ""
	if filter.Resource != "" && filter.Resource != backend.DefaultResource {
		appliance, err := c.api.GetApplianceByName(ctx, filter.Resource)
		if err != nil {
			return nil, err
		}
		applianceID = appliance.ID
	}

	result := make([]backend.VolInfo, 0, len(volumes))
	for _, vol := range volumes {
		if filter.WWN != "" && !strings.EqualFold(trimWWN(vol.Wwn), filter.WWN) {
			continue
		}
		if applianceID != "" && vol.ApplianceID != applianceID {
			continue
		}
		result = append(result, toVolInfo(vol))
	}
	return result, nil
}

// DeleteVolume deletes the volume with the given WWN
func (c *Client) DeleteVolume(ctx context.Context, wwn string) error {
	vol, err := c.volumeByWWN(ctx, wwn)
	if err != nil {
		return err
	}
	_, err = c.api.DeleteVolume(ctx, &gopowerstore.VolumeDelete{}, vol.ID)
	return err
}

// MapVolume attaches the volume to the named host
func (c *Client) MapVolume(ctx context.Context, wwn, hostName string) error {
	vol, hostID, err := c.volumeAndHost(ctx, wwn, hostName)
	if err != nil {
		return err
	}
	volID := vol.ID
	_, err = c.api.AttachVolumeToHost(ctx, hostID, &gopowerstore.HostVolumeAttach{VolumeID: &volID})
	return err
}

// UnmapVolume detaches the volume from the named host
func (c *Client) UnmapVolume(ctx context.Context, wwn, hostName string) error {
	vol, hostID, err := c.volumeAndHost(ctx, wwn, hostName)
	if err != nil {
		return err
	}
	volID := vol.ID
	_, err = c.api.DetachVolumeFromHost(ctx, hostID, &gopowerstore.HostVolumeDetach{VolumeID: &volID})
	return err
}

// ResourceExists reports whether an appliance with this name exists
func (c *Client) ResourceExists(ctx context.Context, resource string) (bool, error) {
	appliance, err := c.api.GetApplianceByName(ctx, resource)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return appliance.Name == resource, nil
}

// ListResourceNames is not available in direct mode, appliances are only looked up by name
func (c *Client) ListResourceNames(_ context.Context) ([]string, error) {
	return nil, errors.Errorf("%s does not list appliances, configure default_service with an appliance name", backend.TypePowerStore)
}

// HandleDefaultResource rejects backend.DefaultResource since appliances cannot be listed
func (c *Client) HandleDefaultResource(ctx context.Context, resource string) (string, error) {
	if resource != backend.DefaultResource {
		return resource, nil
	}
	_, err := c.ListResourceNames(ctx)
	return "", err
}

// HostIDForVolume resolves the PowerStore host id of hostName
func (c *Client) HostIDForVolume(ctx context.Context, wwn, hostName string) (string, error) {
	_, hostID, err := c.volumeAndHost(ctx, wwn, hostName)
	return hostID, err
}

// VolumeMapping returns the name of the host the volume is attached to
func (c *Client) VolumeMapping(ctx context.Context, wwn string) (string, error) {
	vol, err := c.volumeByWWN(ctx, wwn)
	if err != nil {
		return "", err
	}
	mappings, err := c.api.GetHostVolumeMappingByVolumeID(ctx, vol.ID)
	if err != nil {
		return "", err
	}
	if len(mappings) == 0 {
		return "", nil
	}
	if len(mappings) > 1 {
		return "", errors.Wrapf(backend.ErrMultipleMappings, "volume %s has %d mappings", wwn, len(mappings))
	}
	h, err := c.api.GetHost(ctx, mappings[0].HostID)
	if isNotFound(err) {
		return "", &backend.HostIDNotFoundError{HostID: mappings[0].HostID, WWN: wwn}
	}
	if err != nil {
		return "", err
	}
	return h.Name, nil
}

// VolumeHostMap lists all mappings keyed by volume WWN
func (c *Client) VolumeHostMap(ctx context.Context) (map[string][]string, error) {
	defer timeSince(time.Now(), "VolumeHostMap", c.Logger)

	volumes, err := c.api.GetVolumes(ctx)
	if err != nil {
		return nil, err
	}
	wwnByID := make(map[string]string, len(volumes))
	for _, vol := range volumes {
		wwnByID[vol.ID] = trimWWN(vol.Wwn)
	}

	mappings, err := c.api.GetHostVolumeMappings(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]string)
	for _, m := range mappings {
		wwn, ok := wwnByID[m.VolumeID]
		if !ok || m.HostID == "" {
			continue
		}
		result[wwn] = append(result[wwn], m.HostID)
	}
	return result, nil
}

// HostIDToName lists all hosts as host id to host name
func (c *Client) HostIDToName(ctx context.Context) (map[string]string, error) {
	hosts, err := c.api.GetHosts(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(hosts))
	for _, h := range hosts {
		result[h.ID] = h.Name
	}
	return result, nil
}

func (c *Client) volumeByWWN(ctx context.Context, wwn string) (gopowerstore.Volume, error) {
	volumes, err := c.api.GetVolumes(ctx)
	if err != nil {
		return gopowerstore.Volume{}, err
	}
	for _, vol := range volumes {
		if strings.EqualFold(trimWWN(vol.Wwn), wwn) {
			return vol, nil
		}
	}
	return gopowerstore.Volume{}, &backend.VolumeNotFoundError{WWN: wwn}
}

func (c *Client) volumeAndHost(ctx context.Context, wwn, hostName string) (gopowerstore.Volume, string, error) {
	vol, err := c.volumeByWWN(ctx, wwn)
	if err != nil {
		return gopowerstore.Volume{}, "", err
	}
	h, err := c.api.GetHostByName(ctx, hostName)
	if isNotFound(err) {
		return gopowerstore.Volume{}, "", &backend.HostNotFoundByWWNError{WWN: wwn, Host: hostName, Array: c.info.ManagementIP}
	}
	if err != nil {
		return gopowerstore.Volume{}, "", err
	}
	return vol, h.ID, nil
}

func toVolInfo(vol gopowerstore.Volume) backend.VolInfo {
	return backend.VolInfo{
		Name: vol.Name,
		Size: vol.Size,
		ID:   vol.ID,
		WWN:  trimWWN(vol.Wwn),
	}
}

// trimWWN strips the naa. prefix PowerStore reports
func trimWWN(wwn string) string {
	return strings.TrimPrefix(strings.ToLower(wwn), wwnPrefix)
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var apiErr gopowerstore.APIError
	if errors.As(err, &apiErr) {
		return apiErr.NotFound()
	}
	var apiErrPtr *gopowerstore.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.NotFound()
	}
	return false
}

func timeSince(start time.Time, fName string, logger *logrus.Logger) {
	logger.WithFields(logrus.Fields{
		"duration": fmt.Sprintf("%v", time.Since(start)),
		"function": fName,
	}).Debug("function duration")
}

var _ backend.Client = (*Client)(nil)
