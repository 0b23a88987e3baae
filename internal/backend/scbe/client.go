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

// Package scbe implements the management client for IBM Spectrum Control Base Edition.
package scbe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dell/csm-blockdevice-adapter/internal/backend"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPort is used when the connection info names no port
	DefaultPort = 8440
	// Group is the SCBE interface group volumes are provisioned for
	Group = "flocker"

	refererFormat = "https://%s:%d/"
	baseSuffix    = "api/v1"

	authPath     = "/users/get-auth-token"
	volumesPath  = "/volumes"
	servicesPath = "/services"
	mappingsPath = "/mappings"
	hostsPath    = "/hosts"
)

func init() {
	backend.Register(backend.TypeSCBE, New)
}

// objectID holds ids that SCBE reports either as JSON numbers or strings
type objectID string

func (id *objectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = objectID(s)
		return nil
	}
	if string(data) == "null" {
		*id = ""
		return nil
	}
	*id = objectID(data)
	return nil
}

func (id objectID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if s != "" && strings.Trim(s, "0123456789") == "" {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

type volume struct {
	Name            string   `json:"name"`
	LogicalCapacity int64    `json:"logical_capacity"`
	VolumeID        objectID `json:"volume_id"`
	SCSIIdentifier  string   `json:"scsi_identifier"`
	Array           objectID `json:"array"`
}

type service struct {
	ID   objectID `json:"id"`
	Name string   `json:"name"`
}

type host struct {
	ID      objectID `json:"id"`
	Name    string   `json:"name"`
	ArrayID objectID `json:"array_id"`
}

type mapping struct {
	Volume string   `json:"volume"`
	Host   objectID `json:"host"`
}

type volumeCreate struct {
	Service  objectID `json:"service"`
	Name     string   `json:"name"`
	Size     int64    `json:"size"`
	SizeUnit string   `json:"size_unit"`
}

type mappingRequest struct {
	VolumeID string   `json:"volume_id"`
	HostID   objectID `json:"host_id"`
}

// RestAPI is the transport the SCBE client sends its requests through
type RestAPI interface {
	Get(ctx context.Context, resourcePath string, filters map[string]string, out interface{}) error
	Post(ctx context.Context, resourcePath string, payload, out interface{}) error
	Delete(ctx context.Context, resourcePath string, payload interface{}) error
}

// Client is the SCBE implementation of backend.Client
type Client struct {
	rest   RestAPI
	info   backend.ConnectionInfo
	Logger *logrus.Logger
}

// New logs in to SCBE and returns a ready client
func New(ctx context.Context, info backend.ConnectionInfo, logger *logrus.Logger) (backend.Client, error) {
	info = info.WithPort(DefaultPort)
	referer := fmt.Sprintf(refererFormat, info.ManagementIP, info.Port)
	credential := Credential{Username: info.Username, Password: info.Password, Group: Group}

	rest, err := NewRestClient(ctx, NewHTTPClient(info.VerifySSL), referer+baseSuffix, authPath, referer, credential, logger)
	if err != nil {
		return nil, err
	}
	logger.WithField("management_ip", info.ManagementIP).Debugf("logged in to %s", backend.TypeSCBE)
	return NewWithRestAPI(rest, info, logger), nil
}

// NewWithRestAPI builds a client over an already authenticated transport
func NewWithRestAPI(rest RestAPI, info backend.ConnectionInfo, logger *logrus.Logger) *Client {
	return &Client{rest: rest, info: info.WithPort(DefaultPort), Logger: logger}
}

// Type returns backend.TypeSCBE
func (c *Client) Type() backend.Type {
	return backend.TypeSCBE
}

// ConnectionInfo returns the connection details the client was built with
func (c *Client) ConnectionInfo() backend.ConnectionInfo {
	return c.info
}

// AllocationUnit returns backend.AllocationUnit
func (c *Client) AllocationUnit() int64 {
	return backend.AllocationUnit
}

// CreateVolume provisions a volume from the named service
func (c *Client) CreateVolume(ctx context.Context, name, resource string, size int64) (backend.VolInfo, error) {
	services, err := c.services(ctx, map[string]string{"name": resource})
	if err != nil {
		return backend.VolInfo{}, err
	}
	svc, ok := findService(services, resource)
	if !ok {
		c.Logger.WithFields(logrus.Fields{
			"volume":   name,
			"resource": resource,
		}).Error("cannot create volume, service does not exist")
		return backend.VolInfo{}, &backend.CreateVolumeError{Volume: name, Resource: resource, ManagementIP: c.info.ManagementIP}
	}

	payload := volumeCreate{
		Service:  svc.ID,
		Name:     name,
		Size:     size,
		SizeUnit: "byte",
	}
	var created volume
	if err := c.rest.Post(ctx, volumesPath, payload, &created); err != nil {
		return backend.VolInfo{}, err
	}
	return toVolInfo(created), nil
}

// ListVolumes lists volumes by WWN and name. SCBE has no per-service filter so Resource is ignored.
func (c *Client) ListVolumes(ctx context.Context, filter backend.VolumeFilter) ([]backend.VolInfo, error) {
	volumes, err := c.volumes(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]backend.VolInfo, 0, len(volumes))
	for _, v := range volumes {
		result = append(result, toVolInfo(v))
	}
	return result, nil
}

// DeleteVolume deletes the volume with the given WWN
func (c *Client) DeleteVolume(ctx context.Context, wwn string) error {
	return c.rest.Delete(ctx, volumesPath+"/"+wwn, nil)
}

// MapVolume maps the volume to the host with the given name on the volume's array
func (c *Client) MapVolume(ctx context.Context, wwn, hostName string) error {
	hostID, err := c.HostIDForVolume(ctx, wwn, hostName)
	if err != nil {
		return err
	}
	return c.rest.Post(ctx, mappingsPath, mappingRequest{VolumeID: wwn, HostID: objectID(hostID)}, nil)
}

// UnmapVolume removes the mapping between the volume and the named host
func (c *Client) UnmapVolume(ctx context.Context, wwn, hostName string) error {
	hostID, err := c.HostIDForVolume(ctx, wwn, hostName)
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, mappingsPath, mappingRequest{VolumeID: wwn, HostID: objectID(hostID)})
}

// ResourceExists reports whether a service with exactly this name is delegated to the interface
func (c *Client) ResourceExists(ctx context.Context, resource string) (bool, error) {
	services, err := c.services(ctx, map[string]string{"name": resource})
	if err != nil {
		return false, err
	}
	_, ok := findService(services, resource)
	return ok, nil
}

// ListResourceNames returns the names of all services delegated to the interface
func (c *Client) ListResourceNames(ctx context.Context) ([]string, error) {
	services, err := c.services(ctx, nil)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names, nil
}

// HandleDefaultResource resolves backend.DefaultResource when exactly one service is delegated
func (c *Client) HandleDefaultResource(ctx context.Context, resource string) (string, error) {
	if resource != backend.DefaultResource {
		return resource, nil
	}
	names, err := c.ListResourceNames(ctx)
	if err != nil {
		return "", err
	}
	if len(names) != 1 {
		return "", &backend.AmbiguousResourceError{Available: names}
	}
	return names[0], nil
}

// HostIDForVolume finds the id of hostName among the hosts of the array owning the volume
func (c *Client) HostIDForVolume(ctx context.Context, wwn, hostName string) (string, error) {
	volumes, err := c.volumes(ctx, backend.VolumeFilter{WWN: wwn})
	if err != nil {
		return "", err
	}
	if len(volumes) == 0 {
		return "", &backend.VolumeNotFoundError{WWN: wwn}
	}
	array := string(volumes[0].Array)

	var hosts []host
	if err := c.rest.Get(ctx, hostsPath, map[string]string{"array_id": array, "name": hostName}, &hosts); err != nil {
		return "", err
	}
	if len(hosts) != 1 {
		matches := make([]string, 0, len(hosts))
		for _, h := range hosts {
			matches = append(matches, fmt.Sprintf("%s(%s)", h.Name, h.ID))
		}
		return "", &backend.HostNotFoundByWWNError{WWN: wwn, Host: hostName, Array: array, Matches: matches}
	}
	return string(hosts[0].ID), nil
}

// VolumeMapping returns the name of the host the volume is mapped to
func (c *Client) VolumeMapping(ctx context.Context, wwn string) (string, error) {
	var mappings []mapping
	if err := c.rest.Get(ctx, mappingsPath, map[string]string{"volume": wwn}, &mappings); err != nil {
		return "", err
	}
	if len(mappings) == 0 {
		return "", nil
	}
	if len(mappings) > 1 {
		return "", errors.Wrapf(backend.ErrMultipleMappings, "volume %s has %d mappings", wwn, len(mappings))
	}

	hostID := string(mappings[0].Host)
	var h host
	err := c.rest.Get(ctx, hostsPath+"/"+hostID, nil, &h)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return "", &backend.HostIDNotFoundError{HostID: hostID, WWN: wwn}
	}
	if err != nil {
		return "", err
	}
	if h.Name == "" {
		return "", &backend.HostIDNotFoundError{HostID: hostID, WWN: wwn}
	}
	return h.Name, nil
}

// VolumeHostMap lists all mappings as volume WWN to host ids
func (c *Client) VolumeHostMap(ctx context.Context) (map[string][]string, error) {
	var mappings []mapping
	if err := c.rest.Get(ctx, mappingsPath, nil, &mappings); err != nil {
		return nil, err
	}
	result := make(map[string][]string, len(mappings))
	for _, m := range mappings {
		result[m.Volume] = append(result[m.Volume], string(m.Host))
	}
	return result, nil
}

// HostIDToName lists all hosts as host id to host name
func (c *Client) HostIDToName(ctx context.Context) (map[string]string, error) {
	var hosts []host
	if err := c.rest.Get(ctx, hostsPath, nil, &hosts); err != nil {
		return nil, err
	}
	result := make(map[string]string, len(hosts))
	for _, h := range hosts {
		result[string(h.ID)] = h.Name
	}
	return result, nil
}

func (c *Client) services(ctx context.Context, filters map[string]string) ([]service, error) {
	var services []service
	if err := c.rest.Get(ctx, servicesPath, filters, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) volumes(ctx context.Context, filter backend.VolumeFilter) ([]volume, error) {
	filters := make(map[string]string)
	if filter.WWN != "" {
		filters["scsi_identifier"] = filter.WWN
	}
	if filter.Name != "" {
		filters["name"] = filter.Name
	}
	var volumes []volume
	if err := c.rest.Get(ctx, volumesPath, filters, &volumes); err != nil {
		return nil, err
	}
	return volumes, nil
}

func findService(services []service, name string) (service, bool) {
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return service{}, false
}

func toVolInfo(v volume) backend.VolInfo {
	return backend.VolInfo{
		Name: v.Name,
		Size: v.LogicalCapacity,
		ID:   string(v.VolumeID),
		WWN:  v.SCSIIdentifier,
	}
}

var _ backend.Client = (*Client)(nil)

var _ RestAPI = (*RestClient)(nil)
