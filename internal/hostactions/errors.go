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

package hostactions

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMultipathInactive is returned when a multipath device is requested on a host without native multipathing
var ErrMultipathInactive = errors.New("native multipathing is not active on this host")

// MultipathCmdNotFoundError is returned at construction when the multipath tool is missing
type MultipathCmdNotFoundError struct {
	Cmd string
}

func (e *MultipathCmdNotFoundError) Error() string {
	return fmt.Sprintf("mandatory command %s was not found on this host", e.Cmd)
}

// RescanCmdNotFoundError is returned at construction when no SCSI rescan tool is found
type RescanCmdNotFoundError struct {
	Cmds []string
}

func (e *RescanCmdNotFoundError) Error() string {
	return fmt.Sprintf("mandatory command [%s] was not found on this host", strings.Join(e.Cmds, ", "))
}

// DeviceNotFoundError is returned when the multipath listing shows no device for a WWN
type DeviceNotFoundError struct {
	WWN string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("multipath device for WWN %s was not found", e.WWN)
}

// DevicePathNotFoundError is returned when multipath reports a device whose node is missing
type DevicePathNotFoundError struct {
	WWN  string
	Path string
}

func (e *DevicePathNotFoundError) Error() string {
	return fmt.Sprintf("multipath device for WWN %s exists but %s was not found", e.WWN, e.Path)
}

// CommandError is returned once every attempt of a command has failed
type CommandError struct {
	Cmd      string
	Args     []string
	Output   string
	Attempts int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s %s failed after %d attempt(s): %v: %s",
		e.Cmd, strings.Join(e.Args, " "), e.Attempts, e.Err, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
