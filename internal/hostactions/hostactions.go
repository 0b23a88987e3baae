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

// Package hostactions discovers and cleans up multipath block devices on the local host.
package hostactions

import (
	"context"
	"path"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	// DevMapperDir holds the device nodes of multipath maps
	DevMapperDir = "/dev/mapper"
	// MultipathModuleDir exists while the kernel multipath target is loaded
	MultipathModuleDir = "/sys/module/dm_multipath"

	multipathCmd = "multipath"
	iscsiadmCmd  = "iscsiadm"
	dmsetupCmd   = "dmsetup"

	multipathReloadTimeout = 40 * time.Second
	multipathReloadRetries = 3
	multipathFlushRetries  = 3
	defaultRetryInterval   = time.Second
)

// RescanCmds are the SCSI bus rescan tools, in order of preference
var RescanCmds = []string{"rescan-scsi-bus", "rescan-scsi-bus.sh"}

// HostActions runs the rescan, resolve and cleanup steps around attach and detach
type HostActions struct {
	exec   Executor
	fs     afero.Fs
	Logger *logrus.Logger

	multipathCmd string
	rescanCmd    string
	iscsiadmCmd  string

	// RetryInterval is the pause between attempts of a failing command
	RetryInterval time.Duration
}

// New locates the host tools. multipath and a rescan tool are mandatory, iscsiadm is optional.
func New(executor Executor, fs afero.Fs, logger *logrus.Logger) (*HostActions, error) {
	h := &HostActions{
		exec:          executor,
		fs:            fs,
		Logger:        logger,
		RetryInterval: defaultRetryInterval,
	}

	mp, err := executor.LookPath(multipathCmd)
	if err != nil {
		return nil, &MultipathCmdNotFoundError{Cmd: multipathCmd}
	}
	h.multipathCmd = mp

	for _, cmd := range RescanCmds {
		if found, err := executor.LookPath(cmd); err == nil {
			h.rescanCmd = found
			break
		}
	}
	if h.rescanCmd == "" {
		return nil, &RescanCmdNotFoundError{Cmds: RescanCmds}
	}

	if found, err := executor.LookPath(iscsiadmCmd); err == nil {
		h.iscsiadmCmd = found
	} else {
		logger.WithField("cmd", iscsiadmCmd).Debug("command not found, iSCSI rescan disabled")
	}

	logger.WithFields(logrus.Fields{
		"multipath": h.multipathCmd,
		"rescan":    h.rescanCmd,
		"iscsiadm":  h.iscsiadmCmd,
	}).Debug("host tools located")
	return h, nil
}

// IsMultipathActive reports whether the kernel multipath target is loaded
func (h *HostActions) IsMultipathActive() bool {
	exists, err := afero.DirExists(h.fs, MultipathModuleDir)
	if err != nil {
		h.Logger.WithError(err).Warn("cannot check multipath module")
		return false
	}
	return exists
}

// Rescan rescans iSCSI sessions and the SCSI bus, then reloads multipath maps.
// When wwn is set the reload stops retrying as soon as the device of that WWN resolves.
func (h *HostActions) Rescan(ctx context.Context, wwn string) error {
	if h.iscsiadmCmd != "" {
		if _, err := h.run(ctx, h.iscsiadmCmd, []string{"-m", "session", "--rescan"}, 0, 0, nil); err != nil {
			h.Logger.WithError(err).Error("iSCSI rescan failed, continuing with SCSI rescan")
		}
	}

	if _, err := h.run(ctx, h.rescanCmd, []string{"-r"}, 0, 0, nil); err != nil {
		return err
	}

	var goal func() bool
	if wwn != "" {
		goal = func() bool {
			_, err := h.findDevice(ctx, wwn)
			return err == nil
		}
	}
	if _, err := h.run(ctx, h.multipathCmd, []string{"-r"}, multipathReloadTimeout, multipathReloadRetries, goal); err != nil {
		return err
	}

	h.Logger.Debug("finished all rescans on the host")
	return nil
}

// ResolveDevicePath returns /dev/mapper/<name> of the multipath device exporting wwn
func (h *HostActions) ResolveDevicePath(ctx context.Context, wwn string) (string, error) {
	name, err := h.findDevice(ctx, wwn)
	if err != nil {
		return "", err
	}

	devicePath := path.Join(DevMapperDir, name)
	exists, err := afero.Exists(h.fs, devicePath)
	if err != nil || !exists {
		h.Logger.WithField("path", devicePath).Error("device path not found")
		return "", &DevicePathNotFoundError{WWN: wwn, Path: devicePath}
	}

	h.Logger.WithFields(logrus.Fields{
		"wwn":  wwn,
		"path": devicePath,
	}).Debug("multipath device found")
	return devicePath, nil
}

// CleanupBeforeUnmap fails queued I/O on the multipath device and flushes it,
// so that unmapping the volume on the array does not leave faulty paths behind
func (h *HostActions) CleanupBeforeUnmap(ctx context.Context, devicePath string) error {
	if !h.IsMultipathActive() {
		h.Logger.Debug("multipathing is not active, nothing to clean")
		return nil
	}

	name := path.Base(devicePath)
	if _, err := h.run(ctx, dmsetupCmd, []string{"message", name, "0", "fail_if_no_path"}, 0, 0, nil); err != nil {
		return err
	}
	if _, err := h.run(ctx, h.multipathCmd, []string{"-f", name}, 0, multipathFlushRetries, nil); err != nil {
		return err
	}

	h.Logger.WithField("path", devicePath).Debug("cleaned multipath device")
	return nil
}

func (h *HostActions) findDevice(ctx context.Context, wwn string) (string, error) {
	out, err := h.exec.ExecuteCommandWithOutput(ctx, h.multipathCmd, "-v2", "-ll")
	if err != nil {
		return "", &CommandError{Cmd: h.multipathCmd, Args: []string{"-v2", "-ll"}, Output: out, Attempts: 1, Err: err}
	}
	h.Logger.WithField("output", out).Trace("multipath listing")

	name, ok := findMultipathDevice(out, wwn)
	if !ok {
		h.Logger.WithField("wwn", wwn).Error("multipath device not found")
		return "", &DeviceNotFoundError{WWN: wwn}
	}
	return name, nil
}

// run executes a command, retrying up to retries more times on failure.
// goalReached, when set, is checked after a failed attempt that still has retries left;
// reaching the goal ends the retries without an error.
func (h *HostActions) run(ctx context.Context, cmd string, args []string, timeout time.Duration, retries int, goalReached func() bool) (string, error) {
	var (
		out     string
		attempt int
	)

	operation := func() error {
		attempt++
		var err error
		if timeout > 0 {
			out, err = h.exec.ExecuteCommandWithTimeout(ctx, timeout, cmd, args...)
		} else {
			out, err = h.exec.ExecuteCommandWithOutput(ctx, cmd, args...)
		}
		if err == nil {
			h.Logger.WithFields(logrus.Fields{
				"cmd":    cmd,
				"output": out,
			}).Debug("command finished")
			return nil
		}

		fields := logrus.Fields{
			"cmd":     cmd,
			"args":    args,
			"output":  out,
			"attempt": attempt,
			"retries": retries,
		}
		if code, ok := ExitStatus(err); ok {
			fields["exit_status"] = code
		}
		h.Logger.WithFields(fields).WithError(err).Error("command failed")

		cmdErr := &CommandError{Cmd: cmd, Args: args, Output: out, Attempts: attempt, Err: err}
		if attempt > retries {
			return backoff.Permanent(cmdErr)
		}
		if goalReached != nil && goalReached() {
			h.Logger.WithField("cmd", cmd).Info("stop retrying, the wanted device was found")
			return nil
		}
		return cmdErr
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(h.RetryInterval), uint64(retries)), // #nosec G115 -- retries is a small constant
		ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return out, err
	}
	return out, nil
}
