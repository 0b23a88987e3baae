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
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// waitDelay bounds how long output is drained after a command was killed
const waitDelay = 5 * time.Second

// Executor runs host commands
//
//go:generate mockgen -destination=mocks/executor_mocks.go -package=mocks github.com/dell/csm-blockdevice-adapter/internal/hostactions Executor
type Executor interface {
	LookPath(file string) (string, error)
	ExecuteCommandWithOutput(ctx context.Context, command string, arg ...string) (string, error)
	ExecuteCommandWithTimeout(ctx context.Context, timeout time.Duration, command string, arg ...string) (string, error)
}

// CommandExecutor runs commands through os/exec
type CommandExecutor struct {
	Logger *logrus.Logger
}

// LookPath searches for an executable in the directories named by PATH
func (*CommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ExecuteCommandWithOutput runs a command and returns its combined output
func (c *CommandExecutor) ExecuteCommandWithOutput(ctx context.Context, command string, arg ...string) (string, error) {
	c.logCommand(command, arg...)
	// #nosec G204 the adapter controls the arguments
	cmd := exec.CommandContext(ctx, command, arg...)
	// children of rescan scripts may hold the output pipe, so the whole group is killed
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = waitDelay
	var b bytes.Buffer
	cmd.Stdout = &b
	cmd.Stderr = &b
	err := cmd.Run()
	return strings.TrimSpace(b.String()), err
}

// ExecuteCommandWithTimeout runs a command and kills it when timeout elapses
func (c *CommandExecutor) ExecuteCommandWithTimeout(ctx context.Context, timeout time.Duration, command string, arg ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := c.ExecuteCommandWithOutput(ctx, command, arg...)
	if ctx.Err() == context.DeadlineExceeded {
		return out, fmt.Errorf("timeout waiting for the command %s to return: %w", command, ctx.Err())
	}
	return out, err
}

func (c *CommandExecutor) logCommand(command string, arg ...string) {
	c.Logger.Debugf("running command: %s %s", command, strings.Join(arg, " "))
}

// ExitStatus returns the exit code of a failed command
func ExitStatus(err error) (int, bool) {
	exitErr, ok := err.(*exec.ExitError)
	if ok {
		waitStatus, ok := exitErr.ProcessState.Sys().(syscall.WaitStatus)
		if ok {
			return waitStatus.ExitStatus(), true
		}
	}
	return 0, false
}
