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
	"bufio"
	"strings"
)

// findMultipathDevice returns the device name of the multipath map exporting wwn.
//
// Map header lines come in two forms:
//
//	200173800fdf50f86 dm-0 IBM     ,2810XIV
//	mpathd (36001738cfc9035e80000000000013aff) dm-8 IBM     ,2810XIV
//
// The first token names the device, so an alias wins over the identifier.
func findMultipathDevice(listing, wwn string) (string, bool) {
	wwn = strings.ToLower(strings.TrimSpace(wwn))
	if wwn == "" {
		return "", false
	}

	scanner := bufio.NewScanner(strings.NewReader(listing))
	for scanner.Scan() {
		line := scanner.Text()
		if isDetailLine(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		id := fields[0]
		if strings.HasPrefix(fields[1], "(") && strings.HasSuffix(fields[1], ")") {
			id = strings.Trim(fields[1], "()")
		}
		if strings.HasSuffix(strings.ToLower(id), wwn) {
			return fields[0], true
		}
	}
	return "", false
}

// isDetailLine skips the size, policy and path lines under each map header
func isDetailLine(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return true
	}
	for _, prefix := range []string{"size=", "`-", "|-", "|", "`"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
