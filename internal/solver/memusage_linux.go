// Copyright 2026 sgbust-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux

package solver

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// residentMemoryImpl reads field 2 (resident set size, in pages) of
// /proc/self/statm, mirroring the original solver's Linux-only
// MemoryUsage reader.
func residentMemoryImpl() string {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return "unavailable"
	}

	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return "unavailable"
	}

	pages, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return "unavailable"
	}

	bytes := pages * int64(os.Getpagesize())
	return fmt.Sprintf("%.1fMiB", float64(bytes)/(1024*1024))
}
