/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns panics into a logged error, a report file, and an
// optional telemetry upload, then exits non-zero.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "godrafter/internal/log"
	"godrafter/internal/telemetry"
	"godrafter/internal/version"
)

// exitFn allows testing Recover without terminating the test process.
var exitFn = os.Exit

// Recover captures a panic, logs it with the stack, writes a report file
// and uploads it through telemetry (opt-in).
//
// Usage: defer crash.Recover()
func Recover() {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := WriteReport(reportDir(), r, stack)
		if err != nil {
			l.Error("write crash report failed", slog.Any("err", err))
		} else {
			fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath)
		}
		fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
		exitFn(2)
	}
}

// WriteReport serializes the panic into a timestamped report file under dir
// and hands the report to telemetry. Returns the file path.
func WriteReport(dir string, panicVal any, stack []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash dir: %w", err)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "time: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "version: %s\n", version.String())
	fmt.Fprintf(&b, "os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "panic: %v\n\n", panicVal)
	b.Write(stack)

	path := filepath.Join(dir, fmt.Sprintf("crash_%d.txt", time.Now().UnixNano()))
	if err := os.WriteFile(path, b.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("write crash report: %w", err)
	}
	telemetry.UploadCrash(b.Bytes())
	return path, nil
}

// reportDir resolves the crash report directory; GDR_CRASH_DIR overrides
// the per-user default.
func reportDir() string {
	if v := os.Getenv("GDR_CRASH_DIR"); v != "" {
		return v
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = filepath.Join(os.Getenv("AppData"), "GoDrafter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoDrafter")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".config", "godrafter")
	}
	return filepath.Join(base, "crashes")
}
