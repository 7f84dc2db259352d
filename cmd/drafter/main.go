/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Command drafter runs headless snapping/alignment queries against a scene
// file, for scripting and for debugging the engine without a frontend.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"godrafter/internal/config"
	"godrafter/internal/crash"
	"godrafter/internal/engine"
	"godrafter/internal/geom"
	applog "godrafter/internal/log"
	"godrafter/internal/scene"
	"godrafter/internal/telemetry"
	"godrafter/internal/version"
)

const usage = `drafter - headless snapping/alignment queries

Usage:
  drafter version
  drafter validate <scene.json>
  drafter snap     <scene.json> <x> <y>
  drafter guides   <scene.json> <shape-id> <x> <y>
  drafter tidy     <scene.json> [shape-id ...]
`

func main() {
	defer crash.Recover()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	telemetry.InitDefault()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "validate":
		runValidate(os.Args[2:])
	case "snap":
		runSnap(cfg, os.Args[2:])
	case "guides":
		runGuides(cfg, os.Args[2:])
	case "tidy":
		runTidy(cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runValidate(args []string) {
	if len(args) != 1 {
		fail(usage)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fail("read scene: %v", err)
	}
	if err := scene.Validate(data); err != nil {
		fail("%v", err)
	}
	fmt.Println("ok")
}

func runSnap(cfg config.AppConfig, args []string) {
	if len(args) != 3 {
		fail(usage)
	}
	eng := loadEngine(cfg, args[0])
	query := geom.Pt(parseFloat(args[1]), parseFloat(args[2]))
	best := eng.SnapAt(query)
	telemetry.Event("snap.query", map[string]any{"hit": best != nil})
	printJSON(map[string]any{
		"query":      query,
		"best":       best,
		"candidates": eng.SnapCandidates(query),
	})
}

func runGuides(cfg config.AppConfig, args []string) {
	if len(args) != 4 {
		fail(usage)
	}
	eng := loadEngine(cfg, args[0])
	pos := geom.Pt(parseFloat(args[2]), parseFloat(args[3]))
	res, guides := eng.DragGuides(args[1], pos)
	telemetry.Event("align.query", map[string]any{"guides": len(guides)})
	printJSON(map[string]any{
		"raw":    pos,
		"result": res,
		"guides": guides,
	})
}

func runTidy(cfg config.AppConfig, args []string) {
	if len(args) < 1 {
		fail(usage)
	}
	eng := loadEngine(cfg, args[0])
	result := eng.TidyUp(args[1:])
	telemetry.Event("tidyup.plan", map[string]any{
		"success": result.Success,
		"shapes":  len(result.Changes),
	})
	printJSON(result)
}

func loadEngine(cfg config.AppConfig, path string) *engine.Engine {
	doc, err := scene.Load(path)
	if err != nil {
		fail("%v", err)
	}
	eng := engine.New(cfg.EngineConfig())
	eng.SetScene(doc.Shapes)
	return eng
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fail("not a number: %q", s)
	}
	return v
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
