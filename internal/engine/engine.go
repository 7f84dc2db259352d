/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package engine is the facade over the snapping and alignment machinery.
// An Engine owns the shape set snapshot, the feature/bounds cache, the
// spatial index, and the per-query configs; every entry point is a
// synchronous call over that snapshot.
//
// The engine is single-threaded by contract: one query at a time, and
// geometry mutations (UpsertShape/RemoveShape/SetScene) must happen
// between queries. Shape providers and result consumers (renderer, drag
// interaction, command history) live outside this package and talk to it
// through the exported method set.
package engine

import (
	"log/slog"

	"godrafter/internal/align"
	"godrafter/internal/distribute"
	"godrafter/internal/geom"
	applog "godrafter/internal/log"
	"godrafter/internal/snap"
)

// Config bundles the per-query configurations of the engine.
type Config struct {
	Grid         snap.GridConfig
	Snap         snap.Config
	Alignment    align.Config
	Distribution distribute.Options
}

// DefaultConfig returns the interactive defaults.
func DefaultConfig() Config {
	return Config{
		Grid:         snap.DefaultGridConfig(),
		Snap:         snap.DefaultConfig(),
		Alignment:    align.DefaultConfig(),
		Distribution: distribute.Options{MinimumSpacing: 10},
	}
}

// Engine answers snap, alignment and distribution queries over a scene
// snapshot.
type Engine struct {
	log *slog.Logger
	cfg Config

	cache    *snap.Cache
	selector *snap.Selector
	detector *align.Detector
	planner  *distribute.Planner

	shapes map[string]geom.Shape
	order  []string
	index  *shapeIndex
}

// New creates an engine with an empty scene.
func New(cfg Config) *Engine {
	cache := snap.NewCache()
	return &Engine{
		log:      applog.WithComponent("engine"),
		cfg:      cfg,
		cache:    cache,
		selector: snap.NewSelector(cache),
		detector: align.NewDetector(cache),
		planner:  distribute.NewPlanner(cache),
		shapes:   make(map[string]geom.Shape),
		index:    newShapeIndex(),
	}
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the configuration. Caches survive; they hold geometry,
// not scores.
func (e *Engine) SetConfig(cfg Config) { e.cfg = cfg }

// SetScene replaces the whole shape set and drops all cached state.
func (e *Engine) SetScene(shapes []geom.Shape) {
	e.cache.InvalidateAll()
	e.index.reset()
	e.shapes = make(map[string]geom.Shape, len(shapes))
	e.order = e.order[:0]
	for _, s := range shapes {
		e.UpsertShape(s)
	}
	e.log.Debug("scene replaced", slog.Int("shapes", len(e.order)))
}

// UpsertShape adds or replaces one shape, invalidating its cached features
// and reindexing its bounds. Invalid shapes are kept in the scene (they may
// become valid as the user edits) but contribute nothing to queries.
func (e *Engine) UpsertShape(s geom.Shape) {
	if s.ID == "" {
		return
	}
	if _, exists := e.shapes[s.ID]; !exists {
		e.order = append(e.order, s.ID)
	}
	e.shapes[s.ID] = s
	e.cache.Invalidate(s.ID)
	if s.Valid() {
		e.index.upsert(s.ID, indexBounds(s))
	} else {
		e.index.remove(s.ID)
	}
}

// RemoveShape deletes a shape and its cached state.
func (e *Engine) RemoveShape(id string) {
	if _, ok := e.shapes[id]; !ok {
		return
	}
	delete(e.shapes, id)
	e.cache.Invalidate(id)
	e.index.remove(id)
	for i, oid := range e.order {
		if oid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Shapes returns the scene in insertion order.
func (e *Engine) Shapes() []geom.Shape {
	out := make([]geom.Shape, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.shapes[id])
	}
	return out
}

// SnapCandidates returns the scored snap candidates near query. The spatial
// index culls shapes whose bounds cannot reach the snap radius before the
// selector runs.
func (e *Engine) SnapCandidates(query geom.Point2D) []snap.Point {
	if !e.cfg.Snap.Enabled {
		return nil
	}
	near := e.index.search(query, e.cfg.Snap.SnapRadius)
	shapes := make([]geom.Shape, 0, len(near))
	for _, id := range e.order {
		if near[id] {
			shapes = append(shapes, e.shapes[id])
		}
	}
	return e.selector.Detect(query, shapes, e.cfg.Snap, e.cfg.Grid)
}

// SnapAt returns the best snap point near query, or nil when nothing is in
// range.
func (e *Engine) SnapAt(query geom.Point2D) *snap.Point {
	return e.selector.Best(e.SnapCandidates(query))
}

// DragGuides computes the alignment guides for dragging the identified
// shape to position (the proposed bounds center), applies magnetic snapping
// to that position, and returns the snap result together with all detected
// guides for rendering. Alignment is not index-culled: center and edge
// relations hold at any distance along the guide axis, and equal-spacing
// adjacency depends on scene order.
func (e *Engine) DragGuides(movingID string, position geom.Point2D) (align.SnapResult, []align.Guide) {
	shape, ok := e.shapes[movingID]
	if !ok || !shape.Valid() || !position.IsFinite() {
		return align.SnapResult{Position: position}, nil
	}
	current := snap.CalcBounds(shape)
	ghost := shape.Translate(position.Sub(geom.Pt(current.CenterX, current.CenterY)))

	statics := make([]geom.Shape, 0, len(e.order)-1)
	for _, id := range e.order {
		if id != movingID {
			statics = append(statics, e.shapes[id])
		}
	}
	guides := e.detector.Detect(ghost, statics, e.cfg.Alignment)
	res := align.ApplyMagnetic(position, guides, e.cfg.Alignment.SnapStrength)
	return res, guides
}

// TidyUp plans an even distribution of the identified shapes (all shapes
// when ids is empty) using the engine's distribution options. The plan is
// returned for the command/history subsystem; nothing is applied.
func (e *Engine) TidyUp(ids []string) distribute.Result {
	var selected []geom.Shape
	if len(ids) == 0 {
		selected = e.Shapes()
	} else {
		selected = make([]geom.Shape, 0, len(ids))
		for _, id := range ids {
			if s, ok := e.shapes[id]; ok {
				selected = append(selected, s)
			}
		}
	}
	res := e.planner.Plan(selected, e.cfg.Distribution)
	e.log.Debug("tidy up planned",
		slog.Bool("success", res.Success),
		slog.String("direction", string(res.DistributionType)),
		slog.Int("changes", len(res.Changes)))
	return res
}

// ApplyChanges translates each planned shape by its adjustment vector and
// reindexes it. This is the mutation path an external command subsystem
// uses after recording the plan in its history.
func (e *Engine) ApplyChanges(changes []distribute.Change) {
	for _, ch := range changes {
		s, ok := e.shapes[ch.ShapeID]
		if !ok {
			continue
		}
		e.UpsertShape(s.Translate(ch.Adjustment))
	}
}

// indexBounds covers both the raw and the rotated outline so index culling
// never excludes a shape whose unrotated features are still in range.
func indexBounds(s geom.Shape) geom.Bounds {
	raw := geom.BoundsOf(s.Outline())
	if s.Rotation == nil || s.Rotation.AngleDegrees == 0 {
		return raw
	}
	return raw.Union(snap.CalcBounds(s))
}
