/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package distribute computes evenly spaced target positions for a group of
// selected shapes ("tidy up"). Plans are pure: inputs are never mutated and
// the caller (the command/history subsystem) owns applying the deltas.
package distribute

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"godrafter/internal/geom"
	"godrafter/internal/snap"
)

// Direction of a distribution.
type Direction string

const (
	DirectionAuto       Direction = "auto"
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
	DirectionGrid       Direction = "grid"
	DirectionNone       Direction = "none"
)

// Aspect cutoffs for automatic direction selection: clearly wide selections
// distribute horizontally, clearly tall ones vertically, anything between
// follows the axis with greater center variance.
const (
	wideAspect = 1.5
	tallAspect = 0.667
)

// Options controls a distribution plan.
type Options struct {
	PreferredDirection Direction
	MinimumSpacing     float64
}

// Change is the planned move for one shape. The adjustment vector applies to
// the shape's reference point (its bounds center); callers apply the same
// delta to every point and the rotation center of the shape.
type Change struct {
	ShapeID          string       `json:"shapeId"`
	OriginalPosition geom.Point2D `json:"originalPosition"`
	NewPosition      geom.Point2D `json:"newPosition"`
	Adjustment       geom.Point2D `json:"adjustmentVector"`
}

// Metadata summarizes a plan.
type Metadata struct {
	TotalAdjustments float64     `json:"totalAdjustments"`
	AverageSpacing   float64     `json:"averageSpacing"`
	BoundingArea     geom.Bounds `json:"boundingArea"`
	Fallback         string      `json:"fallback,omitempty"`
}

// Result of a distribution plan. Success is false (with DistributionType
// "none" and no changes) when fewer than 3 usable shapes are given; that is
// a structured outcome, never an error.
type Result struct {
	Success          bool      `json:"success"`
	DistributionType Direction `json:"distributionType"`
	Changes          []Change  `json:"changes"`
	Metadata         Metadata  `json:"metadata"`
}

// Planner computes distribution plans, reading shape bounds through the
// shared feature cache.
type Planner struct {
	cache *snap.Cache
}

// NewPlanner returns a planner reading bounds through cache; a nil cache
// gets a private one.
func NewPlanner(cache *snap.Cache) *Planner {
	if cache == nil {
		cache = snap.NewCache()
	}
	return &Planner{cache: cache}
}

type entry struct {
	shape  geom.Shape
	bounds geom.Bounds
}

// Plan computes evenly spaced positions for the given shapes. Malformed
// shapes are skipped; fewer than 3 usable shapes fail structurally. A grid
// request falls back to a horizontal distribution and records the fallback
// in the metadata.
func (p *Planner) Plan(shapes []geom.Shape, opts Options) Result {
	entries := make([]entry, 0, len(shapes))
	for _, s := range shapes {
		if !s.Valid() {
			continue
		}
		entries = append(entries, entry{shape: s, bounds: p.cache.Bounds(s)})
	}
	if len(entries) < 3 {
		return Result{Success: false, DistributionType: DirectionNone, Changes: []Change{}}
	}

	union := entries[0].bounds
	for _, e := range entries[1:] {
		union = union.Union(e.bounds)
	}

	dir := opts.PreferredDirection
	fallback := ""
	switch dir {
	case DirectionHorizontal, DirectionVertical:
		// forced
	case DirectionGrid:
		// Genuine 2D grid placement is pending product clarification; the
		// request falls back to a horizontal distribution, visibly.
		dir = DirectionHorizontal
		fallback = "grid→horizontal"
	default:
		dir = autoDirection(entries, union)
	}

	var changes []Change
	if dir == DirectionHorizontal {
		changes = planAxis(entries, opts.MinimumSpacing, true)
	} else {
		changes = planAxis(entries, opts.MinimumSpacing, false)
	}

	var total float64
	for _, ch := range changes {
		total += math.Hypot(ch.Adjustment.X, ch.Adjustment.Y)
	}
	return Result{
		Success:          true,
		DistributionType: dir,
		Changes:          changes,
		Metadata: Metadata{
			TotalAdjustments: total,
			AverageSpacing:   math.Min(union.Width, union.Height) / float64(len(entries)),
			BoundingArea:     union,
			Fallback:         fallback,
		},
	}
}

// autoDirection picks the axis: clearly wide selections go horizontal,
// clearly tall ones vertical, otherwise the axis whose shape centers have
// the greater variance wins (horizontal on a tie).
func autoDirection(entries []entry, union geom.Bounds) Direction {
	if union.Height <= 0 {
		return DirectionHorizontal
	}
	aspect := union.Width / union.Height
	if aspect > wideAspect {
		return DirectionHorizontal
	}
	if aspect < tallAspect {
		return DirectionVertical
	}
	xs := make([]float64, len(entries))
	ys := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = e.bounds.CenterX
		ys[i] = e.bounds.CenterY
	}
	if stat.Variance(ys, nil) > stat.Variance(xs, nil) {
		return DirectionVertical
	}
	return DirectionHorizontal
}

// planAxis walks the shapes along one axis, placing each shape's leading
// edge at a running cursor that advances by extent + gap. The cross-axis
// coordinate is shared: the mean of the current centers.
func planAxis(entries []entry, minSpacing float64, horizontal bool) []Change {
	ordered := append([]entry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if horizontal {
			return ordered[i].bounds.CenterX < ordered[j].bounds.CenterX
		}
		return ordered[i].bounds.CenterY < ordered[j].bounds.CenterY
	})

	n := len(ordered)
	start := math.Inf(1)
	end := math.Inf(-1)
	var sumExtent float64
	cross := make([]float64, n)
	for i, e := range ordered {
		if horizontal {
			start = math.Min(start, e.bounds.Left)
			end = math.Max(end, e.bounds.Right)
			sumExtent += e.bounds.Width
			cross[i] = e.bounds.CenterY
		} else {
			start = math.Min(start, e.bounds.Top)
			end = math.Max(end, e.bounds.Bottom)
			sumExtent += e.bounds.Height
			cross[i] = e.bounds.CenterX
		}
	}
	span := end - start
	gap := math.Max((span-sumExtent)/float64(n-1), minSpacing)
	target := stat.Mean(cross, nil)

	changes := make([]Change, 0, n)
	cursor := start
	for _, e := range ordered {
		b := e.bounds
		orig := geom.Point2D{X: b.CenterX, Y: b.CenterY}
		var next geom.Point2D
		if horizontal {
			next = geom.Point2D{X: cursor + b.Width/2, Y: target}
			cursor += b.Width + gap
		} else {
			next = geom.Point2D{X: target, Y: cursor + b.Height/2}
			cursor += b.Height + gap
		}
		changes = append(changes, Change{
			ShapeID:          e.shape.ID,
			OriginalPosition: orig,
			NewPosition:      next,
			Adjustment:       next.Sub(orig),
		})
	}
	return changes
}
