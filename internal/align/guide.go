/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package align detects alignment relationships between a moving shape and
// the static rest of the scene, and magnetically snaps a dragged position
// onto the resulting guides. Detection and snapping are deterministic and
// UI-agnostic so different frontends can share them.
package align

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"godrafter/internal/geom"
	"godrafter/internal/snap"
)

// Orientation of a guide line.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// GuideKind says which features aligned.
type GuideKind string

const (
	KindCenter       GuideKind = "center"
	KindEdgeStart    GuideKind = "edge-start" // left or top edges
	KindEdgeEnd      GuideKind = "edge-end"   // right or bottom edges
	KindEqualSpacing GuideKind = "equal-spacing"
)

// Guide is a transient alignment relation between a moving shape and one or
// more static shapes. Position is the x (vertical) or y (horizontal)
// coordinate of the guide line; Span is its extent on the other axis for
// rendering. Strength is 1 - measuredDifference/threshold, always in [0,1]
// given the emission condition.
type Guide struct {
	ID             string             `json:"id"`
	Orientation    Orientation        `json:"orientation"`
	Position       float64            `json:"position"`
	SpanStart      float64            `json:"spanStart"`
	SpanEnd        float64            `json:"spanEnd"`
	SourceShapeID  string             `json:"sourceShapeId"`
	TargetShapeIDs []string           `json:"targetShapeIds"`
	Kind           GuideKind          `json:"kind"`
	Strength       float64            `json:"strength"`
	Metadata       map[string]float64 `json:"metadata,omitempty"`
}

// Config controls guide detection.
type Config struct {
	Enabled           bool
	Threshold         float64
	SnapStrength      float64
	ShowCenterGuides  bool
	ShowEdgeGuides    bool
	ShowSpacingGuides bool
	MaxGuides         int
}

// DefaultConfig mirrors the interactive defaults of the drag tools.
func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		Threshold:         6,
		SnapStrength:      1,
		ShowCenterGuides:  true,
		ShowEdgeGuides:    true,
		ShowSpacingGuides: true,
		MaxGuides:         8,
	}
}

// Detector compares bounds of a moving shape against static shapes' bounds.
// Static bounds are read through the shared feature cache; the moving
// shape's bounds are computed directly because during a drag it is a
// transient ghost whose position must not poison the cache.
type Detector struct {
	cache *snap.Cache
}

// NewDetector returns a detector reading static bounds through cache; a nil
// cache gets a private one.
func NewDetector(cache *snap.Cache) *Detector {
	if cache == nil {
		cache = snap.NewCache()
	}
	return &Detector{cache: cache}
}

// Detect produces the ranked alignment guides for moving against statics.
// Guides of all kinds are pooled, sorted by descending strength and
// truncated to cfg.MaxGuides. Malformed statics are skipped; the moving
// shape being malformed yields no guides. Never an error.
func (d *Detector) Detect(moving geom.Shape, statics []geom.Shape, cfg Config) []Guide {
	if !cfg.Enabled || cfg.Threshold <= 0 || !moving.Valid() {
		return nil
	}
	mb := snap.CalcBounds(moving)

	var guides []Guide
	valid := statics[:0:0]
	for _, s := range statics {
		if s.ID == moving.ID || !s.Valid() {
			continue
		}
		valid = append(valid, s)
	}

	for _, s := range valid {
		sb := d.cache.Bounds(s)
		if cfg.ShowCenterGuides {
			guides = d.appendGuide(guides, cfg, moving.ID, s.ID, Vertical, KindCenter,
				sb.CenterX, math.Abs(mb.CenterX-sb.CenterX), verticalSpan(mb, sb), 0)
			guides = d.appendGuide(guides, cfg, moving.ID, s.ID, Horizontal, KindCenter,
				sb.CenterY, math.Abs(mb.CenterY-sb.CenterY), horizontalSpan(mb, sb), 0)
		}
		if cfg.ShowEdgeGuides {
			guides = d.appendGuide(guides, cfg, moving.ID, s.ID, Vertical, KindEdgeStart,
				sb.Left, math.Abs(mb.Left-sb.Left), verticalSpan(mb, sb), 0)
			guides = d.appendGuide(guides, cfg, moving.ID, s.ID, Vertical, KindEdgeEnd,
				sb.Right, math.Abs(mb.Right-sb.Right), verticalSpan(mb, sb), 0)
			guides = d.appendGuide(guides, cfg, moving.ID, s.ID, Horizontal, KindEdgeStart,
				sb.Top, math.Abs(mb.Top-sb.Top), horizontalSpan(mb, sb), 0)
			guides = d.appendGuide(guides, cfg, moving.ID, s.ID, Horizontal, KindEdgeEnd,
				sb.Bottom, math.Abs(mb.Bottom-sb.Bottom), horizontalSpan(mb, sb), 0)
		}
	}

	if cfg.ShowSpacingGuides {
		// Only adjacent static pairs in input order are compared; this is a
		// deliberate cost bound, not full pairwise coverage.
		for i := 0; i+1 < len(valid); i++ {
			s1, s2 := valid[i], valid[i+1]
			b1, b2 := d.cache.Bounds(s1), d.cache.Bounds(s2)

			gap1 := math.Abs(b1.CenterX - mb.CenterX)
			gap2 := math.Abs(b2.CenterX - mb.CenterX)
			if diff := math.Abs(gap1 - gap2); diff <= cfg.Threshold {
				g := newGuide(moving.ID, Vertical, KindEqualSpacing,
					(b1.CenterX+b2.CenterX)/2, diff, cfg.Threshold,
					verticalSpan(b1, b2), (gap1+gap2)/2)
				g.TargetShapeIDs = []string{s1.ID, s2.ID}
				guides = append(guides, g)
			}

			gap1 = math.Abs(b1.CenterY - mb.CenterY)
			gap2 = math.Abs(b2.CenterY - mb.CenterY)
			if diff := math.Abs(gap1 - gap2); diff <= cfg.Threshold {
				g := newGuide(moving.ID, Horizontal, KindEqualSpacing,
					(b1.CenterY+b2.CenterY)/2, diff, cfg.Threshold,
					horizontalSpan(b1, b2), (gap1+gap2)/2)
				g.TargetShapeIDs = []string{s1.ID, s2.ID}
				guides = append(guides, g)
			}
		}
	}

	sort.SliceStable(guides, func(i, j int) bool {
		if guides[i].Strength != guides[j].Strength {
			return guides[i].Strength > guides[j].Strength
		}
		return guides[i].Position < guides[j].Position
	})
	if cfg.MaxGuides > 0 && len(guides) > cfg.MaxGuides {
		guides = guides[:cfg.MaxGuides]
	}
	return guides
}

// appendGuide emits a single-target guide when the measured difference is
// within the threshold.
func (d *Detector) appendGuide(guides []Guide, cfg Config, movingID, staticID string,
	o Orientation, kind GuideKind, position, diff float64, span [2]float64, spacing float64) []Guide {
	if diff > cfg.Threshold {
		return guides
	}
	g := newGuide(movingID, o, kind, position, diff, cfg.Threshold, span, spacing)
	g.TargetShapeIDs = []string{staticID}
	return append(guides, g)
}

func newGuide(movingID string, o Orientation, kind GuideKind,
	position, diff, threshold float64, span [2]float64, spacing float64) Guide {
	g := Guide{
		ID:            uuid.NewString(),
		Orientation:   o,
		Position:      position,
		SpanStart:     span[0],
		SpanEnd:       span[1],
		SourceShapeID: movingID,
		Kind:          kind,
		Strength:      1 - diff/threshold,
	}
	if kind == KindEqualSpacing {
		g.Metadata = map[string]float64{"spacing": spacing}
	}
	return g
}

// verticalSpan is the vertical extent a vertical guide should be drawn over.
func verticalSpan(a, b geom.Bounds) [2]float64 {
	return [2]float64{math.Min(a.Top, b.Top), math.Max(a.Bottom, b.Bottom)}
}

func horizontalSpan(a, b geom.Bounds) [2]float64 {
	return [2]float64{math.Min(a.Left, b.Left), math.Max(a.Right, b.Right)}
}
