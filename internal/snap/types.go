/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package snap finds and ranks candidate snap positions near a cursor:
// shape features (endpoints, midpoints, centers, quadrants) and grid
// intersections, scored by proximity and type priority.
package snap

import "godrafter/internal/geom"

// Kind classifies a snap candidate.
type Kind string

const (
	KindGrid          Kind = "grid"
	KindEndpoint      Kind = "endpoint"
	KindMidpoint      Kind = "midpoint"
	KindCenter        Kind = "center"
	KindQuadrant      Kind = "quadrant"
	KindIntersection  Kind = "intersection"
	KindPerpendicular Kind = "perpendicular"
	KindExtension     Kind = "extension"
	KindTangent       Kind = "tangent"
	KindEdge          Kind = "edge"
)

// TypeWeight is the ranking priority of a snap kind. Unknown kinds weigh 0
// and therefore never win a selection.
func TypeWeight(k Kind) float64 {
	switch k {
	case KindEndpoint:
		return 1.0
	case KindGrid:
		return 0.9
	case KindMidpoint, KindQuadrant:
		return 0.8
	case KindCenter:
		return 0.7
	case KindIntersection:
		return 0.6
	case KindEdge, KindPerpendicular:
		return 0.5
	case KindTangent, KindExtension:
		return 0.4
	default:
		return 0
	}
}

// Point is a candidate snap position.
//
// Strength is the type-basis strength assigned at extraction time (1.0 for
// endpoints, 0.8 for midpoints, ...). Score is the proximity-weighted value
// the selector ranks by: clamp(1-distance/radius, 0, 1) * TypeWeight(kind).
// Both are always within [0,1]. Distance is filled in by the selector.
type Point struct {
	ID            string             `json:"id"`
	Kind          Kind               `json:"kind"`
	Position      geom.Point2D       `json:"position"`
	Strength      float64            `json:"strength"`
	Score         float64            `json:"score,omitempty"`
	Distance      float64            `json:"distance,omitempty"`
	SourceShapeID string             `json:"sourceShapeId,omitempty"`
	Metadata      map[string]float64 `json:"metadata,omitempty"`
}

// GridConfig describes the drafting grid. SecondarySpacing is carried for
// the rendering collaborator; snap candidates come from PrimarySpacing only
// so the 9-candidate search cap holds.
type GridConfig struct {
	Enabled          bool
	PrimarySpacing   float64
	SecondarySpacing float64
	Origin           geom.Point2D
}

// DefaultGridConfig returns a 50-unit grid with 10-unit subdivisions.
func DefaultGridConfig() GridConfig {
	return GridConfig{Enabled: true, PrimarySpacing: 50, SecondarySpacing: 10}
}

// Config controls snap detection for a query.
type Config struct {
	Enabled       bool
	SnapRadius    float64
	ActiveKinds   map[Kind]bool
	MaxCandidates int
}

// Kinds builds an active-kind set.
func Kinds(ks ...Kind) map[Kind]bool {
	set := make(map[Kind]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	return set
}

// DefaultConfig enables the kinds the drawing tools use by default.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		SnapRadius:    8,
		ActiveKinds:   Kinds(KindGrid, KindEndpoint, KindMidpoint, KindCenter, KindQuadrant),
		MaxCandidates: 8,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
