/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom provides the basic 2D geometry types shared by the snapping
// and alignment engine. All values are plain float64; results are
// deterministic for identical inputs.
package geom

import "math"

// Point2D is a 2D point in world coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor.
func Pt(x, y float64) Point2D { return Point2D{X: x, Y: y} }

// Add returns p + o.
func (p Point2D) Add(o Point2D) Point2D { return Point2D{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns p - o.
func (p Point2D) Sub(o Point2D) Point2D { return Point2D{X: p.X - o.X, Y: p.Y - o.Y} }

// Dist returns the Euclidean distance to o.
func (p Point2D) Dist(o Point2D) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Mid returns the midpoint of p and o.
func (p Point2D) Mid(o Point2D) Point2D {
	return Point2D{X: (p.X + o.X) / 2, Y: (p.Y + o.Y) / 2}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// RotateAround rotates p by angleDegrees (counter-clockwise) about center.
func RotateAround(p, center Point2D, angleDegrees float64) Point2D {
	if angleDegrees == 0 {
		return p
	}
	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point2D{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// Centroid returns the arithmetic mean of the points; the zero point for an
// empty slice.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point2D{X: sx / n, Y: sy / n}
}

// Bounds is the axis-aligned bounding box of a shape after its own rotation
// has been applied. Center and size fields are derived from the extents.
type Bounds struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Top     float64 `json:"top"`
	Bottom  float64 `json:"bottom"`
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// BoundsOf computes the bounding box of a point set. Empty input yields the
// zero Bounds. Top is the minimum Y, Bottom the maximum (screen-style axis).
func BoundsOf(points []Point2D) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return newBounds(minX, maxX, minY, maxY)
}

// Union returns the smallest Bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return newBounds(
		math.Min(b.Left, o.Left),
		math.Max(b.Right, o.Right),
		math.Min(b.Top, o.Top),
		math.Max(b.Bottom, o.Bottom),
	)
}

func newBounds(minX, maxX, minY, maxY float64) Bounds {
	return Bounds{
		Left:    minX,
		Right:   maxX,
		Top:     minY,
		Bottom:  maxY,
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
		Width:   maxX - minX,
		Height:  maxY - minY,
	}
}
