/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Shape kinds form a tagged union; each engine operation dispatches on Kind
// with a pure handler per case rather than a method hierarchy, so handlers
// stay independently testable.

// ShapeKind identifies the geometry encoding of a Shape.
type ShapeKind string

const (
	KindRectangle ShapeKind = "rectangle"
	KindCircle    ShapeKind = "circle"
	KindPolyline  ShapeKind = "polyline"
	KindPolygon   ShapeKind = "polygon"
)

// Rotation describes a shape's own rotation about a declared center.
type Rotation struct {
	AngleDegrees float64 `json:"angleDegrees"`
	Center       Point2D `json:"center"`
}

// Shape is the engine's view of a drawable shape.
//
// Rectangles carry either 2 opposite corners or 4 explicit corners.
// Circles carry {center, radiusPoint}; the radius is their distance.
// Polylines are open vertex chains, polygons closed ones.
type Shape struct {
	ID       string    `json:"id"`
	Kind     ShapeKind `json:"kind"`
	Points   []Point2D `json:"points"`
	Rotation *Rotation `json:"rotation,omitempty"`
}

// MinPoints returns the minimum vertex count the kind requires, or -1 for an
// unknown kind.
func (s Shape) MinPoints() int {
	switch s.Kind {
	case KindRectangle, KindCircle, KindPolyline:
		return 2
	case KindPolygon:
		return 3
	default:
		return -1
	}
}

// Valid reports whether the shape has enough finite points for its kind.
// Invalid shapes yield no features and no bounds; they are never an error.
func (s Shape) Valid() bool {
	min := s.MinPoints()
	if min < 0 || len(s.Points) < min {
		return false
	}
	for _, p := range s.Points {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// RotationAngle returns the shape's rotation angle in degrees (0 when unset).
func (s Shape) RotationAngle() float64 {
	if s.Rotation == nil {
		return 0
	}
	return s.Rotation.AngleDegrees
}

// RectCorners expands a rectangle's point list to its 4 corners in order.
// Two points are taken as opposite corners; with 4 or more points the first
// four are used verbatim. Any other count reports false.
func (s Shape) RectCorners() ([4]Point2D, bool) {
	switch {
	case len(s.Points) >= 4:
		return [4]Point2D{s.Points[0], s.Points[1], s.Points[2], s.Points[3]}, true
	case len(s.Points) == 2:
		a, b := s.Points[0], s.Points[1]
		return [4]Point2D{
			{X: a.X, Y: a.Y},
			{X: b.X, Y: a.Y},
			{X: b.X, Y: b.Y},
			{X: a.X, Y: b.Y},
		}, true
	default:
		return [4]Point2D{}, false
	}
}

// CircleRadius returns the radius of a circle shape, 0 when degenerate.
func (s Shape) CircleRadius() float64 {
	if len(s.Points) < 2 {
		return 0
	}
	return s.Points[0].Dist(s.Points[1])
}

// Outline expands the shape to the point set its bounds derive from:
// rectangle corners, the circle's bounding square, or the raw vertices.
// The shape's own rotation is NOT applied here.
func (s Shape) Outline() []Point2D {
	if !s.Valid() {
		return nil
	}
	switch s.Kind {
	case KindRectangle:
		c, ok := s.RectCorners()
		if !ok {
			return nil
		}
		return c[:]
	case KindCircle:
		center := s.Points[0]
		r := s.CircleRadius()
		return []Point2D{
			{X: center.X - r, Y: center.Y - r},
			{X: center.X + r, Y: center.Y - r},
			{X: center.X + r, Y: center.Y + r},
			{X: center.X - r, Y: center.Y + r},
		}
	case KindPolyline, KindPolygon:
		return s.Points
	default:
		return nil
	}
}

// Translate returns a copy of the shape with every point and the rotation
// center (if any) offset by delta. The receiver is not modified.
func (s Shape) Translate(delta Point2D) Shape {
	out := s
	out.Points = make([]Point2D, len(s.Points))
	for i, p := range s.Points {
		out.Points[i] = p.Add(delta)
	}
	if s.Rotation != nil {
		rot := *s.Rotation
		rot.Center = rot.Center.Add(delta)
		out.Rotation = &rot
	}
	return out
}
