/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package snap

import (
	"fmt"

	"godrafter/internal/geom"
)

// Basis strengths assigned to extracted features. The selector later
// combines these kinds with proximity via TypeWeight; the basis strength is
// what a candidate reports before any query is involved.
const (
	strengthEndpoint = 1.0
	strengthQuadrant = 0.9
	strengthMidpoint = 0.8
	strengthCenter   = 0.7
)

// Features extracts the snap features of a shape. It is a pure function:
// deterministic, order-independent, and free of side effects. Shapes with
// too few points for their kind yield an empty set, never an error.
//
// Feature positions come from the raw (unrotated) geometry; feature IDs are
// deterministic so repeated extraction of an unchanged shape produces
// identical output.
func Features(s geom.Shape) []Point {
	if !s.Valid() {
		return nil
	}
	switch s.Kind {
	case geom.KindRectangle:
		return rectangleFeatures(s)
	case geom.KindCircle:
		return circleFeatures(s)
	case geom.KindPolyline:
		return chainFeatures(s, false)
	case geom.KindPolygon:
		return chainFeatures(s, true)
	default:
		return nil
	}
}

func rectangleFeatures(s geom.Shape) []Point {
	corners, ok := s.RectCorners()
	if !ok {
		return nil
	}
	pts := make([]Point, 0, 9)
	for i, c := range corners {
		pts = append(pts, feature(s.ID, KindEndpoint, i, c, strengthEndpoint))
	}
	for i := range corners {
		mid := corners[i].Mid(corners[(i+1)%4])
		pts = append(pts, feature(s.ID, KindMidpoint, i, mid, strengthMidpoint))
	}
	pts = append(pts, feature(s.ID, KindCenter, 0, geom.Centroid(corners[:]), strengthCenter))
	return pts
}

func circleFeatures(s geom.Shape) []Point {
	center := s.Points[0]
	r := s.CircleRadius()
	pts := []Point{feature(s.ID, KindCenter, 0, center, strengthEndpoint)}
	if r <= 0 {
		// Zero radius: the quadrant points would coincide with the center.
		return pts
	}
	quadrants := [4]geom.Point2D{
		{X: center.X, Y: center.Y - r},
		{X: center.X + r, Y: center.Y},
		{X: center.X, Y: center.Y + r},
		{X: center.X - r, Y: center.Y},
	}
	for i, q := range quadrants {
		pts = append(pts, feature(s.ID, KindQuadrant, i, q, strengthQuadrant))
	}
	return pts
}

// chainFeatures handles polylines (open) and polygons (closed). Closed
// chains get a midpoint on the closing edge and a centroid feature.
func chainFeatures(s geom.Shape, closed bool) []Point {
	n := len(s.Points)
	pts := make([]Point, 0, 2*n+1)
	for i, p := range s.Points {
		pts = append(pts, feature(s.ID, KindEndpoint, i, p, strengthEndpoint))
	}
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		mid := s.Points[i].Mid(s.Points[(i+1)%n])
		pts = append(pts, feature(s.ID, KindMidpoint, i, mid, strengthMidpoint))
	}
	if closed {
		pts = append(pts, feature(s.ID, KindCenter, 0, geom.Centroid(s.Points), strengthCenter))
	}
	return pts
}

func feature(shapeID string, kind Kind, ordinal int, pos geom.Point2D, strength float64) Point {
	return Point{
		ID:            fmt.Sprintf("%s/%s/%d", shapeID, kind, ordinal),
		Kind:          kind,
		Position:      pos,
		Strength:      strength,
		SourceShapeID: shapeID,
	}
}
