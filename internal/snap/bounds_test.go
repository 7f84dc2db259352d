/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package snap

import (
	"math"
	"testing"

	"godrafter/internal/geom"
)

func TestCalcBoundsRectangle(t *testing.T) {
	s := geom.Shape{Kind: geom.KindRectangle, Points: []geom.Point2D{geom.Pt(10, 20), geom.Pt(30, 60)}}
	b := CalcBounds(s)
	if b.Left != 10 || b.Right != 30 || b.Top != 20 || b.Bottom != 60 {
		t.Fatalf("bounds = %+v", b)
	}
	if b.Width != 20 || b.Height != 40 || b.CenterX != 20 || b.CenterY != 40 {
		t.Fatalf("derived = %+v", b)
	}
}

func TestCalcBoundsCircle(t *testing.T) {
	s := geom.Shape{Kind: geom.KindCircle, Points: []geom.Point2D{geom.Pt(0, 0), geom.Pt(0, 7)}}
	b := CalcBounds(s)
	if b.Left != -7 || b.Right != 7 || b.Top != -7 || b.Bottom != 7 {
		t.Fatalf("circle bounds = %+v", b)
	}
}

func TestCalcBoundsRotated(t *testing.T) {
	// A 10x10 square rotated 45 degrees about its center spans 10*sqrt(2).
	s := geom.Shape{
		Kind:     geom.KindRectangle,
		Points:   []geom.Point2D{geom.Pt(0, 0), geom.Pt(10, 10)},
		Rotation: &geom.Rotation{AngleDegrees: 45, Center: geom.Pt(5, 5)},
	}
	b := CalcBounds(s)
	want := 10 * math.Sqrt2
	if math.Abs(b.Width-want) > 1e-9 || math.Abs(b.Height-want) > 1e-9 {
		t.Fatalf("rotated size = %vx%v, want %v", b.Width, b.Height, want)
	}
	if math.Abs(b.CenterX-5) > 1e-9 || math.Abs(b.CenterY-5) > 1e-9 {
		t.Fatalf("rotated center = (%v,%v), want (5,5)", b.CenterX, b.CenterY)
	}
}

func TestCalcBoundsInvalid(t *testing.T) {
	s := geom.Shape{Kind: geom.KindPolygon, Points: []geom.Point2D{geom.Pt(0, 0)}}
	if b := CalcBounds(s); b != (geom.Bounds{}) {
		t.Fatalf("invalid shape bounds = %+v", b)
	}
}
