/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if d := p.Dist(Pt(0, 0)); !almost(d, 5) {
		t.Fatalf("Dist = %v, want 5", d)
	}
	if got := p.Add(Pt(1, -1)); got != Pt(4, 3) {
		t.Fatalf("Add = %v", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Fatalf("Sub = %v", got)
	}
	if got := p.Mid(Pt(5, 0)); got != Pt(4, 2) {
		t.Fatalf("Mid = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !Pt(0, 0).IsFinite() {
		t.Fatalf("origin should be finite")
	}
	bad := []Point2D{
		{X: math.NaN()},
		{Y: math.NaN()},
		{X: math.Inf(1)},
		{Y: math.Inf(-1)},
	}
	for _, p := range bad {
		if p.IsFinite() {
			t.Fatalf("%v should not be finite", p)
		}
	}
}

func TestRotateAround(t *testing.T) {
	// 90 degrees CCW about the origin maps (1,0) to (0,1).
	got := RotateAround(Pt(1, 0), Pt(0, 0), 90)
	if !almost(got.X, 0) || !almost(got.Y, 1) {
		t.Fatalf("RotateAround 90 = %v, want (0,1)", got)
	}
	// Rotation about a non-origin center.
	got = RotateAround(Pt(2, 1), Pt(1, 1), 180)
	if !almost(got.X, 0) || !almost(got.Y, 1) {
		t.Fatalf("RotateAround 180 = %v, want (0,1)", got)
	}
	// Zero angle is the identity.
	if got := RotateAround(Pt(7, -3), Pt(2, 2), 0); got != Pt(7, -3) {
		t.Fatalf("RotateAround 0 = %v", got)
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(nil); got != (Point2D{}) {
		t.Fatalf("empty centroid = %v", got)
	}
	got := Centroid([]Point2D{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)})
	if got != Pt(5, 5) {
		t.Fatalf("centroid = %v, want (5,5)", got)
	}
}

func TestBoundsOf(t *testing.T) {
	if got := BoundsOf(nil); got != (Bounds{}) {
		t.Fatalf("empty bounds = %+v", got)
	}
	b := BoundsOf([]Point2D{Pt(10, 30), Pt(-2, 5), Pt(4, 40)})
	if b.Left != -2 || b.Right != 10 || b.Top != 5 || b.Bottom != 40 {
		t.Fatalf("extents = %+v", b)
	}
	if b.Width != 12 || b.Height != 35 {
		t.Fatalf("size = %vx%v", b.Width, b.Height)
	}
	if b.CenterX != 4 || b.CenterY != 22.5 {
		t.Fatalf("center = (%v,%v)", b.CenterX, b.CenterY)
	}
}

func TestBoundsUnion(t *testing.T) {
	a := BoundsOf([]Point2D{Pt(0, 0), Pt(10, 10)})
	b := BoundsOf([]Point2D{Pt(5, -5), Pt(20, 8)})
	u := a.Union(b)
	if u.Left != 0 || u.Right != 20 || u.Top != -5 || u.Bottom != 10 {
		t.Fatalf("union = %+v", u)
	}
	if u.CenterX != 10 || u.CenterY != 2.5 {
		t.Fatalf("union center = (%v,%v)", u.CenterX, u.CenterY)
	}
}
