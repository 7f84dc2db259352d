/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package snap

import (
	"testing"

	"godrafter/internal/geom"
)

func TestCacheReturnsStaleUntilInvalidated(t *testing.T) {
	c := NewCache()
	s := geom.Shape{ID: "r", Kind: geom.KindRectangle, Points: []geom.Point2D{geom.Pt(0, 0), geom.Pt(10, 10)}}
	first := c.Features(s)
	if len(first) != 9 {
		t.Fatalf("features = %d, want 9", len(first))
	}

	// Move a vertex without changing the point count: the cache key is
	// unchanged, so the stale entry is served until Invalidate.
	s.Points = []geom.Point2D{geom.Pt(0, 0), geom.Pt(20, 20)}
	stale := c.Features(s)
	if &stale[0] != &first[0] {
		t.Fatalf("expected the cached slice before invalidation")
	}

	c.Invalidate("r")
	fresh := c.Features(s)
	found := false
	for _, p := range fresh {
		if p.Kind == KindCenter && p.Position == geom.Pt(10, 10) {
			found = true
		}
	}
	if !found {
		t.Fatalf("post-invalidation features still stale: %v", fresh)
	}
}

func TestCachePointCountChangeRecomputes(t *testing.T) {
	c := NewCache()
	s := geom.Shape{ID: "p", Kind: geom.KindPolyline, Points: []geom.Point2D{geom.Pt(0, 0), geom.Pt(10, 0)}}
	if n := len(c.Features(s)); n != 3 {
		t.Fatalf("features = %d, want 3", n)
	}
	// Adding a vertex changes the key; no explicit invalidation needed.
	s.Points = append(s.Points, geom.Pt(10, 10))
	if n := len(c.Features(s)); n != 5 {
		t.Fatalf("features after vertex add = %d, want 5", n)
	}
}

func TestCacheBoundsKeyedOnAngle(t *testing.T) {
	c := NewCache()
	s := geom.Shape{ID: "r", Kind: geom.KindRectangle, Points: []geom.Point2D{geom.Pt(0, 0), geom.Pt(10, 10)}}
	b := c.Bounds(s)
	if b.Width != 10 {
		t.Fatalf("width = %v, want 10", b.Width)
	}
	// Changing the rotation angle alone must recompute bounds.
	s.Rotation = &geom.Rotation{AngleDegrees: 45, Center: geom.Pt(5, 5)}
	rb := c.Bounds(s)
	if rb.Width <= 10 {
		t.Fatalf("rotated width = %v, want > 10", rb.Width)
	}
}

func TestCacheInvalidateAll(t *testing.T) {
	c := NewCache()
	a := geom.Shape{ID: "a", Kind: geom.KindCircle, Points: []geom.Point2D{geom.Pt(0, 0), geom.Pt(5, 0)}}
	b := geom.Shape{ID: "b", Kind: geom.KindCircle, Points: []geom.Point2D{geom.Pt(9, 9), geom.Pt(9, 12)}}
	c.Features(a)
	c.Features(b)
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	c.InvalidateAll()
	if c.Len() != 0 {
		t.Fatalf("len after clear = %d", c.Len())
	}
}

func TestCacheIndependentEntries(t *testing.T) {
	c := NewCache()
	a := geom.Shape{ID: "a", Kind: geom.KindCircle, Points: []geom.Point2D{geom.Pt(0, 0), geom.Pt(5, 0)}}
	b := geom.Shape{ID: "b", Kind: geom.KindCircle, Points: []geom.Point2D{geom.Pt(9, 9), geom.Pt(9, 12)}}
	c.Features(a)
	c.Features(b)
	c.Invalidate("a")
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}
