/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package align

import (
	"math"
	"testing"

	"godrafter/internal/geom"
)

func rect(id string, x1, y1, x2, y2 float64) geom.Shape {
	return geom.Shape{
		ID:     id,
		Kind:   geom.KindRectangle,
		Points: []geom.Point2D{geom.Pt(x1, y1), geom.Pt(x2, y2)},
	}
}

func onlyCenters() Config {
	cfg := DefaultConfig()
	cfg.ShowEdgeGuides = false
	cfg.ShowSpacingGuides = false
	return cfg
}

func TestDetectCenterGuide(t *testing.T) {
	d := NewDetector(nil)
	moving := rect("m", 0, 0, 10, 10)     // center (5,5)
	static := rect("s", 100, 2, 110, 12)  // center (105,7)

	guides := d.Detect(moving, []geom.Shape{static}, onlyCenters())
	if len(guides) != 1 {
		t.Fatalf("got %d guides, want 1", len(guides))
	}
	g := guides[0]
	if g.Orientation != Horizontal || g.Kind != KindCenter {
		t.Fatalf("guide = %+v", g)
	}
	if g.Position != 7 {
		t.Fatalf("position = %v, want 7", g.Position)
	}
	// diff 2 against threshold 6.
	if want := 1 - 2.0/6.0; math.Abs(g.Strength-want) > 1e-9 {
		t.Fatalf("strength = %v, want %v", g.Strength, want)
	}
	if g.SourceShapeID != "m" || len(g.TargetShapeIDs) != 1 || g.TargetShapeIDs[0] != "s" {
		t.Fatalf("ids = %q %v", g.SourceShapeID, g.TargetShapeIDs)
	}
	if g.ID == "" {
		t.Fatalf("guide has no ID")
	}
}

func TestDetectExactAlignmentFullStrength(t *testing.T) {
	d := NewDetector(nil)
	guides := d.Detect(rect("m", 0, 0, 10, 10), []geom.Shape{rect("s", 100, 0, 110, 10)}, onlyCenters())
	if len(guides) != 1 || guides[0].Strength != 1 {
		t.Fatalf("guides = %+v, want one at strength 1", guides)
	}
}

func TestDetectThresholdBoundary(t *testing.T) {
	d := NewDetector(nil)
	cfg := onlyCenters()
	cfg.Threshold = 6

	// diff exactly at the threshold still emits, at strength 0.
	guides := d.Detect(rect("m", 0, 0, 10, 10), []geom.Shape{rect("s", 100, 6, 110, 16)}, cfg)
	if len(guides) != 1 || guides[0].Strength != 0 {
		t.Fatalf("at-threshold guides = %+v", guides)
	}
	// Just past the threshold emits nothing.
	guides = d.Detect(rect("m", 0, 0, 10, 10), []geom.Shape{rect("s", 100, 6.01, 110, 16.01)}, cfg)
	if len(guides) != 0 {
		t.Fatalf("past-threshold guides = %+v", guides)
	}
}

func TestDetectEdgeGuides(t *testing.T) {
	d := NewDetector(nil)
	cfg := DefaultConfig()
	cfg.ShowCenterGuides = false
	cfg.ShowSpacingGuides = false

	// Shares the left edge at x=0; tops differ by 100 so only vertical
	// edge guides can fire.
	moving := rect("m", 0, 0, 10, 10)
	static := rect("s", 0, 100, 20, 120)
	guides := d.Detect(moving, []geom.Shape{static}, cfg)
	if len(guides) != 1 {
		t.Fatalf("got %d guides, want 1: %+v", len(guides), guides)
	}
	g := guides[0]
	if g.Orientation != Vertical || g.Kind != KindEdgeStart || g.Position != 0 {
		t.Fatalf("guide = %+v", g)
	}
	// Span covers both shapes vertically for rendering.
	if g.SpanStart != 0 || g.SpanEnd != 120 {
		t.Fatalf("span = [%v,%v]", g.SpanStart, g.SpanEnd)
	}
}

func TestDetectEqualSpacing(t *testing.T) {
	d := NewDetector(nil)
	cfg := DefaultConfig()
	cfg.ShowCenterGuides = false
	cfg.ShowEdgeGuides = false

	moving := rect("m", -5, -5, 5, 5)        // center (0,0)
	s1 := rect("s1", -105, -5, -95, 5)       // center (-100,0)
	s2 := rect("s2", 95, -5, 105, 5)         // center (100,0)
	guides := d.Detect(moving, []geom.Shape{s1, s2}, cfg)

	var vertical *Guide
	for i := range guides {
		if guides[i].Orientation == Vertical {
			vertical = &guides[i]
		}
	}
	if vertical == nil {
		t.Fatalf("no vertical spacing guide in %+v", guides)
	}
	if vertical.Kind != KindEqualSpacing || vertical.Position != 0 {
		t.Fatalf("vertical = %+v", vertical)
	}
	if vertical.Strength != 1 {
		t.Fatalf("strength = %v, want 1", vertical.Strength)
	}
	if sp := vertical.Metadata["spacing"]; sp != 100 {
		t.Fatalf("spacing = %v, want 100", sp)
	}
	want := []string{"s1", "s2"}
	if len(vertical.TargetShapeIDs) != 2 || vertical.TargetShapeIDs[0] != want[0] || vertical.TargetShapeIDs[1] != want[1] {
		t.Fatalf("targets = %v", vertical.TargetShapeIDs)
	}
}

func TestDetectUnevenSpacingExcluded(t *testing.T) {
	d := NewDetector(nil)
	cfg := DefaultConfig()
	cfg.ShowCenterGuides = false
	cfg.ShowEdgeGuides = false

	moving := rect("m", -5, 95, 5, 105)   // center (0,100), off both axes
	s1 := rect("s1", -105, -5, -95, 5)    // center gap ~141
	s2 := rect("s2", 15, -5, 25, 5)       // center gap ~102
	guides := d.Detect(moving, []geom.Shape{s1, s2}, cfg)
	for _, g := range guides {
		if g.Kind == KindEqualSpacing && g.Orientation == Vertical {
			t.Fatalf("uneven spacing produced %+v", g)
		}
	}
}

func TestDetectSkipsSelfAndInvalid(t *testing.T) {
	d := NewDetector(nil)
	moving := rect("m", 0, 0, 10, 10)
	self := rect("m", 0, 0, 10, 10)
	broken := geom.Shape{ID: "b", Kind: geom.KindPolygon, Points: []geom.Point2D{geom.Pt(0, 0)}}
	if guides := d.Detect(moving, []geom.Shape{self, broken}, DefaultConfig()); len(guides) != 0 {
		t.Fatalf("guides = %+v, want none", guides)
	}
}

func TestDetectMaxGuides(t *testing.T) {
	d := NewDetector(nil)
	cfg := DefaultConfig()
	cfg.MaxGuides = 2

	statics := []geom.Shape{
		rect("s1", 100, 0, 110, 10),
		rect("s2", 200, 1, 210, 11),
		rect("s3", 300, 2, 310, 12),
	}
	guides := d.Detect(rect("m", 0, 0, 10, 10), statics, cfg)
	if len(guides) != 2 {
		t.Fatalf("got %d guides, want 2", len(guides))
	}
	if guides[0].Strength < guides[1].Strength {
		t.Fatalf("guides not sorted by strength: %v then %v", guides[0].Strength, guides[1].Strength)
	}
}

func TestDetectDisabledAndInvalidMoving(t *testing.T) {
	d := NewDetector(nil)
	static := rect("s", 100, 0, 110, 10)

	cfg := DefaultConfig()
	cfg.Enabled = false
	if guides := d.Detect(rect("m", 0, 0, 10, 10), []geom.Shape{static}, cfg); guides != nil {
		t.Fatalf("disabled detect = %+v", guides)
	}

	invalid := geom.Shape{ID: "m", Kind: geom.KindRectangle, Points: []geom.Point2D{geom.Pt(0, 0)}}
	if guides := d.Detect(invalid, []geom.Shape{static}, DefaultConfig()); guides != nil {
		t.Fatalf("invalid moving detect = %+v", guides)
	}
}
