/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package align

import (
	"testing"

	"godrafter/internal/geom"
)

func TestApplyMagneticBothAxes(t *testing.T) {
	guides := []Guide{
		{ID: "v", Orientation: Vertical, Position: 50, Strength: 0.9},
		{ID: "h", Orientation: Horizontal, Position: 20, Strength: 0.8},
	}
	res := ApplyMagnetic(geom.Pt(48, 22), guides, 1)
	if res.Position != geom.Pt(50, 20) {
		t.Fatalf("position = %v, want (50,20)", res.Position)
	}
	if len(res.Active) != 2 {
		t.Fatalf("active = %d guides, want 2", len(res.Active))
	}
}

func TestApplyMagneticRange(t *testing.T) {
	guides := []Guide{
		{ID: "v", Orientation: Vertical, Position: 50, Strength: 0.9},
		{ID: "h", Orientation: Horizontal, Position: 20, Strength: 0.8},
	}
	// X is 10 away, past the 5*1 capture range; Y is within it.
	res := ApplyMagnetic(geom.Pt(40, 22), guides, 1)
	if res.Position != geom.Pt(40, 20) {
		t.Fatalf("position = %v, want (40,20)", res.Position)
	}
	if len(res.Active) != 1 || res.Active[0].ID != "h" {
		t.Fatalf("active = %+v", res.Active)
	}

	// Doubling the strength doubles the capture range.
	res = ApplyMagnetic(geom.Pt(40, 22), guides, 2)
	if res.Position != geom.Pt(50, 20) {
		t.Fatalf("position at strength 2 = %v, want (50,20)", res.Position)
	}
}

func TestApplyMagneticStrongestPerAxis(t *testing.T) {
	guides := []Guide{
		{ID: "weak", Orientation: Vertical, Position: 46, Strength: 0.5},
		{ID: "strong", Orientation: Vertical, Position: 50, Strength: 0.9},
	}
	res := ApplyMagnetic(geom.Pt(48, 0), guides, 1)
	if res.Position.X != 50 {
		t.Fatalf("x = %v, want the strongest guide's 50", res.Position.X)
	}
	if len(res.Active) != 1 || res.Active[0].ID != "strong" {
		t.Fatalf("active = %+v", res.Active)
	}
}

func TestApplyMagneticNoGuidesOrZeroStrength(t *testing.T) {
	pos := geom.Pt(13, 37)
	res := ApplyMagnetic(pos, nil, 1)
	if res.Position != pos || res.Active != nil {
		t.Fatalf("no-guide result = %+v", res)
	}
	guides := []Guide{{ID: "v", Orientation: Vertical, Position: 13.5, Strength: 1}}
	res = ApplyMagnetic(pos, guides, 0)
	if res.Position != pos || res.Active != nil {
		t.Fatalf("zero-strength result = %+v", res)
	}
}
