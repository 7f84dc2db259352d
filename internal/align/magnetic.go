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

	"godrafter/internal/geom"
)

// magneticRange scales SnapStrength into the capture distance: a coordinate
// is pulled onto a guide only when its raw delta is within 5*SnapStrength.
const magneticRange = 5

// SnapResult is the outcome of magnetic snapping: the adjusted position and
// the guides actually applied, for caller-side highlighting.
type SnapResult struct {
	Position geom.Point2D `json:"position"`
	Active   []Guide      `json:"activeGuides"`
}

// ApplyMagnetic snaps a raw drag position onto at most one guide per axis:
// the strongest vertical guide adjusts X, the strongest horizontal guide
// adjusts Y, each only when the coordinate is within magneticRange *
// snapStrength of the guide. An empty guide list returns the position
// unchanged.
func ApplyMagnetic(position geom.Point2D, guides []Guide, snapStrength float64) SnapResult {
	res := SnapResult{Position: position}
	if snapStrength <= 0 {
		return res
	}
	maxDelta := magneticRange * snapStrength

	if g := strongest(guides, Vertical); g != nil && math.Abs(position.X-g.Position) <= maxDelta {
		res.Position.X = g.Position
		res.Active = append(res.Active, *g)
	}
	if g := strongest(guides, Horizontal); g != nil && math.Abs(position.Y-g.Position) <= maxDelta {
		res.Position.Y = g.Position
		res.Active = append(res.Active, *g)
	}
	return res
}

func strongest(guides []Guide, o Orientation) *Guide {
	var best *Guide
	for i := range guides {
		if guides[i].Orientation != o {
			continue
		}
		if best == nil || guides[i].Strength > best.Strength {
			best = &guides[i]
		}
	}
	return best
}
