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
	"math"

	"godrafter/internal/geom"
)

// GridSnaps returns the grid intersections within tolerance of the query.
//
// Only the 3x3 cell neighborhood around the nearest intersection is
// enumerated, so the cost is constant regardless of grid extent and the
// result never exceeds 9 candidates. Candidates carry their distance to the
// query and their integer cell indices as metadata; scoring is left to the
// selector.
func GridSnaps(query geom.Point2D, cfg GridConfig, tolerance float64) []Point {
	if !cfg.Enabled || cfg.PrimarySpacing <= 0 || tolerance <= 0 || !query.IsFinite() {
		return nil
	}
	sp := cfg.PrimarySpacing
	ix := int(math.Round((query.X - cfg.Origin.X) / sp))
	iy := int(math.Round((query.Y - cfg.Origin.Y) / sp))

	var out []Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx := ix + dx
			cy := iy + dy
			pos := geom.Point2D{
				X: cfg.Origin.X + float64(cx)*sp,
				Y: cfg.Origin.Y + float64(cy)*sp,
			}
			d := query.Dist(pos)
			if d > tolerance {
				continue
			}
			out = append(out, Point{
				ID:       fmt.Sprintf("grid/%d,%d", cx, cy),
				Kind:     KindGrid,
				Position: pos,
				Strength: 1,
				Distance: d,
				Metadata: map[string]float64{
					"cellX": float64(cx),
					"cellY": float64(cy),
				},
			})
		}
	}
	return out
}
