/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package snap

import "godrafter/internal/geom"

// CalcBounds computes a shape's axis-aligned bounding box after applying the
// shape's own rotation about its declared center. Invalid shapes yield the
// zero Bounds.
//
// The outline expansion is kind-specific (rectangle corners, circle bounding
// square, raw vertices); each outline point is rotated, then min/max taken
// per axis. Rotation changes bounds without changing point count, which is
// why cached bounds are keyed on the angle as well.
func CalcBounds(s geom.Shape) geom.Bounds {
	outline := s.Outline()
	if len(outline) == 0 {
		return geom.Bounds{}
	}
	angle := s.RotationAngle()
	if s.Rotation == nil || angle == 0 {
		return geom.BoundsOf(outline)
	}
	rotated := make([]geom.Point2D, len(outline))
	for i, p := range outline {
		rotated[i] = geom.RotateAround(p, s.Rotation.Center, angle)
	}
	return geom.BoundsOf(rotated)
}
