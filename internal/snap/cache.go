/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package snap

import "godrafter/internal/geom"

// Cache memoizes extracted features and computed bounds per shape so
// repeated per-frame queries do not recompute geometry.
//
// Entries are lazily populated and explicitly invalidated; there is no
// time-based eviction. Feature entries are keyed by (shapeID, pointCount),
// bounds entries additionally by the rotation angle. A key mismatch on
// lookup recomputes the entry in place, but callers that mutate shape
// geometry without changing the key (moving a vertex) must call Invalidate:
// a stale entry returns extinct positions, which is a correctness bug.
//
// The cache is single-writer/single-reader by contract (the engine runs one
// query at a time); it carries no lock.
type Cache struct {
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	pointCount int

	features    []Point
	hasFeatures bool

	bounds      geom.Bounds
	boundsAngle float64
	hasBounds   bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Features returns the shape's snap features, extracting on miss. The
// returned slice is shared with the cache and must not be mutated.
func (c *Cache) Features(s geom.Shape) []Point {
	e := c.entry(s)
	if !e.hasFeatures {
		e.features = Features(s)
		e.hasFeatures = true
	}
	return e.features
}

// Bounds returns the shape's rotated bounding box, computing on miss or
// when the rotation angle changed since the cached value.
func (c *Cache) Bounds(s geom.Shape) geom.Bounds {
	e := c.entry(s)
	angle := s.RotationAngle()
	if !e.hasBounds || e.boundsAngle != angle {
		e.bounds = CalcBounds(s)
		e.boundsAngle = angle
		e.hasBounds = true
	}
	return e.bounds
}

// Invalidate drops the entry for one shape.
func (c *Cache) Invalidate(shapeID string) {
	delete(c.entries, shapeID)
}

// InvalidateAll clears the cache.
func (c *Cache) InvalidateAll() {
	c.entries = make(map[string]*cacheEntry)
}

// Len reports the number of cached shapes.
func (c *Cache) Len() int { return len(c.entries) }

// entry fetches the shape's entry, resetting it when the point count no
// longer matches the cached key.
func (c *Cache) entry(s geom.Shape) *cacheEntry {
	e, ok := c.entries[s.ID]
	if !ok || e.pointCount != len(s.Points) {
		e = &cacheEntry{pointCount: len(s.Points)}
		c.entries[s.ID] = e
	}
	return e
}
