/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package snap

import (
	"sort"

	"godrafter/internal/geom"
)

// scoreTie is the score margin within which the nearer of two top
// candidates wins over the stronger one.
const scoreTie = 0.1

// Selector gathers grid and shape-feature candidates for a query, scores
// them and picks the best. It holds no per-call state beyond the feature
// cache it reads through.
type Selector struct {
	cache *Cache
}

// NewSelector returns a selector reading through cache; a nil cache gets a
// private one.
func NewSelector(cache *Cache) *Selector {
	if cache == nil {
		cache = NewCache()
	}
	return &Selector{cache: cache}
}

// Cache exposes the feature cache the selector reads through.
func (sel *Selector) Cache() *Cache { return sel.cache }

// Detect returns the scored snap candidates within cfg.SnapRadius of query,
// sorted by descending score and truncated to cfg.MaxCandidates (when > 0).
//
// Kinds absent from cfg.ActiveKinds are never matched; unknown kinds in the
// set simply match nothing. One malformed shape contributes zero candidates
// without affecting the rest of the batch.
func (sel *Selector) Detect(query geom.Point2D, shapes []geom.Shape, cfg Config, grid GridConfig) []Point {
	if !cfg.Enabled || cfg.SnapRadius <= 0 || !query.IsFinite() {
		return nil
	}

	var out []Point
	if cfg.ActiveKinds[KindGrid] {
		for _, p := range GridSnaps(query, grid, cfg.SnapRadius) {
			p.Score = score(p.Distance, cfg.SnapRadius, p.Kind)
			out = append(out, p)
		}
	}
	for _, s := range shapes {
		for _, f := range sel.cache.Features(s) {
			if !cfg.ActiveKinds[f.Kind] {
				continue
			}
			d := query.Dist(f.Position)
			if d > cfg.SnapRadius {
				continue
			}
			f.Distance = d
			f.Score = score(d, cfg.SnapRadius, f.Kind)
			out = append(out, f)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].ID < out[j].ID
	})
	if cfg.MaxCandidates > 0 && len(out) > cfg.MaxCandidates {
		out = out[:cfg.MaxCandidates]
	}
	return out
}

// Best picks the winning candidate from a Detect result. When the two top
// scores are within scoreTie of each other the nearer candidate wins.
// Returns nil for an empty list; never an error.
func (sel *Selector) Best(candidates []Point) *Point {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	if len(candidates) > 1 {
		second := candidates[1]
		if best.Score-second.Score <= scoreTie && second.Distance < best.Distance {
			best = second
		}
	}
	return &best
}

// score combines proximity and type priority into the ranking value.
// Free of caching and mutable state so it can be property-tested alone.
func score(distance, radius float64, kind Kind) float64 {
	return clamp01(1-distance/radius) * TypeWeight(kind)
}
