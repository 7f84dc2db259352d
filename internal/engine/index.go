/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package engine

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"godrafter/internal/geom"
)

// shapeIndex is an R-tree over shape bounding boxes used to cull the shape
// set before a radius-bounded snap query. It is an accelerator only:
// queries return identical results with or without it.
type shapeIndex struct {
	tree  *rtreego.Rtree
	items map[string]*indexItem
}

type indexItem struct {
	id   string
	rect rtreego.Rect
}

func (it *indexItem) Bounds() rtreego.Rect { return it.rect }

func newShapeIndex() *shapeIndex {
	return &shapeIndex{
		tree:  rtreego.NewTree(2, 25, 50),
		items: make(map[string]*indexItem),
	}
}

// upsert (re)indexes one shape's bounds. Degenerate boxes get a tiny
// positive extent because the R-tree rejects zero-length sides.
func (x *shapeIndex) upsert(id string, b geom.Bounds) {
	x.remove(id)
	rect, err := boundsRect(b)
	if err != nil {
		return
	}
	it := &indexItem{id: id, rect: rect}
	x.items[id] = it
	x.tree.Insert(it)
}

func (x *shapeIndex) remove(id string) {
	if it, ok := x.items[id]; ok {
		x.tree.Delete(it)
		delete(x.items, id)
	}
}

func (x *shapeIndex) reset() {
	x.tree = rtreego.NewTree(2, 25, 50)
	x.items = make(map[string]*indexItem)
}

// search returns the IDs of shapes whose indexed bounds intersect the
// square of half-width radius around query.
func (x *shapeIndex) search(query geom.Point2D, radius float64) map[string]bool {
	if radius <= 0 {
		return nil
	}
	bb, err := rtreego.NewRect(
		rtreego.Point{query.X - radius, query.Y - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil
	}
	hits := x.tree.SearchIntersect(bb)
	ids := make(map[string]bool, len(hits))
	for _, h := range hits {
		ids[h.(*indexItem).id] = true
	}
	return ids
}

func boundsRect(b geom.Bounds) (rtreego.Rect, error) {
	const minExtent = 1e-9
	return rtreego.NewRect(
		rtreego.Point{b.Left, b.Top},
		[]float64{math.Max(b.Width, minExtent), math.Max(b.Height, minExtent)},
	)
}
