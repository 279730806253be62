package geo

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const tileSizePx = 256.0

// Count thresholds for cluster size buckets. Each threshold crossed bumps the
// rendered marker one size up; purely a display hint alongside the count.
var sizeBucketThresholds = []int{20, 50, 100, 500, 1000}

// Point is one clusterable pin position. The ID is used for deterministic
// tie-breaking, never for policy.
type Point struct {
	ID  uuid.UUID
	Lat float64
	Lon float64
}

// Group is a set of input points that render as one marker. A group of one is
// returned to the client as an individual pin.
type Group struct {
	CenterLat  float64
	CenterLon  float64
	Count      int
	SizeBucket int
	// Indexes into the input slice, ascending by point ID.
	Indexes []int
}

// ClusterByZoom groups points whose screen distance at the given zoom falls
// under radiusPx. It is a pure function of its inputs: points are processed in
// ascending ID order, each joining the first existing group whose anchor is
// within the radius, so repeated calls over the same set yield byte-identical
// output. Group centers are the centroid of their members.
func ClusterByZoom(points []Point, zoom maptile.Zoom, radiusPx float64) []Group {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.ID != pb.ID {
			return pa.ID.String() < pb.ID.String()
		}

		return order[a] < order[b]
	})

	type anchor struct {
		px, py float64
		group  int
	}

	var anchors []anchor
	var groups []Group

	for _, idx := range order {
		px, py := pixelAt(points[idx].Lat, points[idx].Lon, zoom)

		joined := false
		for _, a := range anchors {
			dx, dy := px-a.px, py-a.py
			if math.Hypot(dx, dy) <= radiusPx {
				groups[a.group].Indexes = append(groups[a.group].Indexes, idx)
				joined = true

				break
			}
		}

		if !joined {
			anchors = append(anchors, anchor{px: px, py: py, group: len(groups)})
			groups = append(groups, Group{Indexes: []int{idx}})
		}
	}

	for i := range groups {
		finalizeGroup(&groups[i], points)
	}

	return groups
}

func finalizeGroup(g *Group, points []Point) {
	var sumLat, sumLon float64
	for _, idx := range g.Indexes {
		sumLat += points[idx].Lat
		sumLon += points[idx].Lon
	}

	n := float64(len(g.Indexes))
	g.CenterLat = sumLat / n
	g.CenterLon = sumLon / n
	g.Count = len(g.Indexes)
	g.SizeBucket = SizeBucket(g.Count)
}

// SizeBucket maps a cluster count to its display size bucket: 0 for small
// clusters, climbing one step per threshold crossed.
func SizeBucket(count int) int {
	bucket := 0
	for _, threshold := range sizeBucketThresholds {
		if count >= threshold {
			bucket++
		}
	}

	return bucket
}

// pixelAt projects a coordinate to global web-mercator pixel space at a zoom.
func pixelAt(lat, lon float64, zoom maptile.Zoom) (x, y float64) {
	fraction := maptile.Fraction(orb.Point{lon, lat}, zoom)

	return fraction[0] * tileSizePx, fraction[1] * tileSizePx
}
