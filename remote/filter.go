package remote

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/floodwatch/floodwatch-sync-api/geo"
)

// Range is an optional numeric interval over a single field. A nil bound
// leaves that side open.
type Range struct {
	Min *float64
	Max *float64
}

// Filter expresses independent per-field predicates: numeric ranges and exact
// matches. It is deliberately weaker than a radius query; a bounding box is
// expressible, a circle is not. Callers that need a radius must post-filter.
type Filter struct {
	Ranges map[string]Range
	Equals map[string]interface{}
}

// All matches every document in the collection.
func All() Filter { return Filter{} }

// Eq matches documents whose field equals value.
func Eq(field string, value interface{}) Filter {
	return Filter{Equals: map[string]interface{}{field: value}}
}

// BoxFilter narrows a query to the latitude/longitude box. It over-includes
// relative to the radius the box was derived from.
func BoxFilter(box geo.Box) Filter {
	return Filter{
		Ranges: map[string]Range{
			"latitude":  {Min: &box.LatMin, Max: &box.LatMax},
			"longitude": {Min: &box.LonMin, Max: &box.LonMax},
		},
	}
}

func (f Filter) bson() bson.M {
	out := bson.M{}
	for field, r := range f.Ranges {
		cond := bson.M{}
		if r.Min != nil {
			cond["$gte"] = *r.Min
		}
		if r.Max != nil {
			cond["$lte"] = *r.Max
		}
		if len(cond) > 0 {
			out[field] = cond
		}
	}
	for field, v := range f.Equals {
		out[field] = v
	}
	return out
}
