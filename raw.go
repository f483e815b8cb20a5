package numpager

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// RawNumberPager is intended for API payloads. Inline it into request DTOs:
//
//	type ListUsersRequest struct {
//	    Paging RawNumberPager `json:",inline"`
//	}
//
// The numeric fields accept anything a JSON decoder produces; values that are
// not numbers fall back to their defaults instead of failing the request.
type RawNumberPager struct {
	// Page - 1-based page number. Ignored when PageToken is set.
	Page any `json:"page,omitempty"`
	// PageSize - records per page, capped to MaxPageSize.
	PageSize any `json:"pageSize,omitempty"`
	// PageNeighbours - page links around the current one, see Options.
	PageNeighbours any `json:"pageNeighbours,omitempty"`
	// PageToken - token obtained via PageToken.String().
	PageToken string `json:"pageToken,omitempty"`
}

// ParseQuery reads "page", "pageSize", "pageNeighbours" and "pageToken" from
// URL query values. Values that are not integers are kept as strings, so
// Decode replaces them with defaults.
func ParseQuery(values url.Values) RawNumberPager {
	parse := func(key string) any {
		if !values.Has(key) {
			return nil
		}

		raw := values.Get(key)
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}

		return raw
	}

	return RawNumberPager{
		Page:           parse("page"),
		PageSize:       parse("pageSize"),
		PageNeighbours: parse("pageNeighbours"),
		PageToken:      values.Get("pageToken"),
	}
}

// Decode builds a NumberPager over totalRecords records positioned at the
// requested page. Only a malformed PageToken is reported as an error.
func (r RawNumberPager) Decode(totalRecords int) (*NumberPager, error) {
	token, err := DecodePageToken(r.PageToken)
	if err != nil {
		return nil, fmt.Errorf("invalid page token: %w", err)
	}

	p := New(Options{
		TotalRecords:   totalRecords,
		PageSize:       NormalizePageSizeMax(numericOr(r.PageSize, DefaultPageSize), MaxPageSize),
		PageNeighbours: numericOr(r.PageNeighbours, 0),
	})

	page := numericOr(r.Page, 1)
	if token != nil {
		page = token.Page()
	}

	return p.WithCurrentPage(page), nil
}

// numericOr converts numeric values to int. Anything else yields def.
func numericOr(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return floatOr(float64(n), def)
	case float64:
		return floatOr(n, def)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return floatOr(f, def)
		}
		return def
	default:
		return def
	}
}

func floatOr(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return def
	}

	return int(f)
}
