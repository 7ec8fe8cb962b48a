package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// MarshalFields encodes fields into a JSON object.
func MarshalFields(fields any) (json.RawMessage, error) {
	if raw, ok := fields.(json.RawMessage); ok {
		if !isObject(raw) {
			return nil, ErrNotAnObject
		}
		return raw, nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	if !isObject(data) {
		return nil, ErrNotAnObject
	}
	return data, nil
}

// MergeFields overlays the top level fields of patch onto base.
func MergeFields(base, patch json.RawMessage) (json.RawMessage, error) {
	merged := make(map[string]json.RawMessage)
	if len(base) > 0 {
		if err := json.Unmarshal(base, &merged); err != nil {
			return nil, fmt.Errorf("unmarshal base: %w", err)
		}
	}
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return nil, fmt.Errorf("unmarshal patch: %w", err)
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return json.Marshal(merged)
}

func isObject(data []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(data)), "{")
}

func field(doc Document, name string) (json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc.Data, &fields); err != nil {
		return nil, false
	}
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

// compareField compares the document field against v. ok is false when the field is
// missing or not comparable with v's type.
func compareField(raw json.RawMessage, v any) (cmp int, ok bool) {
	switch val := v.(type) {
	case time.Time:
		var t time.Time
		if err := json.Unmarshal(raw, &t); err != nil {
			return 0, false
		}
		return t.Compare(val), true
	case string:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		return strings.Compare(s, val), true
	case bool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return 0, false
		}
		if b == val {
			return 0, true
		}
		if !b {
			return -1, true
		}
		return 1, true
	case int:
		return compareNumber(raw, float64(val))
	case int64:
		return compareNumber(raw, float64(val))
	case float64:
		return compareNumber(raw, val)
	default:
		return 0, false
	}
}

func compareNumber(raw json.RawMessage, val float64) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	switch {
	case f < val:
		return -1, true
	case f > val:
		return 1, true
	default:
		return 0, true
	}
}

// Matches reports whether doc passes every filter. Documents missing a filtered field never match.
func Matches(doc Document, filters []Filter) bool {
	for _, f := range filters {
		raw, ok := field(doc, f.Field)
		if !ok {
			return false
		}
		cmp, ok := compareField(raw, f.Value)
		if !ok {
			return false
		}
		switch f.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpGte:
			if cmp < 0 {
				return false
			}
		case OpLt:
			if cmp >= 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// SortDocuments orders docs by a top level field. Times (RFC 3339 strings) sort
// chronologically, numbers numerically, anything else as raw JSON text.
// Documents missing the field go last.
func SortDocuments(docs []Document, orderBy string, descending bool) {
	if orderBy == "" {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a, aOk := field(docs[i], orderBy)
		b, bOk := field(docs[j], orderBy)
		if !aOk || !bOk {
			return aOk && !bOk
		}
		cmp := compareRaw(a, b)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareRaw(a, b json.RawMessage) int {
	var at, bt time.Time
	if json.Unmarshal(a, &at) == nil && json.Unmarshal(b, &bt) == nil {
		return at.Compare(bt)
	}
	var af, bf float64
	if json.Unmarshal(a, &af) == nil && json.Unmarshal(b, &bf) == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(string(a), string(b))
}

// Apply runs the filters, ordering and limit of q over docs, in memory.
func Apply(q Query, docs []Document) []Document {
	res := make([]Document, 0, len(docs))
	for _, d := range docs {
		if Matches(d, q.Filters) {
			res = append(res, d)
		}
	}
	SortDocuments(res, q.OrderBy, q.Descending)
	if q.Limit > 0 && len(res) > q.Limit {
		res = res[:q.Limit]
	}
	return res
}
