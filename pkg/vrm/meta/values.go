package meta

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// text renders meta[key] as a display string. Absent, null and empty
// values all become Sentinel.
func text(m map[string]any, key string) string {
	return render(m[key])
}

func render(v any) string {
	switch t := v.(type) {
	case nil:
		return Sentinel
	case string:
		if t == "" {
			return Sentinel
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return Sentinel
		}
		return string(b)
	}
}

// triState maps a boolean permission. Missing and false must stay distinct:
// missing is Sentinel, false is NotAllowed.
func triState(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return Sentinel
	}
	if truthy(v) {
		return Allowed
	}
	return NotAllowed
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return v != nil
	}
}

// joined renders a list of names separated by AuthorSeparator.
func joined(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return Sentinel
	}
	list, ok := v.([]any)
	if !ok {
		return render(v)
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, render(item))
	}
	if len(parts) == 0 {
		return Sentinel
	}
	return strings.Join(parts, AuthorSeparator)
}

// queryParam extracts a query parameter from the URL stored under key.
// Any failure along the way (no URL, unparseable URL, no parameter, empty
// value) yields Sentinel.
func queryParam(m map[string]any, key, param string) string {
	raw, ok := m[key].(string)
	if !ok || raw == "" {
		return Sentinel
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Sentinel
	}
	// malformed pairs are skipped, the rest still count
	q, _ := url.ParseQuery(u.RawQuery)
	if v := q.Get(param); v != "" {
		return v
	}
	return Sentinel
}
