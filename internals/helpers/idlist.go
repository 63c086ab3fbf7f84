// file: internals/helpers/idlist.go
package helper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseUUIDList normalizes the many shapes clients send target-id lists in:
// a real array, a JSON-encoded array string, a comma-separated string, or a
// single scalar. This is the ONE place that shape-sniffing is allowed;
// callers always receive a clean []uuid.UUID.
func ParseUUIDList(raw interface{}) ([]uuid.UUID, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []uuid.UUID:
		return v, nil
	case []string:
		return parseStrings(v)
	case []interface{}:
		strs := make([]string, 0, len(v))
		for _, item := range v {
			strs = append(strs, fmt.Sprintf("%v", item))
		}
		return parseStrings(strs)
	case string:
		return parseString(v)
	default:
		return nil, fmt.Errorf("unsupported id list shape %T", raw)
	}
}

func parseString(s string) ([]uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	// JSON array string: `["a","b"]`
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err != nil {
			return nil, fmt.Errorf("invalid id list json: %w", err)
		}
		return parseStrings(arr)
	}
	// CSV or single scalar
	return parseStrings(strings.Split(s, ","))
}

func parseStrings(items []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, err := uuid.Parse(item)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", item)
		}
		out = append(out, id)
	}
	return out, nil
}
