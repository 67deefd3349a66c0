package recordstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	rowIDField     = "Id"
	createdAtField = "CreatedAt"
	updatedAtField = "UpdatedAt"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// RowID returns the store-assigned identifier of a row.
func RowID(row Row) string {
	return asString(row[rowIDField])
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

func asStringPtr(v any) *string {
	s := asString(v)
	if s == "" {
		return nil
	}
	return &s
}

// asInt64 parses a money or count value, rounding to whole units.
func asInt64(v any) (int64, error) {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return d.Round(0).IntPart(), nil
}

func asInt(v any) (int, error) {
	n, err := asInt64(v)
	return int(n), err
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		n, err := t.Int64()
		return err == nil && n != 0
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "y":
			return true
		}
	}
	return false
}

func asTime(v any) *time.Time {
	s := asString(v)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// asStringList accepts a JSON array or a comma separated multi-select value.
func asStringList(v any) []string {
	var parts []string
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		for _, p := range t {
			parts = append(parts, asString(p))
		}
	default:
		parts = strings.Split(asString(t), ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// whereEq builds a NocoDB filter. Values that could break out of the filter
// expression yield an empty filter, which resolves to not found.
func whereEq(field, value string) string {
	if value == "" || strings.ContainsAny(value, "(),~") {
		return ""
	}
	return fmt.Sprintf("(%s,eq,%s)", field, value)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
