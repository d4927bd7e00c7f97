package importer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// row is one raw record from the source. CSV rows hold string values only;
// JSON rows hold whatever the document carried.
type row map[string]any

// field returns the raw value for key. Absent or null fields report false.
func (r row) field(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// stringField returns the value for key if it is a string.
func (r row) stringField(key string) (string, bool) {
	v, ok := r.field(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// toDecimal coerces a raw field value to a decimal. Strings are trimmed and
// parsed; JSON numbers are taken as-is.
func toDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("value %q is not numeric", val)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("value %q is not numeric", val)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("value has type %T, want number", v)
	}
}

// kindAliases maps lowercase operation names, known misspellings included, to
// canonical kinds.
var kindAliases = map[string]string{
	"deposit":  "deposit",
	"diposit":  "deposit",
	"withdraw": "withdraw",
	"withtraw": "withdraw",
	"interest": "interest",
}

// normalizeKind lowercases name and resolves known misspellings. Unrecognized
// names pass through unchanged; the whitelist check rejects them later unless
// they literally equal an allowed kind.
func normalizeKind(name string) string {
	if canonical, ok := kindAliases[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}
