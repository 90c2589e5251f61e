// Package util holds small helpers shared by the delivery and usecase layers.
package util

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"interest/internal/domain/entity"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripTagsPolicy = bluemonday.StrictPolicy()
	percentOctetRe  = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// SanitizeText reduces user input to a single line of plain text: invalid
// UTF-8 is dropped, tags and percent-encoded octets are stripped and runs of
// whitespace collapse to one space.
func SanitizeText(s string) string {
	s = strings.ToValidUTF8(s, "")
	if s == "" {
		return ""
	}

	s = html.UnescapeString(stripTagsPolicy.Sanitize(s))
	s = percentOctetRe.ReplaceAllString(s, "")

	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// SanitizeNested sanitizes every scalar value of input and every element of
// one level of nested slices or maps. With dropEmpty set, entries that
// sanitize to an empty string are removed.
func SanitizeNested(input map[string]any, dropEmpty bool) map[string]any {
	out := make(map[string]any, len(input))

	for key, value := range input {
		switch v := value.(type) {
		case []string:
			items := make([]string, 0, len(v))
			for _, item := range v {
				clean := SanitizeText(item)
				if dropEmpty && clean == "" {
					continue
				}
				items = append(items, clean)
			}
			if dropEmpty && len(items) == 0 {
				continue
			}
			out[key] = items
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				clean := SanitizeText(scalarString(item))
				if dropEmpty && clean == "" {
					continue
				}
				items = append(items, clean)
			}
			if dropEmpty && len(items) == 0 {
				continue
			}
			out[key] = items
		case map[string]any:
			items := make(map[string]string, len(v))
			for k, item := range v {
				clean := SanitizeText(scalarString(item))
				if dropEmpty && clean == "" {
					continue
				}
				items[k] = clean
			}
			if dropEmpty && len(items) == 0 {
				continue
			}
			out[key] = items
		default:
			clean := SanitizeText(scalarString(v))
			if dropEmpty && clean == "" {
				continue
			}
			out[key] = clean
		}
	}

	return out
}

// SanitizeValues applies SanitizeText to every value of a query or form map.
func SanitizeValues(values map[string][]string, dropEmpty bool) map[string][]string {
	input := make(map[string]any, len(values))
	for key, v := range values {
		input[key] = v
	}

	out := make(map[string][]string, len(values))
	for key, v := range SanitizeNested(input, dropEmpty) {
		out[key], _ = v.([]string)
	}

	return out
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}

		return ""
	default:
		return fmt.Sprint(t)
	}
}

// AbsInt converts v to a non-negative integer the way form IDs are
// normalized: a leading integer is parsed and its absolute value returned,
// anything unparsable yields 0.
func AbsInt(v any) int64 {
	switch t := v.(type) {
	case int:
		return absInt64(int64(t))
	case int32:
		return absInt64(int64(t))
	case int64:
		return absInt64(t)
	case uint:
		return clampUint(uint64(t))
	case uint64:
		return clampUint(t)
	case float64:
		if math.IsNaN(t) {
			return 0
		}
		t = math.Abs(t)
		if t >= math.MaxInt64 {
			return math.MaxInt64
		}

		return int64(t)
	case string:
		return parseLeadingInt(t)
	case fmt.Stringer:
		return parseLeadingInt(t.String())
	default:
		return 0
	}
}

func parseLeadingInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of range: ParseInt saturates at the int64 bounds.
		if s[0] == '-' {
			return math.MaxInt64
		}

		return n
	}

	return absInt64(n)
}

func absInt64(n int64) int64 {
	if n == math.MinInt64 {
		return math.MaxInt64
	}
	if n < 0 {
		return -n
	}

	return n
}

func clampUint(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(n)
}

// NormalizeIDs maps raw values through AbsInt, drops zeros and duplicates and
// keeps first-seen order.
func NormalizeIDs[T any](raw []T) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id := AbsInt(v)
		if id == 0 || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// FilterCartForEnabled returns the product IDs of cart that are in enabled,
// deduplicated in cart order. ok is false when either input is empty or no
// cart item is enabled.
func FilterCartForEnabled(cart []entity.CartItem, enabled []int64) (ids []int64, ok bool) {
	if len(cart) == 0 || len(enabled) == 0 {
		return nil, false
	}

	ids = make([]int64, 0, len(cart))
	for _, item := range cart {
		if !slices.Contains(enabled, item.ProductID) || slices.Contains(ids, item.ProductID) {
			continue
		}
		ids = append(ids, item.ProductID)
	}
	if len(ids) == 0 {
		return nil, false
	}

	return ids, true
}
