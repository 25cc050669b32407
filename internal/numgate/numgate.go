// Package numgate decodes JSON array payloads into flat numeric sequences
// and enforces the element domain: every entry must be a finite JSON
// number. A single failing element rejects the whole array; there are no
// partial tables.
// Implements: docs/ARCHITECTURE § Domain Gate.
package numgate

import (
	"encoding/json"
	"math"
	"strings"
)

// emptyArray is the sentinel encoding for rejected or empty payloads.
const emptyArray = "[]"

// ParseArray decodes s as a flat JSON array of numbers. The second return
// value is false when s is not valid JSON, the top-level value is not an
// array, trailing data follows the array, or any element fails the domain
// gate. Elements are kept as json.Number so integer payloads re-encode
// byte for byte, with no float formatting drift.
func ParseArray(s string) ([]json.Number, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, false
	}
	if dec.More() {
		return nil, false
	}

	arr, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	nums := make([]json.Number, 0, len(arr))
	for _, v := range arr {
		num, ok := validNumber(v)
		if !ok {
			return nil, false
		}
		nums = append(nums, num)
	}
	return nums, true
}

// validNumber applies the per-element gate: the value must be a JSON
// number whose magnitude fits a finite float64. Booleans, strings, nulls,
// and nested values are not numbers; oversized literals such as 1e400 are
// non-finite and rejected.
func validNumber(v any) (json.Number, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return "", false
	}
	f, err := num.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return num, true
}

// Encode renders nums as a compact JSON array. Nil and empty sequences
// both encode as "[]".
func Encode(nums []json.Number) string {
	if len(nums) == 0 {
		return emptyArray
	}
	out, err := json.Marshal(nums)
	if err != nil {
		return emptyArray
	}
	return string(out)
}
