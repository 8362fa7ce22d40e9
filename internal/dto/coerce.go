package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// largest float64 that still holds every smaller integer exactly
const maxExactFloat = 1 << 53

// toInt accepts a JSON number with no fractional part or a base-10 integer
// string. Booleans, fractions and other string forms are rejected.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing value")
	case bool:
		return 0, fmt.Errorf("boolean %v is not an integer", n)
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > maxExactFloat {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%q is not a base-10 integer", n)
		}
		return i, nil
	}
	return cast.ToIntE(v)
}

func toID(v any) (uint, error) {
	i, err := toInt(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("negative id %d", i)
	}
	return uint(i), nil
}
