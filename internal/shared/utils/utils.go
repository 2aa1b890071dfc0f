package utils

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// The Set* helpers apply an optional update onto dst and report whether dst changed.

func SetString(dst *string, v *string) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}

func SetInt(dst *int, v *int) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}

func SetBool(dst *bool, v *bool) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}

// SetStrings treats a nil v as "not sent"; an empty non-nil v clears dst.
func SetStrings(dst *[]string, v []string) bool {
	if v == nil || slices.Equal(*dst, v) {
		return false
	}
	*dst = slices.Clone(v)
	return true
}

func SetDecimal(dst **decimal.Decimal, v *decimal.Decimal) bool {
	if v == nil {
		return false
	}
	if *dst != nil && (*dst).Equal(*v) {
		return false
	}
	d := *v
	*dst = &d
	return true
}

// StringOr returns *v, or def when v is nil.
func StringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// StringOrDefault also falls back to def for an empty value.
func StringOrDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func IntOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func BoolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// StringsOr never returns nil.
func StringsOr(v []string) []string {
	if v == nil {
		return []string{}
	}
	return slices.Clone(v)
}

// NextTimestamp returns now, bumped past prev so updated_at never goes backwards
// at the store's microsecond precision.
func NextTimestamp(prev time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

// Now is the creation timestamp at the store's precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
