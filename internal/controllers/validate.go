package controllers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// checkRequired verifies that the required fields of an editable are set.
//
// When creating, a required field must be present in the body and not be blank.
// When updating, only the fields present in the body are checked.
func checkRequired(editable any, present []any, creating bool, required ...string) error {
	val := reflect.Indirect(reflect.ValueOf(editable))

	var missing []string
	for _, name := range required {
		isPresent := slices.Contains(present, any(name))
		if !isPresent && !creating {
			continue
		}

		if !isPresent || blank(val.FieldByName(name)) {
			missing = append(missing, jsonName(val.Type(), name))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// blank reports whether a field counts as not set. Strings are blank when
// they only contain whitespace.
func blank(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Invalid:
		return true
	}

	return v.IsZero()
}

func jsonName(t reflect.Type, field string) string {
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}

	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return field
	}
	return name
}

// checkAmounts verifies that no amount is negative.
func checkAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return errNegativeAmount
		}
	}
	return nil
}
