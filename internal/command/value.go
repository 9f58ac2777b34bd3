package command

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Value is implemented by types that know their own command text.
type Value interface {
	CommandText() string
}

// ToCommandValue coerces a payload to its command text. A nil value, or a
// typed nil pointer, slice, map, func or chan, renders as the empty string. Values without a natural string form are rendered as
// compact JSON, falling back to fmt formatting if that fails.
func ToCommandValue(v any) string {
	if isNilReference(v) {
		return ""
	}
	switch val := v.(type) {
	case nil:
		return ""
	case Value:
		return val.CommandText()
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// isNilReference reports whether v holds a typed nil. reflect is only used
// for this check; coercion itself dispatches on static types.
func isNilReference(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
