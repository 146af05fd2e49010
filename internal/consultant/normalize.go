package consultant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Normalize flattens an arbitrary field value into a display string. It
// never fails: null-ish values become "", arrays and objects become compact
// JSON and scalars their trimmed text.
func Normalize(v any) string {
	var s string
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		s = value
	case json.Number:
		s = value.String()
	case bool:
		s = strconv.FormatBool(value)
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		s = strconv.Itoa(value)
	case int64:
		s = strconv.FormatInt(value, 10)
	case []any, map[string]any:
		s = encodeStructured(value)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			s = encodeStructured(v)
		case reflect.Pointer:
			if rv.IsNil() {
				return ""
			}
			return Normalize(rv.Elem().Interface())
		default:
			s = fmt.Sprint(v)
		}
	}

	s = strings.TrimSpace(s)
	if s == "null" || s == "undefined" {
		return ""
	}
	return s
}

func encodeStructured(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
