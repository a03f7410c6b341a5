package wrapped

import "reflect"

// Wrap converts maps with string keys into Objects and slices or arrays into
// Lists, recursively, copying as it goes. Objects and Lists are cloned so the
// caller keeps no alias into the result. Other values are returned untouched.
func Wrap(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case map[string]any:
		return NewObject(typed)
	case []any:
		return NewList(typed...)
	case *Object:
		if typed == nil {
			return nil
		}
		return typed.Clone()
	case *List:
		if typed == nil {
			return nil
		}
		return typed.Clone()
	case []byte:
		return append([]byte(nil), typed...)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value
		}
		if rv.IsNil() {
			return nil
		}
		attrs := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			attrs[iter.Key().String()] = iter.Value().Interface()
		}
		return NewObject(attrs)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		items := make([]any, rv.Len())
		for idx := range items {
			items[idx] = rv.Index(idx).Interface()
		}
		return NewList(items...)
	default:
		return value
	}
}

// Unwrap converts Objects and Lists back into plain maps and slices,
// recursively. Byte slices are copied; other values are returned untouched.
func Unwrap(value any) any {
	switch typed := value.(type) {
	case *Object:
		if typed == nil {
			return nil
		}
		return typed.Map()
	case *List:
		if typed == nil {
			return nil
		}
		return typed.Items()
	case []byte:
		return append([]byte(nil), typed...)
	default:
		return value
	}
}
