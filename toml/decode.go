package toml

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Unmarshal parses TOML data and stores the result in the value pointed to by v
func Unmarshal(data []byte, v any) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(m, v)
}

// Decode maps parsed TOML onto v. Fields match their `toml` tag, or the field
// name when untagged. Keys absent from data leave fields untouched, so
// defaults survive
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	if val.Type() == durationType {
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("expected duration string, got %T", data)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		val.SetInt(int64(d))
		return nil
	}
	if val.CanAddr() && val.Addr().Type().Implements(textUnmarshalerType) {
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("expected string for %s, got %T", val.Type(), data)
		}
		return val.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}

	switch val.Kind() {
	case reflect.Pointer:
		elem := reflect.New(val.Type().Elem())
		if err := decodeValue(data, elem.Elem()); err != nil {
			return err
		}
		val.Set(elem)

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table for %s, got %T", val.Type(), data)
		}
		return decodeStruct(m, val)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only map[string]T is supported")
		}
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		out := reflect.MakeMapWithSize(val.Type(), len(m))
		for k, item := range m {
			elem := reflect.New(val.Type().Elem()).Elem()
			if err := decodeValue(item, elem); err != nil {
				return fmt.Errorf("key %s: %w", k, err)
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), elem)
		}
		val.Set(out)

	case reflect.Slice:
		arr, ok := data.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", data)
		}
		out := reflect.MakeSlice(val.Type(), len(arr), len(arr))
		for i, item := range arr {
			if err := decodeValue(item, out.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		val.Set(out)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := data.(int)
		if !ok {
			return fmt.Errorf("cannot convert %T to int", data)
		}
		if val.OverflowInt(int64(i)) {
			return fmt.Errorf("%d overflows %s", i, val.Type())
		}
		val.SetInt(int64(i))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := data.(int)
		if !ok || i < 0 || val.OverflowUint(uint64(i)) {
			return fmt.Errorf("cannot convert %v to %s", data, val.Type())
		}
		val.SetUint(uint64(i))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			val.SetFloat(f)
		case int:
			val.SetFloat(float64(f))
		default:
			return fmt.Errorf("cannot convert %T to float", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("unsupported kind %s", val.Kind())
	}
	return nil
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key, _, skip := fieldKey(field)
		if skip {
			continue
		}
		item, ok := data[key]
		if !ok {
			continue
		}
		if err := decodeValue(item, val.Field(i)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// fieldKey resolves the TOML key of a struct field
func fieldKey(f reflect.StructField) (key string, omitEmpty, skip bool) {
	tag := f.Tag.Get("toml")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, opts == "omitempty", false
}
