package toml

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// Marshal returns the TOML encoding of a struct. Fields keep declaration
// order; scalar fields are written before nested tables so every key lands
// in its own table
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, fmt.Errorf("marshal: nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal: root must be a struct, got %s", val.Kind())
	}

	var buf bytes.Buffer
	if err := encodeTable(&buf, val, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeTable(buf *bytes.Buffer, val reflect.Value, prefix string) error {
	typ := val.Type()

	type table struct {
		name string
		val  reflect.Value
	}
	var tables []table

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key, omitEmpty, skip := fieldKey(field)
		if skip {
			continue
		}
		fv := val.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		if isTable(fv) {
			tables = append(tables, table{name: key, val: fv})
			continue
		}

		s, err := encodeValue(fv)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		fmt.Fprintf(buf, "%s = %s\n", encodeKey(key), s)
	}

	for _, t := range tables {
		name := encodeKey(t.name)
		if prefix != "" {
			name = prefix + "." + name
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "[%s]\n", name)
		if err := encodeTable(buf, t.val, name); err != nil {
			return err
		}
	}
	return nil
}

func isTable(v reflect.Value) bool {
	if v.Type() == durationType || v.Type().Implements(textMarshalerType) {
		return false
	}
	return v.Kind() == reflect.Struct
}

func encodeValue(v reflect.Value) (string, error) {
	if v.Type() == durationType {
		return strconv.Quote(time.Duration(v.Int()).String()), nil
	}
	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return strconv.Quote(string(text)), nil
	}

	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		return s, nil
	case reflect.Slice, reflect.Array:
		items := make([]string, v.Len())
		for i := range items {
			s, err := encodeValue(v.Index(i))
			if err != nil {
				return "", err
			}
			items[i] = s
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	}
	return "", fmt.Errorf("unsupported kind %s", v.Kind())
}

func encodeKey(k string) string {
	if isBareKey(k) {
		return k
	}
	return strconv.Quote(k)
}
