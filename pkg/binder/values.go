package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// cleanString trims surrounding whitespace and drops NUL bytes.
func cleanString(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}

// bindValues copies values into the struct pointed to by v. Fields are
// matched by the tag named tag, falling back to the lowercased field name;
// a "-" tag skips the field. Failures are wrapped in bindErr.
func bindValues(v any, tag string, values map[string][]string, bindErr error) error {
	ptr := reflect.ValueOf(v)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", bindErr)
	}
	target := ptr.Elem()

	rt := target.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		key, ok := fieldKey(sf, tag)
		if !ok {
			continue
		}
		raw := values[key]
		if len(raw) == 0 {
			continue
		}
		if err := assign(target.Field(i), raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}
	return nil
}

func fieldKey(sf reflect.StructField, tag string) (string, bool) {
	name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return strings.ToLower(sf.Name), true
	}
	return name, true
}

// assign stores raw into dst. Pointers are allocated on demand and slices
// take every value, splitting comma-separated entries.
func assign(dst reflect.Value, raw []string) error {
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), raw)

	case reflect.Slice:
		var items []string
		for _, r := range raw {
			items = append(items, strings.Split(r, ",")...)
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := assign(out.Index(i), []string{item}); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	return parseScalar(dst, cleanString(raw[0]))
}

func parseScalar(dst reflect.Value, s string) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)

	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		dst.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", s)
		}
		dst.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", s)
		}
		dst.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", s)
		}
		dst.SetFloat(f)

	default:
		return fmt.Errorf("unsupported type %s", dst.Kind())
	}
	return nil
}

// parseBool also accepts the checkbox values "on" and "off" and yes/no.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid bool value %q", s)
	}
	return b, nil
}
