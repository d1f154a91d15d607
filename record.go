package strtable

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

const tagName = "table"

// FromMap builds a record from m with fields sorted by name, since Go maps
// carry no order of their own.
func FromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rec := make(Record, len(keys))
	for i, k := range keys {
		rec[i] = Field{Name: k, Value: m[k]}
	}
	return rec
}

// FromStruct builds a record from the exported fields of a struct, in
// declaration order. A `table:"name"` tag renames a field and `table:"-"`
// skips it. Pointers are followed.
func FromStruct(v any) (Record, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrNotStruct, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, v)
	}
	rt := rv.Type()
	rec := make(Record, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup(tagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		rec = append(rec, Field{Name: name, Value: rv.Field(i).Interface()})
	}
	return rec, nil
}

// FromStructs builds one record per item with [FromStruct].
func FromStructs[T any](items ...T) ([]Record, error) {
	records := make([]Record, len(items))
	for i, item := range items {
		rec, err := FromStruct(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records[i] = rec
	}
	return records, nil
}
