package utils

import (
	"fmt"
	"reflect"
)

// ColumnList builds the list of column names of a db model struct from its
// "db" tags, in field declaration order.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	t := reflect.TypeOf(value)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList: %T is not a struct", value))
	}

	var prefix string
	if len(prefixes) > 0 {
		prefix = prefixes[0] + "."
	}

	columns := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, prefix+tag)
	}
	return columns
}
