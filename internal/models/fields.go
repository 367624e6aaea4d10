package models

import (
	"reflect"
	"strings"
)

// Columns returns the set of JSON column names declared on a model struct,
// minus the excluded ones. Update handlers use this as an allow-list so that
// unknown keys in a request body are stripped instead of being written to the
// store verbatim.
func Columns(model interface{}, exclude ...string) map[string]bool {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	cols := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" || skip[name] {
			continue
		}
		cols[name] = true
	}
	return cols
}

// FilterColumns copies body into a new map keeping only allowed keys.
func FilterColumns(body map[string]interface{}, allowed map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(body))
	for k, v := range body {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}
