package repository

import (
	"reflect"
	"strings"
)

func appendContains(where []string, args []interface{}, column, value string) ([]string, []interface{}) {
	if value == "" {
		return where, args
	}
	where = append(where, column+" LIKE ?")
	args = append(args, "%"+escapeLike(value)+"%")
	return where, args
}

func appendEquals(where []string, args []interface{}, column, value string) ([]string, []interface{}) {
	if value == "" {
		return where, args
	}
	where = append(where, column+" = ?")
	args = append(args, value)
	return where, args
}

func appendSet(set []string, args []interface{}, column string, value interface{}) ([]string, []interface{}) {
	if isNil(value) {
		return set, args
	}
	set = append(set, column+" = ?")
	args = append(args, value)
	return set, args
}

func whereSQL(where []string) string {
	if len(where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(where, " AND ")
}

func joinSet(set []string) string {
	return strings.Join(set, ", ")
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(value)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
