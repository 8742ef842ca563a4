package repository

import (
	"reflect"
	"testing"
)

func TestAppendContains(t *testing.T) {
	where, args := appendContains(nil, nil, "plate", "AB")
	where, args = appendContains(where, args, "business", "")
	where, args = appendContains(where, args, "field_staff", "Ali")

	wantWhere := []string{"plate LIKE ?", "field_staff LIKE ?"}
	wantArgs := []interface{}{"%AB%", "%Ali%"}
	if !reflect.DeepEqual(where, wantWhere) {
		t.Errorf("where = %v, want %v", where, wantWhere)
	}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestAppendEquals(t *testing.T) {
	where, args := appendEquals(nil, nil, "business", "towing")
	where, args = appendEquals(where, args, "field_staff", "")

	if len(where) != 1 || where[0] != "business = ?" {
		t.Errorf("where = %v, want [business = ?]", where)
	}
	if len(args) != 1 || args[0] != "towing" {
		t.Errorf("args = %v, want [towing]", args)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":    "plain",
		"100%":     `100\%`,
		"a_b":      `a\_b`,
		`back\sl`:  `back\\sl`,
		"%_mixed%": `\%\_mixed\%`,
	}
	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWhereSQL(t *testing.T) {
	if got := whereSQL(nil); got != "" {
		t.Errorf("whereSQL(nil) = %q, want empty", got)
	}
	got := whereSQL([]string{"a = ?", "b LIKE ?"})
	if got != " WHERE a = ? AND b LIKE ?" {
		t.Errorf("whereSQL = %q", got)
	}
}

func TestAppendSetSkipsNil(t *testing.T) {
	value := int64(7)
	var missing *int64

	set, args := appendSet(nil, nil, "income", &value)
	set, args = appendSet(set, args, "remark", missing)
	set, args = appendSet(set, args, "plate", nil)

	if len(set) != 1 || set[0] != "income = ?" {
		t.Errorf("set = %v, want [income = ?]", set)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want one value", args)
	}
	if joinSet(set) != "income = ?" {
		t.Errorf("joinSet = %q", joinSet(set))
	}
}
