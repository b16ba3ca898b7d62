package envutil

import (
	"reflect"
	"testing"
)

func TestGet(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STR", "  value  ")
	if got := Get("ENVUTIL_TEST_STR", "def"); got != "value" {
		t.Fatalf("got %q", got)
	}
	if got := Get("ENVUTIL_TEST_MISSING", "def"); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "42")
	if got := GetInt("ENVUTIL_TEST_INT", 7); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "not-a-number")
	if got := GetInt("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}

func TestGetList(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_LIST", "a, b ,,c")
	if got := GetList("ENVUTIL_TEST_LIST", nil); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("got %v", got)
	}
	def := []string{"x"}
	if got := GetList("ENVUTIL_TEST_LIST_MISSING", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("got %v", got)
	}
}
