package value

import "testing"

func callMethod(t *testing.T, recv Value, name string, args ...Value) Value {
	t.Helper()
	m, err := GetAttr(recv, name)
	if err != nil {
		t.Fatalf("GetAttr(%s): %v", name, err)
	}
	hf, ok := m.(*HostFn)
	if !ok {
		t.Fatalf("GetAttr(%s) = %T, want *HostFn", name, m)
	}
	result, err := hf.Fn(args, nil)
	if err != nil {
		t.Fatalf("%s(): %v", name, err)
	}
	return result
}

func TestStrMethods(t *testing.T) {
	s := NewStr("Hello World")
	if got := callMethod(t, s, "upper"); got.String() != "HELLO WORLD" {
		t.Fatalf("upper() = %q", got)
	}
	if got := callMethod(t, s, "lower"); got.String() != "hello world" {
		t.Fatalf("lower() = %q", got)
	}
	if got := callMethod(t, NewStr("  x  "), "strip"); got.String() != "x" {
		t.Fatalf("strip() = %q", got)
	}
	if got := callMethod(t, s, "split"); got.String() != "['Hello', 'World']" {
		t.Fatalf("split() = %q", got)
	}
	if got := callMethod(t, NewStr(","), "join", NewList([]Value{NewStr("a"), NewStr("b")})); got.String() != "a,b" {
		t.Fatalf("join() = %q", got)
	}
	if got := callMethod(t, s, "startswith", NewStr("Hello")); !Truthy(got) {
		t.Fatal("expected startswith to be true")
	}
	if got := callMethod(t, s, "replace", NewStr("World"), NewStr("Go")); got.String() != "Hello Go" {
		t.Fatalf("replace() = %q", got)
	}
}

func TestGetAttrRejectsUnknownAttribute(t *testing.T) {
	if _, err := GetAttr(NewStr("x"), "bogus"); err == nil {
		t.Fatal("expected an error for an unknown attribute")
	}
}

func TestListMethods(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2)})
	callMethod(t, l, "append", NewInt(3))
	if l.String() != "[1, 2, 3]" {
		t.Fatalf("after append: %q", l.String())
	}
	if got := callMethod(t, l, "pop"); got.String() != "3" {
		t.Fatalf("pop() = %q", got)
	}
	if got := callMethod(t, l, "index", NewInt(2)); got.String() != "1" {
		t.Fatalf("index() = %q", got)
	}
	if got := callMethod(t, l, "count", NewInt(1)); got.String() != "1" {
		t.Fatalf("count() = %q", got)
	}
}

func TestDictMethods(t *testing.T) {
	d := NewDict()
	_ = d.Set(NewStr("a"), NewInt(1))
	if got := callMethod(t, d, "keys"); got.String() != "['a']" {
		t.Fatalf("keys() = %q", got)
	}
	if got := callMethod(t, d, "get", NewStr("a")); got.String() != "1" {
		t.Fatalf("get() = %q", got)
	}
	if got := callMethod(t, d, "get", NewStr("missing"), NewInt(42)); got.String() != "42" {
		t.Fatalf("get() default = %q", got)
	}
}
