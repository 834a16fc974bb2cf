package loom

import "testing"

func TestScopeDefineAndLookup(t *testing.T) {
	s := newScope()
	s.push()
	s.define("x", Text("hi"))
	v, ok := s.lookup("x")
	if !ok || v != Text("hi") {
		t.Fatalf("lookup(\"x\") = %v, %v", v, ok)
	}
}

func TestScopePopRemovesFrame(t *testing.T) {
	s := newScope()
	s.push()
	s.define("x", Text("outer"))
	s.push()
	s.define("y", Text("inner"))
	s.pop()
	if _, ok := s.lookup("y"); ok {
		t.Error("expected \"y\" to be gone after pop")
	}
	if v, ok := s.lookup("x"); !ok || v != Text("outer") {
		t.Errorf("outer binding lost: %v, %v", v, ok)
	}
}

func TestScopeInnerShadowsOuter(t *testing.T) {
	s := newScope()
	s.push()
	s.define("x", Text("outer"))
	s.push()
	s.define("x", Text("inner"))
	v, _ := s.lookup("x")
	if v != Text("inner") {
		t.Errorf("lookup(\"x\") = %v, want inner", v)
	}
}
