package settings

import (
	"reflect"
	"testing"
)

func TestSet_PreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Set("c", 1)
	s.Set("a", 2)
	s.Set("b", 3)

	want := []string{"c", "a", "b"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestSet_UpdateDoesNotReorder(t *testing.T) {
	s := New()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 99)

	want := []string{"a", "b"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := s.Get("a"); v != 99 {
		t.Errorf("Get(a) = %v, want 99", v)
	}
}

func TestMerge_OtherWinsAndAppends(t *testing.T) {
	s := New()
	s.Set("a", 1)
	s.Set("b", 2)

	other := New()
	other.Set("b", 20)
	other.Set("c", 30)

	s.Merge(other)

	want := []string{"a", "b", "c"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := s.Get("b"); v != 20 {
		t.Errorf("Get(b) = %v, want 20", v)
	}
}

func TestMerge_NilIsNoop(t *testing.T) {
	s := New()
	s.Set("a", 1)
	s.Merge(nil)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
