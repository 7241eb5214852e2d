package vstack

import "testing"

func TestPushPop(t *testing.T) {
	s := New[int]()

	if !s.Empty() {
		t.Fatalf("new stack should be empty")
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Empty() {
		t.Fatalf("stack should not be empty after pushes")
	}

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("expected Pop to succeed")
		}
		if got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
	}

	if !s.Empty() {
		t.Fatalf("stack should be empty after draining")
	}
}

func TestPopEmpty(t *testing.T) {
	s := New[string]()

	v, ok := s.Pop()
	if ok {
		t.Fatalf("Pop on empty stack should report ok=false")
	}
	if v != "" {
		t.Errorf("Pop on empty stack should return the zero value, got %q", v)
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	s := New[int]()
	s.Push(42)

	top, ok := s.Peek()
	if !ok || top != 42 {
		t.Fatalf("Peek() = (%d, %v), want (42, true)", top, ok)
	}

	if s.Empty() {
		t.Fatalf("Peek must not remove the item")
	}

	got, _ := s.Pop()
	if got != 42 {
		t.Errorf("Pop() after Peek() = %d, want 42", got)
	}
}
