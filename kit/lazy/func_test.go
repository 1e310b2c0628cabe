package lazy

import (
	"errors"
	"testing"
)

func TestFunc(t *testing.T) {
	calls := 0
	f := Func(func() []string {
		calls++
		return []string{"a"}
	})

	a := f()
	b := f()
	if &a[0] != &b[0] {
		t.Error("Expected both calls to share the same backing array")
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestFuncErr(t *testing.T) {
	calls := 0
	f := FuncErr(func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("first")
		}
		return calls, nil
	})

	if _, err := f(); err == nil {
		t.Error("Expected error on first call")
	}
	for range 3 {
		v, err := f()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if v != 2 {
			t.Errorf("Expected 2, got %d", v)
		}
	}
}

func TestSlotZeroValue(t *testing.T) {
	var s Slot[map[string]int]

	if s.Filled() {
		t.Error("Expected zero Slot to be empty")
	}
	if !s.Fill(func() map[string]int { return nil }) {
		t.Error("Expected first Fill to return true")
	}
	if s.Fill(func() map[string]int { return map[string]int{"x": 1} }) {
		t.Error("Expected second Fill to return false")
	}
	v, ok := s.Load()
	if !ok || v != nil {
		t.Errorf("Expected present nil map, got %v (present=%v)", v, ok)
	}
	if filled, err := s.FillErr(func() (map[string]int, error) { return nil, errors.New("x") }); filled || err != nil {
		t.Errorf("Expected FillErr on filled slot to be a no-op, got (%v, %v)", filled, err)
	}
}
