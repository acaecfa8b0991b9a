package runtime

import "testing"

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{"int", Int(42), KindInt},
		{"long", Long(1 << 40), KindLong},
		{"float", Float(1.5), KindFloat},
		{"double", Double(2.5), KindDouble},
		{"reference", Reference("x"), KindReference},
		{"array", Array(nil), KindArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueIsWide(t *testing.T) {
	if !Long(1).IsWide() {
		t.Error("Long should be wide")
	}
	if !Double(1).IsWide() {
		t.Error("Double should be wide")
	}
	if Int(1).IsWide() {
		t.Error("Int should not be wide")
	}
	if Float(1).IsWide() {
		t.Error("Float should not be wide")
	}
}

func TestValueIsNull(t *testing.T) {
	if !Null.IsNull() {
		t.Error("Null should be null")
	}
	if Reference("x").IsNull() {
		t.Error("non-empty reference should not be null")
	}
}

func TestOperandStackPushPop(t *testing.T) {
	s := NewOperandStack(4)
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if v := s.Pop().Int(); v != 3 {
		t.Errorf("Pop() = %d, want 3", v)
	}
	if v := s.Peek().Int(); v != 2 {
		t.Errorf("Peek() = %d, want 2", v)
	}
	if s.Len() != 2 {
		t.Errorf("Len() after Peek = %d, want 2", s.Len())
	}
}

func TestOperandStackUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty Pop")
		}
	}()
	NewOperandStack(0).Pop()
}

func TestLocalVariablesWideSlots(t *testing.T) {
	locals := NewLocalVariables(4)
	locals.Set(0, Long(123456789))

	v, ok := locals.Get(0)
	if !ok || v.Long() != 123456789 {
		t.Errorf("Get(0) = %v, %v; want 123456789, true", v, ok)
	}
	v2, ok2 := locals.Get(1)
	if !ok2 || v2.Long() != 123456789 {
		t.Errorf("Get(1) (shadow slot) = %v, %v; want 123456789, true", v2, ok2)
	}
}

func TestLocalVariablesUnsetIsAbsent(t *testing.T) {
	locals := NewLocalVariables(2)
	if _, ok := locals.Get(0); ok {
		t.Error("unset slot should report absent")
	}
}

func TestRuntimeDataAreaRoundTrip(t *testing.T) {
	rda := NewRuntimeDataArea()
	key := FieldKey("Counter", "value")

	if _, ok := rda.Get(key); ok {
		t.Error("unwritten field should not be present")
	}

	rda.Put(key, Int(7))
	v, ok := rda.Get(key)
	if !ok || v.Int() != 7 {
		t.Errorf("Get(%q) = %v, %v; want 7, true", key, v, ok)
	}
}

func TestCallStackPushPopDepth(t *testing.T) {
	cs := NewCallStack(4)
	if !cs.Empty() {
		t.Error("new call stack should be empty")
	}

	f1 := NewFrame("a", 4, 4, nil)
	f2 := NewFrame("b", 4, 4, nil)
	if err := cs.Push(f1); err != nil {
		t.Fatal(err)
	}
	if err := cs.Push(f2); err != nil {
		t.Fatal(err)
	}
	if cs.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", cs.Depth())
	}
	if cs.Top() != f2 {
		t.Error("Top() should be the most recently pushed frame")
	}
	if cs.Pop() != f2 {
		t.Error("Pop() should return the most recently pushed frame")
	}
	if cs.Depth() != 1 {
		t.Errorf("Depth() after Pop = %d, want 1", cs.Depth())
	}
}

func TestCallStackMaxDepth(t *testing.T) {
	cs := NewCallStack(1)
	if err := cs.Push(NewFrame("a", 0, 0, nil)); err != nil {
		t.Fatal(err)
	}
	if err := cs.Push(NewFrame("b", 0, 0, nil)); err == nil {
		t.Error("expected an error once max depth is exceeded")
	}
}

func TestFrameReadImmediates(t *testing.T) {
	code := []byte{0x01, 0x02, 0x03, 0xFF, 0xFE, 0x00, 0x00, 0x00, 0x10}
	f := NewFrame("m", 0, 0, code)

	if v := f.ReadU1(); v != 0x01 {
		t.Errorf("ReadU1() = %#x, want 0x01", v)
	}
	if v := f.ReadU2(); v != 0x0203 {
		t.Errorf("ReadU2() = %#x, want 0x0203", v)
	}
	if v := f.ReadI2(); v != -2 {
		t.Errorf("ReadI2() = %d, want -2", v)
	}
	if v := f.ReadI4(); v != 0x10 {
		t.Errorf("ReadI4() = %d, want 16", v)
	}
}
