package interpreter

import (
	"bytes"
	"testing"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/runtime"
)

func TestOpcodeConstants(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		want   uint8
	}{
		{"NOP", NOP, 0x00},
		{"ICONST_0", ICONST_0, 0x03},
		{"ICONST_5", ICONST_5, 0x08},
		{"FCONST_0", FCONST_0, 0x0B},
		{"DCONST_0", DCONST_0, 0x0E},
		{"BIPUSH", BIPUSH, 0x10},
		{"ILOAD", ILOAD, 0x15},
		{"ISTORE", ISTORE, 0x36},
		{"IADD", IADD, 0x60},
		{"FADD", FADD, 0x62},
		{"DADD", DADD, 0x63},
		{"LCMP", LCMP, 0x94},
		{"GOTO", GOTO, 0xA7},
		{"IRETURN", IRETURN, 0xAC},
		{"RETURN", RETURN, 0xB1},
		{"GETSTATIC", GETSTATIC, 0xB2},
		{"INVOKEVIRTUAL", INVOKEVIRTUAL, 0xB6},
		{"INVOKESTATIC", INVOKESTATIC, 0xB8},
		{"ARRAYLENGTH", ARRAYLENGTH, 0xBE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opcode != tt.want {
				t.Errorf("%s = 0x%02X, want 0x%02X", tt.name, tt.opcode, tt.want)
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		opcode uint8
		want   category
	}{
		{ICONST_1, catConst},
		{ILOAD, catLoad},
		{ISTORE, catStore},
		{IADD, catMath},
		{GOTO, catControl},
		{AALOAD, catArray},
		{GETSTATIC, catStatic},
		{INVOKESTATIC, catInvoke},
	}
	for _, tt := range tests {
		if got := categoryOf(tt.opcode); got != tt.want {
			t.Errorf("categoryOf(0x%02X) = %v, want %v", tt.opcode, got, tt.want)
		}
	}
}

func TestSatF2I(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{"nan", float32(nanF()), 0},
		{"in range", 42.7, 42},
		{"above max", 1e20, 2147483647},
		{"below min", -1e20, -2147483648},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := satF2I(tt.in); got != tt.want {
				t.Errorf("satF2I(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func nanF() float32 {
	var zero float32
	return zero / zero
}

// runBytecode drives a single frame (no invokestatic fan-out) through a
// Dispatcher and returns what it printed.
func runBytecode(t *testing.T, code []byte, maxStack, maxLocals int) string {
	t.Helper()
	var out bytes.Buffer
	d := &Dispatcher{Out: &out}

	cs := runtime.NewCallStack(64)
	rda := runtime.NewRuntimeDataArea()
	frame := runtime.NewFrame("test", maxStack, maxLocals, code)
	if err := cs.Push(frame); err != nil {
		t.Fatal(err)
	}

	class := &classfile.ClassFile{}
	if _, _, err := cs.Run(d, class, rda); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestIaddAndReturn(t *testing.T) {
	code := []byte{
		byte(BIPUSH), 2,
		byte(BIPUSH), 3,
		byte(IADD),
		byte(ISTORE_0),
		byte(RETURN),
	}
	runBytecode(t, code, 4, 1)
}
