package interpreter

import (
	"fmt"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/runtime"
)

// execConst implements the constant-pushing family: the iconst/lconst/
// fconst/dconst ladders, bipush/sipush, and the constant-pool loads ldc and
// ldc2_w. None of these read from or write to locals; they only push. ldc on
// a pool entry that isn't an Integer/Float/String is a structural error
// (spec §7, "malformed constant-pool entry kind for a given opcode").
func (d *Dispatcher) execConst(frame *runtime.Frame, cp classfile.ConstantPool, opcode uint8) error {
	switch opcode {
	case NOP:
		// does nothing, by definition

	case ACONST_NULL:
		frame.Stack.Push(runtime.Null)

	case ICONST_M1:
		frame.Stack.Push(runtime.Int(-1))
	case ICONST_0:
		frame.Stack.Push(runtime.Int(0))
	case ICONST_1:
		frame.Stack.Push(runtime.Int(1))
	case ICONST_2:
		frame.Stack.Push(runtime.Int(2))
	case ICONST_3:
		frame.Stack.Push(runtime.Int(3))
	case ICONST_4:
		frame.Stack.Push(runtime.Int(4))
	case ICONST_5:
		frame.Stack.Push(runtime.Int(5))

	case LCONST_0:
		frame.Stack.Push(runtime.Long(0))
	case LCONST_1:
		frame.Stack.Push(runtime.Long(1))

	case FCONST_0:
		frame.Stack.Push(runtime.Float(0))
	case FCONST_1:
		frame.Stack.Push(runtime.Float(1))
	case FCONST_2:
		frame.Stack.Push(runtime.Float(2))

	case DCONST_0:
		frame.Stack.Push(runtime.Double(0))
	case DCONST_1:
		frame.Stack.Push(runtime.Double(1))

	case BIPUSH:
		frame.Stack.Push(runtime.Int(int32(frame.ReadI1())))

	case SIPUSH:
		frame.Stack.Push(runtime.Int(int32(frame.ReadI2())))

	case LDC:
		index := uint16(frame.ReadU1())
		v, err := loadConstant(cp, index)
		if err != nil {
			return err
		}
		frame.Stack.Push(v)

	case LDC2_W:
		index := frame.ReadU2()
		switch cp.Tag(index) {
		case classfile.CONSTANT_Long:
			frame.Stack.Push(runtime.Long(cp.Long(index)))
		case classfile.CONSTANT_Double:
			frame.Stack.Push(runtime.Double(cp.Double(index)))
		}
	}
	return nil
}

// loadConstant resolves a single-slot constant-pool entry (ldc's target) to
// the Value it represents. Any other entry kind — e.g. a Methodref — has no
// defined ldc behavior and is a structural error (spec §7: "ldc on a
// Methodref").
func loadConstant(cp classfile.ConstantPool, index uint16) (runtime.Value, error) {
	switch cp.Tag(index) {
	case classfile.CONSTANT_Integer:
		return runtime.Int(cp.Integer(index)), nil
	case classfile.CONSTANT_Float:
		return runtime.Float(cp.Float(index)), nil
	case classfile.CONSTANT_String:
		return runtime.Reference(cp.StringVal(index)), nil
	default:
		return runtime.Value{}, fmt.Errorf("ldc: constant pool entry %d has unsupported tag %d", index, cp.Tag(index))
	}
}
