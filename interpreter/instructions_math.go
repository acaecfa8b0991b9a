package interpreter

import (
	"fmt"
	"math"

	"github.com/adehart/jvmlite/runtime"
)

// execMath implements stack shuffling (pop/pop2/dup/swap), the four-type
// arithmetic ladders, integer/long bitwise and shift operators, iinc, every
// numeric conversion, and lcmp. Division and remainder by zero are reported
// as errors rather than panics, since they are a property of the input
// values rather than a malformed stack.
func (d *Dispatcher) execMath(frame *runtime.Frame, opcode uint8) error {
	stack := frame.Stack
	locals := frame.Locals

	switch opcode {
	case POP:
		stack.Pop()
	case POP2:
		stack.Pop()
		stack.Pop()
	case DUP:
		v := stack.Peek()
		stack.Push(v)
	case SWAP:
		a := stack.Pop()
		b := stack.Pop()
		stack.Push(a)
		stack.Push(b)

	case IADD:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		stack.Push(runtime.Int(v1 + v2))
	case ISUB:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		stack.Push(runtime.Int(v1 - v2))
	case IMUL:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		stack.Push(runtime.Int(v1 * v2))
	case IDIV:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v2 == 0 {
			return fmt.Errorf("ArithmeticException: / by zero")
		}
		stack.Push(runtime.Int(v1 / v2))
	case IREM:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v2 == 0 {
			return fmt.Errorf("ArithmeticException: / by zero")
		}
		stack.Push(runtime.Int(v1 % v2))
	case INEG:
		stack.Push(runtime.Int(-stack.Pop().Int()))

	case LADD:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		stack.Push(runtime.Long(v1 + v2))
	case LSUB:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		stack.Push(runtime.Long(v1 - v2))
	case LMUL:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		stack.Push(runtime.Long(v1 * v2))
	case LDIV:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		if v2 == 0 {
			return fmt.Errorf("ArithmeticException: / by zero")
		}
		stack.Push(runtime.Long(v1 / v2))
	case LREM:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		if v2 == 0 {
			return fmt.Errorf("ArithmeticException: / by zero")
		}
		stack.Push(runtime.Long(v1 % v2))
	case LNEG:
		stack.Push(runtime.Long(-stack.Pop().Long()))

	case FADD:
		v2, v1 := stack.Pop().Float32(), stack.Pop().Float32()
		stack.Push(runtime.Float(v1 + v2))
	case FSUB:
		v2, v1 := stack.Pop().Float32(), stack.Pop().Float32()
		stack.Push(runtime.Float(v1 - v2))
	case FMUL:
		v2, v1 := stack.Pop().Float32(), stack.Pop().Float32()
		stack.Push(runtime.Float(v1 * v2))
	case FDIV:
		v2, v1 := stack.Pop().Float32(), stack.Pop().Float32()
		stack.Push(runtime.Float(v1 / v2))
	case FREM:
		v2, v1 := stack.Pop().Float32(), stack.Pop().Float32()
		stack.Push(runtime.Float(float32(math.Mod(float64(v1), float64(v2)))))
	case FNEG:
		stack.Push(runtime.Float(-stack.Pop().Float32()))

	case DADD:
		v2, v1 := stack.Pop().Float64(), stack.Pop().Float64()
		stack.Push(runtime.Double(v1 + v2))
	case DSUB:
		v2, v1 := stack.Pop().Float64(), stack.Pop().Float64()
		stack.Push(runtime.Double(v1 - v2))
	case DMUL:
		v2, v1 := stack.Pop().Float64(), stack.Pop().Float64()
		stack.Push(runtime.Double(v1 * v2))
	case DDIV:
		v2, v1 := stack.Pop().Float64(), stack.Pop().Float64()
		stack.Push(runtime.Double(v1 / v2))
	case DREM:
		v2, v1 := stack.Pop().Float64(), stack.Pop().Float64()
		stack.Push(runtime.Double(math.Mod(v1, v2)))
	case DNEG:
		stack.Push(runtime.Double(-stack.Pop().Float64()))

	case IAND:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		stack.Push(runtime.Int(v1 & v2))
	case IOR:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		stack.Push(runtime.Int(v1 | v2))
	case IXOR:
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		stack.Push(runtime.Int(v1 ^ v2))
	case LAND:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		stack.Push(runtime.Long(v1 & v2))
	case LOR:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		stack.Push(runtime.Long(v1 | v2))
	case LXOR:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		stack.Push(runtime.Long(v1 ^ v2))

	case ISHL:
		v2 := stack.Pop().Int() & 0x1f
		v1 := stack.Pop().Int()
		stack.Push(runtime.Int(v1 << uint32(v2)))
	case ISHR:
		v2 := stack.Pop().Int() & 0x1f
		v1 := stack.Pop().Int()
		stack.Push(runtime.Int(v1 >> uint32(v2)))
	case IUSHR:
		v2 := stack.Pop().Int() & 0x1f
		v1 := stack.Pop().Int()
		stack.Push(runtime.Int(int32(uint32(v1) >> uint32(v2))))
	case LSHL:
		v2 := stack.Pop().Int() & 0x3f
		v1 := stack.Pop().Long()
		stack.Push(runtime.Long(v1 << uint64(v2)))
	case LSHR:
		v2 := stack.Pop().Int() & 0x3f
		v1 := stack.Pop().Long()
		stack.Push(runtime.Long(v1 >> uint64(v2)))
	case LUSHR:
		v2 := stack.Pop().Int() & 0x3f
		v1 := stack.Pop().Long()
		stack.Push(runtime.Long(int64(uint64(v1) >> uint64(v2))))

	case IINC:
		index := int(frame.ReadU1())
		delta := int32(frame.ReadI1())
		v, _ := locals.Get(index)
		locals.Set(index, runtime.Int(v.Int()+delta))

	case I2L:
		stack.Push(runtime.Long(int64(stack.Pop().Int())))
	case I2F:
		stack.Push(runtime.Float(float32(stack.Pop().Int())))
	case I2D:
		stack.Push(runtime.Double(float64(stack.Pop().Int())))
	case L2I:
		stack.Push(runtime.Int(int32(stack.Pop().Long())))
	case L2F:
		stack.Push(runtime.Float(float32(stack.Pop().Long())))
	case L2D:
		stack.Push(runtime.Double(float64(stack.Pop().Long())))
	case F2I:
		stack.Push(runtime.Int(satF2I(stack.Pop().Float32())))
	case F2L:
		stack.Push(runtime.Long(satF2L(stack.Pop().Float32())))
	case F2D:
		stack.Push(runtime.Double(float64(stack.Pop().Float32())))
	case D2I:
		stack.Push(runtime.Int(satD2I(stack.Pop().Float64())))
	case D2L:
		stack.Push(runtime.Long(satD2L(stack.Pop().Float64())))
	case D2F:
		stack.Push(runtime.Float(float32(stack.Pop().Float64())))
	case I2B:
		stack.Push(runtime.Int(int32(int8(stack.Pop().Int()))))
	case I2C:
		stack.Push(runtime.Int(int32(uint16(stack.Pop().Int()))))
	case I2S:
		stack.Push(runtime.Int(int32(int16(stack.Pop().Int()))))

	case LCMP:
		v2, v1 := stack.Pop().Long(), stack.Pop().Long()
		switch {
		case v1 > v2:
			stack.Push(runtime.Int(1))
		case v1 < v2:
			stack.Push(runtime.Int(-1))
		default:
			stack.Push(runtime.Int(0))
		}
	}
	return nil
}

// satF2I saturates a float32-to-int32 conversion per the narrowing rules:
// NaN becomes 0, out-of-range or infinite values clamp to the target's
// extreme, everything else truncates toward zero.
func satF2I(f float32) int32 {
	if math.IsNaN(float64(f)) {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	if f <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(f)
}

func satF2L(f float32) int64 {
	if math.IsNaN(float64(f)) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}

func satD2I(d float64) int32 {
	if math.IsNaN(d) {
		return 0
	}
	if d >= math.MaxInt32 {
		return math.MaxInt32
	}
	if d <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(d)
}

func satD2L(d float64) int64 {
	if math.IsNaN(d) {
		return 0
	}
	if d >= math.MaxInt64 {
		return math.MaxInt64
	}
	if d <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(d)
}
