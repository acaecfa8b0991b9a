package interpreter

import "github.com/adehart/jvmlite/runtime"

// execStore implements istore/lstore/fstore/dstore/astore and their _0.._3
// fixed-index variants: pop, write into a local-variable slot.
func (d *Dispatcher) execStore(frame *runtime.Frame, opcode uint8) {
	var index int
	switch opcode {
	case ISTORE, LSTORE, FSTORE, DSTORE, ASTORE:
		index = int(frame.ReadU1())
	case ISTORE_0, LSTORE_0, FSTORE_0, DSTORE_0, ASTORE_0:
		index = 0
	case ISTORE_1, LSTORE_1, FSTORE_1, DSTORE_1, ASTORE_1:
		index = 1
	case ISTORE_2, LSTORE_2, FSTORE_2, DSTORE_2, ASTORE_2:
		index = 2
	case ISTORE_3, LSTORE_3, FSTORE_3, DSTORE_3, ASTORE_3:
		index = 3
	}

	frame.Locals.Set(index, frame.Stack.Pop())
}
