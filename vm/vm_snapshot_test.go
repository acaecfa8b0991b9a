package vm_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/interpreter"
	"github.com/adehart/jvmlite/vm"
)

// buildSumLoop hand-assembles a class whose main sums 1..5 with a
// for-loop (if_icmpgt/goto/iinc) and whose <clinit> writes a static field
// that main never reads — exercising the documented main-then-clinit
// ordering and putstatic/getstatic in the same run.
func buildSumLoop() *classfile.ClassFile {
	cp := classfile.ConstantPool{
		nil,
		&classfile.ConstantUtf8Info{Value: "main"},                            // 1
		&classfile.ConstantUtf8Info{Value: "([Ljava/lang/String;)V"},          // 2
		&classfile.ConstantUtf8Info{Value: "java/io/PrintStream"},             // 3
		&classfile.ConstantClassInfo{NameIndex: 3},                            // 4
		&classfile.ConstantUtf8Info{Value: "out"},                             // 5
		&classfile.ConstantUtf8Info{Value: "Ljava/io/PrintStream;"},           // 6
		&classfile.ConstantNameAndTypeInfo{NameIndex: 5, DescriptorIndex: 6},  // 7
		&classfile.ConstantUtf8Info{Value: "java/lang/System"},                // 8
		&classfile.ConstantClassInfo{NameIndex: 8},                           // 9
		&classfile.ConstantFieldrefInfo{ClassIndex: 9, NameAndTypeIndex: 7},  // 10
		&classfile.ConstantUtf8Info{Value: "println"},                        // 11
		&classfile.ConstantUtf8Info{Value: "(I)V"},                           // 12
		&classfile.ConstantNameAndTypeInfo{NameIndex: 11, DescriptorIndex: 12}, // 13
		&classfile.ConstantMethodrefInfo{ClassIndex: 4, NameAndTypeIndex: 13}, // 14
		&classfile.ConstantUtf8Info{Value: "SumLoop"},                        // 15
		&classfile.ConstantClassInfo{NameIndex: 15},                          // 16
		&classfile.ConstantUtf8Info{Value: "counter"},                        // 17
		&classfile.ConstantUtf8Info{Value: "I"},                              // 18
		&classfile.ConstantNameAndTypeInfo{NameIndex: 17, DescriptorIndex: 18}, // 19
		&classfile.ConstantFieldrefInfo{ClassIndex: 16, NameAndTypeIndex: 19}, // 20
		&classfile.ConstantUtf8Info{Value: "<clinit>"},                       // 21
		&classfile.ConstantUtf8Info{Value: "()V"},                            // 22
		&classfile.ConstantUtf8Info{Value: "Code"},                           // 23
	}

	mainCode := []byte{
		byte(interpreter.ICONST_0),
		byte(interpreter.ISTORE_1),
		byte(interpreter.ICONST_1),
		byte(interpreter.ISTORE_2),
		byte(interpreter.ILOAD_2),
		byte(interpreter.BIPUSH), 5,
		byte(interpreter.IF_ICMPGT), 0, 13,
		byte(interpreter.ILOAD_1),
		byte(interpreter.ILOAD_2),
		byte(interpreter.IADD),
		byte(interpreter.ISTORE_1),
		byte(interpreter.IINC), 2, 1,
		byte(interpreter.GOTO), 0xFF, 0xF3,
		byte(interpreter.GETSTATIC), 0, 10,
		byte(interpreter.ILOAD_1),
		byte(interpreter.INVOKEVIRTUAL), 0, 14,
		byte(interpreter.RETURN),
	}
	clinitCode := []byte{
		byte(interpreter.BIPUSH), 7,
		byte(interpreter.PUTSTATIC), 0, 20,
		byte(interpreter.RETURN),
	}

	return &classfile.ClassFile{
		Magic:        0xCAFEBABE,
		ConstantPool: cp,
		ThisClass:    16,
		Methods: []*classfile.MethodInfo{
			newMethod(1, 2, mainCode, 3, 3, 23),
			newMethod(21, 22, clinitCode, 1, 0, 23),
		},
	}
}

func TestRunSumLoopSnapshot(t *testing.T) {
	cf := buildSumLoop()
	var out bytes.Buffer

	if err := vm.Run(cf, nil, vm.Options{Out: &out}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	snaps.MatchSnapshot(t, out.String())
}
