// Package vm wires classfile, runtime, and interpreter together into the
// single entry point a front end calls: load a class, drive its main
// method to completion, then run its static initializer.
package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/interpreter"
	"github.com/adehart/jvmlite/runtime"
)

// DefaultMaxDepth bounds call-stack growth the same way runtime.CallStack
// does on its own when no override is given.
const DefaultMaxDepth = runtime.DefaultMaxDepth

// Options configures a single run. The zero value is usable: output goes to
// stdout, tracing is off, and the call stack gets runtime's default depth.
type Options struct {
	Out         io.Writer
	Verbose     bool
	Debug       bool
	TraceMethod string
	MaxDepth    int
}

// Run executes an already parsed class: main(String[]) first, driven to
// completion, then <clinit> if the class declares one. This ordering is
// deliberate rather than spec-faithful to the JVM proper (which runs
// <clinit> before any other access to the class) — see DESIGN.md for why
// main-first was chosen for this interpreter.
func Run(cf *classfile.ClassFile, programArgs []string, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	d := interpreter.New()
	d.Out = opts.Out
	d.Verbose = opts.Verbose
	d.Debug = opts.Debug
	if opts.TraceMethod != "" {
		d.SetTrace(opts.TraceMethod)
	}

	rda := runtime.NewRuntimeDataArea()

	if err := runMethod(d, cf, rda, opts.MaxDepth, "main", "([Ljava/lang/String;)V", programArgs); err != nil {
		return fmt.Errorf("executing main: %w", err)
	}

	if cf.HasClinit() {
		if err := runMethod(d, cf, rda, opts.MaxDepth, "<clinit>", "()V", nil); err != nil {
			return fmt.Errorf("executing <clinit>: %w", err)
		}
	}

	return nil
}

// runMethod builds the entry frame for a single static method, seeds its
// locals (argv goes into slot 0 of main; every other caller here passes no
// arguments), and drives it with a fresh call stack.
func runMethod(d *interpreter.Dispatcher, cf *classfile.ClassFile, rda *runtime.RuntimeDataArea, maxDepth int, name, descriptor string, programArgs []string) error {
	method := cf.GetMethod(name, descriptor)
	if method == nil {
		return fmt.Errorf("no %s%s found in %s", name, descriptor, cf.ClassName())
	}
	code := method.GetCodeAttribute(cf.ConstantPool)
	if code == nil {
		return fmt.Errorf("%s%s has no Code attribute", name, descriptor)
	}

	frame := runtime.NewFrame(name, int(code.MaxStack), int(code.MaxLocals), code.Code)
	if programArgs != nil {
		argv := make([]runtime.Value, len(programArgs))
		for i, a := range programArgs {
			argv[i] = runtime.Reference(a)
		}
		frame.Locals.Set(0, runtime.Array(argv))
	}

	cs := runtime.NewCallStack(maxDepth)
	if err := cs.Push(frame); err != nil {
		return err
	}

	_, _, err := cs.Run(d, cf, rda)
	return err
}
