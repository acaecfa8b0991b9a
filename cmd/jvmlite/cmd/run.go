package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/vm"
)

var (
	debugFlag    bool
	traceFlag    string
	maxDepthFlag int
)

var runCmd = &cobra.Command{
	Use:   "run [classfile] [args...]",
	Short: "Load a class file and run its main method",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClass,
}

func init() {
	runCmd.Flags().BoolVar(&debugFlag, "debug", false, "print frame state (PC, opcode, operand stack) before each instruction")
	runCmd.Flags().StringVar(&traceFlag, "trace", "", "trace calls to and returns from a method")
	runCmd.Flags().IntVar(&maxDepthFlag, "max-depth", vm.DefaultMaxDepth, "maximum call stack depth")
	rootCmd.AddCommand(runCmd)
}

func runClass(c *cobra.Command, args []string) error {
	verbose, err := c.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	cf, err := classfile.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("loading class file: %w", err)
	}

	opts := vm.Options{
		Out:         os.Stdout,
		Verbose:     verbose,
		Debug:       debugFlag,
		TraceMethod: traceFlag,
		MaxDepth:    maxDepthFlag,
	}

	if err := vm.Run(cf, args[1:], opts); err != nil {
		return fmt.Errorf("running %s: %w", cf.ClassName(), err)
	}
	return nil
}
