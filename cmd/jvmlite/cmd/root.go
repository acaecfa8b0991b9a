package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "jvmlite",
	Short:   "A minimal JVM bytecode interpreter",
	Long:    "jvmlite parses a single Java class file and interprets its bytecode directly, without a JIT, a garbage collector, or a classpath.",
	Version: "0.1.0",
}

func init() {
	rootCmd.SetVersionTemplate("jvmlite {{.Version}}\n")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print each instruction as it executes")
}

// Execute runs the root command; callers translate a non-nil error into a
// process exit code.
func Execute() error {
	return rootCmd.Execute()
}
