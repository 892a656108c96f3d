// Package cli implements the tweenkit command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	exportDir string
	verbose   bool
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags  rootFlags
	config types.Config
	logger *slog.Logger
}

// NewRootCmd creates the top-level "tweenkit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "tweenkit",
		Short: "Author GSAP animations and export them as code or JSON",
		Long: "tweenkit builds hover, carousel and scroll-triggered animation\n" +
			"configurations and renders them as GSAP script or a JSON export.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.exportDir, "export-dir", "", "directory export files are written to (default: current directory)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newNewCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newEaseCmd(a))
	root.AddCommand(newSessionCmd(a))

	return root
}

// load reads the configuration and sets up logging before any subcommand.
func (a *app) load(cmd *cobra.Command) error {
	cfg, level, err := loadConfig(a.flags)
	if err != nil {
		return sysError(err)
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config: %w", err))
	}
	a.config = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), level, a.flags.verbose)
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	if err == nil {
		return exitSuccess
	}
	name := root.Name()
	if cmd != nil {
		name = cmd.CommandPath()
	}
	fmt.Fprintf(stderr, "%s: %v\n", name, err)
	return exitCode(err)
}

// exitErr carries the exit code for a failed command.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func userError(err error) error { return &exitErr{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitErr{code: exitSysError, err: err} }

// exitCode maps err to an exit code. Errors without a code are user errors.
func exitCode(err error) int {
	var e *exitErr
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}
