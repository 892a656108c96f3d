package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tweenkit/internal/sqlite"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "export [file...]",
		Short: "Write animations to the JSON export document",
		Long: "Read animations from files or stdin and write the versioned export\n" +
			"document to the export directory (animations.json by default).",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readAnimations(cmd, args, format)
			if err != nil {
				return err
			}

			b := sqlite.NewBackend(sqlite.WithLogger(a.logger))
			if err := b.Attach(a.config); err != nil {
				return sysError(fmt.Errorf("attach session: %w", err))
			}
			defer b.Detach()

			if err := b.Replace(list); err != nil {
				return userError(err)
			}

			now := time.Now()
			if stdout {
				data, err := b.Export(now)
				if err != nil {
					return sysError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			path := output
			if path == "" {
				if path, err = b.ExportPath(); err != nil {
					return sysError(err)
				}
			}
			if err := b.WriteExport(path, now); err != nil {
				return sysError(err)
			}
			abs, _ := filepath.Abs(path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d animations to %s\n", len(list), abs)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatAuto, "input format: auto, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <export-dir>/<export_file>)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the document instead of writing a file")
	return cmd
}
