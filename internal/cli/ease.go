package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tweenkit/pkg/easing"
)

func newEaseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ease",
		Short: "Inspect easing curves",
	}
	cmd.AddCommand(newEaseListCmd())
	cmd.AddCommand(newEaseSampleCmd(a))
	cmd.AddCommand(newEaseFormatCmd())
	cmd.AddCommand(newEaseParseCmd())
	return cmd
}

func newEaseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the easing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VALUE\tLABEL")
			for _, p := range easing.Presets() {
				fmt.Fprintf(w, "%s\t%s\n", p.Value, p.Label)
			}
			return w.Flush()
		},
	}
}

func newEaseSampleCmd(a *app) *cobra.Command {
	var (
		steps    int
		jsonMode bool
	)
	cmd := &cobra.Command{
		Use:   "sample <ease>",
		Short: "Sample an easing curve",
		Long:  "Print steps+1 (t, value) samples of a preset or cubic-bezier(...) curve.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := steps
			if !cmd.Flags().Changed("steps") {
				n = a.config.Steps()
			}
			if n <= 0 {
				return userError(fmt.Errorf("steps must be positive, got %d", n))
			}
			s := easing.NewSampler(n, nil)
			if jsonMode {
				data, err := json.Marshal(s.Sample(args[0]))
				if err != nil {
					return sysError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			for t, v := range s.Points(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					strconv.FormatFloat(t, 'f', -1, 64), strconv.FormatFloat(v, 'f', 6, 64))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of sample intervals; when unset, sample_steps from config (60 if not configured)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output in JSON format")
	return cmd
}

func newEaseFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <x1> <y1> <x2> <y2>",
		Short: "Format control points as cubic-bezier notation",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]float64
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return userError(fmt.Errorf("argument %d: not a number: %q", i+1, arg))
				}
				v[i] = f
			}
			b := easing.Bezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
			fmt.Fprintln(cmd.OutOrStdout(), easing.FormatCubicBezier(b))
			return nil
		},
	}
}

func newEaseParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <ease>",
		Short: "Classify an easing value and show its control points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			out := cmd.OutOrStdout()
			mode := easing.ClassifyMode(id)
			fmt.Fprintf(out, "mode: %s\n", mode)

			if mode == easing.ModeCustom {
				b, err := easing.ParseCubicBezier(id)
				if err != nil {
					return userError(err)
				}
				fmt.Fprintf(out, "bezier: %s\n", easing.FormatCubicBezier(b))
				return nil
			}
			if !easing.IsPreset(id) {
				fmt.Fprintln(out, "preset: unknown (samples as linear)")
				return nil
			}
			fmt.Fprintf(out, "preset: %s\n", easing.Canonical(id))
			if b, ok := easing.LookupBezier(id); ok {
				fmt.Fprintf(out, "bezier: %s\n", easing.FormatCubicBezier(b))
			}
			return nil
		},
	}
}
