package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tweenkit/pkg/codegen"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		id     string
	)
	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render animations as GSAP script",
		Long: "Read animations from files or stdin and print the generated script.\n" +
			"Input may be an export document, a JSON array or a single animation,\nin JSON or YAML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readAnimations(cmd, args, format)
			if err != nil {
				return err
			}
			if id != "" {
				found, err := findAnimation(list, id)
				if err != nil {
					return userError(err)
				}
				list = []types.Animation{found}
			}
			a.logger.Debug("rendering animations", "count", len(list))
			code := codegen.RenderAll(list)
			if code == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatAuto, "input format: auto, json or yaml")
	cmd.Flags().StringVar(&id, "id", "", "render only the animation with this ID")
	return cmd
}

func findAnimation(list []types.Animation, id string) (types.Animation, error) {
	for _, a := range list {
		if a.Common().ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrNotFound, id)
}
