package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tweenkit/pkg/codegen"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		label    string
		selector string
		code     bool
	)
	cmd := &cobra.Command{
		Use:       "new <hover|carousel|scroll>",
		Short:     "Print a default animation configuration",
		Long:      "Create an animation with the default values for its type and print it as JSON.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(types.TypeHover), string(types.TypeCarousel), string(types.TypeScroll)},
		RunE: func(cmd *cobra.Command, args []string) error {
			anim, err := types.New(types.AnimationType(strings.ToLower(args[0])))
			if err != nil {
				return userError(err)
			}

			var patch types.BasePatch
			if cmd.Flags().Changed("label") {
				patch.Label = &label
			}
			if cmd.Flags().Changed("selector") {
				patch.TargetSelector = &selector
			}
			if anim, err = applyBase(anim, patch); err != nil {
				return userError(err)
			}
			a.logger.Debug("created animation", "id", anim.Common().ID, "type", anim.Common().Type)

			if code {
				fmt.Fprintln(cmd.OutOrStdout(), codegen.Render(anim))
				return nil
			}
			data, err := codegen.Snapshot([]types.Animation{anim})
			if err != nil {
				return sysError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "animation label")
	cmd.Flags().StringVar(&selector, "selector", "", "target CSS selector")
	cmd.Flags().BoolVar(&code, "code", false, "print the generated script instead of JSON")
	return cmd
}
