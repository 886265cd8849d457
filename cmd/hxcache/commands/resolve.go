package commands

import (
	"github.com/spf13/cobra"

	progrockadapter "github.com/TiVo/hxcache/internal/adapters/telemetry/progrock"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [libraries...]",
		Short: "Resolve library classpaths and print the unioned paths",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			progress, _ := cmd.Flags().GetBool("progress")
			if progress {
				recorder := progrockadapter.New()
				defer func() {
					_ = recorder.Close()
				}()
				c.app.WithTracer(recorder)
			}

			paths, err := c.app.Resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, path := range paths {
				cmd.Println(path)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("progress", "p", false, "Render resolution progress on a tape")
	return cmd
}
