package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/config"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/tui"
	"github.com/syntropysoft/praetorian-go/internal/application"
)

func newHealthCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "health [path]",
		Short: "Check the workspace is ready to validate",
		Long:  "Verify praetorian.yaml loads, the configured files exist and every authored pattern compiles, without running a validation.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			report := application.NewHealthService(config.New()).Check(absPath)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHealth(report))
			}

			if !report.Healthy {
				return fmt.Errorf("workspace is not healthy")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	return cmd
}
