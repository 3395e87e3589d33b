package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/config"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/gitinfo"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/loader"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/tui"
	"github.com/syntropysoft/praetorian-go/internal/application"
	"github.com/syntropysoft/praetorian-go/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput bool
		badge      bool
		ciMode     bool
		minScore   int
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Score the workspace's configuration posture",
		Long:  "Run a full validation and condense it into a 0-100 score with a letter grade, pinned to the current git commit.",
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

			svc := application.NewAuditService(
				application.NewValidateService(config.New(), loader.New()),
				gitinfo.New(),
			)
			report, err := svc.Audit(absPath)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			case badge:
				color := domain.BadgeColor(report.Score)
				url := fmt.Sprintf("https://img.shields.io/badge/praetorian-%d%%2F100-%s", report.Score, color)
				fmt.Fprintln(cmd.OutOrStdout(), url)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAudit(report))
			}

			if ciMode && report.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")

	return cmd
}
