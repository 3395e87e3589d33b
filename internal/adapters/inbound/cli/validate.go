package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/config"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/loader"
	"github.com/syntropysoft/praetorian-go/internal/adapters/outbound/tui"
	"github.com/syntropysoft/praetorian-go/internal/application"
	"github.com/syntropysoft/praetorian-go/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
		noStrict   bool
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate configuration files across environments",
		Long:  "Compare the configured files for key consistency, evaluate schema and pattern rules and scan for security issues. Exits non-zero when validation fails.",
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

			configLoader := config.New()
			loadConfig := func() (domain.Config, error) {
				cfg, err := configLoader.Load(absPath)
				if err != nil {
					return domain.Config{}, err
				}
				if strict {
					cfg.Strict = true
				}
				if noStrict {
					cfg.Strict = false
				}
				return cfg, nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewValidateService(configLoader, loader.New())

			if watch {
				return watchAndValidate(cmd, absPath, cfg, watchRun(svc, loadConfig, absPath), jsonOutput, nil)
			}

			result, err := svc.ValidateWithConfig(absPath, cfg)
			if err != nil {
				return err
			}
			if err := renderValidation(cmd, result, jsonOutput); err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on errors even if the config says otherwise")
	cmd.Flags().BoolVar(&noStrict, "no-strict", false, "Report errors without failing")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-validate whenever a configured file changes")

	return cmd
}

// watchRun reloads the workspace config before every run so an edited
// praetorian.yaml takes effect without restarting the watcher.
func watchRun(
	svc *application.ValidateService,
	loadConfig func() (domain.Config, error),
	path string,
) func() (*domain.ValidationResult, error) {
	return func() (*domain.ValidationResult, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		return svc.ValidateWithConfig(path, cfg)
	}
}

func renderValidation(cmd *cobra.Command, result *domain.ValidationResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result))
	return nil
}
