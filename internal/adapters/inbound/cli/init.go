package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = "praetorian.yaml"

const starterConfig = `# Praetorian configuration
# See: https://github.com/syntropysoft/praetorian-go

files:
  - config/dev.yaml
  - config/prod.yaml

# Keys allowed to differ between files. Exact paths cover their
# descendants; "*" matches any characters.
ignore_keys:
  - debug
  - environment

# Keys every file must define.
required_keys: []

# strict: false reports errors without failing the run.
strict: true

security:
  use_defaults: true
  # rules:
  #   - id: DB_PASSWORD
  #     type: secret
  #     severity: critical
  #     patterns:
  #       - 'postgres://[^:]+:[^@]+@'

# schemas:
#   - id: db-port
#     key: database.port
#     schema:
#       type: integer
#       minimum: 1
#       maximum: 65535

# patterns:
#   - id: internal-host
#     key: database.host
#     pattern: '^[a-z0-9.-]+\.internal$'
#     severity: warning
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a praetorian.yaml configuration file",
		Long:  "Create a praetorian.yaml with commented starter rules.",
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

			dest := filepath.Join(absPath, configFileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(starterConfig), 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing praetorian.yaml")
	return cmd
}
