package application

import (
	"fmt"
	"os"
	"strings"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// HealthService probes a workspace without running validation: the
// config must load, the compared files must exist and every authored
// regex must compile.
type HealthService struct {
	configLoader domain.ConfigLoader
}

func NewHealthService(configLoader domain.ConfigLoader) *HealthService {
	return &HealthService{configLoader: configLoader}
}

func (s *HealthService) Check(workspacePath string) *domain.HealthReport {
	report := domain.NewHealthReport()

	cfg, err := s.configLoader.Load(workspacePath)
	if err != nil {
		report.Add("config", false, err.Error())
		return report
	}
	report.Add("config", true, "praetorian.yaml loads and validates")

	if len(cfg.Files) < 2 {
		report.Add("files", false, fmt.Sprintf("%d file(s) configured, need at least 2 to compare", len(cfg.Files)))
	} else {
		missing := missingFiles(workspacePath, cfg.Files)
		if len(missing) > 0 {
			report.Add("files", false, "missing: "+strings.Join(missing, ", "))
		} else {
			report.Add("files", true, fmt.Sprintf("all %d configured files exist", len(cfg.Files)))
		}
	}

	if issues := cfg.CompileIssues(); len(issues) > 0 {
		report.Add("patterns", false, strings.Join(issues, "; "))
	} else {
		report.Add("patterns", true, "all authored patterns compile")
	}

	return report
}

func missingFiles(workspacePath string, files []string) []string {
	var missing []string
	for _, path := range resolvePaths(workspacePath, files) {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}
