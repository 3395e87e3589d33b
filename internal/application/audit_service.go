package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/syntropysoft/praetorian-go/internal/domain"
)

// AuditService wraps a validation run in a scored, grade-stamped report
// pinned to the workspace's git state.
type AuditService struct {
	validator *ValidateService
	git       domain.GitInfo
}

func NewAuditService(validator *ValidateService, git domain.GitInfo) *AuditService {
	return &AuditService{
		validator: validator,
		git:       git,
	}
}

// Audit runs a validation and derives the score, grade and summary.
// Git facts are best-effort: a workspace outside version control still
// audits, it just carries no commit hash.
func (s *AuditService) Audit(workspacePath string) (*domain.AuditReport, error) {
	result, err := s.validator.Validate(workspacePath)
	if err != nil {
		return nil, err
	}

	score, summary := domain.ComputeAuditScore(result)

	report := &domain.AuditReport{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Score:     score,
		Grade:     domain.GradeFor(score),
		Summary:   summary,
		Result:    result,
	}

	if s.git != nil && s.git.IsGitRepo(workspacePath) {
		if hash, err := s.git.CommitHash(workspacePath); err == nil {
			report.CommitHash = hash
		}
		if dirty, err := s.git.Dirty(workspacePath); err == nil {
			report.Dirty = dirty
		}
	}

	return report, nil
}
