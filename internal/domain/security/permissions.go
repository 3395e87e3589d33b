package security

import (
	"fmt"
	"io/fs"

	"github.com/syntropysoft/praetorian-go/internal/domain"
	"github.com/syntropysoft/praetorian-go/internal/domain/keys"
)

// checkPermissions verifies a file's permission bits against a rule's
// max/min bounds. The rule's file pattern is the same '*'-glob the key
// matcher uses; a rule whose pattern does not cover the file passes as
// not applicable.
func checkPermissions(rule domain.SecurityRule, ctx domain.SecurityContext) domain.RuleResult {
	rr := domain.RuleResult{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		Passed:   true,
		Severity: rule.Severity,
	}

	if rule.FilePattern != "" {
		re, err := keys.CompileWildcard(rule.FilePattern)
		if err != nil || !re.MatchString(ctx.FilePath) {
			rr.Message = "file pattern not matched"
			return rr
		}
	}

	perm := uint32(ctx.Mode & fs.ModePerm)

	if rule.MaxPermissions != 0 && perm&^uint32(rule.MaxPermissions) != 0 {
		rr.Passed = false
		rr.Message = fmt.Sprintf("permissions %o exceed maximum %o", perm, uint32(rule.MaxPermissions))
		rr.Evidence = fmt.Sprintf("currentPermissions=%o", perm)
		return rr
	}

	if rule.MinPermissions != 0 && perm&uint32(rule.MinPermissions) != uint32(rule.MinPermissions) {
		rr.Passed = false
		rr.Message = fmt.Sprintf("permissions %o lack required bits %o", perm, uint32(rule.MinPermissions))
		rr.Evidence = fmt.Sprintf("currentPermissions=%o", perm)
		return rr
	}

	return rr
}
