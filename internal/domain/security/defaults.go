package security

import "github.com/syntropysoft/praetorian-go/internal/domain"

// DefaultRules is the built-in security rule set applied when a
// workspace sets security.use_defaults. IDs are stable: findings carry
// them as SECURITY_<ID> codes.
func DefaultRules() []domain.SecurityRule {
	return []domain.SecurityRule{
		{
			ID:       "API_KEY",
			Name:     "API key",
			Type:     domain.RuleTypeSecret,
			Severity: domain.SeverityCritical,
			Enabled:  true,
			Patterns: []string{
				`sk-[a-zA-Z0-9]{20,}`,
				`AKIA[0-9A-Z]{16}`,
			},
			ExcludePatterns: []string{`(?i)example|placeholder|your[_-]?key`},
		},
		{
			ID:       "JWT_TOKEN",
			Name:     "JWT token",
			Type:     domain.RuleTypeSecret,
			Severity: domain.SeverityHigh,
			Enabled:  true,
			Patterns: []string{
				`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`,
			},
		},
		{
			ID:       "PASSWORD_ASSIGNMENT",
			Name:     "hardcoded password",
			Type:     domain.RuleTypeSecret,
			Severity: domain.SeverityHigh,
			Enabled:  true,
			Patterns: []string{
				`(?i)password\s*[:=]\s*["']?[^\s"']{8,}`,
			},
			ExcludePatterns: []string{`(?i)\$\{|changeme|example|password\s*[:=]\s*["']?\{\{`},
		},
		{
			ID:       "PRIVATE_KEY",
			Name:     "private key material",
			Type:     domain.RuleTypeSecret,
			Severity: domain.SeverityCritical,
			Enabled:  true,
			Patterns: []string{
				`-----BEGIN (?:RSA |EC |OPENSSH )?PRIVATE KEY-----`,
			},
		},
		{
			ID:             "SECRETS_FILE_PERMISSIONS",
			Name:           "secrets file permissions",
			Type:           domain.RuleTypePermission,
			Severity:       domain.SeverityHigh,
			Enabled:        true,
			FilePattern:    "*secret*",
			MaxPermissions: domain.OctalMode(0o600),
		},
	}
}
