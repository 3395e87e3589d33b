package domain

// HealthCheck is a single named probe of workspace readiness.
type HealthCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

// HealthReport aggregates readiness probes for a workspace: the
// configuration parses, its rules validate, every referenced file
// exists and every authored regex compiles.
type HealthReport struct {
	Healthy bool          `json:"healthy"`
	Checks  []HealthCheck `json:"checks"`
}

// Add records a check and degrades overall health on failure.
func (r *HealthReport) Add(name string, passed bool, message string) {
	r.Checks = append(r.Checks, HealthCheck{Name: name, Passed: passed, Message: message})
	if !passed {
		r.Healthy = false
	}
}

// NewHealthReport starts healthy; failed checks degrade it.
func NewHealthReport() *HealthReport {
	return &HealthReport{Healthy: true}
}
