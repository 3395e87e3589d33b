package domain

// ConfigLoader loads workspace configuration (praetorian.yaml).
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// DocumentLoader reads and parses configuration documents.
type DocumentLoader interface {
	Load(paths []string) ([]ConfigDocument, error)
}

// GitInfo exposes version-control facts about a workspace.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	// Dirty reports whether the worktree has uncommitted changes.
	Dirty(path string) (bool, error)
}
