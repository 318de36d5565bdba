package domain

// SourceScanner walks a directory and returns the migratable source files.
type SourceScanner interface {
	Scan(rootPath string, excludePaths ...string) (*ScanResult, error)
}

// ScanResult holds the outcome of scanning a directory for Oracle sources.
type ScanResult struct {
	RootPath   string   `json:"root_path"`
	SQLFiles   []string `json:"sql_files"`
	PLSQLFiles []string `json:"plsql_files"`
	AllFiles   []string `json:"all_files"`
}

// ConfigLoader reads the per-project analyzer configuration.
type ConfigLoader interface {
	Load(rootPath string) (ProjectConfig, error)
}

// GitInfo reports version-control metadata for an analyzed directory.
type GitInfo interface {
	IsGitRepo(rootPath string) bool
	CommitHash(rootPath string) (string, error)
}

// RunHistory persists past analysis runs.
type RunHistory interface {
	Save(rootPath string, entries []RunEntry) error
	Load(rootPath string) ([]RunEntry, error)
	Close() error
}
