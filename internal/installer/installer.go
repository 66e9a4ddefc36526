package installer

import (
	"errors"
	"strings"

	"github.com/agentfiles-labs/agentfiles/internal/manifest"
)

// FileScope selects whether installation targets the user's global
// environment or a specific project.
type FileScope string

const (
	ScopeGlobal FileScope = "global"
	ScopeLocal  FileScope = "local"
)

// ParseScope converts a string to a FileScope, returning false if invalid.
// "project" is accepted as an alias for local.
func ParseScope(s string) (FileScope, bool) {
	switch strings.ToLower(s) {
	case "global":
		return ScopeGlobal, true
	case "local", "project":
		return ScopeLocal, true
	default:
		return "", false
	}
}

var (
	// ErrConfiguration reports an invalid scope/root combination or a tool
	// that has no directory for a requested file kind.
	ErrConfiguration = errors.New("installer configuration error")

	// ErrConflict reports a destination occupied by a file incompatible
	// with the requested strategy.
	ErrConflict = errors.New("destination conflict")
)

// Result records a single placed file.
type Result struct {
	Provider string
	Source   string
	Target   string
	Kind     manifest.FileKind
	Strategy manifest.FileStrategy
	// Unchanged is true when the destination already matched the source
	// and nothing was written.
	Unchanged bool
}

// Report summarizes an install run for one provider.
type Report struct {
	// Root is the root-level installation target: the home directory for
	// global scope, the resolved project root for local scope.
	Root    string
	Results []Result
}

// Installer places a manifest's declared files into one tool's directory
// convention. Implementations are stateless over a static layout table.
type Installer interface {
	// Name identifies the target tool (e.g., "claude-code").
	Name() string

	// SupportsKind reports whether the tool has a directory for kind.
	SupportsKind(kind manifest.FileKind) bool

	// TargetDir resolves the destination directory for a file kind without
	// touching the filesystem. root must be empty for global scope. For
	// local scope an empty root means the current working directory.
	TargetDir(scope FileScope, kind manifest.FileKind, root string) (string, error)

	// Install places every file mapping in m according to its strategy.
	// Relative source paths resolve against m.Dir.
	Install(m *manifest.Manifest, scope FileScope, root string) (*Report, error)
}

// All returns every registered installer in stable order.
func All() []Installer {
	return []Installer{claudeCode, openCode, codex, cursor}
}

// Parse converts a provider name to its Installer, returning false if
// unknown. Common spelling variants are accepted.
func Parse(name string) (Installer, bool) {
	switch strings.ToLower(name) {
	case "claude-code", "claudecode", "claude_code", "claude":
		return claudeCode, true
	case "opencode", "open-code", "open_code":
		return openCode, true
	case "codex":
		return codex, true
	case "cursor":
		return cursor, true
	default:
		return nil, false
	}
}

// Names returns the canonical names of all registered installers.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, inst := range all {
		names[i] = inst.Name()
	}
	return names
}

// ProjectBases returns the project-scope base directories of all installers,
// deduplicated. The scanner uses these as discovery prefixes.
func ProjectBases() []string {
	seen := make(map[string]bool)
	var bases []string
	for _, inst := range All() {
		p, ok := inst.(*provider)
		if !ok {
			continue
		}
		if !seen[p.layout.projectBase] {
			seen[p.layout.projectBase] = true
			bases = append(bases, p.layout.projectBase)
		}
	}
	return bases
}
