package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentfiles-labs/agentfiles/internal/manifest"
)

// layout describes one tool's directory convention: a base directory per
// scope and a subdirectory per file kind. A kind absent from the map means
// the tool has no home for files of that kind.
type layout struct {
	projectBase string
	globalBase  string
	kinds       map[manifest.FileKind]string
}

// provider implements Installer over a static layout.
type provider struct {
	name   string
	layout layout
}

var (
	claudeCode = &provider{
		name: "claude-code",
		layout: layout{
			projectBase: ".claude",
			globalBase:  ".claude",
			kinds: map[manifest.FileKind]string{
				manifest.KindSkill:   "skills",
				manifest.KindCommand: "commands",
				manifest.KindAgent:   "agents",
			},
		},
	}

	openCode = &provider{
		name: "opencode",
		layout: layout{
			projectBase: ".opencode",
			globalBase:  filepath.Join(".config", "opencode"),
			kinds: map[manifest.FileKind]string{
				manifest.KindSkill:   "skills",
				manifest.KindCommand: "commands",
				manifest.KindAgent:   "agents",
			},
		},
	}

	// Codex only has a notion of skills.
	codex = &provider{
		name: "codex",
		layout: layout{
			projectBase: ".agents",
			globalBase:  ".agents",
			kinds: map[manifest.FileKind]string{
				manifest.KindSkill: "skills",
			},
		},
	}

	cursor = &provider{
		name: "cursor",
		layout: layout{
			projectBase: ".cursor",
			globalBase:  ".cursor",
			kinds: map[manifest.FileKind]string{
				manifest.KindSkill:   "skills",
				manifest.KindCommand: "commands",
				manifest.KindAgent:   "agents",
			},
		},
	}
)

func (p *provider) Name() string { return p.name }

func (p *provider) SupportsKind(kind manifest.FileKind) bool {
	_, ok := p.layout.kinds[kind]
	return ok
}

// rootDir resolves the root-level target for a scope: the home directory
// for global scope (root must not be supplied), the given or current
// working directory for local scope.
func (p *provider) rootDir(scope FileScope, root string) (string, error) {
	if scope == ScopeGlobal {
		if root != "" {
			return "", fmt.Errorf("root is not supported for global scope: %w", ErrConfiguration)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return home, nil
	}

	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return cwd, nil
	}
	return filepath.Abs(root)
}

// base returns the layout base directory for a scope.
func (l layout) base(scope FileScope) string {
	if scope == ScopeGlobal {
		return l.globalBase
	}
	return l.projectBase
}

func (p *provider) TargetDir(scope FileScope, kind manifest.FileKind, root string) (string, error) {
	sub, ok := p.layout.kinds[kind]
	if !ok {
		return "", fmt.Errorf("%s has no directory for %s files: %w", p.name, kind, ErrConfiguration)
	}

	base, err := p.rootDir(scope, root)
	if err != nil {
		return "", err
	}

	return filepath.Join(base, p.layout.base(scope), sub), nil
}
