package manifest

import "strings"

// FileKind categorizes an agent file and determines the subdirectory it
// installs into.
type FileKind string

const (
	KindSkill   FileKind = "skill"
	KindAgent   FileKind = "agent"
	KindCommand FileKind = "command"
)

// AllKinds returns every recognized file kind.
func AllKinds() []FileKind {
	return []FileKind{KindSkill, KindCommand, KindAgent}
}

// ParseKind converts a string to a FileKind, returning false if invalid.
func ParseKind(s string) (FileKind, bool) {
	switch strings.ToLower(s) {
	case "skill":
		return KindSkill, true
	case "agent":
		return KindAgent, true
	case "command":
		return KindCommand, true
	default:
		return "", false
	}
}

// FileStrategy selects how a file is placed at its destination: copy
// duplicates the content, link creates a symlink back to the source.
type FileStrategy string

const (
	StrategyCopy FileStrategy = "copy"
	StrategyLink FileStrategy = "link"
)

// ParseStrategy converts a string to a FileStrategy. "symlink" is accepted
// as an alias for link.
func ParseStrategy(s string) (FileStrategy, bool) {
	switch strings.ToLower(s) {
	case "copy":
		return StrategyCopy, true
	case "link", "symlink":
		return StrategyLink, true
	default:
		return "", false
	}
}

// FileMapping declares a single agent file in a package.
type FileMapping struct {
	// Path is the source file relative to the package directory. Skills
	// point at their <name>/SKILL.md entry file.
	Path     string       `json:"path,omitempty"`
	Kind     FileKind     `json:"kind"`
	Strategy FileStrategy `json:"strategy,omitempty"`
}

// EffectiveStrategy returns the mapping's strategy, defaulting to copy.
func (f FileMapping) EffectiveStrategy() FileStrategy {
	if f.Strategy == "" {
		return StrategyCopy
	}
	return f.Strategy
}

// Manifest describes a package of agent files and its metadata.
type Manifest struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Author      string        `json:"author,omitempty"`
	Repository  string        `json:"repository,omitempty"`
	Files       []FileMapping `json:"files"`

	// Dir is the directory the manifest was loaded from. Relative mapping
	// paths resolve against it. Not part of the wire format.
	Dir string `json:"-"`
}
