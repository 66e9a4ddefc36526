// Package installer places manifest-declared agent files into the
// filesystem conventions of AI coding tools. Each supported tool is an
// Installer implementation over a static directory layout, registered by
// name. Installs resolve a target directory per file kind at global (user
// home) or local (project) scope and place sources by copy or symlink.
package installer
