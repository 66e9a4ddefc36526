// Package scanner discovers agent files in a package directory. It looks
// under every known provider project base (.claude, .opencode, ...) and
// under bare skills/, commands/, and agents/ directories at the root,
// returning manifest file mappings with paths relative to the scanned root.
package scanner
