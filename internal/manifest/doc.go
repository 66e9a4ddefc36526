// Package manifest defines the agentfiles.json package manifest: the file
// kinds and placement strategies, loading with directory resolution, and
// JSON Schema validation of manifest documents.
package manifest
