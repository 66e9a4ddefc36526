// Package config manages the user-level tool configuration at
// ~/.agentfiles/config.yaml, backed by Viper with AGENTFILES_* environment
// overrides. It holds install defaults such as the provider list and
// placement strategy consulted when flags are omitted.
package config
