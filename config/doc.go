// Package config loads the ambient settings gridpibt needs to stand up
// an engine and its HTTP/WS driver: which map to load, the planner
// seed, and the server's listen address. Grounded on
// tabular/reinforcement/learning.go's FromYaml — a viper instance
// scoped to one file, unmarshalled into a plain struct — adapted here
// to read from environment variables too, since a daemon needs more
// than a single YAML file in practice. Command-line flags are not read
// here; cmd/pibtd layers them over Load's result.
package config
