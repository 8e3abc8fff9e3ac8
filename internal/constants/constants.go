// Package constants defines shared configuration constants.
package constants

var (
	ConfigFile = "calltrace.yaml"

	// EnvPrefix prefixes every environment variable read by calltrace.
	EnvPrefix = "CALLTRACE_"

	// ConfigEnvVar overrides the configuration file path.
	ConfigEnvVar = EnvPrefix + "CONFIG"
)
