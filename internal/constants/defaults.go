// Package constants defines shared configuration constants and defaults.
package constants

// Collector - Fixed destination of trace records.
const (
	// CollectorHost is the loopback address the collector listens on.
	CollectorHost = "127.0.0.1"

	// CollectorPort is the UDP port the collector listens on.
	CollectorPort = 7155
)

// Exit codes - Process exit statuses used by the hook dispatch layer.
const (
	// ExitChannelFailure is returned when the datagram socket cannot be created.
	ExitChannelFailure = 44

	// ExitSendFailure is returned when a trace record cannot be sent.
	ExitSendFailure = 45

	// ExitFailure is the generic failure status.
	ExitFailure = 1
)

// Workload - Default parameters of the built-in demo workload.
const (
	// DefaultWorkloadDepth is the default recursion depth of the demo tree walk.
	DefaultWorkloadDepth = 4

	// DefaultWorkloadFanout is the default number of children per node.
	DefaultWorkloadFanout = 2

	DefaultWorkloadIterations = 1
)

// Logging - Default logging settings.
const (
	DefaultLogLevel = "info"

	DefaultLogPretty = true
)
