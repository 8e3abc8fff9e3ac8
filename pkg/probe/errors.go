package probe

import (
	"fmt"

	"github.com/coral-mesh/calltrace/internal/constants"
)

// ChannelError reports that the datagram socket could not be created.
type ChannelError struct {
	Err error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("failed to create socket: %v", e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for this failure.
func (e *ChannelError) ExitCode() int { return constants.ExitChannelFailure }

// SendError reports that a trace record could not be sent.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("failed to sendto: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for this failure.
func (e *SendError) ExitCode() int { return constants.ExitSendFailure }
