package core

import (
	"errors"
	"fmt"
)

// ErrChannelClosed is returned by stream decoders when the underlying
// transport has closed and no further messages will arrive.
var ErrChannelClosed = errors.New("core: channel closed")

// EncodeError wraps a failure to serialize an operation or event.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("core: encode: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports a message that could not be parsed at all, as opposed
// to one that parsed but carried an unknown tag.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("core: decode: %s", e.Message)
}

// UnknownOperationError reports an operation tag this revision does not
// recognize. Clients talking to a newer engine see this instead of corrupted
// state.
type UnknownOperationError struct {
	Type string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("core: unknown operation type %q", e.Type)
}

// UnknownEventError reports an event tag this revision does not recognize.
type UnknownEventError struct {
	Type string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("core: unknown event type %q", e.Type)
}

// InvalidSubmissionIDError reports a message whose sub_id is missing or
// empty. Every message must carry a correlation identifier.
type InvalidSubmissionIDError struct {
	Value string
}

func (e *InvalidSubmissionIDError) Error() string {
	return fmt.Sprintf("core: invalid submission id %q", e.Value)
}

// VersionMismatchError reports incompatible protocol versions between the
// two ends of a connection.
type VersionMismatchError struct {
	Expected string
	Actual   string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("core: protocol version mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// TransportError wraps a failure in the byte transport underneath the
// contract.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("core: transport: %s", e.Message)
}
