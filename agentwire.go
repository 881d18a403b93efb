// Package agentwire defines the message contract between a UI client and an
// agent orchestration engine: operations flowing client to engine, events
// flowing engine to client, and the serialization tying them together. Most
// applications interact with this package by:
//  1. Creating a Client via New() over any ordered byte transport
//  2. Sending operations (Send) tagged with a submission id
//  3. Consuming the event stream (Events) and correlating by submission id
//
// The façade delegates framing to wire.Encoder/wire.Decoder while keeping
// setup ergonomics concise. Engines use the wire package directly for the
// server side of the same exchange.
package agentwire

import (
	"errors"
	"io"
	"sync"

	"github.com/hupe1980/agentwire/core"
	"github.com/hupe1980/agentwire/logging"
	"github.com/hupe1980/agentwire/wire"
)

// ProtocolVersion is the version token of this contract revision. Both ends
// of a connection must agree on it before exchanging messages.
const ProtocolVersion = "0.1.0"

// CheckVersion verifies a peer's version token against ProtocolVersion.
func CheckVersion(actual string) error {
	if actual != ProtocolVersion {
		return &core.VersionMismatchError{Expected: ProtocolVersion, Actual: actual}
	}
	return nil
}

// Options configures a Client.
type Options struct {
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// EventBufferSize sets the channel buffer size for incoming events.
	// Larger buffers reduce blocking of the reader loop but increase memory
	// usage.
	EventBufferSize int

	// MaxMessageSize bounds a single incoming message in bytes.
	MaxMessageSize int
}

// Client is the UI side of the contract: it writes operations to the engine
// and surfaces the engine's event stream as a channel. Events arrive in
// transport order, which preserves per-submission ordering on any FIFO
// transport.
type Client struct {
	enc    *wire.Encoder
	events chan core.Event
	logger logging.Logger

	mu  sync.Mutex
	err error
}

// New creates a Client over a byte transport and starts its reader loop.
// The reader runs until the transport closes, then closes Events.
func New(r io.Reader, w io.Writer, optFns ...func(o *Options)) *Client {
	opts := Options{
		Logger:          logging.NoOpLogger{},
		EventBufferSize: 64,
		MaxMessageSize:  wire.DefaultMaxMessageSize,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Client{
		enc:    wire.NewEncoder(w, wire.WithLogger(opts.Logger)),
		events: make(chan core.Event, opts.EventBufferSize),
		logger: opts.Logger,
	}

	dec := wire.NewDecoder(r, wire.WithLogger(opts.Logger), wire.WithMaxMessageSize(opts.MaxMessageSize))
	go c.readLoop(dec)

	return c
}

// Send writes one operation to the engine. It is safe for concurrent use.
func (c *Client) Send(op core.Op) error {
	return c.enc.WriteOp(op)
}

// Events returns the incoming event stream. The channel closes when the
// transport closes; Err reports whether the close was clean.
func (c *Client) Events() <-chan core.Event {
	return c.events
}

// Err returns the terminal reader error, if any. A clean end of stream
// returns nil. Only meaningful after Events has closed.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Client) readLoop(dec *wire.Decoder) {
	defer close(c.events)
	for {
		e, err := dec.ReadEvent()
		if err == nil {
			c.events <- e
			continue
		}
		if errors.Is(err, core.ErrChannelClosed) {
			return
		}
		switch err.(type) {
		case *core.DecodeError, *core.UnknownEventError, *core.InvalidSubmissionIDError:
			// Version-skewed or garbled messages are skipped so one bad
			// message cannot wedge the session.
			c.logger.Warn("skipping bad event", "error", err)
			continue
		default:
			c.mu.Lock()
			c.err = err
			c.mu.Unlock()
			return
		}
	}
}
