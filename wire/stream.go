package wire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/hupe1980/agentwire/core"
	"github.com/hupe1980/agentwire/logging"
)

// DefaultMaxMessageSize bounds a single newline-delimited message. Large
// enough for plans and tool output, small enough to catch runaway payloads.
const DefaultMaxMessageSize = 10 * 1024 * 1024

// Options configure an Encoder or Decoder.
type Options struct {
	// Logger receives per-message diagnostics. Defaults to no logging.
	Logger logging.Logger
	// MaxMessageSize bounds a single message in bytes (Decoder only).
	MaxMessageSize int
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the diagnostics logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMaxMessageSize sets the per-message size bound for decoding.
func WithMaxMessageSize(n int) Option {
	return func(o *Options) { o.MaxMessageSize = n }
}

func applyOptions(opts []Option) Options {
	o := Options{
		Logger:         logging.NoOpLogger{},
		MaxMessageSize: DefaultMaxMessageSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Encoder writes newline-delimited tagged JSON messages to a byte stream.
// It is safe for concurrent use; messages are written atomically, so writes
// from one goroutine per submission preserve per-submission order.
type Encoder struct {
	mu     sync.Mutex
	w      io.Writer
	logger logging.Logger
}

// NewEncoder wraps a writer.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	o := applyOptions(opts)
	return &Encoder{w: w, logger: o.Logger}
}

// WriteOp encodes and writes one operation.
func (e *Encoder) WriteOp(op core.Op) error {
	data, err := EncodeOp(op)
	if err != nil {
		return err
	}
	e.logger.Debug("write op", "type", op.Type(), "sub_id", op.Submission())
	return e.write(data)
}

// WriteEvent encodes and writes one event.
func (e *Encoder) WriteEvent(ev core.Event) error {
	data, err := EncodeEvent(ev)
	if err != nil {
		return err
	}
	e.logger.Debug("write event", "type", ev.Type(), "sub_id", ev.Submission())
	return e.write(data)
}

func (e *Encoder) write(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.w.Write(append(data, '\n')); err != nil {
		return &core.TransportError{Message: err.Error()}
	}
	return nil
}

// Decoder reads newline-delimited tagged JSON messages from a byte stream.
// A closed stream surfaces as ErrChannelClosed; malformed, unknown, or
// oversized messages surface as the codec's typed errors without consuming
// the rest of the stream. Not safe for concurrent use.
type Decoder struct {
	r      *bufio.Reader
	max    int
	logger logging.Logger
	closed bool
}

// NewDecoder wraps a reader.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := applyOptions(opts)
	return &Decoder{r: bufio.NewReader(r), max: o.MaxMessageSize, logger: o.Logger}
}

// ReadOp reads and decodes the next operation.
func (d *Decoder) ReadOp() (core.Op, error) {
	data, err := d.next()
	if err != nil {
		return nil, err
	}
	op, err := DecodeOp(data)
	if err != nil {
		d.logger.Warn("dropping undecodable op", "error", err)
		return nil, err
	}
	d.logger.Debug("read op", "type", op.Type(), "sub_id", op.Submission())
	return op, nil
}

// ReadEvent reads and decodes the next event.
func (d *Decoder) ReadEvent() (core.Event, error) {
	data, err := d.next()
	if err != nil {
		return nil, err
	}
	e, err := DecodeEvent(data)
	if err != nil {
		d.logger.Warn("dropping undecodable event", "error", err)
		return nil, err
	}
	d.logger.Debug("read event", "type", e.Type(), "sub_id", e.Submission())
	return e, nil
}

var errLineTooLong = errors.New("line too long")

// next returns the next non-empty line. Blank lines are tolerated as
// keepalive padding. An oversized line is discarded and reported as a
// DecodeError, leaving the stream usable for subsequent messages.
func (d *Decoder) next() ([]byte, error) {
	if d.closed {
		return nil, core.ErrChannelClosed
	}
	for {
		line, err := d.readLine()
		switch {
		case err == nil:
			if len(line) == 0 {
				continue
			}
			return line, nil
		case errors.Is(err, errLineTooLong):
			d.logger.Warn("skipping oversized message", "limit", d.max)
			return nil, &core.DecodeError{Message: "message exceeds size limit"}
		case errors.Is(err, io.EOF):
			if len(line) > 0 {
				return line, nil
			}
			d.closed = true
			d.logger.Debug("stream closed")
			return nil, core.ErrChannelClosed
		default:
			d.closed = true
			return nil, &core.TransportError{Message: err.Error()}
		}
	}
}

// readLine accumulates one line, enforcing the size limit. When the limit
// trips, the remainder of the line is drained so the next call starts at a
// line boundary.
func (d *Decoder) readLine() ([]byte, error) {
	var line []byte
	for {
		chunk, err := d.r.ReadSlice('\n')
		line = append(line, chunk...)
		switch {
		case err == nil:
			line = bytes.TrimRight(line, "\r\n")
			if len(line) > d.max {
				return nil, errLineTooLong
			}
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			if len(line) > d.max {
				if skipErr := d.skipLine(); skipErr != nil {
					return nil, skipErr
				}
				return nil, errLineTooLong
			}
		case errors.Is(err, io.EOF):
			if len(line) > d.max {
				return nil, errLineTooLong
			}
			return line, io.EOF
		default:
			return nil, err
		}
	}
}

// skipLine drains input through the next newline or end of stream.
func (d *Decoder) skipLine() error {
	for {
		_, err := d.r.ReadSlice('\n')
		switch {
		case err == nil, errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return err
		}
	}
}
