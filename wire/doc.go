// Package wire serializes the core contract for transport: tagged JSON
// codecs for the Op and Event unions (EncodeOp, DecodeOp, EncodeEvent,
// DecodeEvent) and a newline-delimited stream layer (Encoder, Decoder) for
// byte transports like pipes and sockets.
//
// Per-submission event ordering is transport-preserved: the stream layer
// writes messages atomically in call order and never reorders on read, so a
// FIFO byte transport yields FIFO delivery per submission.
package wire
