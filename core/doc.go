// Package core defines the message contract between a UI client and an
// agent orchestration engine: the Op and Event unions, the typed
// identifiers that correlate them, and the domain model both sides share.
//
// The contract is transport agnostic. Values in this package are immutable
// snapshots; state change is represented by emitting a new Event with a new
// snapshot, never by mutating one already sent. Serialization lives in the
// wire package.
package core
