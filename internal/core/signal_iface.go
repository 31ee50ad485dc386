package core

import "errors"

// Frame is one encoded signaling message as it travels on the wire.
type Frame []byte

var (
	ErrConnClosed   = errors.New("connection closed")
	ErrBackpressure = errors.New("backpressure")
)

//go:generate mockgen -source=signal_iface.go -destination=mocks/signal_mock.go -package=mocks

// SignalConnection abstracts one accepted endpoint connection.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	// ID identifies the transport connection in logs.
	ID() string
	IsOpen() bool
	// TrySend queues f without blocking. A closed connection returns ErrConnClosed.
	TrySend(f Frame) error
	Close()
}
