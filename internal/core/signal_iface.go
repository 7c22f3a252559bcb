package core

// Frame is a raw encoded event, ready to be written to the wire.
type Frame []byte

// SignalConnection is the transport endpoint of one connection. The adapter
// that created it owns it and must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
