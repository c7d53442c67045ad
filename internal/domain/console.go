package domain

// ConsoleName is the logical identity of the managed interactive console.
// At most one live session carries it at any time.
const ConsoleName = "rvx"

// ConsoleSession is a handle to one live interactive console. Sessions are
// destroyed and recreated on every forced refresh, never mutated in place.
type ConsoleSession struct {
	ID     int64
	Name   string
	Binary string
	PID    int
}
