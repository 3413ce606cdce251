package tui

import "time"

// HeartbeatMsg carries the wall-clock time the heartbeat fired at.
type HeartbeatMsg struct {
	Time time.Time
}

// CtrlCResetMsg clears the pending Ctrl+C confirmation after a timeout.
type CtrlCResetMsg struct{}
