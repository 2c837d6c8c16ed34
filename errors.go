package xmix

import "errors"

var (
	// ErrDeviceNotDetected means neither identification probe answered
	// within its timeout. The session cannot be established and detection
	// is not retried automatically.
	ErrDeviceNotDetected = errors.New("device not detected: no reply on /xinfo or /info")

	// ErrNotConnected means an operation was invoked before Connect
	// succeeded.
	ErrNotConnected = errors.New("mixer session not connected")
)
