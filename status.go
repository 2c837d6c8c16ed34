package xmix

import (
	"github.com/opd-ai/xmix/dialect"
)

// DeviceInfo holds the identification reply captured during detection.
type DeviceInfo struct {
	Network  string // device network address as the device reports it
	Name     string // user-assigned device name
	Model    string // hardware model, e.g. "XR18"
	Firmware string // firmware version
}

// Status is a point-in-time diagnostic snapshot of the session.
type Status struct {
	Host           string
	Port           int
	Family         dialect.Family
	Connected      bool
	Device         DeviceInfo
	PendingQueries int
}

// Family returns the detected dialect, or FamilyUnknown before Connect.
func (m *Mixer) Family() dialect.Family {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.family
}

// IsConnected reports whether Connect has succeeded and Close has not been
// called.
func (m *Mixer) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.connected
}

// DeviceInfo returns the identification captured during detection.
func (m *Mixer) DeviceInfo() DeviceInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.info
}

// Status returns a diagnostic snapshot of the session.
func (m *Mixer) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Status{
		Host:           m.options.Host,
		Port:           m.options.Port,
		Family:         m.family,
		Connected:      m.connected,
		Device:         m.info,
		PendingQueries: m.corr.Pending(),
	}
}
