package xmix

import (
	"github.com/hypebeast/go-osc/osc"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xmix/dialect"
)

// detectFamily probes the two identification addresses to find out which
// dialect the device speaks. The X-Air address is probed first because an
// X-Air ignores /info while an X32 ignores /xinfo; whichever answers within
// the probe timeout decides the family for the whole session. The result is
// write-once.
func (m *Mixer) detectFamily() error {
	msg, err := m.corr.Query(dialect.AddrXInfo, m.options.DetectTimeout)
	if err == nil {
		m.setFamily(dialect.FamilyXAir, msg)
		return nil
	}

	msg, err = m.corr.Query(dialect.AddrInfo, m.options.DetectTimeout)
	if err == nil {
		m.setFamily(dialect.FamilyX32, msg)
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"function": "detectFamily",
		"host":     m.options.Host,
		"port":     m.options.Port,
	}).Error("No reply to either identification probe")

	return ErrDeviceNotDetected
}

func (m *Mixer) setFamily(family dialect.Family, reply *osc.Message) {
	info := parseDeviceInfo(reply)

	m.mu.Lock()
	m.family = family
	m.profile = dialect.ProfileFor(family)
	m.info = info
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "detectFamily",
		"family":   family,
		"model":    info.Model,
		"firmware": info.Firmware,
	}).Info("Mixer family detected")
}

// parseDeviceInfo reads the identification reply. Both families answer with
// four string arguments: network address, device name, model, firmware.
// Short or oddly typed replies leave the missing fields empty.
func parseDeviceInfo(msg *osc.Message) DeviceInfo {
	var info DeviceInfo

	fields := []*string{&info.Network, &info.Name, &info.Model, &info.Firmware}
	for i, field := range fields {
		if i >= len(msg.Arguments) {
			break
		}
		if s, ok := msg.Arguments[i].(string); ok {
			*field = s
		}
	}
	return info
}
