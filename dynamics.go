package xmix

import (
	"github.com/opd-ai/xmix/dialect"
)

// Channel dynamics operations: the noise gate and the compressor section.

// SetGateThreshold sets a channel's gate threshold, -80..0 dB.
func (m *Mixer) SetGateThreshold(ch int, db float64) error {
	addr, err := m.channelAddr(ch, "/gate/thr")
	if err != nil {
		return err
	}
	return m.send(addr, dialect.EncodeGateThreshold(db))
}

// GetGateThreshold reads a channel's gate threshold in dB.
func (m *Mixer) GetGateThreshold(ch int) (float64, error) {
	addr, err := m.channelAddr(ch, "/gate/thr")
	if err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(addr)
	if err != nil {
		return 0, err
	}
	return dialect.DecodeGateThreshold(float32(wire)), nil
}

// SetGateOn switches a channel's gate in or out.
func (m *Mixer) SetGateOn(ch int, on bool) error {
	addr, err := m.channelAddr(ch, "/gate/on")
	if err != nil {
		return err
	}
	var wire int32
	if on {
		wire = 1
	}
	return m.send(addr, wire)
}

// SetCompThreshold sets a channel's compressor threshold, -60..0 dB.
func (m *Mixer) SetCompThreshold(ch int, db float64) error {
	addr, err := m.channelAddr(ch, "/dyn/thr")
	if err != nil {
		return err
	}
	return m.send(addr, dialect.EncodeCompThreshold(db))
}

// GetCompThreshold reads a channel's compressor threshold in dB.
func (m *Mixer) GetCompThreshold(ch int) (float64, error) {
	addr, err := m.channelAddr(ch, "/dyn/thr")
	if err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(addr)
	if err != nil {
		return 0, err
	}
	return dialect.DecodeCompThreshold(float32(wire)), nil
}

// SetCompRatio sets a channel's compression ratio, 1:1 to 20:1.
func (m *Mixer) SetCompRatio(ch int, ratio float64) error {
	addr, err := m.channelAddr(ch, "/dyn/ratio")
	if err != nil {
		return err
	}
	return m.send(addr, dialect.EncodeCompRatio(ratio))
}

// GetCompRatio reads a channel's compression ratio.
func (m *Mixer) GetCompRatio(ch int) (float64, error) {
	addr, err := m.channelAddr(ch, "/dyn/ratio")
	if err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(addr)
	if err != nil {
		return 0, err
	}
	return dialect.DecodeCompRatio(float32(wire)), nil
}

// SetCompOn switches a channel's compressor in or out.
func (m *Mixer) SetCompOn(ch int, on bool) error {
	addr, err := m.channelAddr(ch, "/dyn/on")
	if err != nil {
		return err
	}
	var wire int32
	if on {
		wire = 1
	}
	return m.send(addr, wire)
}

func (m *Mixer) channelAddr(ch int, suffix string) (string, error) {
	p, err := m.activeProfile()
	if err != nil {
		return "", err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return "", err
	}
	return p.ChannelPath(ch) + suffix, nil
}
