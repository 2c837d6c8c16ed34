package xmix

import (
	"fmt"

	"github.com/opd-ai/xmix/dialect"
)

// Channel EQ operations. Both families carry four parametric bands per
// channel, numbered 1 (low) to 4 (high).

// SetEQOn switches a channel's EQ section in or out.
func (m *Mixer) SetEQOn(ch int, on bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	var wire int32
	if on {
		wire = 1
	}
	return m.send(p.ChannelPath(ch)+"/eq/on", wire)
}

// SetEQGain sets a band's gain, -15..+15 dB.
func (m *Mixer) SetEQGain(ch, band int, db float64) error {
	addr, err := m.eqAddr(ch, band, "g")
	if err != nil {
		return err
	}
	return m.send(addr, dialect.EncodeEQGain(db))
}

// GetEQGain reads a band's gain in dB.
func (m *Mixer) GetEQGain(ch, band int) (float64, error) {
	addr, err := m.eqAddr(ch, band, "g")
	if err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(addr)
	if err != nil {
		return 0, err
	}
	return dialect.DecodeEQGain(float32(wire)), nil
}

// SetEQFrequency sets a band's center frequency, 20..20000 Hz.
func (m *Mixer) SetEQFrequency(ch, band int, hz float64) error {
	addr, err := m.eqAddr(ch, band, "f")
	if err != nil {
		return err
	}
	return m.send(addr, dialect.EncodeFrequency(hz))
}

// GetEQFrequency reads a band's center frequency in Hz.
func (m *Mixer) GetEQFrequency(ch, band int) (float64, error) {
	addr, err := m.eqAddr(ch, band, "f")
	if err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(addr)
	if err != nil {
		return 0, err
	}
	return dialect.DecodeFrequency(float32(wire)), nil
}

func (m *Mixer) eqAddr(ch, band int, param string) (string, error) {
	p, err := m.activeProfile()
	if err != nil {
		return "", err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return "", err
	}
	if err := p.ValidateEQBand(band); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/eq/%d/%s", p.ChannelPath(ch), band, param), nil
}
