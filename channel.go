package xmix

import (
	"github.com/opd-ai/xmix/dialect"
)

// Channel strip operations. Channels are 1-based; 1-32 on an X32, 1-16 on
// an X-Air. Out-of-range channels are rejected before any datagram is sent;
// out-of-range values are clamped.

// SetChannelFader sets a channel's fader on the 0..1 wire scale, where 0.75
// is unity gain.
func (m *Mixer) SetChannelFader(ch int, level float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	return m.send(p.ChannelPath(ch)+"/mix/fader", dialect.EncodeFader(level))
}

// GetChannelFader reads a channel's fader level.
func (m *Mixer) GetChannelFader(ch int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.ChannelPath(ch) + "/mix/fader")
	if err != nil {
		return 0, err
	}
	return dialect.DecodeFader(float32(wire)), nil
}

// SetChannelMute mutes or unmutes a channel.
func (m *Mixer) SetChannelMute(ch int, muted bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	return m.send(p.ChannelPath(ch)+"/mix/on", dialect.EncodeMute(muted))
}

// GetChannelMute reads a channel's mute state.
func (m *Mixer) GetChannelMute(ch int) (bool, error) {
	p, err := m.activeProfile()
	if err != nil {
		return false, err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return false, err
	}
	wire, err := m.queryInt(p.ChannelPath(ch) + "/mix/on")
	if err != nil {
		return false, err
	}
	return dialect.DecodeMute(wire), nil
}

// SetChannelPan sets a channel's pan, -1.0 hard left to 1.0 hard right.
func (m *Mixer) SetChannelPan(ch int, pan float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	return m.send(p.ChannelPath(ch)+"/mix/pan", dialect.EncodePan(pan))
}

// GetChannelPan reads a channel's pan position.
func (m *Mixer) GetChannelPan(ch int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.ChannelPath(ch) + "/mix/pan")
	if err != nil {
		return 0, err
	}
	return dialect.DecodePan(float32(wire)), nil
}

// SetChannelName sets a channel's scribble-strip name.
func (m *Mixer) SetChannelName(ch int, name string) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	return m.send(p.ChannelPath(ch)+"/config/name", name)
}

// GetChannelName reads a channel's scribble-strip name.
func (m *Mixer) GetChannelName(ch int) (string, error) {
	p, err := m.activeProfile()
	if err != nil {
		return "", err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return "", err
	}
	return m.queryString(p.ChannelPath(ch) + "/config/name")
}

// SetChannelSendLevel sets a channel's send into a bus, in dB (-90 = off,
// 0 = unity, up to +10).
func (m *Mixer) SetChannelSendLevel(ch, bus int, db float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	if err := p.ValidateBus(bus); err != nil {
		return err
	}
	return m.send(p.SendLevelAddr(ch, bus), dialect.EncodeLevelDB(db))
}

// GetChannelSendLevel reads a channel's bus send level in dB.
func (m *Mixer) GetChannelSendLevel(ch, bus int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if err := p.ValidateChannel(ch); err != nil {
		return 0, err
	}
	if err := p.ValidateBus(bus); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.SendLevelAddr(ch, bus))
	if err != nil {
		return 0, err
	}
	return dialect.DecodeLevelDB(float32(wire)), nil
}

// SetChannelFXSend sets a channel's send into an FX slot, in dB. Only the
// X-Air has fixed FX send slots; on other families this is a no-op.
func (m *Mixer) SetChannelFXSend(ch, slot int, db float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasFXSends() {
		return nil
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	if err := p.ValidateFXSlot(slot); err != nil {
		return err
	}
	addr, _ := p.FXSendLevelAddr(ch, slot)
	return m.send(addr, dialect.EncodeLevelDB(db))
}

// SetChannelLowCut sets the channel high-pass frequency, 20..400 Hz. Only
// the X-Air exposes the preamp high-pass; on other families this is a
// no-op.
func (m *Mixer) SetChannelLowCut(ch int, hz float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasLowCut() {
		return nil
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	return m.send(p.LowCutAddr(ch), dialect.EncodeLowCut(hz))
}

// GetChannelLowCut reads the channel high-pass frequency in Hz, or the 0
// placeholder where the family has none.
func (m *Mixer) GetChannelLowCut(ch int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if !p.HasLowCut() {
		return 0, nil
	}
	if err := p.ValidateChannel(ch); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.LowCutAddr(ch))
	if err != nil {
		return 0, err
	}
	return dialect.DecodeLowCut(float32(wire)), nil
}

// SetChannelLowCutOn switches the channel high-pass in or out. A no-op on
// families without it.
func (m *Mixer) SetChannelLowCutOn(ch int, on bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasLowCut() {
		return nil
	}
	if err := p.ValidateChannel(ch); err != nil {
		return err
	}
	var wire int32
	if on {
		wire = 1
	}
	return m.send(p.LowCutOnAddr(ch), wire)
}
