package xmix

// Effects slot operations. The X32 exposes an on switch per slot, the
// X-Air an insert switch; the dialect table hides the difference.

// SetFXEnabled switches an effects slot in or out.
func (m *Mixer) SetFXEnabled(slot int, enabled bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateFXSlot(slot); err != nil {
		return err
	}
	var wire int32
	if enabled {
		wire = 1
	}
	return m.send(p.FXSwitchAddr(slot), wire)
}

// GetFXEnabled reads an effects slot's switch state.
func (m *Mixer) GetFXEnabled(slot int) (bool, error) {
	p, err := m.activeProfile()
	if err != nil {
		return false, err
	}
	if err := p.ValidateFXSlot(slot); err != nil {
		return false, err
	}
	wire, err := m.queryInt(p.FXSwitchAddr(slot))
	if err != nil {
		return false, err
	}
	return wire != 0, nil
}
