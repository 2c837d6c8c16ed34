package xmix

import (
	"github.com/opd-ai/xmix/dialect"
)

// Bus, main mix, aux-in and matrix operations. Aux-ins and matrix outputs
// only exist on the X32; on the X-Air those mutations are documented
// no-ops and those queries return the 0/false placeholders.

// SetBusFader sets a mix bus fader on the 0..1 wire scale.
func (m *Mixer) SetBusFader(bus int, level float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateBus(bus); err != nil {
		return err
	}
	return m.send(p.BusPath(bus)+"/mix/fader", dialect.EncodeFader(level))
}

// GetBusFader reads a mix bus fader level.
func (m *Mixer) GetBusFader(bus int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if err := p.ValidateBus(bus); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.BusPath(bus) + "/mix/fader")
	if err != nil {
		return 0, err
	}
	return dialect.DecodeFader(float32(wire)), nil
}

// SetBusMute mutes or unmutes a mix bus.
func (m *Mixer) SetBusMute(bus int, muted bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateBus(bus); err != nil {
		return err
	}
	return m.send(p.BusPath(bus)+"/mix/on", dialect.EncodeMute(muted))
}

// GetBusMute reads a mix bus mute state.
func (m *Mixer) GetBusMute(bus int) (bool, error) {
	p, err := m.activeProfile()
	if err != nil {
		return false, err
	}
	if err := p.ValidateBus(bus); err != nil {
		return false, err
	}
	wire, err := m.queryInt(p.BusPath(bus) + "/mix/on")
	if err != nil {
		return false, err
	}
	return dialect.DecodeMute(wire), nil
}

// SetBusPan sets a mix bus pan position.
func (m *Mixer) SetBusPan(bus int, pan float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateBus(bus); err != nil {
		return err
	}
	return m.send(p.BusPath(bus)+"/mix/pan", dialect.EncodePan(pan))
}

// SetBusName sets a mix bus scribble-strip name.
func (m *Mixer) SetBusName(bus int, name string) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateBus(bus); err != nil {
		return err
	}
	return m.send(p.BusPath(bus)+"/config/name", name)
}

// GetBusName reads a mix bus scribble-strip name.
func (m *Mixer) GetBusName(bus int) (string, error) {
	p, err := m.activeProfile()
	if err != nil {
		return "", err
	}
	if err := p.ValidateBus(bus); err != nil {
		return "", err
	}
	return m.queryString(p.BusPath(bus) + "/config/name")
}

// SetMainFader sets the main stereo mix fader.
func (m *Mixer) SetMainFader(level float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	return m.send(p.MainPath()+"/mix/fader", dialect.EncodeFader(level))
}

// GetMainFader reads the main stereo mix fader level.
func (m *Mixer) GetMainFader() (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.MainPath() + "/mix/fader")
	if err != nil {
		return 0, err
	}
	return dialect.DecodeFader(float32(wire)), nil
}

// SetMainMute mutes or unmutes the main stereo mix.
func (m *Mixer) SetMainMute(muted bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	return m.send(p.MainPath()+"/mix/on", dialect.EncodeMute(muted))
}

// GetMainMute reads the main stereo mix mute state.
func (m *Mixer) GetMainMute() (bool, error) {
	p, err := m.activeProfile()
	if err != nil {
		return false, err
	}
	wire, err := m.queryInt(p.MainPath() + "/mix/on")
	if err != nil {
		return false, err
	}
	return dialect.DecodeMute(wire), nil
}

// SetMainPan sets the main stereo mix balance.
func (m *Mixer) SetMainPan(pan float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	return m.send(p.MainPath()+"/mix/pan", dialect.EncodePan(pan))
}

// SetAuxInFader sets an aux-in fader. X32 only; a no-op elsewhere.
func (m *Mixer) SetAuxInFader(aux int, level float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasAuxIns() {
		return nil
	}
	if err := p.ValidateAuxIn(aux); err != nil {
		return err
	}
	return m.send(p.AuxInPath(aux)+"/mix/fader", dialect.EncodeFader(level))
}

// GetAuxInFader reads an aux-in fader level, or the 0 placeholder where the
// family has no aux-ins.
func (m *Mixer) GetAuxInFader(aux int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if !p.HasAuxIns() {
		return 0, nil
	}
	if err := p.ValidateAuxIn(aux); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.AuxInPath(aux) + "/mix/fader")
	if err != nil {
		return 0, err
	}
	return dialect.DecodeFader(float32(wire)), nil
}

// SetAuxInMute mutes or unmutes an aux-in. X32 only; a no-op elsewhere.
func (m *Mixer) SetAuxInMute(aux int, muted bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasAuxIns() {
		return nil
	}
	if err := p.ValidateAuxIn(aux); err != nil {
		return err
	}
	return m.send(p.AuxInPath(aux)+"/mix/on", dialect.EncodeMute(muted))
}

// GetAuxInMute reads an aux-in mute state, or the false placeholder where
// the family has no aux-ins.
func (m *Mixer) GetAuxInMute(aux int) (bool, error) {
	p, err := m.activeProfile()
	if err != nil {
		return false, err
	}
	if !p.HasAuxIns() {
		return false, nil
	}
	if err := p.ValidateAuxIn(aux); err != nil {
		return false, err
	}
	wire, err := m.queryInt(p.AuxInPath(aux) + "/mix/on")
	if err != nil {
		return false, err
	}
	return dialect.DecodeMute(wire), nil
}

// SetMatrixFader sets a matrix output fader. X32 only; a no-op elsewhere.
func (m *Mixer) SetMatrixFader(mtx int, level float64) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasMatrices() {
		return nil
	}
	if err := p.ValidateMatrix(mtx); err != nil {
		return err
	}
	return m.send(p.MatrixPath(mtx)+"/mix/fader", dialect.EncodeFader(level))
}

// GetMatrixFader reads a matrix output fader level, or the 0 placeholder
// where the family has no matrix outputs.
func (m *Mixer) GetMatrixFader(mtx int) (float64, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if !p.HasMatrices() {
		return 0, nil
	}
	if err := p.ValidateMatrix(mtx); err != nil {
		return 0, err
	}
	wire, err := m.queryFloat(p.MatrixPath(mtx) + "/mix/fader")
	if err != nil {
		return 0, err
	}
	return dialect.DecodeFader(float32(wire)), nil
}

// SetMatrixMute mutes or unmutes a matrix output. X32 only; a no-op
// elsewhere.
func (m *Mixer) SetMatrixMute(mtx int, muted bool) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if !p.HasMatrices() {
		return nil
	}
	if err := p.ValidateMatrix(mtx); err != nil {
		return err
	}
	return m.send(p.MatrixPath(mtx)+"/mix/on", dialect.EncodeMute(muted))
}
