// Package dialect implements the address and value translation tables for
// the two OSC dialects spoken by Behringer digital mixers: the full-size
// X32 consoles and the compact X-Air rack mixers (XR12/16/18).
//
// The two dialects differ structurally, not just lexically: the X32
// zero-pads bus and scene wire indices and counts them from zero, while the
// X-Air leaves bus and FX indices unpadded and counts snapshots from one.
// A Profile captures every per-family difference as data so callers only
// ever deal in 1-based human indices and human units (dB, Hz, -1..1 pan).
//
// Example:
//
//	p := dialect.ProfileFor(dialect.FamilyXAir)
//	if err := p.ValidateChannel(ch); err != nil {
//	    return err
//	}
//	addr := p.ChannelPath(ch) + "/mix/fader"
package dialect

import "fmt"

// Family identifies which OSC dialect a device speaks.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyX32
	FamilyXAir
)

// String returns a human-readable family name.
func (f Family) String() string {
	switch f {
	case FamilyX32:
		return "X32"
	case FamilyXAir:
		return "X-Air"
	case FamilyUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Shared wire addresses. The subscription refresh and the snapshot verbs
// live outside the per-strip address trees.
const (
	AddrInfo      = "/info"    // X32 identification
	AddrXInfo     = "/xinfo"   // X-Air identification
	AddrXRemote   = "/xremote" // push-update subscription refresh
	AddrSnapLoad  = "/-snap/load"
	AddrSnapName  = "/-snap/name"  // X-Air: name of the active snapshot
	AddrSnapIndex = "/-snap/index" // X-Air: index of the active snapshot
)

// Profile is the static translation table for one dialect. Profiles are
// immutable; ProfileFor hands out shared instances that must not be
// modified.
type Profile struct {
	Family   Family
	Channels int
	AuxIns   int
	Buses    int
	Matrices int
	FXSlots  int
	Scenes   int
	EQBands  int

	infoAddr   string
	mainPath   string
	storeAddr  string
	fxSwitch   string
	padBus     bool // zero-pad bus/FX wire indices to two digits
	busBase    int  // wire index of human bus 1
	sceneBase  int  // wire index of human scene 1
	sceneNames bool // per-index snapshot name addresses exist
	lowCut     bool // preamp high-pass filter exists
	fxSends    bool // channel mix sends above Buses feed the FX slots
}

var x32Profile = &Profile{
	Family:   FamilyX32,
	Channels: 32,
	AuxIns:   8,
	Buses:    16,
	Matrices: 6,
	FXSlots:  8,
	Scenes:   100,
	EQBands:  4,

	infoAddr:   AddrInfo,
	mainPath:   "/main/st",
	storeAddr:  "/-snap/store",
	fxSwitch:   "on",
	padBus:     true,
	busBase:    0,
	sceneBase:  0,
	sceneNames: true,
}

var xairProfile = &Profile{
	Family:   FamilyXAir,
	Channels: 16,
	Buses:    6,
	FXSlots:  4,
	Scenes:   64,
	EQBands:  4,

	infoAddr:  AddrXInfo,
	mainPath:  "/lr",
	storeAddr: "/-snap/save",
	fxSwitch:  "insert",
	busBase:   1,
	sceneBase: 1,
	lowCut:    true,
	fxSends:   true,
}

// ProfileFor returns the translation table for the given family, or nil for
// FamilyUnknown.
func ProfileFor(f Family) *Profile {
	switch f {
	case FamilyX32:
		return x32Profile
	case FamilyXAir:
		return xairProfile
	default:
		return nil
	}
}

// InfoAddr returns the identification address the family answers on.
func (p *Profile) InfoAddr() string { return p.infoAddr }

// Capability predicates. Operations on a domain a family lacks are silent
// no-ops for mutations and placeholder results for queries.

func (p *Profile) HasAuxIns() bool        { return p.AuxIns > 0 }
func (p *Profile) HasMatrices() bool      { return p.Matrices > 0 }
func (p *Profile) HasLowCut() bool        { return p.lowCut }
func (p *Profile) HasFXSends() bool       { return p.fxSends }
func (p *Profile) HasPerSceneNames() bool { return p.sceneNames }

// ChannelPath returns the address prefix for a channel strip. Channel wire
// indices are two-digit padded and 1-based on both families.
func (p *Profile) ChannelPath(ch int) string {
	return fmt.Sprintf("/ch/%02d", ch)
}

// AuxInPath returns the address prefix for an aux-in strip (X32 only).
func (p *Profile) AuxInPath(aux int) string {
	return fmt.Sprintf("/auxin/%02d", aux)
}

// MatrixPath returns the address prefix for a matrix output (X32 only).
func (p *Profile) MatrixPath(mtx int) string {
	return fmt.Sprintf("/mtx/%02d", mtx)
}

// BusPath returns the address prefix for a mix bus, applying the family's
// index base and padding.
func (p *Profile) BusPath(bus int) string {
	wire := bus - 1 + p.busBase
	if p.padBus {
		return fmt.Sprintf("/bus/%02d", wire)
	}
	return fmt.Sprintf("/bus/%d", wire)
}

// MainPath returns the address prefix of the main stereo mix.
func (p *Profile) MainPath() string { return p.mainPath }

// FXSwitchAddr returns the address of the on/insert switch of an FX slot.
func (p *Profile) FXSwitchAddr(slot int) string {
	if p.padBus {
		return fmt.Sprintf("/fx/%02d/%s", slot, p.fxSwitch)
	}
	return fmt.Sprintf("/fx/%d/%s", slot, p.fxSwitch)
}

// SendLevelAddr returns the address of a channel's send level into a bus.
// Send slots follow the bus index base and padding of the family.
func (p *Profile) SendLevelAddr(ch, bus int) string {
	wire := bus - 1 + p.busBase
	if p.padBus {
		return fmt.Sprintf("%s/mix/%02d/level", p.ChannelPath(ch), wire)
	}
	return fmt.Sprintf("%s/mix/%d/level", p.ChannelPath(ch), wire)
}

// FXSendLevelAddr returns the address of a channel's send level into an FX
// slot. On the X-Air the mix sends above the bus sends feed the FX units.
// The second return is false when the family has no fixed FX send slots.
func (p *Profile) FXSendLevelAddr(ch, slot int) (string, bool) {
	if !p.fxSends {
		return "", false
	}
	return fmt.Sprintf("%s/mix/%d/level", p.ChannelPath(ch), p.Buses+slot), true
}

// LowCutAddr returns the address of the channel high-pass frequency.
func (p *Profile) LowCutAddr(ch int) string {
	return p.ChannelPath(ch) + "/preamp/hpf"
}

// LowCutOnAddr returns the address of the channel high-pass switch.
func (p *Profile) LowCutOnAddr(ch int) string {
	return p.ChannelPath(ch) + "/preamp/hpon"
}

// SceneWireIndex converts a 1-based human scene number to the wire index the
// family expects as the argument of load and store commands.
func (p *Profile) SceneWireIndex(scene int) int32 {
	return int32(scene - 1 + p.sceneBase)
}

// SceneStoreAddr returns the family's snapshot store verb.
func (p *Profile) SceneStoreAddr() string { return p.storeAddr }

// SceneNameAddr returns the per-index snapshot name address (X32 only; the
// X-Air exposes only the active snapshot's name at AddrSnapName).
func (p *Profile) SceneNameAddr(scene int) string {
	return fmt.Sprintf("/-snap/%02d/name", p.SceneWireIndex(scene))
}

// Index validation. Human indices are 1-based; anything outside the
// family's supported count is rejected before a datagram is built.

func (p *Profile) ValidateChannel(ch int) error {
	return p.validateIndex("channel", ch, p.Channels)
}

func (p *Profile) ValidateAuxIn(aux int) error {
	return p.validateIndex("aux-in", aux, p.AuxIns)
}

func (p *Profile) ValidateBus(bus int) error {
	return p.validateIndex("bus", bus, p.Buses)
}

func (p *Profile) ValidateMatrix(mtx int) error {
	return p.validateIndex("matrix", mtx, p.Matrices)
}

func (p *Profile) ValidateFXSlot(slot int) error {
	return p.validateIndex("fx slot", slot, p.FXSlots)
}

func (p *Profile) ValidateScene(scene int) error {
	return p.validateIndex("scene", scene, p.Scenes)
}

func (p *Profile) ValidateEQBand(band int) error {
	return p.validateIndex("eq band", band, p.EQBands)
}

func (p *Profile) validateIndex(what string, idx, max int) error {
	if idx < 1 || idx > max {
		return fmt.Errorf("%s %d out of range 1-%d on %s", what, idx, max, p.Family)
	}
	return nil
}
