package xmix

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xmix/dialect"
)

// Scene (snapshot) operations. Scene state lives on the device; this layer
// only shapes the requests. Scenes are 1-based for callers on both
// families; the wire index base (0 on the X32, 1 on the X-Air) is applied
// by the dialect table.

// RecallScene loads a stored scene.
func (m *Mixer) RecallScene(scene int) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateScene(scene); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "RecallScene",
		"scene":    scene,
		"family":   p.Family,
	}).Info("Recalling scene")

	return m.send(dialect.AddrSnapLoad, p.SceneWireIndex(scene))
}

// SaveScene stores the current device state into a scene slot, optionally
// naming it. On the X-Air the store makes the slot the active snapshot, so
// the name goes to the active-snapshot name address; the X32 has per-slot
// name addresses.
func (m *Mixer) SaveScene(scene int, name string) error {
	p, err := m.activeProfile()
	if err != nil {
		return err
	}
	if err := p.ValidateScene(scene); err != nil {
		return err
	}

	if err := m.send(p.SceneStoreAddr(), p.SceneWireIndex(scene)); err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	if p.HasPerSceneNames() {
		return m.send(p.SceneNameAddr(scene), name)
	}
	return m.send(dialect.AddrSnapName, name)
}

// SceneName reads a scene's stored name. The X32 answers for any slot. The
// X-Air only exposes the active snapshot's name, so the active index is
// queried first and a non-active slot yields an empty string, not an
// error.
func (m *Mixer) SceneName(scene int) (string, error) {
	p, err := m.activeProfile()
	if err != nil {
		return "", err
	}
	if err := p.ValidateScene(scene); err != nil {
		return "", err
	}

	if p.HasPerSceneNames() {
		return m.queryString(p.SceneNameAddr(scene))
	}

	active, err := m.queryInt(dialect.AddrSnapIndex)
	if err != nil {
		return "", err
	}
	if int(active) != scene {
		return "", nil
	}
	return m.queryString(dialect.AddrSnapName)
}

// CurrentSceneIndex reads the active snapshot's 1-based index. Only the
// X-Air tracks this per session; other families return the 0 placeholder.
func (m *Mixer) CurrentSceneIndex() (int, error) {
	p, err := m.activeProfile()
	if err != nil {
		return 0, err
	}
	if p.HasPerSceneNames() {
		return 0, nil
	}
	active, err := m.queryInt(dialect.AddrSnapIndex)
	if err != nil {
		return 0, err
	}
	return int(active), nil
}
