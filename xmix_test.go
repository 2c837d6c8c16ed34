package xmix

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/xmix/dialect"
)

// mockDevice emulates a mixer on localhost. It answers the identification
// probe of its configured family, stores argument-carrying datagrams as
// state, answers zero-argument queries from that state, and records every
// datagram it receives.
type mockDevice struct {
	t      *testing.T
	conn   net.PacketConn
	family dialect.Family

	mu       sync.Mutex
	values   map[string]interface{}
	received []*osc.Message
	done     chan struct{}
}

func newMockDevice(t *testing.T, family dialect.Family) *mockDevice {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	d := &mockDevice{
		t:      t,
		conn:   conn,
		family: family,
		values: make(map[string]interface{}),
		done:   make(chan struct{}),
	}
	go d.serve()
	t.Cleanup(func() {
		close(d.done)
		conn.Close()
	})
	return d
}

func (d *mockDevice) port() int {
	return d.conn.LocalAddr().(*net.UDPAddr).Port
}

// set seeds device state before a test queries it.
func (d *mockDevice) set(addr string, value interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[addr] = value
}

func (d *mockDevice) serve() {
	buffer := make([]byte, 2048)
	for {
		select {
		case <-d.done:
			return
		default:
		}

		_ = d.conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
		n, from, err := d.conn.ReadFrom(buffer)
		if err != nil {
			continue
		}
		packet, err := osc.ParsePacket(string(buffer[:n]))
		if err != nil {
			continue
		}
		msg, ok := packet.(*osc.Message)
		if !ok {
			continue
		}
		if reply := d.handle(msg); reply != nil {
			data, err := reply.MarshalBinary()
			if err != nil {
				continue
			}
			_, _ = d.conn.WriteTo(data, from)
		}
	}
}

func (d *mockDevice) handle(msg *osc.Message) *osc.Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.received = append(d.received, msg)

	switch msg.Address {
	case dialect.AddrXInfo:
		if d.family == dialect.FamilyXAir {
			return osc.NewMessage(dialect.AddrXInfo, "192.168.1.20", "MIXBUS", "XR18", "1.18")
		}
		return nil
	case dialect.AddrInfo:
		if d.family == dialect.FamilyX32 {
			return osc.NewMessage(dialect.AddrInfo, "V2.07", "MAINDESK", "X32", "4.06")
		}
		return nil
	}

	if len(msg.Arguments) > 0 {
		d.values[msg.Address] = msg.Arguments[0]
		return nil
	}
	if v, ok := d.values[msg.Address]; ok {
		return osc.NewMessage(msg.Address, v)
	}
	return nil
}

// waitFor polls until the device has received a datagram for addr or the
// deadline passes, returning the first match.
func (d *mockDevice) waitFor(addr string, timeout time.Duration) *osc.Message {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		d.mu.Lock()
		for _, msg := range d.received {
			if msg.Address == addr {
				d.mu.Unlock()
				return msg
			}
		}
		d.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// countReceived reports how many datagrams arrived for addr.
func (d *mockDevice) countReceived(addr string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, msg := range d.received {
		if msg.Address == addr {
			count++
		}
	}
	return count
}

func newTestMixer(t *testing.T, d *mockDevice) *Mixer {
	t.Helper()

	options := NewOptions()
	options.Host = "127.0.0.1"
	options.Port = d.port()
	options.DetectTimeout = 200 * time.Millisecond
	options.QueryTimeout = 500 * time.Millisecond

	m, err := New(options)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func connectTestMixer(t *testing.T, family dialect.Family) (*Mixer, *mockDevice) {
	t.Helper()

	d := newMockDevice(t, family)
	m := newTestMixer(t, d)
	require.NoError(t, m.Connect())
	return m, d
}

// TestConnectDetectsXAir verifies a device answering only /xinfo is
// detected as X-Air and its identification is captured.
func TestConnectDetectsXAir(t *testing.T) {
	m, _ := connectTestMixer(t, dialect.FamilyXAir)

	assert.Equal(t, dialect.FamilyXAir, m.Family())
	assert.True(t, m.IsConnected())
	assert.Equal(t, "XR18", m.DeviceInfo().Model)
	assert.Equal(t, "1.18", m.DeviceInfo().Firmware)
}

// TestConnectDetectsX32 verifies the fallback probe: a device ignoring
// /xinfo but answering /info is detected as X32.
func TestConnectDetectsX32(t *testing.T) {
	m, _ := connectTestMixer(t, dialect.FamilyX32)

	assert.Equal(t, dialect.FamilyX32, m.Family())
	assert.Equal(t, "X32", m.DeviceInfo().Model)
}

// TestConnectNoDevice verifies session establishment fails when neither
// probe is answered.
func TestConnectNoDevice(t *testing.T) {
	d := newMockDevice(t, dialect.FamilyUnknown) // answers neither probe
	m := newTestMixer(t, d)

	err := m.Connect()
	require.ErrorIs(t, err, ErrDeviceNotDetected)
	assert.False(t, m.IsConnected())
	assert.Equal(t, dialect.FamilyUnknown, m.Family())
}

// TestOperationBeforeConnect verifies operations refuse to run on an
// unestablished session.
func TestOperationBeforeConnect(t *testing.T) {
	d := newMockDevice(t, dialect.FamilyXAir)
	m := newTestMixer(t, d)

	err := m.SetChannelFader(1, 0.5)
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = m.GetChannelFader(1)
	assert.ErrorIs(t, err, ErrNotConnected)
}

// TestSceneRecallIndexBase verifies the asymmetric scene index bases on the
// wire: recalling scene 1 sends wire index 0 on an X32 and 1 on an X-Air.
func TestSceneRecallIndexBase(t *testing.T) {
	t.Run("X32", func(t *testing.T) {
		m, d := connectTestMixer(t, dialect.FamilyX32)
		require.NoError(t, m.RecallScene(1))

		msg := d.waitFor(dialect.AddrSnapLoad, time.Second)
		require.NotNil(t, msg, "no load command received")
		assert.Equal(t, int32(0), msg.Arguments[0])
	})

	t.Run("X-Air", func(t *testing.T) {
		m, d := connectTestMixer(t, dialect.FamilyXAir)
		require.NoError(t, m.RecallScene(1))

		msg := d.waitFor(dialect.AddrSnapLoad, time.Second)
		require.NotNil(t, msg, "no load command received")
		assert.Equal(t, int32(1), msg.Arguments[0])
	})
}

// TestSaveSceneStoreVerb verifies the per-family store verb and name
// address.
func TestSaveSceneStoreVerb(t *testing.T) {
	t.Run("X32", func(t *testing.T) {
		m, d := connectTestMixer(t, dialect.FamilyX32)
		require.NoError(t, m.SaveScene(3, "Encore"))

		store := d.waitFor("/-snap/store", time.Second)
		require.NotNil(t, store)
		assert.Equal(t, int32(2), store.Arguments[0])

		name := d.waitFor("/-snap/02/name", time.Second)
		require.NotNil(t, name)
		assert.Equal(t, "Encore", name.Arguments[0])
	})

	t.Run("X-Air", func(t *testing.T) {
		m, d := connectTestMixer(t, dialect.FamilyXAir)
		require.NoError(t, m.SaveScene(3, "Encore"))

		store := d.waitFor("/-snap/save", time.Second)
		require.NotNil(t, store)
		assert.Equal(t, int32(3), store.Arguments[0])

		name := d.waitFor(dialect.AddrSnapName, time.Second)
		require.NotNil(t, name)
		assert.Equal(t, "Encore", name.Arguments[0])
	})
}

// TestSceneNameAsymmetry verifies the X-Air name lookup: the active
// snapshot's name is returned, any other slot yields an empty string
// without error.
func TestSceneNameAsymmetry(t *testing.T) {
	m, d := connectTestMixer(t, dialect.FamilyXAir)
	d.set(dialect.AddrSnapIndex, int32(3))
	d.set(dialect.AddrSnapName, "Soundcheck")

	name, err := m.SceneName(3)
	require.NoError(t, err)
	assert.Equal(t, "Soundcheck", name)

	name, err = m.SceneName(4)
	require.NoError(t, err)
	assert.Equal(t, "", name)

	active, err := m.CurrentSceneIndex()
	require.NoError(t, err)
	assert.Equal(t, 3, active)
}

// TestUnsupportedAuxOnXAir verifies the documented no-op: an aux-in
// mutation on an X-Air sends nothing and returns no error, and the
// corresponding query returns the placeholder without querying.
func TestUnsupportedAuxOnXAir(t *testing.T) {
	m, d := connectTestMixer(t, dialect.FamilyXAir)

	require.NoError(t, m.SetAuxInFader(1, 0.5))
	require.NoError(t, m.SetMatrixMute(1, true))

	level, err := m.GetAuxInFader(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, level)

	muted, err := m.GetAuxInMute(1)
	require.NoError(t, err)
	assert.False(t, muted)

	// Give any stray datagram time to arrive, then check none did.
	time.Sleep(100 * time.Millisecond)
	assert.Nil(t, d.waitFor("/auxin/01/mix/fader", 50*time.Millisecond))
	assert.Nil(t, d.waitFor("/auxin/01/mix/on", 50*time.Millisecond))
	assert.Nil(t, d.waitFor("/mtx/01/mix/on", 50*time.Millisecond))
}

// TestIndexValidation verifies out-of-range indices are rejected before any
// datagram is sent.
func TestIndexValidation(t *testing.T) {
	m, d := connectTestMixer(t, dialect.FamilyXAir)

	assert.Error(t, m.SetChannelFader(17, 0.5))
	assert.Error(t, m.SetBusFader(7, 0.5))
	assert.Error(t, m.RecallScene(65))
	assert.Error(t, m.SetFXEnabled(5, true))
	assert.Error(t, m.SetEQGain(1, 5, 0))

	time.Sleep(100 * time.Millisecond)
	assert.Nil(t, d.waitFor("/ch/17/mix/fader", 50*time.Millisecond))
}

// TestMuteInversion verifies the wire inversion in both directions through
// a set-then-get round trip against the device state.
func TestMuteInversion(t *testing.T) {
	m, d := connectTestMixer(t, dialect.FamilyXAir)

	require.NoError(t, m.SetChannelMute(1, true))
	msg := d.waitFor("/ch/01/mix/on", time.Second)
	require.NotNil(t, msg)
	assert.Equal(t, int32(0), msg.Arguments[0], "muted must be wire 0")

	muted, err := m.GetChannelMute(1)
	require.NoError(t, err)
	assert.True(t, muted)
}

// TestFaderRoundTrip verifies set-then-get pass-through of the unity
// marker.
func TestFaderRoundTrip(t *testing.T) {
	m, d := connectTestMixer(t, dialect.FamilyX32)

	require.NoError(t, m.SetChannelFader(1, 0.75))
	require.NotNil(t, d.waitFor("/ch/01/mix/fader", time.Second))

	level, err := m.GetChannelFader(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, level, 1e-6)
}

// TestQueryTimeoutSurfaces verifies a genuine timeout propagates to the
// caller of a logical operation.
func TestQueryTimeoutSurfaces(t *testing.T) {
	m, _ := connectTestMixer(t, dialect.FamilyXAir)

	// Nothing seeded at this address, so the device never answers.
	_, err := m.GetChannelName(2)
	require.Error(t, err)
}

// TestKeepalive verifies the subscription refresh is sent immediately after
// detection and again after each interval.
func TestKeepalive(t *testing.T) {
	d := newMockDevice(t, dialect.FamilyXAir)

	options := NewOptions()
	options.Host = "127.0.0.1"
	options.Port = d.port()
	options.DetectTimeout = 200 * time.Millisecond
	options.KeepaliveInterval = 120 * time.Millisecond

	m, err := New(options)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	require.NoError(t, m.Connect())

	require.NotNil(t, d.waitFor(dialect.AddrXRemote, time.Second), "no immediate refresh")
	time.Sleep(300 * time.Millisecond)
	assert.GreaterOrEqual(t, d.countReceived(dialect.AddrXRemote), 3)
}

// TestStatusSnapshot exercises the diagnostic surface.
func TestStatusSnapshot(t *testing.T) {
	m, _ := connectTestMixer(t, dialect.FamilyXAir)

	status := m.Status()
	assert.Equal(t, "127.0.0.1", status.Host)
	assert.True(t, status.Connected)
	assert.Equal(t, dialect.FamilyXAir, status.Family)
	assert.Equal(t, "XR18", status.Device.Model)
	assert.Equal(t, 0, status.PendingQueries)
}

// TestEQAndDynamics drives a representative EQ and dynamics round trip
// against the stateful mock.
func TestEQAndDynamics(t *testing.T) {
	m, d := connectTestMixer(t, dialect.FamilyX32)

	require.NoError(t, m.SetEQGain(2, 3, 6))
	require.NotNil(t, d.waitFor("/ch/02/eq/3/g", time.Second))
	gain, err := m.GetEQGain(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, gain, 1e-4)

	require.NoError(t, m.SetGateThreshold(2, -40))
	require.NotNil(t, d.waitFor("/ch/02/gate/thr", time.Second))
	thr, err := m.GetGateThreshold(2)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, thr, 1e-4)

	require.NoError(t, m.SetCompRatio(2, 4))
	require.NotNil(t, d.waitFor("/ch/02/dyn/ratio", time.Second))
	ratio, err := m.GetCompRatio(2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, ratio, 1e-4)
}

// TestBusAddressingPerFamily verifies bus datagrams carry the family's
// index grammar.
func TestBusAddressingPerFamily(t *testing.T) {
	t.Run("X32", func(t *testing.T) {
		m, d := connectTestMixer(t, dialect.FamilyX32)
		require.NoError(t, m.SetBusFader(1, 0.5))
		require.NotNil(t, d.waitFor("/bus/00/mix/fader", time.Second))
	})

	t.Run("X-Air", func(t *testing.T) {
		m, d := connectTestMixer(t, dialect.FamilyXAir)
		require.NoError(t, m.SetBusFader(1, 0.5))
		require.NotNil(t, d.waitFor("/bus/1/mix/fader", time.Second))

		require.NoError(t, m.SetMainFader(0.75))
		require.NotNil(t, d.waitFor("/lr/mix/fader", time.Second))
	})
}
