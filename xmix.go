// Package xmix provides remote control of Behringer X32 and X-Air series
// digital mixers over their OSC protocol.
//
// A Mixer owns one UDP session to a device. The device's dialect (the two
// families differ in address grammar, index bases and supported domains) is
// detected at connect time, never configured. All operations take 1-based
// human indices and human units; translation to the wire is handled by the
// dialect tables.
//
// Example:
//
//	options := xmix.NewOptions()
//	options.Host = "192.168.1.20"
//	options.Port = 10024
//
//	mixer, err := xmix.New(options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mixer.Close()
//
//	if err := mixer.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//
//	mixer.SetChannelFader(1, 0.75) // channel 1 to unity
//	name, _ := mixer.GetChannelName(1)
//	fmt.Println(name)
package xmix

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xmix/dialect"
	"github.com/opd-ai/xmix/transport"
)

// Options contains configuration for a mixer session.
type Options struct {
	// Host and Port identify the device. They say nothing about the
	// dialect; the family is always detected at connect time.
	Host string
	Port int

	// QueryTimeout bounds general state queries.
	QueryTimeout time.Duration

	// DetectTimeout bounds each identification probe during Connect.
	DetectTimeout time.Duration

	// KeepaliveInterval is the period of the subscription refresh that
	// keeps the device pushing state to this session.
	KeepaliveInterval time.Duration
}

// NewOptions creates Options with the standard defaults. Port 10023 is the
// X32 console port; X-Air rack mixers listen on 10024.
func NewOptions() *Options {
	return &Options{
		Host:              "192.168.1.1",
		Port:              10023,
		QueryTimeout:      transport.DefaultQueryTimeout,
		DetectTimeout:     transport.DefaultProbeTimeout,
		KeepaliveInterval: 9 * time.Second,
	}
}

// Mixer is one control session to one device. Create it with New, establish
// it with Connect, and release it with Close.
type Mixer struct {
	options *Options
	conn    *transport.Conn
	corr    *transport.Correlator

	mu        sync.RWMutex
	family    dialect.Family
	profile   *dialect.Profile
	info      DeviceInfo
	connected bool

	ctx    context.Context
	cancel context.CancelFunc
}

// New opens the session endpoint. The socket open is the only fallible step
// here; the device itself is not contacted until Connect.
func New(options *Options) (*Mixer, error) {
	if options == nil {
		options = NewOptions()
	}

	conn, err := transport.Dial(options.Host, options.Port)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Mixer{
		options: options,
		conn:    conn,
		corr:    transport.NewCorrelator(conn),
		family:  dialect.FamilyUnknown,
		ctx:     ctx,
		cancel:  cancel,
	}

	logrus.WithFields(logrus.Fields{
		"function": "New",
		"host":     options.Host,
		"port":     options.Port,
	}).Info("Mixer session created")

	return m, nil
}

// Connect detects the device family and starts the keepalive. It must
// succeed before any operation is permitted. Detection is not retried; a
// device that answers neither probe fails the session.
func (m *Mixer) Connect() error {
	if err := m.detectFamily(); err != nil {
		return err
	}

	m.startKeepalive()

	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()

	return nil
}

// Close tears the session down: keepalive stops, the socket closes, and any
// in-flight queries fail.
func (m *Mixer) Close() error {
	m.cancel()

	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "Close",
		"host":     m.options.Host,
	}).Info("Mixer session closed")

	return m.conn.Close()
}

// activeProfile returns the dialect table of the connected session.
func (m *Mixer) activeProfile() (*dialect.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected || m.profile == nil {
		return nil, ErrNotConnected
	}
	return m.profile, nil
}

// send builds and sends one fire-and-forget mutation datagram.
func (m *Mixer) send(addr string, args ...interface{}) error {
	return m.conn.Send(osc.NewMessage(addr, args...))
}

// queryFloat queries one address and decodes the first argument as a float.
func (m *Mixer) queryFloat(addr string) (float64, error) {
	msg, err := m.corr.Query(addr, m.options.QueryTimeout)
	if err != nil {
		return 0, err
	}
	return floatArg(msg), nil
}

// queryInt queries one address and decodes the first argument as an int32.
func (m *Mixer) queryInt(addr string) (int32, error) {
	msg, err := m.corr.Query(addr, m.options.QueryTimeout)
	if err != nil {
		return 0, err
	}
	return intArg(msg), nil
}

// queryString queries one address and decodes the first argument as a
// string.
func (m *Mixer) queryString(addr string) (string, error) {
	msg, err := m.corr.Query(addr, m.options.QueryTimeout)
	if err != nil {
		return "", err
	}
	return stringArg(msg), nil
}

// Argument extraction. The devices are loose about numeric argument types,
// so both float32 and int32 are accepted where a number is expected.

func floatArg(msg *osc.Message) float64 {
	if len(msg.Arguments) == 0 {
		return 0
	}
	switch v := msg.Arguments[0].(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int32:
		return float64(v)
	default:
		return 0
	}
}

func intArg(msg *osc.Message) int32 {
	if len(msg.Arguments) == 0 {
		return 0
	}
	switch v := msg.Arguments[0].(type) {
	case int32:
		return v
	case float32:
		return int32(v)
	default:
		return 0
	}
}

func stringArg(msg *osc.Message) string {
	if len(msg.Arguments) == 0 {
		return ""
	}
	if s, ok := msg.Arguments[0].(string); ok {
		return s
	}
	return fmt.Sprint(msg.Arguments[0])
}
