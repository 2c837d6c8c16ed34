// Package transport owns the single UDP endpoint of a mixer session and the
// correlation of outbound queries with their replies.
//
// The devices speak fire-and-forget OSC over UDP: a query datagram carries
// only an address, and the reply arrives as an independent datagram to the
// same address some time later. Conn moves datagrams; Correlator matches
// each outbound query to at most one inbound reply and times out the rest.
package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/sirupsen/logrus"
)

// MessageHandler receives every OSC message read from the socket.
type MessageHandler func(msg *osc.Message)

// Conn is one UDP endpoint bound to an ephemeral local port and pointed at
// a fixed remote device. Sends are fire and forget; a background loop reads
// inbound datagrams and hands each decoded message to the registered sink.
type Conn struct {
	conn   net.PacketConn
	remote net.Addr

	mu   sync.RWMutex
	sink MessageHandler

	ctx    context.Context
	cancel context.CancelFunc
}

// Dial opens the session endpoint. Failure to bind or resolve is fatal to
// session construction.
func Dial(host string, port int) (*Conn, error) {
	remote, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("resolve mixer address: %w", err)
	}

	conn, err := net.ListenPacket("udp", ":0")
	if err != nil {
		return nil, fmt.Errorf("open mixer endpoint: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Conn{
		conn:   conn,
		remote: remote,
		ctx:    ctx,
		cancel: cancel,
	}

	logrus.WithFields(logrus.Fields{
		"function": "Dial",
		"local":    conn.LocalAddr(),
		"remote":   remote,
	}).Info("Mixer endpoint opened")

	go c.readLoop()

	return c, nil
}

// SetSink registers the handler that receives every inbound message.
// Inbound traffic arriving while no sink is registered is dropped.
func (c *Conn) SetSink(sink MessageHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sink = sink
}

// Send marshals one message and writes it as a single datagram. There is no
// delivery guarantee and no reply tracking here.
func (c *Conn) Send(msg *osc.Message) error {
	data, err := msg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msg.Address, err)
	}

	if _, err := c.conn.WriteTo(data, c.remote); err != nil {
		return fmt.Errorf("send %s: %w", msg.Address, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Send",
		"address":  msg.Address,
		"args":     len(msg.Arguments),
	}).Debug("Datagram sent")

	return nil
}

// LocalAddr returns the local address the endpoint is bound to.
func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Close stops the read loop and closes the socket.
func (c *Conn) Close() error {
	c.cancel()
	return c.conn.Close()
}

// readLoop reads inbound datagrams until the context is cancelled. Short
// read deadlines keep the loop responsive to shutdown.
func (c *Conn) readLoop() {
	buffer := make([]byte, 2048)

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			c.readOne(buffer)
		}
	}
}

func (c *Conn) readOne(buffer []byte) {
	_ = c.conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))

	n, _, err := c.conn.ReadFrom(buffer)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return
		}
		logrus.WithFields(logrus.Fields{
			"function": "readOne",
			"error":    err,
		}).Debug("Read failed")
		return
	}

	packet, err := osc.ParsePacket(string(buffer[:n]))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "readOne",
			"bytes":    n,
			"error":    err,
		}).Debug("Dropping undecodable datagram")
		return
	}

	c.dispatch(packet)
}

// dispatch delivers every message in the packet to the sink, unwrapping
// bundles recursively. The devices reply with plain messages; bundles are
// handled for completeness.
func (c *Conn) dispatch(packet osc.Packet) {
	switch p := packet.(type) {
	case *osc.Message:
		c.mu.RLock()
		sink := c.sink
		c.mu.RUnlock()

		if sink == nil {
			logrus.WithFields(logrus.Fields{
				"function": "dispatch",
				"address":  p.Address,
			}).Debug("Dropping message with no sink")
			return
		}
		sink(p)
	case *osc.Bundle:
		for _, msg := range p.Messages {
			c.dispatch(msg)
		}
		for _, bundle := range p.Bundles {
			c.dispatch(bundle)
		}
	}
}
