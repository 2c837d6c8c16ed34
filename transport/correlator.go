package transport

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/sirupsen/logrus"
)

// ErrQueryTimeout is returned when a query's reply does not arrive within
// its timeout window. It is recoverable; the caller decides whether to
// reissue the query.
var ErrQueryTimeout = errors.New("query timed out")

const (
	// DefaultQueryTimeout bounds general state queries.
	DefaultQueryTimeout = 1 * time.Second

	// DefaultProbeTimeout bounds the short identification probes used for
	// family detection.
	DefaultProbeTimeout = 500 * time.Millisecond
)

// Correlator matches outbound queries to inbound replies by wire address.
// It installs itself as the Conn's sink; all inbound traffic flows through
// it and anything not matching a pending query is dropped.
//
// Resolution is single-shot: the first matching reply resolves every waiter
// registered under the address and removes the entry. Concurrent queries to
// the same address therefore share the one in-flight reply instead of
// racing for it.
type Correlator struct {
	conn *Conn

	mu      sync.Mutex
	waiters map[string][]chan *osc.Message
}

// NewCorrelator wires a Correlator onto the connection.
func NewCorrelator(conn *Conn) *Correlator {
	c := &Correlator{
		conn:    conn,
		waiters: make(map[string][]chan *osc.Message),
	}
	conn.SetSink(c.dispatch)
	return c
}

// Query registers a waiter for addr, then sends a zero-argument query
// datagram to addr and blocks until the reply arrives or the timeout fires.
// The waiter is registered before the send so a fast reply cannot slip past
// it.
func (c *Correlator) Query(addr string, timeout time.Duration) (*osc.Message, error) {
	ch := make(chan *osc.Message, 1)

	c.mu.Lock()
	c.waiters[addr] = append(c.waiters[addr], ch)
	c.mu.Unlock()

	if err := c.conn.Send(osc.NewMessage(addr)); err != nil {
		c.remove(addr, ch)
		return nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case msg := <-ch:
		return msg, nil
	case <-timer.C:
		c.remove(addr, ch)
		// A reply may have resolved the waiter between the timer firing
		// and the removal.
		select {
		case msg := <-ch:
			return msg, nil
		default:
		}
		return nil, fmt.Errorf("%s: %w", addr, ErrQueryTimeout)
	}
}

// Pending reports how many addresses currently have outstanding queries.
func (c *Correlator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.waiters)
}

// dispatch resolves the waiters matching an inbound message and drops
// everything else.
func (c *Correlator) dispatch(msg *osc.Message) {
	c.mu.Lock()
	key, waiters := c.match(msg.Address)
	if waiters != nil {
		delete(c.waiters, key)
	}
	c.mu.Unlock()

	if waiters == nil {
		logrus.WithFields(logrus.Fields{
			"function": "dispatch",
			"address":  msg.Address,
		}).Debug("Dropping unmatched reply")
		return
	}

	for _, ch := range waiters {
		// Buffered, single-shot: never blocks, never delivers twice.
		ch <- msg
	}
}

// match finds the pending entry for an inbound address: exact equality
// first, then a registered address that is a '/'-boundary prefix of the
// inbound one, for devices that reply on a sub-path of the queried address.
// Caller holds the mutex.
func (c *Correlator) match(addr string) (string, []chan *osc.Message) {
	if waiters, ok := c.waiters[addr]; ok {
		return addr, waiters
	}
	for key, waiters := range c.waiters {
		if strings.HasPrefix(addr, key) && len(addr) > len(key) && addr[len(key)] == '/' {
			return key, waiters
		}
	}
	return "", nil
}

// remove drops one waiter from an address entry, deleting the entry when it
// empties. A no-op when dispatch already resolved the entry.
func (c *Correlator) remove(addr string, ch chan *osc.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	waiters := c.waiters[addr]
	for i, w := range waiters {
		if w == ch {
			waiters = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(waiters) == 0 {
		delete(c.waiters, addr)
	} else {
		c.waiters[addr] = waiters
	}
}
