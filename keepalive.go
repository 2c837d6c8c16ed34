package xmix

import (
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xmix/dialect"
)

// startKeepalive begins the subscription refresh loop: one /xremote
// immediately, then one per interval until Close. The device stops pushing
// state roughly ten seconds after the last refresh, so there is no backoff
// and a failed send is only logged.
func (m *Mixer) startKeepalive() {
	go func() {
		m.sendKeepalive()

		ticker := time.NewTicker(m.options.KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-m.ctx.Done():
				return
			case <-ticker.C:
				m.sendKeepalive()
			}
		}
	}()
}

func (m *Mixer) sendKeepalive() {
	if err := m.conn.Send(osc.NewMessage(dialect.AddrXRemote)); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "sendKeepalive",
			"error":    err,
		}).Warn("Subscription refresh failed")
	}
}
