package app

import (
	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
)

// OnConnect registers a fresh connection, tells it who it is and pushes the
// new roster to everyone.
func (c *Coordinator) OnConnect(connID domain.ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn := c.Registry.Connect(connID)
	c.Relay.SendTo(connID, core.EventWhoAmI, core.WhoAmI{ID: conn.ID, Name: conn.Name})
	c.broadcastUserList()
}

// Register sets the display name of connID. Rejected names produce no
// broadcast.
func (c *Coordinator) Register(connID domain.ConnID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.Registry.Register(connID, name) {
		return
	}
	c.broadcastUserList()
}

// WhoAmI re-sends the identity of connID to itself.
func (c *Coordinator) WhoAmI(connID domain.ConnID) {
	conn, ok := c.Registry.Get(connID)
	if !ok {
		return
	}
	c.Relay.SendTo(connID, core.EventWhoAmI, core.WhoAmI{ID: conn.ID, Name: conn.Name})
}

// OnDisconnect tears connID out of everything. Peers are told to close their
// media link first, then every session it was in is cleaned up like a leave,
// and finally the roster goes out once. A second call for the same id finds
// nothing and emits nothing.
func (c *Coordinator) OnDisconnect(connID domain.ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.Registry.Disconnect(connID)
	joined := c.sessionsOf(connID)
	if !removed && len(joined) == 0 {
		c.logger.Debug().Str("conn", string(connID)).Msg("disconnect for unknown connection")
		return
	}

	c.Relay.BroadcastAll(core.EventForcePeerClose, core.ForcePeerClose{UserID: connID})
	for _, s := range joined {
		c.removeParticipant(s, connID)
	}
	c.broadcastUserList()
	c.logger.Info().Str("conn", string(connID)).Int("sessions", len(joined)).Msg("connection cleaned up")
}

func (c *Coordinator) broadcastUserList() {
	c.Relay.BroadcastAll(core.EventUserList, c.Registry.Snapshot())
}
