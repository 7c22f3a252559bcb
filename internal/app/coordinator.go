package app

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// SessionInfo is a read-only view of a session for APIs.
type SessionInfo struct {
	ID           domain.SessionID `json:"id"`
	Host         domain.ConnID    `json:"host"`
	Participants []domain.ConnID  `json:"participants"`
}

// Coordinator owns the Session table and drives every broadcast that follows a
// change to either table. All operations are serialized by mu, so events from
// different connections never interleave halfway through a cleanup.
type Coordinator struct {
	Registry *Registry
	Relay    core.Relay

	mu       sync.Mutex
	sessions map[domain.SessionID]*domain.Session
	logger   zerolog.Logger
}

func NewCoordinator(reg *Registry, relay core.Relay) *Coordinator {
	return &Coordinator{
		Registry: reg,
		Relay:    relay,
		sessions: make(map[domain.SessionID]*domain.Session),
		logger:   log.With().Str("module", "app.coordinator").Logger(),
	}
}

// JoinSession adds connID to sessionID, creating the session with connID as
// host when it does not exist yet.
func (c *Coordinator) JoinSession(connID domain.ConnID, sessionID domain.SessionID) {
	if sessionID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[sessionID]
	if !ok {
		s = domain.NewSession(sessionID, connID)
		c.sessions[sessionID] = s
		c.logger.Info().Str("session", string(sessionID)).Str("host", string(connID)).Msg("session created")
	}
	if s.Add(connID) {
		c.logger.Info().Str("session", string(sessionID)).Str("conn", string(connID)).Int("size", s.Len()).Msg("joined session")
	}

	c.broadcastParticipants(s)
	c.assignNegotiations(s)
}

// LeaveSession removes connID from sessionID. Unknown sessions and
// non-members are ignored, which makes a repeated leave harmless.
func (c *Coordinator) LeaveSession(connID domain.ConnID, sessionID domain.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[sessionID]
	if !ok {
		return
	}
	c.removeParticipant(s, connID)
}

// Invite relays a session invite to targetID. No state changes; the target's
// current sessions are not checked.
func (c *Coordinator) Invite(fromID, targetID domain.ConnID, sessionID domain.SessionID) {
	if targetID == "" || sessionID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if busy := c.sessionsOf(targetID); len(busy) > 0 {
		c.logger.Debug().Str("from", string(fromID)).Str("target", string(targetID)).Int("target_sessions", len(busy)).Msg("inviting a target already in a session")
	}
	c.Relay.SendTo(targetID, core.EventSessionInvite, core.SessionInvite{From: fromID, SessionID: sessionID})
}

// RejectInvite tells targetID that fromID declined its invite.
func (c *Coordinator) RejectInvite(fromID, targetID domain.ConnID) {
	if targetID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Relay.SendTo(targetID, core.EventInviteRejected, core.InviteRejected{UserID: fromID})
}

// ForwardNegotiation routes an offer, answer or candidate to receiverID,
// stamping the sender. The body is never inspected.
func (c *Coordinator) ForwardNegotiation(senderID, receiverID domain.ConnID, kind core.Event, body json.RawMessage) {
	if receiverID == "" || len(body) == 0 || string(body) == "null" || !kind.IsNegotiation() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Relay.SendTo(receiverID, kind, core.NegotiationRelay{SenderID: senderID, Kind: kind, Body: body})
}

func (c *Coordinator) Session(id domain.SessionID) (SessionInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if !ok {
		return SessionInfo{}, false
	}
	return sessionInfo(s), true
}

// Sessions lists every active session ordered by id.
func (c *Coordinator) Sessions() []SessionInfo {
	c.mu.Lock()
	out := lo.MapToSlice(c.sessions, func(_ domain.SessionID, s *domain.Session) SessionInfo {
		return sessionInfo(s)
	})
	c.mu.Unlock()
	slices.SortFunc(out, func(a, b SessionInfo) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}

func sessionInfo(s *domain.Session) SessionInfo {
	return SessionInfo{ID: s.ID, Host: s.Host, Participants: s.Participants()}
}

// removeParticipant is the shared leave/disconnect cleanup. Caller holds mu.
func (c *Coordinator) removeParticipant(s *domain.Session, connID domain.ConnID) {
	if !s.Remove(connID) {
		return
	}
	c.logger.Info().Str("session", string(s.ID)).Str("conn", string(connID)).Int("size", s.Len()).Msg("left session")

	c.sendToSession(s, core.EventParticipantLeft, core.ParticipantLeft{UserID: connID})

	if s.Empty() {
		delete(c.sessions, s.ID)
		c.logger.Info().Str("session", string(s.ID)).Msg("session closed")
		return
	}
	c.broadcastParticipants(s)
	c.assignNegotiations(s)
}

// sessionsOf returns the sessions containing connID. Caller holds mu.
func (c *Coordinator) sessionsOf(connID domain.ConnID) []*domain.Session {
	out := lo.Filter(lo.Values(c.sessions), func(s *domain.Session, _ int) bool {
		return s.Has(connID)
	})
	slices.SortFunc(out, func(a, b *domain.Session) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}

func (c *Coordinator) sendToSession(s *domain.Session, event core.Event, payload any) {
	for _, id := range s.Participants() {
		c.Relay.SendTo(id, event, payload)
	}
}

func (c *Coordinator) broadcastParticipants(s *domain.Session) {
	c.sendToSession(s, core.EventParticipantsUpdate, s.Participants())
}

func (c *Coordinator) assignNegotiations(s *domain.Session) {
	plan := PlanNegotiations(s.Participants())
	for _, a := range plan {
		c.Relay.SendTo(a.Initiator, core.EventCreateOffer, core.CreateOffer{TargetID: a.Target})
	}
	if len(plan) > 0 {
		c.logger.Debug().Str("session", string(s.ID)).Int("pairs", len(plan)).Msg("negotiations assigned")
	}
}
