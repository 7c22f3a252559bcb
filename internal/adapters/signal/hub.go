package signal

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/dkeye/Intercom/internal/app"
	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Hub maps live connection ids to their transport endpoint and implements
// core.Relay on top of them. Delivery is best effort: a full buffer is handed
// to the Policy, anything else is dropped.
type Hub struct {
	policy app.Policy

	mu    sync.RWMutex
	conns map[domain.ConnID]core.SignalConnection
}

func NewHub(policy app.Policy) *Hub {
	if policy == nil {
		policy = app.SimplePolicy{Action: app.DropMessage}
	}
	return &Hub{
		policy: policy,
		conns:  make(map[domain.ConnID]core.SignalConnection),
	}
}

func (h *Hub) Add(id domain.ConnID, conn core.SignalConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = conn
}

func (h *Hub) Remove(id domain.ConnID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) SendTo(id domain.ConnID, event core.Event, payload any) {
	frame, err := Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Str("event", string(event)).Msg("encode event")
		return
	}
	h.mu.RLock()
	conn, ok := h.conns[id]
	h.mu.RUnlock()
	if !ok {
		log.Debug().Str("module", "signal").Str("conn", string(id)).Str("event", string(event)).Msg("drop send to unknown connection")
		return
	}
	h.deliver(id, conn, frame)
}

func (h *Hub) BroadcastAll(event core.Event, payload any) {
	frame, err := Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Str("event", string(event)).Msg("encode event")
		return
	}
	h.mu.RLock()
	targets := lo.Entries(h.conns)
	h.mu.RUnlock()
	for _, t := range targets {
		h.deliver(t.Key, t.Value, frame)
	}
}

func (h *Hub) deliver(id domain.ConnID, conn core.SignalConnection, frame core.Frame) {
	err := conn.TrySend(frame)
	switch {
	case err == nil:
	case errors.Is(err, ErrBackpressure):
		action := h.policy.OnBackPressure(id)
		log.Warn().Str("module", "signal").Str("conn", string(id)).Int("action", int(action)).Msg("send buffer full")
		if action == app.CloseConnection {
			conn.Close()
		}
	default:
		log.Debug().Err(err).Str("module", "signal").Str("conn", string(id)).Msg("send dropped")
	}
}

// Encode wraps payload into the wire envelope.
func Encode(event core.Event, payload any) (core.Frame, error) {
	env := core.Envelope{Type: event}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}
