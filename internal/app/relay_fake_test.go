package app

import (
	"sync"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/samber/lo"
)

const everyone domain.ConnID = "*"

type sent struct {
	To      domain.ConnID
	Event   core.Event
	Payload any
}

// recordingRelay keeps every send in call order. Broadcasts are recorded
// with To == everyone.
type recordingRelay struct {
	mu   sync.Mutex
	msgs []sent
}

func (r *recordingRelay) SendTo(id domain.ConnID, event core.Event, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, sent{To: id, Event: event, Payload: payload})
}

func (r *recordingRelay) BroadcastAll(event core.Event, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, sent{To: everyone, Event: event, Payload: payload})
}

// take returns what was sent since the last call.
func (r *recordingRelay) take() []sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.msgs
	r.msgs = nil
	return out
}

func only(msgs []sent, event core.Event) []sent {
	return lo.Filter(msgs, func(m sent, _ int) bool { return m.Event == event })
}

func offers(msgs []sent) []Assignment {
	return lo.Map(only(msgs, core.EventCreateOffer), func(m sent, _ int) Assignment {
		return Assignment{Initiator: m.To, Target: m.Payload.(core.CreateOffer).TargetID}
	})
}

func recipients(msgs []sent) []domain.ConnID {
	return lo.Map(msgs, func(m sent, _ int) domain.ConnID { return m.To })
}

func newTestCoordinator() (*Coordinator, *recordingRelay) {
	relay := &recordingRelay{}
	return NewCoordinator(NewRegistry(), relay), relay
}
