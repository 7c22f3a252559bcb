package signal

import (
	"encoding/json"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
)

// handleNegotiation relays offer/answer/candidate bodies untouched; only the
// receiver id is read.
func (ctl *SignalWSController) handleNegotiation(id domain.ConnID, kind core.Event, raw json.RawMessage) {
	var p negotiationPayload
	if err := decodePayload(raw, &p); err != nil {
		malformed(id, kind, err)
		return
	}
	ctl.Coord.ForwardNegotiation(id, domain.ConnID(p.ReceiverID), kind, p.body(kind))
}
