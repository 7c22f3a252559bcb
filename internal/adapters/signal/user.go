package signal

import (
	"encoding/json"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
)

func (ctl *SignalWSController) handleRegister(id domain.ConnID, raw json.RawMessage) {
	var p registerPayload
	if err := decodePayload(raw, &p); err != nil {
		malformed(id, core.EventRegisterDevice, err)
		return
	}
	ctl.Coord.Register(id, p.Name)
}
