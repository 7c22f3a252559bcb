package signal

import (
	"encoding/json"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleJoin(id domain.ConnID, raw json.RawMessage) {
	var p joinPayload
	if err := decodePayload(raw, &p); err != nil {
		malformed(id, core.EventJoinSession, err)
		return
	}
	ctl.Coord.JoinSession(id, domain.SessionID(p.SessionID))
}

func (ctl *SignalWSController) handleLeave(id domain.ConnID, raw json.RawMessage) {
	var p leavePayload
	if err := decodePayload(raw, &p); err != nil {
		malformed(id, core.EventLeaveSession, err)
		return
	}
	ctl.Coord.LeaveSession(id, domain.SessionID(p.SessionID))
}

func (ctl *SignalWSController) handleInvite(id domain.ConnID, event core.Event, raw json.RawMessage) {
	var p invitePayload
	if err := decodePayload(raw, &p); err != nil {
		malformed(id, event, err)
		return
	}
	if !ctl.Invites.Allow(id) {
		log.Debug().Str("module", "signal").Str("conn", string(id)).Str("target", p.TargetID).Msg("invite rate limited")
		return
	}
	ctl.Coord.Invite(id, domain.ConnID(p.TargetID), domain.SessionID(p.SessionID))
}

func (ctl *SignalWSController) handleReject(id domain.ConnID, raw json.RawMessage) {
	var p rejectPayload
	if err := decodePayload(raw, &p); err != nil {
		malformed(id, core.EventRejectInvite, err)
		return
	}
	ctl.Coord.RejectInvite(id, domain.ConnID(p.TargetID))
}
