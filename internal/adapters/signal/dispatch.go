package signal

import (
	"encoding/json"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	eventPing core.Event = "ping"
	eventPong core.Event = "pong"
)

func (ctl *SignalWSController) handleSignal(id domain.ConnID, data []byte) {
	var env core.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Debug().Err(err).Str("module", "signal").Str("conn", string(id)).Msg("bad json")
		return
	}

	switch env.Type {
	case core.EventRegisterDevice:
		ctl.handleRegister(id, env.Payload)
	case core.EventJoinSession:
		ctl.handleJoin(id, env.Payload)
	case core.EventLeaveSession:
		ctl.handleLeave(id, env.Payload)
	case core.EventInviteToSession, core.EventAddParticipant:
		ctl.handleInvite(id, env.Type, env.Payload)
	case core.EventRejectInvite:
		ctl.handleReject(id, env.Payload)
	case core.EventOffer, core.EventAnswer, core.EventCandidate:
		ctl.handleNegotiation(id, env.Type, env.Payload)
	case core.EventWhoAmI:
		ctl.Coord.WhoAmI(id)
	case eventPing:
		ctl.Hub.SendTo(id, eventPong, nil)
	default:
		log.Debug().Str("module", "signal").Str("conn", string(id)).Str("type", string(env.Type)).Msg("unknown signal")
	}
}

func malformed(id domain.ConnID, event core.Event, err error) {
	log.Debug().Err(err).Str("module", "signal").Str("conn", string(id)).Str("type", string(event)).Msg("malformed payload ignored")
}
