package core

import (
	"encoding/json"

	"github.com/dkeye/Intercom/internal/domain"
)

type Event string

// Inbound.
const (
	EventRegisterDevice  Event = "register-device"
	EventJoinSession     Event = "join-session"
	EventInviteToSession Event = "invite-to-session"
	EventAddParticipant  Event = "add-participant"
	EventRejectInvite    Event = "reject-invite"
	EventLeaveSession    Event = "leave-session"
	EventWhoAmI          Event = "whoami"
)

// Outbound.
const (
	EventUserList           Event = "user-list"
	EventParticipantsUpdate Event = "participants-update"
	EventSessionInvite      Event = "session-invite"
	EventInviteRejected     Event = "invite-rejected"
	EventCreateOffer        Event = "create-offer"
	EventParticipantLeft    Event = "participant-left"
	EventForcePeerClose     Event = "force-peer-close"
)

// Negotiation events travel both ways; the body is opaque to the server.
const (
	EventOffer     Event = "offer"
	EventAnswer    Event = "answer"
	EventCandidate Event = "candidate"
)

// IsNegotiation reports whether e is one of the relayed handshake events.
func (e Event) IsNegotiation() bool {
	return e == EventOffer || e == EventAnswer || e == EventCandidate
}

// Envelope is the frame layout in both directions.
type Envelope struct {
	Type    Event           `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type WhoAmI struct {
	ID   domain.ConnID `json:"id"`
	Name string        `json:"name"`
}

type SessionInvite struct {
	From      domain.ConnID    `json:"from"`
	SessionID domain.SessionID `json:"sessionId"`
}

type InviteRejected struct {
	UserID domain.ConnID `json:"userId"`
}

type CreateOffer struct {
	TargetID domain.ConnID `json:"targetId"`
}

type ParticipantLeft struct {
	UserID domain.ConnID `json:"userId"`
}

type ForcePeerClose struct {
	UserID domain.ConnID `json:"userId"`
}

// NegotiationRelay is an offer/answer/candidate re-stamped with its sender.
// It encodes as {"senderId": ..., "<kind>": <body>}.
type NegotiationRelay struct {
	SenderID domain.ConnID
	Kind     Event
	Body     json.RawMessage
}

func (n NegotiationRelay) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"senderId":     n.SenderID,
		string(n.Kind): n.Body,
	})
}
