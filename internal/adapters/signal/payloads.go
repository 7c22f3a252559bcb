package signal

import (
	"encoding/json"
	"errors"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var errEmptyPayload = errors.New("empty payload")

type registerPayload struct {
	Name string `json:"name" validate:"required"`
}

type joinPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type leavePayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type invitePayload struct {
	TargetID  string `json:"targetId" validate:"required"`
	SessionID string `json:"sessionId" validate:"required"`
}

type rejectPayload struct {
	TargetID string `json:"targetId" validate:"required"`
}

type negotiationPayload struct {
	ReceiverID string          `json:"receiverId" validate:"required"`
	Offer      json.RawMessage `json:"offer"`
	Answer     json.RawMessage `json:"answer"`
	Candidate  json.RawMessage `json:"candidate"`
}

func (p negotiationPayload) body(kind core.Event) json.RawMessage {
	switch kind {
	case core.EventOffer:
		return p.Offer
	case core.EventAnswer:
		return p.Answer
	case core.EventCandidate:
		return p.Candidate
	}
	return nil
}

// decodePayload rejects payloads whose fields are missing or of the wrong
// type before anything is used as a map key or recipient.
func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return errEmptyPayload
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
