package signal

import (
	"testing"

	"github.com/dkeye/Intercom/internal/app"
	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestEncode_Envelope(t *testing.T) {
	req := require.New(t)

	frame, err := Encode(core.EventCreateOffer, core.CreateOffer{TargetID: "A"})
	req.NoError(err)
	req.JSONEq(`{"type":"create-offer","payload":{"targetId":"A"}}`, string(frame))

	frame, err = Encode(eventPong, nil)
	req.NoError(err)
	req.JSONEq(`{"type":"pong"}`, string(frame))
}

func TestHub_SendToAndBroadcast(t *testing.T) {
	req := require.New(t)
	hub := NewHub(nil)
	a, b := &fakeConn{}, &fakeConn{}
	hub.Add("A", a)
	hub.Add("B", b)

	// When sending to one, to an unknown id and to everyone
	hub.SendTo("A", core.EventParticipantLeft, core.ParticipantLeft{UserID: "C"})
	hub.SendTo("ghost", core.EventParticipantLeft, core.ParticipantLeft{UserID: "C"})
	hub.BroadcastAll(core.EventForcePeerClose, core.ForcePeerClose{UserID: "C"})

	// Then A sees both and B only the broadcast
	gotA := a.take()
	req.Len(gotA, 2)
	req.Equal(core.EventParticipantLeft, gotA[0].Type)
	req.JSONEq(`{"userId":"C"}`, string(gotA[0].Payload))
	req.Equal(core.EventForcePeerClose, gotA[1].Type)

	gotB := b.take()
	req.Len(gotB, 1)
	req.Equal(core.EventForcePeerClose, gotB[0].Type)

	// When B goes away it no longer receives broadcasts
	hub.Remove("B")
	hub.BroadcastAll(core.EventUserList, []domain.Connection{})
	req.Empty(b.take())
	req.Len(a.take(), 1)
	req.Equal(1, hub.Len())
}

func TestHub_Backpressure(t *testing.T) {
	cases := []struct {
		name       string
		policy     app.Policy
		wantClosed bool
	}{
		{name: "drop", policy: app.SimplePolicy{Action: app.DropMessage}, wantClosed: false},
		{name: "close", policy: app.SimplePolicy{Action: app.CloseConnection}, wantClosed: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			hub := NewHub(tc.policy)
			slow, fine := &fakeConn{full: true}, &fakeConn{}
			hub.Add("slow", slow)
			hub.Add("fine", fine)

			hub.BroadcastAll(core.EventForcePeerClose, core.ForcePeerClose{UserID: "x"})

			req.Equal(tc.wantClosed, slow.isClosed())
			req.Empty(slow.take())
			req.Len(fine.take(), 1)
		})
	}
}

func TestHub_ClosedConnectionIsSkipped(t *testing.T) {
	req := require.New(t)
	hub := NewHub(app.SimplePolicy{Action: app.CloseConnection})
	gone := &fakeConn{closed: true}
	hub.Add("gone", gone)

	hub.SendTo("gone", core.EventCreateOffer, core.CreateOffer{TargetID: "A"})

	req.Empty(gone.take())
}
