package app

import (
	"testing"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/dkeye/Intercom/internal/domain"
	"github.com/dkeye/Intercom/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestCoordinator_Invite_RelaysToTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	c := NewCoordinator(NewRegistry(), relay)

	// Given the target is invited twice, every invite is delivered
	relay.EXPECT().
		SendTo(domain.ConnID("B"), core.EventSessionInvite, core.SessionInvite{From: "A", SessionID: "room-1"}).
		Times(2)

	c.Invite("A", "B", "room-1")
	c.Invite("A", "B", "room-1")

	// And malformed invites never reach the relay
	c.Invite("A", "", "room-1")
	c.Invite("A", "B", "")
}

func TestCoordinator_Invite_TargetAlreadyInSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	c := NewCoordinator(NewRegistry(), relay)

	relay.EXPECT().SendTo(domain.ConnID("B"), core.EventParticipantsUpdate, gomock.Any())
	c.JoinSession("B", "busy")

	// The invite is still relayed; stacking is left to the client
	relay.EXPECT().
		SendTo(domain.ConnID("B"), core.EventSessionInvite, core.SessionInvite{From: "A", SessionID: "room-1"}).
		Times(1)
	c.Invite("A", "B", "room-1")
}

func TestCoordinator_RejectInvite_RelaysSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	c := NewCoordinator(NewRegistry(), relay)

	relay.EXPECT().
		SendTo(domain.ConnID("A"), core.EventInviteRejected, core.InviteRejected{UserID: "B"}).
		Times(1)

	c.RejectInvite("B", "A")
	c.RejectInvite("B", "")
}

func TestCoordinator_Register_UnknownConnectionDoesNotBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	c := NewCoordinator(NewRegistry(), relay)

	relay.EXPECT().BroadcastAll(gomock.Any(), gomock.Any()).Times(0)

	c.Register("ghost", "Name")
	c.WhoAmI("ghost")
}
