//go:generate go run go.uber.org/mock/mockgen -source=relay.go -destination=../mocks/mock_relay.go -package=mocks
package core

import "github.com/dkeye/Intercom/internal/domain"

// Relay delivers events to live connections. Every call is fire-and-forget:
// sends to unknown ids are dropped and nothing waits for acknowledgment.
type Relay interface {
	SendTo(id domain.ConnID, event Event, payload any)
	BroadcastAll(event Event, payload any)
}
