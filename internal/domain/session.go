package domain

import (
	"slices"

	"github.com/samber/lo"
)

type SessionID string

// Session is one active call. A session with no participants must not be
// kept around; the owner deletes it as soon as Empty reports true.
type Session struct {
	ID   SessionID
	Host ConnID

	participants map[ConnID]struct{}
}

func NewSession(id SessionID, host ConnID) *Session {
	return &Session{
		ID:           id,
		Host:         host,
		participants: make(map[ConnID]struct{}),
	}
}

// Add reports whether id was not already a participant.
func (s *Session) Add(id ConnID) bool {
	if _, ok := s.participants[id]; ok {
		return false
	}
	s.participants[id] = struct{}{}
	return true
}

// Remove reports whether id was a participant.
func (s *Session) Remove(id ConnID) bool {
	if _, ok := s.participants[id]; !ok {
		return false
	}
	delete(s.participants, id)
	return true
}

func (s *Session) Has(id ConnID) bool {
	_, ok := s.participants[id]
	return ok
}

func (s *Session) Len() int    { return len(s.participants) }
func (s *Session) Empty() bool { return len(s.participants) == 0 }

// Participants returns the member ids sorted ascending.
func (s *Session) Participants() []ConnID {
	ids := lo.Keys(s.participants)
	slices.Sort(ids)
	return ids
}
