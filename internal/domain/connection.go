// Package domain contains entities without transport or locking, just meta-data
package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxDisplayNameLen = 30

// ConnID is assigned by the transport on connect and never reused while live.
type ConnID string

type Connection struct {
	ID   ConnID `json:"id"`
	Name string `json:"name"`
}

// NewConnection returns a connection carrying the placeholder name until
// its owner registers one.
func NewConnection(id ConnID) *Connection {
	return &Connection{ID: id, Name: PlaceholderName(id)}
}

func PlaceholderName(id ConnID) string {
	return fmt.Sprintf("Unknown (%s)", id)
}

// NormalizeName trims surrounding whitespace and caps the result at
// MaxDisplayNameLen runes. A blank name normalizes to "" and is still a name.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) > MaxDisplayNameLen {
		name = string([]rune(name)[:MaxDisplayNameLen])
	}
	return name
}

func (c *Connection) SetName(raw string) {
	c.Name = NormalizeName(raw)
}
