package app

import (
	"fmt"

	"github.com/dkeye/Intercom/internal/domain"
)

type BackpressureAction int

const (
	DropMessage BackpressureAction = iota
	CloseConnection
)

// Policy decides what happens to a connection whose send buffer is full.
type Policy interface {
	OnBackPressure(id domain.ConnID) BackpressureAction
}

type SimplePolicy struct {
	Action BackpressureAction
}

func (p SimplePolicy) OnBackPressure(domain.ConnID) BackpressureAction {
	return p.Action
}

// ParsePolicy maps the slow_consumer config value to a policy.
func ParsePolicy(name string) (SimplePolicy, error) {
	switch name {
	case "", "drop":
		return SimplePolicy{Action: DropMessage}, nil
	case "close":
		return SimplePolicy{Action: CloseConnection}, nil
	default:
		return SimplePolicy{}, fmt.Errorf("unknown slow consumer policy %q", name)
	}
}
