package domain

import "github.com/google/uuid"

// Actor is the authenticated principal performing an operation. It is built
// from verified token claims by the HTTP layer and passed explicitly, so
// services never reach for ambient session state.
type Actor struct {
	ID           uuid.UUID
	Department   string
	IsAdmin      bool
	IsTeamLeader bool
}

func (a Actor) Role() string {
	switch {
	case a.IsAdmin:
		return "admin"
	case a.IsTeamLeader:
		return "team_leader"
	default:
		return "employee"
	}
}
