package user

import "github.com/BruksfildServices01/shift-scheduler/internal/audit"

// Auditor receives user mutation events. *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

func userEvent(action string, actorID uint, userID uint, meta any) audit.Event {
	return audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "user",
		EntityID: &userID,
		Metadata: meta,
	}
}
