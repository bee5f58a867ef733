package shift

import "github.com/BruksfildServices01/shift-scheduler/internal/audit"

// Auditor receives shift mutation events. *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

func shiftEvent(action string, actorID uint, shiftID uint, meta any) audit.Event {
	ev := audit.Event{
		Action:   action,
		Entity:   "shift",
		EntityID: &shiftID,
		Metadata: meta,
	}
	if actorID != 0 {
		ev.UserID = &actorID
	}
	return ev
}
