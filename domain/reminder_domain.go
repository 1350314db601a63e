package domain

var (
	MessageSuccessGetReminders = "reminders retrieved successfully"
	MessageSuccessRunSweep     = "reminder sweep completed"

	MessageFailedGetReminders = "failed to retrieve reminders"
	MessageFailedRunSweep     = "failed to run reminder sweep"
)

type (
	// SweepResult reports the outcome of a daily reminder sweep. At most
	// one notification is dispatched per sweep, for the soonest-expiring
	// qualifying item.
	SweepResult struct {
		Qualifying int              `json:"qualifying"`
		Notified   *ProductResponse `json:"notified,omitempty"`
	}
)
