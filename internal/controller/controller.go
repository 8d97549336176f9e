package controller

// Refresher triggers an immediate data refresh cycle outside the regular
// polling cadence. The UI uses it for the manual retry action.
type Refresher interface {
	Kick()
}
