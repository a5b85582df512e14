package store

// Action represents a single typed event flowing through the dispatch
// funnel: a user intent or an asynchronous result. Reducers type-switch
// over the concrete action; ActionName is used for logging only.
type Action interface {
	// ActionName returns the action's label (e.g., "deck/addCard").
	ActionName() string
}
