package ports

// NotificationSink receives the user-facing outcome of every core
// operation: exactly one Started followed by exactly one Succeeded or
// Failed per call. Messages are short and machine-usable; rendering and
// localization are the hosting UI's concern.
type NotificationSink interface {
	Started(operation, orderID string)
	Succeeded(operation, orderID, message string)
	Failed(operation, orderID string, err error)
}

// SessionListener is notified when the session ends outside an explicit
// logout (credential rejected by a remote call). The hosting UI reacts,
// typically by redirecting to the login screen; that action is an external
// collaborator, not part of the engine.
type SessionListener interface {
	SessionEnded(reason string)
}
