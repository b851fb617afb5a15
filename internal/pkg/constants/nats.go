package constants

// NATS Subjects
const (
	// Inbound
	SubjectLocationSample = "location.sample" // raw device samples
	SubjectCheckinCreated = "checkin.created" // published by the check-in service

	// Session lifecycle
	SubjectSessionStarted = "location.session.started"
	SubjectSessionStopped = "location.session.stopped"
	SubjectSessionExpired = "location.session.expired"

	// Position updates
	SubjectPositionUpdated = "location.position.updated"
)

// NATS queue groups
const (
	QueueLocationService = "location-service"
)
