package domain

// Notification is a single lifecycle message addressed to one recipient.
// The Task field is a snapshot taken at dispatch time; later mutations of the
// stored row do not retroactively change what was sent.
type Notification struct {
	Recipient UserRef
	Event     TaskEvent
	Task      Task
	Message   string
}
