package domain

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending  TaskStatus = "PENDING"
	TaskStatusApproved TaskStatus = "APPROVED"
	TaskStatusRejected TaskStatus = "REJECTED"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusApproved, TaskStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusApproved || s == TaskStatusRejected
}

// TaskPriority represents the urgency of a task. Fixed at creation.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Decision is the manager/admin action that resolves a pending task.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Status returns the terminal status the decision resolves to.
func (d Decision) Status() TaskStatus {
	if d == DecisionApprove {
		return TaskStatusApproved
	}
	return TaskStatusRejected
}

// TaskEvent tags a lifecycle transition for notification dispatch.
type TaskEvent string

const (
	TaskEventCreated  TaskEvent = "TASK_CREATED"
	TaskEventApproved TaskEvent = "TASK_APPROVED"
	TaskEventRejected TaskEvent = "TASK_REJECTED"
)

func (e TaskEvent) String() string { return string(e) }

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleManager UserRole = "MANAGER"
	UserRoleUser    UserRole = "USER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleUser:
		return true
	}
	return false
}

// CanDecide reports whether the role is allowed to approve or reject tasks.
func (r UserRole) CanDecide() bool {
	return r == UserRoleManager || r == UserRoleAdmin
}
