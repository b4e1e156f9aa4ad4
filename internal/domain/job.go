package domain

// JobStatus is the server-owned lifecycle of a customer job:
// posted -> in_progress -> completed | cancelled.
type JobStatus string

const (
	JobPosted     JobStatus = "posted"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// Job is a customer-initiated request for service. It is independent of Post.
type Job struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Status     JobStatus `json:"status"`
	Budget     float64   `json:"budget"`
	Applicants int       `json:"applicants"`
	PostedDate string    `json:"postedDate"`
	WorkerName string    `json:"workerName,omitempty"`
}

// Active reports whether the job is still open on the customer's board.
func (s JobStatus) Active() bool {
	return s == JobPosted || s == JobInProgress
}

// Closed reports whether the job reached a terminal state.
func (s JobStatus) Closed() bool {
	return s == JobCompleted || s == JobCancelled
}

func (s JobStatus) Label() string {
	switch s {
	case JobPosted:
		return "Posted"
	case JobInProgress:
		return "In Progress"
	case JobCompleted:
		return "Completed"
	case JobCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// BudgetType says how a budget amount is charged.
type BudgetType string

const (
	BudgetHourly BudgetType = "hourly"
	BudgetFixed  BudgetType = "fixed"
)

type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyToday     Urgency = "today"
	UrgencyThisWeek  Urgency = "this_week"
	UrgencyFlexible  Urgency = "flexible"
)

type HireBudget struct {
	Amount float64    `json:"amount"`
	Type   BudgetType `json:"type"`
}

// HireRequest asks a specific worker to take on a job.
type HireRequest struct {
	WorkerID    string      `json:"workerId"`
	CustomerID  string      `json:"customerId"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Urgency     Urgency     `json:"urgency"`
	Budget      *HireBudget `json:"budget,omitempty"`
}
