package domain

// JobView is a single read of a job detail page.
type JobView struct {
	JobID  string
	Viewer string
}
