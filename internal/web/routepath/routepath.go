// Package routepath centralizes web route constants and builders.
package routepath

// Top-level public routes.
const (
	Root     = "/"
	Login    = "/login"
	Register = "/register"
	Logout   = "/logout"
	Jobs     = "/jobs"
)

// JobsPrefix mounts the public job browsing module.
const JobsPrefix = "/jobs/"

// AppPrefix is the root of all authenticated routes.
const AppPrefix = "/app/"

// Authenticated routes.
const (
	Dashboard    = "/app/dashboard"
	Applications = "/app/applications"
	Profile      = "/app/profile"
	PostJob      = "/app/post-job"
)

// Job builds the details path for a posting.
func Job(jobID string) string {
	return "/jobs/" + jobID
}

// JobApply builds the apply-form path for a posting.
func JobApply(jobID string) string {
	return "/jobs/" + jobID + "/apply"
}

// JobApplyCancel builds the cancel path for a posting's draft.
func JobApplyCancel(jobID string) string {
	return "/jobs/" + jobID + "/apply/cancel"
}

// JobApplyRetry builds the retry path for a posting's failed draft.
func JobApplyRetry(jobID string) string {
	return "/jobs/" + jobID + "/apply/retry"
}
