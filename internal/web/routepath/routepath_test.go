package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Login != "/login" {
		t.Fatalf("Login = %q", Login)
	}
	if Logout != "/logout" {
		t.Fatalf("Logout = %q", Logout)
	}
	if Dashboard != "/app/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if PostJob != "/app/post-job" {
		t.Fatalf("PostJob = %q", PostJob)
	}
}

func TestJobRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := Job("J1"); got != "/jobs/J1" {
		t.Fatalf("Job() = %q", got)
	}
	if got := JobApply("J1"); got != "/jobs/J1/apply" {
		t.Fatalf("JobApply() = %q", got)
	}
	if got := JobApplyCancel("J1"); got != "/jobs/J1/apply/cancel" {
		t.Fatalf("JobApplyCancel() = %q", got)
	}
	if got := JobApplyRetry("J1"); got != "/jobs/J1/apply/retry" {
		t.Fatalf("JobApplyRetry() = %q", got)
	}
}
