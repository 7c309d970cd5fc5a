package templates

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<h1>Welcome, {{.Name}}!</h1>
<p>Role: {{.Role}}</p>
<ul class="dashboard-grid">
  <li><a href="/app/profile">Profile</a> — view and update your profile information</li>
  <li><a href="/app/applications">Applications</a> — {{if .IsJobSeeker}}view your job applications{{else}}manage job applications{{end}}</li>
  {{if .IsEmployer}}<li><a href="/app/post-job">Post Job</a> — create a new job posting</li>{{end}}
  <li><a href="/jobs">Browse Jobs</a></li>
</ul>
`))

type dashboardData struct {
	Name        string
	Role        domain.Role
	IsJobSeeker bool
	IsEmployer  bool
}

// DashboardPage renders the signed-in landing fragment.
func DashboardPage(identity domain.Identity) templ.Component {
	return fragment(dashboardTmpl, dashboardData{
		Name:        identity.Name,
		Role:        identity.Role,
		IsJobSeeker: identity.Role == domain.RoleJobSeeker,
		IsEmployer:  identity.Role == domain.RoleEmployer,
	})
}

var applicationsTmpl = template.Must(template.New("applications").Parse(`<h1>{{.Title}}</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if not .Applications}}<p>No applications found.</p>{{end}}
<ul class="applications-list">
{{range .Applications}}
  <li>
    <h3>{{with .Job}}{{.Title}}{{else}}Job Title{{end}}</h3>
    <p>{{with .Job}}{{.Company}} · {{.Location}}{{end}}</p>
    <span class="badge">{{.Status}}</span>
    <blockquote>{{.CoverLetter}}</blockquote>
    {{if .Notes}}<p class="notes">{{.Notes}}</p>{{end}}
  </li>
{{end}}
</ul>
`))

// ApplicationsView carries the applications page state.
type ApplicationsView struct {
	Title        string
	Applications []jobboard.Application
	Error        string
}

// ApplicationsPage renders the applications list fragment.
func ApplicationsPage(view ApplicationsView) templ.Component {
	return fragment(applicationsTmpl, view)
}

var profileTmpl = template.Must(template.New("profile").Parse(`<h1>My Profile</h1>
<p>Role: {{.Role}}</p>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
<form method="post" action="/app/profile">
  <label>Full Name <input type="text" name="name" value="{{.Name}}" required></label>
  <label>Email <input type="email" name="email" value="{{.Email}}" disabled></label>
  <small>Email cannot be changed</small>
  <label>Phone <input type="tel" name="phone" value="{{.Phone}}"></label>
  <label>Location <input type="text" name="location" value="{{.Location}}"></label>
  <label>Bio <textarea name="bio" rows="4">{{.Bio}}</textarea></label>
  <label>Skills (comma separated) <input type="text" name="skills" value="{{.Skills}}"></label>
  <button type="submit">Update Profile</button>
</form>
`))

// ProfileView carries the profile form state.
type ProfileView struct {
	Name     string
	Email    string
	Role     domain.Role
	Phone    string
	Location string
	Bio      string
	Skills   string
	Notice   string
	Error    string
}

// ProfilePage renders the profile form fragment.
func ProfilePage(view ProfileView) templ.Component {
	return fragment(profileTmpl, view)
}

var postJobTmpl = template.Must(template.New("postjob").Parse(`<h1>Post a Job</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/app/post-job">
  <label>Job Title <input type="text" name="title" value="{{.Title}}" required></label>
  <label>Company <input type="text" name="company" value="{{.Company}}" required></label>
  <label>Description <textarea name="description" rows="6" required>{{.Description}}</textarea></label>
  <label>Location <input type="text" name="location" value="{{.Location}}" required></label>
  <label>Job Type <input type="text" name="jobType" value="{{.JobType}}"></label>
  <label>Experience Level <input type="text" name="experienceLevel" value="{{.ExperienceLevel}}"></label>
  <label>Work Mode <input type="text" name="workMode" value="{{.WorkMode}}"></label>
  <label>Requirements (one per line) <textarea name="requirements" rows="4">{{.Requirements}}</textarea></label>
  <label>Responsibilities (one per line) <textarea name="responsibilities" rows="4">{{.Responsibilities}}</textarea></label>
  <label>Skills (comma separated) <input type="text" name="skills" value="{{.Skills}}"></label>
  <label>Benefits (one per line) <textarea name="benefits" rows="4">{{.Benefits}}</textarea></label>
  <label>Number of Openings <input type="number" name="numberOfOpenings" value="{{.NumberOfOpenings}}"></label>
  <button type="submit">Post Job</button>
</form>
`))

// PostJobView carries the posting form state.
type PostJobView struct {
	Title            string
	Company          string
	Description      string
	Location         string
	JobType          string
	ExperienceLevel  string
	WorkMode         string
	Requirements     string
	Responsibilities string
	Skills           string
	Benefits         string
	NumberOfOpenings int
	Error            string
}

// PostJobPage renders the posting form fragment.
func PostJobPage(view PostJobView) templ.Component {
	return fragment(postJobTmpl, view)
}
