package templates

import (
	"html/template"

	"github.com/a-h/templ"

	"github.com/arthajobs/web/internal/jobboard"
)

var jobsTmpl = template.Must(template.New("jobs").Parse(`<h1>Browse Jobs</h1>
<form method="get" action="/jobs" class="filters">
  <input type="text" name="search" placeholder="Search jobs..." value="{{.Filters.Search}}">
  <input type="text" name="location" placeholder="Location" value="{{.Filters.Location}}">
  <input type="text" name="jobType" placeholder="Job Type" value="{{.Filters.JobType}}">
  <input type="text" name="experienceLevel" placeholder="Experience Level" value="{{.Filters.ExperienceLevel}}">
  <input type="text" name="workMode" placeholder="Work Mode" value="{{.Filters.WorkMode}}">
  <button type="submit">Filter</button>
  <a href="/jobs">Clear Filters</a>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if not .Jobs}}<p>No jobs found.</p>{{end}}
<ul class="job-list">
{{range .Jobs}}
  <li>
    <a href="/jobs/{{.ID}}">{{.Title}}</a> — {{.Company}} ({{.Location}})
    <span>{{.JobType}} · {{.WorkMode}}</span>
  </li>
{{end}}
</ul>
`))

// JobsView carries the listing page state.
type JobsView struct {
	Jobs    []jobboard.Job
	Filters jobboard.JobFilters
	Error   string
}

// JobsPage renders the job listing fragment.
func JobsPage(view JobsView) templ.Component {
	return fragment(jobsTmpl, view)
}

var jobDetailsTmpl = template.Must(template.New("jobdetails").Parse(`<article class="job-details">
<h1>{{.Job.Title}}</h1>
<h2>{{.Job.Company}}</h2>
<p>{{.Job.Location}} · {{.Job.JobType}} · {{.Job.ExperienceLevel}} · {{.Job.WorkMode}}</p>
{{with .Job.Salary}}<p class="salary">{{.Currency}} {{.Min}} - {{.Max}} / {{.Type}}</p>{{end}}
<section><h3>Description</h3><p>{{.Job.Description}}</p></section>
{{if .Job.Requirements}}<section><h3>Requirements</h3><ul>{{range .Job.Requirements}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
{{if .Job.Skills}}<section><h3>Required Skills</h3><ul>{{range .Job.Skills}}<li>{{.}}</li>{{end}}</ul></section>{{end}}

<section class="apply-section">
{{if .Apply.Error}}<p class="error">{{.Apply.Error}}</p>{{end}}
{{if .Apply.Succeeded}}
  <p class="notice">Application submitted successfully!</p>
{{else if .Apply.ShowForm}}
  <form method="post" action="/jobs/{{.Job.ID}}/apply">
    <label>Cover Letter
      <textarea name="coverLetter" rows="6" placeholder="Tell us why you're a great fit for this position...">{{.Apply.CoverLetter}}</textarea>
    </label>
    <button type="submit"{{if .Apply.Submitting}} disabled{{end}}>{{if .Apply.Submitting}}Submitting...{{else}}Submit Application{{end}}</button>
  </form>
  <form method="post" action="/jobs/{{.Job.ID}}/apply/cancel"><button type="submit">Cancel</button></form>
{{else if .Apply.ShowRetry}}
  <form method="post" action="/jobs/{{.Job.ID}}/apply/retry"><button type="submit">Try Again</button></form>
  <form method="post" action="/jobs/{{.Job.ID}}/apply/cancel"><button type="submit">Cancel</button></form>
{{else if .Apply.ShowApplyNow}}
  <form method="post" action="/jobs/{{.Job.ID}}/apply"><input type="hidden" name="open" value="1"><button type="submit">Apply Now</button></form>
{{else if .Apply.ShowLoginPrompt}}
  <p><a href="/login">Login</a> to apply for this job.</p>
{{end}}
</section>
</article>
`))

// ApplyView carries the apply-section state for a posting.
type ApplyView struct {
	ShowApplyNow    bool
	ShowForm        bool
	ShowRetry       bool
	ShowLoginPrompt bool
	Submitting      bool
	Succeeded       bool
	CoverLetter     string
	Error           string
}

// JobDetailsView carries the details page state.
type JobDetailsView struct {
	Job   jobboard.Job
	Apply ApplyView
}

// JobDetailsPage renders the details fragment.
func JobDetailsPage(view JobDetailsView) templ.Component {
	return fragment(jobDetailsTmpl, view)
}
