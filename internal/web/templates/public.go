package templates

import (
	"html/template"

	"github.com/a-h/templ"
)

var homeTmpl = template.Must(template.New("home").Parse(`<section class="hero">
<h1>Find Your Dream Job</h1>
<p>Discover thousands of job opportunities with all the information you need.</p>
<p>
  <a href="/jobs" class="btn">Browse Jobs</a>
  <a href="/register" class="btn">Get Started</a>
</p>
</section>
`))

// Home renders the landing page fragment.
func Home() templ.Component {
	return fragment(homeTmpl, nil)
}

var loginTmpl = template.Must(template.New("login").Parse(`<h1>Login</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
<form method="post" action="/login">
  <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Login</button>
</form>
<p>New here? <a href="/register">Register</a></p>
`))

// LoginView carries the login form state.
type LoginView struct {
	Email  string
	Error  string
	Notice string
}

// LoginPage renders the login form fragment.
func LoginPage(view LoginView) templ.Component {
	return fragment(loginTmpl, view)
}

var registerTmpl = template.Must(template.New("register").Parse(`<h1>Register</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/register">
  <label>Full Name <input type="text" name="name" value="{{.Name}}" required></label>
  <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
  <label>Password <input type="password" name="password" required></label>
  <label>I am a
    <select name="role">
      <option value="jobseeker"{{if eq .Role "jobseeker"}} selected{{end}}>Job Seeker</option>
      <option value="employer"{{if eq .Role "employer"}} selected{{end}}>Employer</option>
    </select>
  </label>
  <button type="submit">Register</button>
</form>
`))

// RegisterView carries the registration form state.
type RegisterView struct {
	Name  string
	Email string
	Role  string
	Error string
}

// RegisterPage renders the registration form fragment.
func RegisterPage(view RegisterView) templ.Component {
	return fragment(registerTmpl, view)
}
