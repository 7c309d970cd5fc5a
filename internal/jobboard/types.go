package jobboard

import "time"

// Salary describes a posting's advertised pay range.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
}

// Job is a server-owned posting. The client reads these; it never defines
// their storage or query semantics.
type Job struct {
	ID               string    `json:"_id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	JobType          string    `json:"jobType"`
	ExperienceLevel  string    `json:"experienceLevel"`
	WorkMode         string    `json:"workMode"`
	Salary           *Salary   `json:"salary,omitempty"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Skills           []string  `json:"skills"`
	Benefits         []string  `json:"benefits"`
	NumberOfOpenings int       `json:"numberOfOpenings"`
	Status           string    `json:"status"`
	Views            int       `json:"views"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ApplicationJob is the posting summary embedded in an application record.
type ApplicationJob struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// Application is a server-owned application record. Status is one of
// pending, reviewing, shortlisted, rejected, or accepted.
type Application struct {
	ID          string          `json:"_id"`
	Job         *ApplicationJob `json:"job,omitempty"`
	CoverLetter string          `json:"coverLetter"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// JobFilters narrows a job listing query. Empty fields are omitted.
type JobFilters struct {
	Search          string
	Location        string
	JobType         string
	ExperienceLevel string
	WorkMode        string
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ProfileInput carries the editable profile fields. Email travels for
// display parity but the server treats it as immutable.
type ProfileInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
}

// JobInput carries the fields for a new posting.
type JobInput struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	JobType          string   `json:"jobType"`
	ExperienceLevel  string   `json:"experienceLevel"`
	WorkMode         string   `json:"workMode"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`
	NumberOfOpenings int      `json:"numberOfOpenings"`
}

// wireUser is the identity shape the server reports. Some deployments key
// the identifier as "_id", others as "id".
type wireUser struct {
	ID       string   `json:"_id"`
	AltID    string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
}
