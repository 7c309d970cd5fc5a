// Package jobboard is the HTTP client for the remote Artha job-board API.
// It attaches the bearer token to every authenticated call and maps
// transport failures onto the client's error taxonomy.
package jobboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arthajobs/web/internal/session/domain"
)

const defaultTimeout = 15 * time.Second

// tracerName identifies this package's spans.
const tracerName = "github.com/arthajobs/web/internal/jobboard"

// Options configures a Client.
type Options struct {
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// TokenSource supplies the current bearer token, or "" when signed out.
	TokenSource func() string
	// OnUnauthorized fires when the server rejects the presented token,
	// before the call returns ErrSessionExpired.
	OnUnauthorized func(context.Context)
}

// Client talks to the remote job-board API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func(context.Context)
	tracer         trace.Tracer
}

// New creates a job-board client for the given base URL. The base URL is
// host-only; every endpoint path carries the /api prefix, so a trailing /api
// segment on the base is stripped rather than doubled.
func New(baseURL string, opts Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	baseURL = strings.TrimSuffix(baseURL, "/api")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		tokenSource:    opts.TokenSource,
		onUnauthorized: opts.OnUnauthorized,
		tracer:         otel.Tracer(tracerName),
	}, nil
}

// Login exchanges credentials for an identity and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Identity, string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string   `json:"token"`
		User  wireUser `json:"user"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", nil, body, &out, false); err != nil {
		return domain.Identity{}, "", err
	}
	identity, err := identityFromWire(out.User)
	if err != nil {
		return domain.Identity{}, "", err
	}
	return identity, out.Token, nil
}

// Register creates an account and returns the signed-in identity and token.
func (c *Client) Register(ctx context.Context, input RegisterInput) (domain.Identity, string, error) {
	var out struct {
		Token string   `json:"token"`
		User  wireUser `json:"user"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", nil, input, &out, false); err != nil {
		return domain.Identity{}, "", err
	}
	identity, err := identityFromWire(out.User)
	if err != nil {
		return domain.Identity{}, "", err
	}
	return identity, out.Token, nil
}

// GetJob fetches a single posting. Unauthenticated.
func (c *Client) GetJob(ctx context.Context, jobID string) (Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return Job{}, fmt.Errorf("job id is required")
	}
	var out struct {
		Data Job `json:"data"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(jobID), nil, nil, &out, false); err != nil {
		return Job{}, err
	}
	return out.Data, nil
}

// ListJobs fetches postings matching the given filters. Unauthenticated.
func (c *Client) ListJobs(ctx context.Context, filters JobFilters) ([]Job, error) {
	query := url.Values{}
	setIfPresent(query, "search", filters.Search)
	setIfPresent(query, "location", filters.Location)
	setIfPresent(query, "jobType", filters.JobType)
	setIfPresent(query, "experienceLevel", filters.ExperienceLevel)
	setIfPresent(query, "workMode", filters.WorkMode)

	var out struct {
		Data []Job `json:"data"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/jobs", query, nil, &out, false); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateJob posts a new job on behalf of the signed-in employer.
func (c *Client) CreateJob(ctx context.Context, input JobInput) (Job, error) {
	var out struct {
		Data Job `json:"data"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/jobs", nil, input, &out, true); err != nil {
		return Job{}, err
	}
	return out.Data, nil
}

// CreateApplication submits an application for a posting. It satisfies the
// application workflow's submitter contract.
func (c *Client) CreateApplication(ctx context.Context, jobID, coverLetter string) error {
	body := map[string]string{"job": jobID, "coverLetter": coverLetter}
	return c.call(ctx, http.MethodPost, "/api/applications", nil, body, nil, true)
}

// MyApplications lists the signed-in job seeker's applications.
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	var out struct {
		Data []Application `json:"data"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/applications/my-applications", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// EmployerApplications lists applications to the signed-in employer's
// postings.
func (c *Client) EmployerApplications(ctx context.Context) ([]Application, error) {
	var out struct {
		Data []Application `json:"data"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/applications/employer/all", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpdateProfile replaces the signed-in user's profile fields and returns the
// refreshed identity.
func (c *Client) UpdateProfile(ctx context.Context, input ProfileInput) (domain.Identity, error) {
	var out struct {
		Data wireUser `json:"data"`
	}
	if err := c.call(ctx, http.MethodPut, "/api/users/profile", nil, input, &out, true); err != nil {
		return domain.Identity{}, err
	}
	return identityFromWire(out.Data)
}

// Profile fetches the server's canonical copy of the signed-in profile.
func (c *Client) Profile(ctx context.Context) (domain.Identity, error) {
	var out struct {
		Data wireUser `json:"data"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/users/profile", nil, nil, &out, true); err != nil {
		return domain.Identity{}, err
	}
	return identityFromWire(out.Data)
}

// call performs one request cycle: encode, attach the bearer token when the
// endpoint is authenticated, classify the response, decode into out.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any, authenticated bool) error {
	ctx, span := c.tracer.Start(ctx, "jobboard"+strings.ReplaceAll(path, "/", "."),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
	defer span.End()

	err := c.do(ctx, method, path, query, body, out, authenticated)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authenticated bool) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated && c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return ErrSessionExpired
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: server returned %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &RejectedError{
			Status:  resp.StatusCode,
			Message: rejectionMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// rejectionMessage extracts the server's human-readable message field.
func rejectionMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}

func identityFromWire(user wireUser) (domain.Identity, error) {
	id := user.ID
	if id == "" {
		id = user.AltID
	}
	role, err := domain.ParseRole(user.Role)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("server reported identity: %w", err)
	}
	return domain.Identity{
		ID:       id,
		Name:     user.Name,
		Email:    user.Email,
		Role:     role,
		Phone:    user.Phone,
		Location: user.Location,
		Bio:      user.Bio,
		Skills:   user.Skills,
	}, nil
}

func setIfPresent(query url.Values, key, value string) {
	if strings.TrimSpace(value) != "" {
		query.Set(key, value)
	}
}
