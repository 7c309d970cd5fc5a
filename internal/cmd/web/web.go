// Package web parses web command flags and launches the web client runtime.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/arthajobs/web/internal/jobboard"
	"github.com/arthajobs/web/internal/session/domain"
	sessionsvc "github.com/arthajobs/web/internal/session/service"
	sessionsqlite "github.com/arthajobs/web/internal/session/storage/sqlite"
	"github.com/arthajobs/web/internal/web"
	webapp "github.com/arthajobs/web/internal/web/app"
	"github.com/arthajobs/web/internal/web/module"
	"github.com/arthajobs/web/internal/web/modules/applications"
	"github.com/arthajobs/web/internal/web/modules/auth"
	"github.com/arthajobs/web/internal/web/modules/dashboard"
	"github.com/arthajobs/web/internal/web/modules/jobs"
	"github.com/arthajobs/web/internal/web/modules/postjob"
	"github.com/arthajobs/web/internal/web/modules/profile"
	"github.com/arthajobs/web/internal/web/modules/public"

	entrypoint "github.com/arthajobs/web/internal/platform/cmd"
)

// Config holds web command configuration.
type Config struct {
	Port       int    `env:"ARTHA_WEB_PORT" envDefault:"8080"`
	APIBaseURL string `env:"ARTHA_WEB_API_BASE_URL" envDefault:"http://localhost:5000"`
	StatePath  string `env:"ARTHA_WEB_STATE_PATH" envDefault:"artha-web.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "The web client HTTP port")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "The job-board API base URL")
	fs.StringVar(&cfg.StatePath, "state-path", cfg.StatePath, "The session state database path")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web client runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(context.Context) error {
		store, err := sessionsqlite.Open(cfg.StatePath)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		defer store.Close()

		sessions := sessionsvc.New(store)
		defer sessions.Close()
		sessions.Hydrate(ctx)

		board, err := jobboard.New(cfg.APIBaseURL, jobboard.Options{
			TokenSource:    sessions.Token,
			OnUnauthorized: sessions.Expire,
		})
		if err != nil {
			return fmt.Errorf("build job-board client: %w", err)
		}

		// Session teardown invalidates every in-progress application draft.
		jobsModule := jobs.New(board)
		unsubscribe := sessions.Subscribe(func(_ domain.Session, present bool) {
			if !present {
				jobsModule.ResetDrafts()
			}
		})
		defer unsubscribe()

		handler, err := webapp.Compose(webapp.ComposeInput{
			Dependencies: module.Dependencies{Sessions: sessions},
			Public: []module.Module{
				public.New(),
				auth.New(board, sessions),
				jobsModule,
			},
			Protected: []webapp.Protected{
				{Module: dashboard.New()},
				{Module: applications.New(board)},
				{Module: profile.New(board, sessions)},
				{Module: postjob.New(board), Roles: []domain.Role{domain.RoleEmployer}},
			},
		})
		if err != nil {
			return err
		}

		return web.Run(ctx, web.RuntimeConfig{Port: cfg.Port, Handler: handler})
	})
}
