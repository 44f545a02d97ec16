package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/tendant/member-portal/pkg/bootstrap"
	perrors "github.com/tendant/member-portal/pkg/errors"
	"github.com/tendant/member-portal/pkg/member"
)

// Config contains the handlers and options for the function routes
type Config struct {
	MemberHandle    member.Handle
	BootstrapHandle bootstrap.Handle

	// FunctionsPrefix mounts a second copy of the functions, e.g. "/functions/v1".
	// Empty mounts them at the root only.
	FunctionsPrefix string

	// SetupRateLimit caps setup-admin calls per minute per client IP. 0 disables it.
	SetupRateLimit int
}

// AllowedHeaders are the request headers browsers may send to the functions
var AllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// SetupRoutes registers the function endpoints on router
func SetupRoutes(router chi.Router, cfg Config) {
	router.Group(func(r chi.Router) {
		r.Use(Recover)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: AllowedHeaders,
		}))

		r.Get("/healthz", Healthz)

		functionRoutes(r, cfg)
		if cfg.FunctionsPrefix != "" && cfg.FunctionsPrefix != "/" {
			r.Route(cfg.FunctionsPrefix, func(r chi.Router) {
				functionRoutes(r, cfg)
			})
		}
	})
}

func functionRoutes(r chi.Router, cfg Config) {
	r.Post("/lookup-email", cfg.MemberHandle.LookupEmail)
	r.Post("/create-member", cfg.MemberHandle.CreateMember)

	r.Group(func(r chi.Router) {
		if cfg.SetupRateLimit > 0 {
			r.Use(httprate.Limit(cfg.SetupRateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(tooManyRequests),
			))
		}
		r.Post("/setup-admin", cfg.BootstrapHandle.SetupAdmin)
	})

	// Preflights the CORS handler passes through still get an empty 200
	// carrying the CORS headers
	for _, path := range []string{"/lookup-email", "/create-member", "/setup-admin"} {
		r.Options(path, preflight)
	}
}

func preflight(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", strings.Join(AllowedHeaders, ", "))
	w.WriteHeader(http.StatusOK)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusTooManyRequests)
	render.JSON(w, r, perrors.ErrorResponse{Error: "Too many requests"})
}

// Healthz reports liveness
func Healthz(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// Recover converts a panic in any handler into a 500 carrying the panic
// message, so callers always receive {"error": ...}
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			msg := fmt.Sprint(rec)
			if err, ok := rec.(error); ok {
				msg = err.Error()
			}
			slog.Error("Handler panicked", "path", r.URL.Path, "panic", msg, "stack", string(debug.Stack()))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, perrors.ErrorResponse{Error: msg})
		}()
		next.ServeHTTP(w, r)
	})
}
