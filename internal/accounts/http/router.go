package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	minter       *jwtx.SessionMinter
	host         string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
}

// NewRouter wires the shared dependencies. Host is the externally visible
// base URL embedded in emailed deep links.
func NewRouter(
	minter *jwtx.SessionMinter,
	host, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		minter:       minter,
		host:         host,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerVerification()
	r.registerMagicLink()
	r.registerPasswordReset()
	r.registerProfile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Credential lifecycle service: signup, login, email verification with PIN codes,
//	@description	magic-link sign-in, password reset, and periodic re-verification of mailbox ownership.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/accounts
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /start-login - existence probe plus deliverability guard.
	// Moderate limit: it runs before every login or signup attempt.
	startLogin := &StartLoginHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/start-login",
		httpx.Chain(startLogin,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /signup - strict rate limit (account creation)
	signup := &SignupHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/signup",
		httpx.Chain(signup,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit (authentication attempts)
	login := &LoginHandler{AccountService: r.AccountService, Minter: r.minter}
	r.Mux.Handle("POST /v1/accounts/login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerVerification() {
	// POST /verify-email/send - strict rate limit (sends mail)
	send := &SendVerifyEmailHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/verify-email/send",
		httpx.Chain(send,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-email - strict rate limit (PIN guessing surface)
	verify := &VerifyEmailHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/verify-email",
		httpx.Chain(verify,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-email/refresh - authenticated, lenient by user
	refresh := &RefreshVerificationHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/accounts/verify-email/refresh",
		httpx.Chain(refresh,
			httpx.AuthnMiddleware(r.minter),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMagicLink() {
	// POST /magic-link/send - strict rate limit (sends mail, creates accounts)
	send := &SendMagicLinkHandler{AccountService: r.AccountService, Host: r.host}
	r.Mux.Handle("POST /v1/accounts/magic-link/send",
		httpx.Chain(send,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /users/sign-in-with-magic-link - moderate rate limit.
	// The path matches the link embedded in the email.
	consume := &MagicLinkLoginHandler{AccountService: r.AccountService, Minter: r.minter}
	r.Mux.Handle("GET /users/sign-in-with-magic-link",
		httpx.Chain(consume,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPasswordReset() {
	// POST /reset-password/send - strict rate limit (sends mail)
	send := &SendPasswordResetHandler{AccountService: r.AccountService, Host: r.host}
	r.Mux.Handle("POST /v1/accounts/reset-password/send",
		httpx.Chain(send,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /reset-password - strict rate limit (token guessing surface)
	change := &ChangePasswordHandler{AccountService: r.AccountService, Minter: r.minter}
	r.Mux.Handle("POST /v1/accounts/reset-password",
		httpx.Chain(change,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &MeHandler{Store: r.store, AccountService: r.AccountService}

	secured := func(handler http.Handler) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.minter),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/accounts/me", secured(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /v1/accounts/me", secured(http.HandlerFunc(h.HandlePatch)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
