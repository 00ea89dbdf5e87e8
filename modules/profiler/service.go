package profiler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/profiler/handler"
	"github.com/dmitrymomot/profiler/pkg/binder"
	"github.com/dmitrymomot/profiler/pkg/logger"
	"github.com/dmitrymomot/profiler/pkg/ratelimiter"
	"github.com/dmitrymomot/profiler/pkg/sanitizer"
	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

// DownloadFilename is the attachment name of a full wordlist.
const DownloadFilename = "wordlist.txt"

const maxTargetNameLength = 200

var cleanTargetName = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.SingleLine,
	sanitizer.MaxLengthFunc(maxTargetNameLength),
)

// GenerateResponse is the body of a successful POST /api/generate.
type GenerateResponse struct {
	Count           int      `json:"count"`
	Preview         []string `json:"preview"`
	DownloadContent string   `json:"downloadContent"`
}

// Service serves the profiler routes.
type Service struct {
	cfg     Config
	runner  *Runner
	storage Storage
	views   *Views
	log     *slog.Logger

	htmlErrors handler.ErrorHandler[handler.Context]
	jsonErrors handler.ErrorHandler[handler.Context]

	generateMiddleware []func(http.Handler) http.Handler
	limiter            ratelimiter.RateLimiter
	limiterKey         ratelimiter.KeyFunc
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithViews replaces the HTML views. Nil components keep their defaults.
func WithViews(v *Views) ServiceOption {
	return func(s *Service) {
		s.views = v
	}
}

// WithErrorHandler replaces the error handler of the HTML routes.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		s.htmlErrors = h
	}
}

// WithGenerateMiddleware wraps every route that runs a generation, such as
// a rate limiter.
func WithGenerateMiddleware(mw ...func(http.Handler) http.Handler) ServiceOption {
	return func(s *Service) {
		s.generateMiddleware = append(s.generateMiddleware, mw...)
	}
}

// WithRateLimiter limits the generation routes per key. Denied requests
// get a 429 rendered by RateLimited.
func WithRateLimiter(limiter ratelimiter.RateLimiter, key ratelimiter.KeyFunc) ServiceOption {
	return func(s *Service) {
		s.limiter = limiter
		s.limiterKey = key
	}
}

// NewService wires a Service.
func NewService(cfg Config, runner *Runner, storage Storage, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:     cfg,
		runner:  runner,
		storage: storage,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.views = s.views.withDefaults()
	if s.htmlErrors == nil {
		s.htmlErrors = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:   s.views.ErrorPage,
			ErrorToast:  s.views.ErrorToast,
			ToastTarget: ToastTarget,
		})
	}
	s.jsonErrors = handler.NewJSONErrorHandler(s.log)
	return s
}

// Handle returns the router with the HTML form at / and the JSON API under /api.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.htmlErrors),
	))
	r.Get("/api/history", handler.Wrap(s.history,
		handler.WithBinders[handler.Context, HistoryRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, HistoryRequest](s.jsonErrors),
	))

	r.Group(func(r chi.Router) {
		if s.limiter != nil && s.limiterKey != nil {
			r.Use(ratelimiter.Middleware(s.limiter, s.limiterKey,
				ratelimiter.WithLimitedHandler(s.RateLimited()),
				ratelimiter.WithLogger(s.log),
			))
		}
		r.Use(s.generateMiddleware...)

		r.Post("/", handler.Wrap(s.submit,
			handler.WithBinders[handler.Context, GenerateRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, GenerateRequest](s.htmlErrors),
		))
		r.Post("/download", handler.Wrap(s.download,
			handler.WithBinders[handler.Context, GenerateRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, GenerateRequest](s.htmlErrors),
		))
		r.Post("/api/generate", handler.Wrap(s.apiGenerate,
			handler.WithBinders[handler.Context, GenerateRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, GenerateRequest](s.jsonErrors),
		))
	})

	return r
}

// RateLimited renders a 429 in the format of the route that was denied.
func (s *Service) RateLimited() http.Handler {
	deny := func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrTooManyRequests)
	}
	api := handler.Wrap(deny, handler.WithErrorHandler[handler.Context, struct{}](s.jsonErrors))
	html := handler.Wrap(deny, handler.WithErrorHandler[handler.Context, struct{}](s.htmlErrors))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			api(w, r)
			return
		}
		html(w, r)
	})
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(PageParams{
		Form:    GenerateRequest{},
		History: s.recentHistory(ctx),
	}))
}

func (s *Service) submit(ctx handler.Context, req GenerateRequest) handler.Response {
	wreq, res, err := s.generate(ctx, req)
	if err != nil {
		return handler.Error(err)
	}

	result := ResultParams{
		Form:       req,
		TargetName: wreq.TargetName(),
		Count:      res.Len(),
		Preview:    res.Preview(s.cfg.PreviewSize),
	}
	history := s.recentHistory(ctx)
	return handler.TemplPage(
		s.views.Page(PageParams{Form: req, Result: &result, History: history}),
		handler.Patch(s.views.ResultPanel(result), handler.WithTarget(ResultTarget)),
		handler.Patch(s.views.History(history), handler.WithTarget(HistoryTarget)),
	)
}

func (s *Service) download(ctx handler.Context, req GenerateRequest) handler.Response {
	_, res, err := s.generate(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Attachment(DownloadFilename, res)
}

func (s *Service) apiGenerate(ctx handler.Context, req GenerateRequest) handler.Response {
	_, res, err := s.generate(ctx, req)
	if err != nil {
		return handler.Error(err)
	}

	if strings.EqualFold(ctx.Request().URL.Query().Get("format"), "txt") {
		return handler.Attachment(DownloadFilename, res)
	}

	return handler.JSON(GenerateResponse{
		Count:           res.Len(),
		Preview:         res.Preview(s.cfg.PreviewSize),
		DownloadContent: res.Text(),
	})
}

func (s *Service) history(ctx handler.Context, req HistoryRequest) handler.Response {
	limit := s.cfg.HistoryLimit
	if req.Limit > 0 {
		limit = sanitizer.Clamp(req.Limit, 1, s.cfg.HistoryLimit)
	}

	records, err := s.storage.History(ctx, limit)
	if err != nil {
		return handler.Error(handler.ErrInternalServerError.Wrap(err))
	}
	return handler.JSON(records)
}

// generate validates req, runs it and records the outcome in the history.
func (s *Service) generate(ctx context.Context, req GenerateRequest) (wordlist.Request, *wordlist.Result, error) {
	wreq, err := req.Wordlist(s.cfg)
	if err != nil {
		return wordlist.Request{}, nil, err
	}

	start := time.Now()
	res, err := s.runner.Run(ctx, wreq)
	if err != nil {
		switch {
		case errors.Is(err, ErrTimeout):
			return wreq, nil, handler.ErrGatewayTimeout.Wrap(err)
		case errors.Is(err, ErrCanceled):
			return wreq, nil, handler.ErrServiceUnavailable.Wrap(err)
		}
		return wreq, nil, handler.ErrInternalServerError.Wrap(err)
	}

	target := cleanTargetName(wreq.TargetName())
	s.log.InfoContext(ctx, "wordlist generated",
		logger.Component("profiler"),
		logger.TargetName(target),
		logger.SeedCount(len(wreq.Seeds())),
		logger.WordCount(res.Len()),
		logger.Duration(time.Since(start)),
	)

	if _, err := s.storage.CreateRequest(ctx, target, res.Len()); err != nil {
		s.log.ErrorContext(ctx, "failed to record profiling request",
			logger.Component("profiler"),
			logger.TargetName(target),
			logger.Error(err),
		)
	}
	return wreq, res, nil
}

// recentHistory feeds the page; a failing storage only hides the table.
func (s *Service) recentHistory(ctx context.Context) []Record {
	records, err := s.storage.History(ctx, s.cfg.HistoryLimit)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load history",
			logger.Component("profiler"),
			logger.Error(err),
		)
		return nil
	}
	return records
}
