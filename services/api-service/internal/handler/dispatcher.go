package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/form"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/middleware"
	"github.com/vasapolrittideah/streamhub-api/shared/ratelimit"
	"github.com/vasapolrittideah/streamhub-api/shared/utilities"
)

const maxBodyBytes = 10 << 20

var (
	ErrMissingType     = apperror.Routing("Missing type parameter")
	ErrUnsupported     = apperror.Routing("Method not supported")
	ErrUnknownType     = apperror.Routing("Unknown operation type")
	ErrInvalidJSON     = apperror.Validation("Invalid JSON in request body")
	ErrInvalidQuery    = apperror.Validation("Invalid query parameters")
	ErrBodyTooLarge    = apperror.Validation("Request body too large")
	ErrTooManyRequests = apperror.RateLimited("Too many requests")
	ErrSeedDisabled    = apperror.Business("Seeding is disabled")
)

var queryDecoder = form.NewDecoder()

// Seeder resets the demo collections.
type Seeder interface {
	Run(ctx context.Context) (*payload.SeedResponse, error)
}

// Usecases groups the application services the dispatcher routes to.
type Usecases struct {
	Auth          usecase.AuthUsecase
	Account       usecase.AccountUsecase
	PasswordReset usecase.PasswordResetUsecase
	Catalog       usecase.CatalogUsecase
	Shop          usecase.ShopUsecase
	Todo          usecase.TodoUsecase
	Library       usecase.LibraryUsecase
	Media         usecase.MediaUsecase
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// input is the raw request an operation decodes its payload from.
type input struct {
	query url.Values
	body  []byte
	get   bool
}

type operationFunc func(ctx context.Context, in *input) (any, error)

// Dispatcher serves every operation from a single endpoint, selecting the
// operation by HTTP method and the "type" query parameter.
type Dispatcher struct {
	handlers map[Operation]operationFunc
	limiter  *ratelimit.IPRateLimiter
	seeder   Seeder
}

// NewDispatcher binds every operation to its usecase. A nil limiter
// disables rate limiting and a nil seeder disables the seed operation.
func NewDispatcher(uc Usecases, seeder Seeder, limiter *ratelimit.IPRateLimiter) *Dispatcher {
	d := &Dispatcher{limiter: limiter, seeder: seeder}

	d.handlers = map[Operation]operationFunc{
		OpListTodos:      bindNone(uc.Todo.ListTodos),
		OpListProducts:   bind(uc.Shop.ListProducts),
		OpGetProduct:     bind(uc.Shop.GetProduct),
		OpListCategories: bindNone(uc.Shop.ListCategories),
		OpSeries: bind(func(ctx context.Context, req *payload.ListSeriesRequest) (any, error) {
			if strings.TrimSpace(req.ID) != "" {
				return uc.Catalog.GetSeries(ctx, req.ID)
			}
			return uc.Catalog.ListSeries(ctx, req)
		}),
		OpSearchSeries:  bind(uc.Catalog.SearchSeries),
		OpSuggestions:   bind(uc.Catalog.Suggestions),
		OpFeatured:      bindNone(uc.Catalog.FeaturedSeries),
		OpListGenres:    bindNone(uc.Catalog.ListGenres),
		OpListEpisodes:  bind(uc.Catalog.ListEpisodes),
		OpGetEpisode:    bind(uc.Catalog.GetEpisode),
		OpListHistory:   bindNone(uc.Library.ListHistory),
		OpListFavorites: bindNone(uc.Library.ListFavorites),
		OpUserByEmail:   bind(uc.Auth.GetUserByEmail),
		OpMe: func(ctx context.Context, _ *input) (any, error) {
			userID, err := currentUserID(ctx)
			if err != nil {
				return nil, err
			}
			return uc.Auth.Me(ctx, userID)
		},

		OpAddTodo:        bind(uc.Todo.AddTodo),
		OpToggleTodo:     bind(uc.Todo.ToggleTodo),
		OpRegister:       bind(uc.Auth.Register),
		OpLogin:          bind(uc.Auth.Login),
		OpGoogleAuth:     bind(uc.Auth.GoogleAuth),
		OpGoogleLogin:    bind(uc.Auth.GoogleLogin),
		OpUpdateProfile:  bindAuth(uc.Account.UpdateProfile),
		OpChangePassword: bindAuth(uc.Account.ChangePassword),
		OpUpdateAvatar:   bindAuth(uc.Account.UpdateAvatar),
		OpForgotPassword: bind(uc.PasswordReset.RequestPasswordReset),
		OpResetPassword:  bind(uc.PasswordReset.ResetPassword),
		OpUploadImage:    bind(uc.Media.UploadImage),
		OpCreateVideo:    bind(uc.Media.CreateVideo),
		OpSaveSeries:     bind(uc.Catalog.SaveSeries),
		OpSaveEpisode:    bind(uc.Catalog.SaveEpisode),
		OpSaveGenre:      bind(uc.Catalog.SaveGenre),
		OpSaveProduct:    bind(uc.Shop.SaveProduct),
		OpSaveCategory:   bind(uc.Shop.SaveCategory),
		OpAddHistory:     bind(uc.Library.AddHistory),
		OpAddFavorite:    bind(uc.Library.AddFavorite),
		OpSeed:           bindNone(d.seed),

		OpDeleteTodo:     bind(uc.Todo.DeleteTodo),
		OpDeleteImage:    bind(uc.Media.DeleteImage),
		OpDeleteVideo:    bind(uc.Media.DeleteVideo),
		OpDeleteSeries:   bind(uc.Catalog.DeleteSeries),
		OpDeleteEpisode:  bind(uc.Catalog.DeleteEpisode),
		OpDeleteGenre:    bind(uc.Catalog.DeleteGenre),
		OpDeleteProduct:  bind(uc.Shop.DeleteProduct),
		OpDeleteHistory:  bind(uc.Library.DeleteHistory),
		OpDeleteFavorite: bind(uc.Library.DeleteFavorite),
	}

	return d
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := strings.ToLower(r.Method)

	op, err := d.resolve(method, r.URL.Query().Get("type"))
	if err != nil {
		d.writeError(w, r, op, err)
		return
	}

	// RemoteAddr is only rewritten from forwarding headers by the router's
	// trusted-proxy middleware.
	if d.limiter != nil && rateLimited[op] && !d.limiter.Allow(utilities.RemoteIP(r)) {
		d.writeError(w, r, op, ErrTooManyRequests)
		return
	}

	in, err := readInput(w, r, method)
	if err != nil {
		d.writeError(w, r, op, err)
		return
	}

	data, err := d.handlers[op](r.Context(), in)
	if err != nil {
		d.writeError(w, r, op, err)
		return
	}

	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data})
}

func (d *Dispatcher) resolve(method, name string) (Operation, error) {
	if name == "" {
		return operationCount, ErrMissingType
	}
	if !supportedMethods[method] {
		return operationCount, ErrUnsupported
	}

	op, ok := lookup(method, name)
	if !ok || d.handlers[op] == nil {
		return operationCount, ErrUnknownType
	}

	return op, nil
}

func (d *Dispatcher) seed(ctx context.Context) (*payload.SeedResponse, error) {
	if d.seeder == nil {
		return nil, ErrSeedDisabled
	}

	return d.seeder.Run(ctx)
}

func (d *Dispatcher) writeError(w http.ResponseWriter, r *http.Request, op Operation, err error) {
	status := apperror.HTTPStatus(err)

	logger := hlog.FromRequest(r)
	switch apperror.KindOf(err) {
	case apperror.KindInternal:
		logger.Error().Err(err).Stringer("operation", op).Msg("operation failed")
	case apperror.KindBusiness:
		logger.Debug().Err(err).Stringer("operation", op).Msg("operation rejected")
	default:
		logger.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, r, status, envelope{Success: false, Error: apperror.Message(err)})
}

func readInput(w http.ResponseWriter, r *http.Request, method string) (*input, error) {
	if method == methodGet {
		return &input{query: r.URL.Query(), get: true}, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, ErrInvalidJSON
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	return &input{body: body}, nil
}

func (in *input) decode(dst any) error {
	if in.get {
		if err := queryDecoder.Decode(dst, in.query); err != nil {
			return ErrInvalidQuery
		}
		return nil
	}

	if err := json.Unmarshal(in.body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperror.Validationf("Invalid value for %s", typeErr.Field)
		}
		return apperror.Validation("Request body must be a JSON object")
	}

	return nil
}

func bind[Req, Res any](fn func(context.Context, *Req) (Res, error)) operationFunc {
	return func(ctx context.Context, in *input) (any, error) {
		req := new(Req)
		if err := in.decode(req); err != nil {
			return nil, err
		}

		res, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

// bindAuth binds an operation that acts on the signed-in user.
func bindAuth[Req, Res any](fn func(context.Context, string, *Req) (Res, error)) operationFunc {
	return func(ctx context.Context, in *input) (any, error) {
		userID, err := currentUserID(ctx)
		if err != nil {
			return nil, err
		}

		req := new(Req)
		if err := in.decode(req); err != nil {
			return nil, err
		}

		res, err := fn(ctx, userID, req)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

func bindNone[Res any](fn func(context.Context) (Res, error)) operationFunc {
	return func(ctx context.Context, _ *input) (any, error) {
		res, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

func currentUserID(ctx context.Context) (string, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok || claims.UserID == "" {
		return "", usecase.ErrUnauthorized
	}
	return claims.UserID, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to write response")
	}
}
