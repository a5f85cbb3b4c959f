package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/riskibarqy/football-team-search/internal/platform/logging"
	"github.com/riskibarqy/football-team-search/internal/usecase"
)

// HealthChecker reports whether the catalog store is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	teamSearchService *usecase.TeamSearchService
	health            HealthChecker
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamSearchService *usecase.TeamSearchService,
	health HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}

	return &Handler{
		teamSearchService: teamSearchService,
		health:            health,
		logger:            logger,
		validator:         v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.health != nil {
		if err := h.health.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "catalog store ping failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: catalog store is unreachable", usecase.ErrDependencyUnavailable))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: %s %s", usecase.ErrNotFound, r.Method, r.URL.Path))
}
