package httpapi

import "net/http"

type searchTeamsRequest struct {
	SearchTerm string `validate:"notblank"`
	// Column is free-form; unrecognized selectors search every column.
	Column string
}

// ListTeams answers the unfiltered browse request.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamSearchService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) ListColumns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListColumns")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, h.teamSearchService.ListColumns(ctx))
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	query := r.URL.Query()
	req := searchTeamsRequest{
		SearchTerm: query.Get("searchTerm"),
		Column:     query.Get("column"),
	}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		writeError(ctx, w, validationError(err))
		return
	}

	items, err := h.teamSearchService.Search(ctx, req.SearchTerm, req.Column)
	if err != nil {
		h.logger.ErrorContext(ctx, "search teams failed",
			"search_term", req.SearchTerm,
			"column", req.Column,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamsToDTO(items))
}
