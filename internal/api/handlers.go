package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/uaparse/internal/batch"
	"github.com/dmitrymomot/uaparse/pkg/logger"
	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

type batchRequest struct {
	UserAgents []string `json:"user_agents"`
}

// classifyOne handles GET /v1/classify. The ua query parameter wins over
// the caller's own User-Agent header.
func (h *handler) classifyOne(w http.ResponseWriter, r *http.Request) {
	var ua string
	switch {
	case r.URL.Query().Has("ua"):
		ua = r.URL.Query().Get("ua")
	case len(r.Header.Values(useragent.Header)) > 0:
		ua = r.Header.Get(useragent.Header)
	default:
		writeError(w, http.StatusBadRequest, codeInvalidInput, useragent.ErrInvalidInput.Error())
		return
	}

	ua = truncate(ua, h.cfg.MaxLength)
	writeData(w, newClassification(ua, h.cache.Parse(r.Context(), ua)))
}

// classifyBatch handles POST /v1/classify.
func (h *handler) classifyBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.cfg.bodyLimit()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeBatchTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "request body must be {\"user_agents\": [...]}")
		return
	}
	if h.cfg.MaxBatch > 0 && len(req.UserAgents) > h.cfg.MaxBatch {
		writeError(w, http.StatusRequestEntityTooLarge, codeBatchTooLarge,
			fmt.Sprintf("at most %d user agents per request", h.cfg.MaxBatch))
		return
	}

	lines := make([]string, len(req.UserAgents))
	for i, ua := range req.UserAgents {
		lines[i] = truncate(ua, h.cfg.MaxLength)
	}

	ctx := r.Context()
	records, err := batch.Classify(ctx, lines, 0, func(ua string) useragent.Result {
		return h.cache.Parse(ctx, ua)
	})
	if err != nil {
		// Only cancellation fails a batch; the client is gone.
		h.log.DebugContext(ctx, "batch classification aborted", logger.Error(err))
		return
	}

	out := make([]Classification, len(records))
	for i, rec := range records {
		out[i] = newClassification(rec.UA, rec.Result)
	}
	writeData(w, out)
}

func (h *handler) stats(w http.ResponseWriter, _ *http.Request) {
	writeData(w, h.cache.Stats())
}
