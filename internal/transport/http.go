package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/packages/service/stats"
	"github.com/oraclestream/pricecache-backend/internal/registry"
	"github.com/oraclestream/pricecache-backend/pkg/safe"
)

// Responses for the cached views stay fresh for the cache TTL.
const cacheControlValue = "public, max-age=5"

// Config toggles the optional API surfaces.
type Config struct {
	EnableHistorical    bool
	EnableDirectPosting bool
}

// Handler serves the data-packages HTTP API.
type Handler struct {
	logger    *zap.Logger
	consensus ConsensusService
	stats     StatsService
	pipeline  IngestionPipeline
	registry  RegistryClient
	cfg       Config
}

// NewHandler constructs a Handler.
func NewHandler(
	logger *zap.Logger,
	consensus ConsensusService,
	statsService StatsService,
	pipeline IngestionPipeline,
	registryClient RegistryClient,
	cfg Config,
) *Handler {
	return &Handler{
		logger:    logger,
		consensus: consensus,
		stats:     statsService,
		pipeline:  pipeline,
		registry:  registryClient,
		cfg:       cfg,
	}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /data-packages/latest/{dataServiceId}", h.latest)
	mux.HandleFunc("GET /data-packages/latest-not-aligned-by-time/{dataServiceId}", h.latestNotAligned)
	mux.HandleFunc("GET /data-packages/historical/{dataServiceId}/{timestamp}", h.historical)
	mux.HandleFunc("POST /data-packages/bulk", h.bulk)
	mux.HandleFunc("GET /data-packages/stats/{fromTimestamp}/{toTimestamp}", h.signerStats)
}

func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	dataServiceID, ok := h.validatedDataServiceID(w, r)
	if !ok {
		return
	}

	resp, err := h.consensus.GetAligned(r.Context(), dataServiceID)
	if err != nil {
		h.serverError(w, "aligned view failed", err)
		return
	}

	w.Header().Set("Cache-Control", cacheControlValue)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) latestNotAligned(w http.ResponseWriter, r *http.Request) {
	dataServiceID, ok := h.validatedDataServiceID(w, r)
	if !ok {
		return
	}

	resp, err := h.consensus.GetMostRecent(r.Context(), dataServiceID)
	if err != nil {
		h.serverError(w, "most recent view failed", err)
		return
	}

	w.Header().Set("Cache-Control", cacheControlValue)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) historical(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.EnableHistorical {
		h.writeError(w, http.StatusServiceUnavailable, "historical queries are disabled")
		return
	}

	dataServiceID, ok := h.validatedDataServiceID(w, r)
	if !ok {
		return
	}

	timestamp, err := parseTimestamp(r.PathValue("timestamp"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid timestamp")
		return
	}

	resp, err := h.consensus.GetAtTimestamp(r.Context(), dataServiceID, timestamp)
	if err != nil {
		h.serverError(w, "historical view failed", err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) bulk(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.EnableDirectPosting {
		h.writeError(w, http.StatusServiceUnavailable, "direct posting is disabled")
		return
	}

	var req model.BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	signer, err := h.pipeline.IngestBulk(r.Context(), req)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownSigner) {
			h.writeError(w, http.StatusBadRequest, "signer is not a registered node")
			return
		}
		h.serverError(w, "bulk ingestion failed", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"signerAddress": signer})
}

func (h *Handler) signerStats(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimestamp(r.PathValue("fromTimestamp"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid fromTimestamp")
		return
	}
	to, err := parseTimestamp(r.PathValue("toTimestamp"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid toTimestamp")
		return
	}

	resp, err := h.stats.Stats(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, stats.ErrRangeTooWide) {
			h.writeError(w, http.StatusBadRequest, "requested range is too wide")
			return
		}
		h.serverError(w, "stats query failed", err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) validatedDataServiceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	dataServiceID := r.PathValue("dataServiceId")
	if dataServiceID == "" {
		h.writeError(w, http.StatusBadRequest, "dataServiceId is required")
		return "", false
	}

	state, err := h.registry.State(r.Context())
	if err != nil {
		h.serverError(w, "registry state unavailable", err)
		return "", false
	}
	if !registry.IsDataServiceID(state, dataServiceID) {
		h.writeError(w, http.StatusBadRequest, "unknown data service id")
		return "", false
	}

	return dataServiceID, true
}

func parseTimestamp(raw string) (int64, error) {
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if _, err := safe.Uint64(ts); err != nil {
		return 0, err
	}
	return ts, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("response not written", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) serverError(w http.ResponseWriter, message string, err error) {
	h.logger.Error(message, zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, message)
}
