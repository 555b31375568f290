package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tbrown320/compliance-cicd-pipeline/internal/api/middleware"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/compliance"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/logger"
)

// TransactionsHandler handles compliance transaction endpoints.
// Domain events (creation, rejected submissions) are logged through the
// request-scoped logger installed by the audit middleware, so they land in
// the audit trail.
type TransactionsHandler struct {
	store compliance.Store
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(store compliance.Store) *TransactionsHandler {
	return &TransactionsHandler{
		store: store,
	}
}

// CreateTransaction handles POST /api/compliance/transactions
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Warn().
			Str("remote_addr", r.RemoteAddr).
			Err(err).
			Msg("Invalid data submission")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	if !compliance.ValidatePayload(payload) {
		log.Warn().
			Str("remote_addr", r.RemoteAddr).
			Msg("Invalid data submission")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	tx := compliance.Transaction(payload)
	now := time.Now().Format(time.RFC3339)
	tx[compliance.FieldCreatedAt] = now
	tx[compliance.FieldLastModified] = now

	if err := h.store.Put(r.Context(), tx); err != nil {
		// transaction_id present but not a string, so it cannot key the map
		log.Warn().
			Str("remote_addr", r.RemoteAddr).
			Err(err).
			Msg("Invalid data submission")
		middleware.WriteError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	log.Info().
		Str("transaction_id", tx.ID()).
		Msg("Transaction created")

	middleware.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Transaction created",
		"id":      tx.ID(),
	})
}

// GetTransaction handles GET /api/compliance/transactions/{id}
func (h *TransactionsHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tx, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, compliance.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log := logger.FromContext(r.Context())
		log.Error().
			Err(err).
			Str("transaction_id", id).
			Msg("Failed to get transaction")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to get transaction")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, tx)
}

// ListTransactions handles GET /api/compliance/transactions
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error().
			Err(err).
			Msg("Failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	if records == nil {
		records = []compliance.Transaction{}
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":        len(records),
		"transactions": records,
	})
}

// DeleteTransaction handles DELETE /api/compliance/transactions/{id}
func (h *TransactionsHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, compliance.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log := logger.FromContext(r.Context())
		log.Error().
			Err(err).
			Str("transaction_id", id).
			Msg("Failed to delete transaction")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	log := logger.FromContext(r.Context())
	log.Info().
		Str("transaction_id", id).
		Msg("Transaction deleted")

	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction deleted",
	})
}

// ReportsHandler handles the compliance report endpoint.
type ReportsHandler struct {
	store compliance.Store
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(store compliance.Store) *ReportsHandler {
	return &ReportsHandler{
		store: store,
	}
}

// GetReport handles GET /api/compliance/report
func (h *ReportsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	records, err := h.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate compliance report")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	report := compliance.BuildReport(records, time.Now())

	log.Info().
		Int("total_transactions", report.TotalTransactions).
		Msg("Compliance report generated")

	middleware.WriteJSON(w, http.StatusOK, report)
}

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler reporting version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   h.version,
	})
}
