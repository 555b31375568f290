package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/tbrown320/compliance-cicd-pipeline/internal/api/handlers"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/api/middleware"
	"github.com/tbrown320/compliance-cicd-pipeline/internal/compliance"
)

// NewRouter assembles the HTTP surface: health check, transaction CRUD,
// and the compliance report. Every transaction-facing route is wrapped in
// the audit middleware; /health is deliberately left out of the audit
// trail so load-balancer probes do not flood it.
func NewRouter(store compliance.Store, audit zerolog.Logger, version string) *mux.Router {
	transactionsHandler := handlers.NewTransactionsHandler(store)
	reportsHandler := handlers.NewReportsHandler(store)
	healthHandler := handlers.NewHealthHandler(version)

	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler.Check).
		Methods(http.MethodGet)

	r.HandleFunc("/api/compliance/transactions",
		middleware.Audit(audit, "create_transaction", transactionsHandler.CreateTransaction)).
		Methods(http.MethodPost)

	r.HandleFunc("/api/compliance/transactions",
		middleware.Audit(audit, "list_transactions", transactionsHandler.ListTransactions)).
		Methods(http.MethodGet)

	r.HandleFunc("/api/compliance/transactions/{id}",
		middleware.Audit(audit, "get_transaction", transactionsHandler.GetTransaction)).
		Methods(http.MethodGet)

	r.HandleFunc("/api/compliance/transactions/{id}",
		middleware.Audit(audit, "delete_transaction", transactionsHandler.DeleteTransaction)).
		Methods(http.MethodDelete)

	r.HandleFunc("/api/compliance/report",
		middleware.Audit(audit, "compliance_report", reportsHandler.GetReport)).
		Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
