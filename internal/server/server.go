// Package server exposes the expense pipeline over HTTP: a dataset upload
// endpoint that returns the full report as JSON. It contains no computational
// logic of its own.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guillemsala/expenses-app/internal/engine"
	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/internal/loader"
	"github.com/guillemsala/expenses-app/internal/summary"
	"github.com/guillemsala/expenses-app/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	partyLabels   [expense.PartyCount]string
}

// NewHandler constructs the HTTP handler that serves the report API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string, partyLabels [expense.PartyCount]string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		partyLabels:   partyLabels,
	}

	mux := http.NewServeMux()

	// Report API endpoint (dataset upload)
	mux.HandleFunc("/api/report", h.handleReport)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type reportResponse struct {
	ID         string                     `json:"id"`
	Parties    []string                   `json:"parties"`
	Records    []recordView               `json:"records"`
	RowErrors  []rowErrorView             `json:"rowErrors,omitempty"`
	Warnings   []warningView              `json:"warnings,omitempty"`
	Periods    []periodView               `json:"periods"`
	Categories []categoryView             `json:"categories,omitempty"`
	Financials []summary.PeriodFinancials `json:"financials,omitempty"`
	Totals     []summary.PartyTotals      `json:"totals"`
	Duration   string                     `json:"duration"`
}

type recordView struct {
	Row             int       `json:"row"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Period          string    `json:"period"`
	SplitType       string    `json:"splitType"`
	EffectiveAmount float64   `json:"effectiveAmount"`
	Shares          []float64 `json:"shares"`
}

type rowErrorView struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type warningView struct {
	Row     int    `json:"row"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type periodView struct {
	Period               string    `json:"period"`
	TotalEffectiveAmount float64   `json:"totalEffectiveAmount"`
	PartyTotals          []float64 `json:"partyTotals"`
	SharedTotal          float64   `json:"sharedTotal"`
	PersonalTotals       []float64 `json:"personalTotals"`
}

type categoryView struct {
	Period               string    `json:"period"`
	Category             string    `json:"category"`
	TotalEffectiveAmount float64   `json:"totalEffectiveAmount"`
	PartyTotals          []float64 `json:"partyTotals"`
	RecordCount          int       `json:"recordCount"`
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing dataset file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleReport"),
				zap.Error(closeErr),
			)
		}
	}()

	ds, err := loader.ReadCSV(file)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading dataset, %v", err))
		return
	}

	report, err := engine.Run(h.logger, ds)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute report: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, h.buildResponse(report, start))
}

func (h *handler) buildResponse(report *engine.Report, start time.Time) reportResponse {
	resp := reportResponse{
		ID:         uuid.NewString(),
		Parties:    []string{h.partyLabels[expense.PartyA], h.partyLabels[expense.PartyB]},
		Records:    make([]recordView, 0, len(report.Records)),
		Periods:    make([]periodView, 0, len(report.Periods)),
		Financials: report.Financials,
		Totals:     report.Totals[:],
		Duration:   time.Since(start).String(),
	}

	for i, rec := range report.Records {
		resp.Records = append(resp.Records, recordView{
			Row:             rec.Row,
			Name:            rec.Name,
			Category:        rec.Category,
			Period:          rec.Period().Label(),
			SplitType:       string(rec.SplitType),
			EffectiveAmount: rec.EffectiveAmount(),
			Shares:          report.Shares[i][:],
		})
	}
	for _, rowErr := range report.RowErrors {
		resp.RowErrors = append(resp.RowErrors, rowErrorView{
			Row:     rowErr.Row,
			Field:   rowErr.Field,
			Reason:  string(rowErr.Reason),
			Message: rowErr.Message,
		})
	}
	for _, warning := range report.Warnings {
		resp.Warnings = append(resp.Warnings, warningView{
			Row:     warning.Row,
			Kind:    string(warning.Kind),
			Message: warning.Message,
		})
	}
	for _, s := range report.Periods {
		resp.Periods = append(resp.Periods, periodView{
			Period:               s.Period.Label(),
			TotalEffectiveAmount: s.TotalEffectiveAmount,
			PartyTotals:          s.PartyTotals[:],
			SharedTotal:          s.SharedTotal,
			PersonalTotals:       s.PersonalTotals[:],
		})
	}
	for _, c := range report.Categories {
		resp.Categories = append(resp.Categories, categoryView{
			Period:               c.Period.Label(),
			Category:             c.Category,
			TotalEffectiveAmount: c.TotalEffectiveAmount,
			PartyTotals:          c.PartyTotals[:],
			RecordCount:          c.RecordCount,
		})
	}

	return resp
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Warn(msg,
		zap.String("op", "server.handleReport"),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
