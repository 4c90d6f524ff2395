package payrollhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"netpay/internal/domain/payroll"
	"netpay/internal/export"
	"netpay/internal/platform/metrics"
	"netpay/internal/reports"
	"netpay/internal/transport/http/api"
	"netpay/internal/transport/http/middleware"
	"netpay/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Metrics *metrics.Collector
	Now     func() time.Time
}

func NewHandler(service *payroll.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector, Now: time.Now}
}

type payPayload struct {
	Name           string          `json:"name" validate:"required,max=120"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	DaysWorked     int             `json:"daysWorked"`
	CommuteBenefit bool            `json:"commuteBenefit"`
}

type schedulesResponse struct {
	Contribution    payroll.Schedule `json:"contribution"`
	ContributionCap decimal.Decimal  `json:"contributionCap"`
	IncomeTax       payroll.Schedule `json:"incomeTax"`
	CommuteRate     decimal.Decimal  `json:"commuteBenefitRate"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/schedules", h.handleSchedules)
		r.Post("/calculate", h.handleCalculate)
		r.Post("/report", h.handleReport)
		r.Post("/payslip", h.handlePayslip)
		r.Post("/export", h.handleExport)
	})
}

func (h *Handler) handleSchedules(w http.ResponseWriter, r *http.Request) {
	api.Success(w, schedulesResponse{
		Contribution:    payroll.ContributionSchedule,
		ContributionCap: payroll.ContributionCap,
		IncomeTax:       payroll.IncomeTaxSchedule,
		CommuteRate:     payroll.CommuteBenefitRate,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	breakdown, ok := h.calculate(w, r)
	if !ok {
		return
	}
	api.Success(w, breakdown, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	breakdown, ok := h.calculate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	renderer := &reports.Renderer{Out: &buf, Now: h.Now}
	if err := renderer.Render(breakdown); err != nil {
		slog.Error("render report failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	breakdown, ok := h.calculate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.Service.WritePayslipPDF(&buf, breakdown); err != nil {
		slog.Error("render payslip failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	breakdown, ok := h.calculate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, breakdown.Employee); err != nil {
		slog.Error("export employee failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export employee", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employee.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// calculate decodes and validates the employee payload and runs the payroll
// calculation, writing the failure response itself when it returns false.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (payroll.Breakdown, bool) {
	requestID := middleware.GetRequestID(r.Context())

	var payload payPayload
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return payroll.Breakdown{}, false
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if shared.Reject(w, requestID, shared.Validate(payload)) {
		return payroll.Breakdown{}, false
	}

	breakdown, err := h.Service.Calculate(payroll.Employee{
		Name:           payload.Name,
		BaseSalary:     payload.BaseSalary,
		DaysWorked:     payload.DaysWorked,
		CommuteBenefit: payload.CommuteBenefit,
	})
	if err != nil {
		var invalid *payroll.InvalidInputError
		if errors.As(err, &invalid) {
			h.recordCalculation(metrics.OutcomeInvalid)
			api.FailWithDetails(w, http.StatusBadRequest, "invalid_input", invalid.Error(), map[string]any{"field": invalid.Field}, requestID)
			return payroll.Breakdown{}, false
		}
		slog.Error("payroll calculation failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "calculation_failed", "failed to calculate net pay", requestID)
		return payroll.Breakdown{}, false
	}
	h.recordCalculation(metrics.OutcomeOK)
	return breakdown, true
}

func (h *Handler) recordCalculation(outcome string) {
	if h.Metrics != nil {
		h.Metrics.RecordCalculation(outcome)
	}
}
