// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"coverd/internal/delivery/http/response"
	"coverd/internal/domain/entity"
	"coverd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// PolicyHandler holds dependencies for policy-related handlers.
type PolicyHandler struct {
	uc     usecase.PolicyUsecase
	logger *slog.Logger
}

// NewPolicyHandler is the constructor for PolicyHandler, injected by Fx.
func NewPolicyHandler(uc usecase.PolicyUsecase, logger *slog.Logger) *PolicyHandler {
	return &PolicyHandler{
		uc:     uc,
		logger: logger,
	}
}

// SellPolicyRequest is the payload for selling a new policy. Dates arrive as
// calendar dates, amounts as decimal strings or numbers.
type SellPolicyRequest struct {
	Reference     string                `json:"reference" validate:"required,max=50"`
	StartDate     string                `json:"start_date" validate:"required"`
	EndDate       string                `json:"end_date" validate:"required"`
	Amount        decimal.Decimal       `json:"amount" validate:"required"`
	AutoRenew     bool                  `json:"auto_renew"`
	PaymentType   string                `json:"payment_type" validate:"required"`
	Policyholders []PolicyholderRequest `json:"policyholders" validate:"required,dive"`
	Property      *PropertyRequest      `json:"property" validate:"required"`
}

// PolicyholderRequest is one holder on a sale request.
type PolicyholderRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

// PropertyRequest is the insured property on a sale request.
type PropertyRequest struct {
	AddressLine1 string `json:"address_line_1" validate:"required"`
	AddressLine2 string `json:"address_line_2"`
	AddressLine3 string `json:"address_line_3"`
	Postcode     string `json:"postcode" validate:"required"`
}

// CancelPolicyRequest carries the effective cancellation date.
type CancelPolicyRequest struct {
	CancellationDate string `json:"cancellation_date" validate:"required"`
}

// PolicyView is the API representation of a policy.
type PolicyView struct {
	Reference     string             `json:"reference"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Amount        decimal.Decimal    `json:"amount"`
	HasOpenClaim  bool               `json:"has_open_claim"`
	AutoRenew     bool               `json:"auto_renew"`
	Policyholders []PolicyholderView `json:"policyholders"`
	Property      *PropertyView      `json:"property,omitempty"`
	Payment       *PaymentView       `json:"payment,omitempty"`
}

// PolicyholderView is one holder on a policy response.
type PolicyholderView struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// PropertyView is the insured property on a policy response.
type PropertyView struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AddressLine3 string `json:"address_line_3,omitempty"`
	Postcode     string `json:"postcode"`
}

// PaymentView is the payment method on a policy response.
type PaymentView struct {
	Reference string          `json:"reference"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// RefundView carries a computed refund amount.
type RefundView struct {
	Reference    string          `json:"reference"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

// Sell handles the policy sale request.
func (h *PolicyHandler) Sell(c echo.Context) error {
	var req SellPolicyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid policy sale input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := sellInputFromRequest(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	policy, err := h.uc.Sell(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, policyViewFromEntity(policy), "Policy sold successfully")
}

// Get handles the policy retrieval request.
func (h *PolicyHandler) Get(c echo.Context) error {
	policy, err := h.uc.Get(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, policyViewFromEntity(policy), "")
}

// Cancel handles the policy cancellation request.
func (h *PolicyHandler) Cancel(c echo.Context) error {
	var req CancelPolicyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cancellationDate, err := parseDate(req.CancellationDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cancellation date")
	}

	reference := c.Param("reference")
	refund, err := h.uc.Cancel(c.Request().Context(), reference, cancellationDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefundView{
		Reference:    reference,
		RefundAmount: refund,
	}, "Policy cancelled successfully")
}

// Renew handles the policy renewal request.
func (h *PolicyHandler) Renew(c echo.Context) error {
	policy, err := h.uc.Renew(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, policyViewFromEntity(policy), "Policy renewed successfully")
}

// QuoteCancellationRefund handles the refund quote request. The cancellation
// date comes in as a query parameter and nothing is mutated.
func (h *PolicyHandler) QuoteCancellationRefund(c echo.Context) error {
	rawDate := c.QueryParam("cancellation_date")
	if rawDate == "" {
		return response.BadRequest(c, "INVALID_INPUT", "The cancellation_date query parameter is required")
	}

	cancellationDate, err := parseDate(rawDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cancellation date")
	}

	reference := c.Param("reference")
	refund, err := h.uc.QuoteCancellationRefund(c.Request().Context(), reference, cancellationDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefundView{
		Reference:    reference,
		RefundAmount: refund,
	}, "")
}

// CheckRenewable handles the renewal eligibility request.
func (h *PolicyHandler) CheckRenewable(c echo.Context) error {
	eligibility, err := h.uc.CheckRenewable(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, eligibility, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// parseDate accepts either a full RFC3339 timestamp or a plain calendar date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse(dateLayout, raw)
}

func sellInputFromRequest(req *SellPolicyRequest) (*usecase.SellPolicyInput, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	paymentType, err := entity.ParsePaymentType(req.PaymentType)
	if err != nil {
		return nil, err
	}

	holders := make([]usecase.PolicyholderInput, 0, len(req.Policyholders))
	for _, holder := range req.Policyholders {
		dob, err := parseDate(holder.DateOfBirth)
		if err != nil {
			return nil, err
		}
		holders = append(holders, usecase.PolicyholderInput{
			FirstName:   holder.FirstName,
			LastName:    holder.LastName,
			DateOfBirth: dob,
		})
	}

	input := &usecase.SellPolicyInput{
		Reference:     req.Reference,
		StartDate:     startDate,
		EndDate:       endDate,
		Amount:        req.Amount,
		AutoRenew:     req.AutoRenew,
		PaymentType:   paymentType,
		Policyholders: holders,
	}
	if req.Property != nil {
		input.Property = &usecase.PropertyInput{
			AddressLine1: req.Property.AddressLine1,
			AddressLine2: req.Property.AddressLine2,
			AddressLine3: req.Property.AddressLine3,
			Postcode:     req.Property.Postcode,
		}
	}

	return input, nil
}

func policyViewFromEntity(policy *entity.Policy) *PolicyView {
	view := &PolicyView{
		Reference:    policy.Reference,
		StartDate:    policy.StartDate.Format(dateLayout),
		EndDate:      policy.EndDate.Format(dateLayout),
		Amount:       policy.Amount,
		HasOpenClaim: policy.HasOpenClaim,
		AutoRenew:    policy.AutoRenew,
	}

	view.Policyholders = make([]PolicyholderView, 0, len(policy.Policyholders))
	for _, holder := range policy.Policyholders {
		view.Policyholders = append(view.Policyholders, PolicyholderView{
			FirstName:   holder.FirstName,
			LastName:    holder.LastName,
			DateOfBirth: holder.DateOfBirth.Format(dateLayout),
		})
	}

	if policy.Property != nil {
		view.Property = &PropertyView{
			AddressLine1: policy.Property.AddressLine1,
			AddressLine2: policy.Property.AddressLine2,
			AddressLine3: policy.Property.AddressLine3,
			Postcode:     policy.Property.Postcode,
		}
	}

	if policy.Payment != nil {
		view.Payment = &PaymentView{
			Reference: policy.Payment.Reference,
			Type:      string(policy.Payment.Type),
			Amount:    policy.Payment.Amount,
		}
	}

	return view
}
