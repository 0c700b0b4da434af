package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coverd/internal/delivery/http/validator"
	"coverd/internal/domain/entity"
	domainerrors "coverd/internal/domain/errors"
	mockUC "coverd/internal/mocks/usecase"
	"coverd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerTest(t *testing.T) (*PolicyHandler, *mockUC.MockPolicyUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUC.NewMockPolicyUsecase(t)
	handler := NewPolicyHandler(uc, slog.Default())

	e := echo.New()
	e.Validator = validator.New()

	return handler, uc, e
}

func testPolicy() *entity.Policy {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Policy{
		ID:        1,
		Reference: "POL-2026-0001",
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
		Amount:    decimal.NewFromInt(365),
		Policyholders: []entity.Policyholder{
			{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)},
		},
		Property: &entity.Property{
			AddressLine1: "10 Downing Street",
			Postcode:     "SW1A 2AA",
		},
		Payment: &entity.Payment{
			Reference: "3f2a1b4c5d6e7f801122334455667788",
			Type:      entity.PaymentTypeCard,
			Amount:    decimal.NewFromInt(365),
		},
	}
}

const sellBody = `{
	"reference": "POL-2026-0001",
	"start_date": "2026-09-01",
	"end_date": "2027-09-01",
	"amount": 365,
	"payment_type": "card",
	"policyholders": [
		{"first_name": "Ada", "last_name": "Lovelace", "date_of_birth": "1990-06-15"}
	],
	"property": {"address_line_1": "10 Downing Street", "postcode": "SW1A 2AA"}
}`

func TestPolicyHandler_Sell_Created(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	uc.EXPECT().
		Sell(mock.Anything, mock.AnythingOfType("*usecase.SellPolicyInput")).
		Run(func(_ context.Context, input *usecase.SellPolicyInput) {
			assert.Equal(t, "POL-2026-0001", input.Reference)
			assert.Equal(t, entity.PaymentTypeCard, input.PaymentType)
			assert.Len(t, input.Policyholders, 1)
		}).
		Return(testPolicy(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/policies", strings.NewReader(sellBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Sell(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "POL-2026-0001")
	assert.Contains(t, rec.Body.String(), "3f2a1b4c5d6e7f801122334455667788")
}

func TestPolicyHandler_Sell_UnknownPaymentType(t *testing.T) {
	handler, _, e := newHandlerTest(t)

	body := strings.Replace(sellBody, `"card"`, `"bitcoin"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/policies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Sell(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPolicyHandler_Sell_MissingReference(t *testing.T) {
	handler, _, e := newHandlerTest(t)

	body := strings.Replace(sellBody, `"POL-2026-0001"`, `""`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/policies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Sell(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestPolicyHandler_Sell_BusinessRuleViolation(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	uc.EXPECT().
		Sell(mock.Anything, mock.AnythingOfType("*usecase.SellPolicyInput")).
		Return(nil, domainerrors.NewBusinessRuleViolation("The provided policy reference already exists"))

	req := httptest.NewRequest(http.MethodPost, "/api/policies", strings.NewReader(sellBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Sell(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "BUSINESS_RULE_VIOLATION")
	assert.Contains(t, rec.Body.String(), "The provided policy reference already exists")
}

func TestPolicyHandler_Get_Found(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	uc.EXPECT().
		Get(mock.Anything, "POL-2026-0001").
		Return(testPolicy(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/policies/POL-2026-0001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start_date":"2026-09-01"`)
	assert.Contains(t, rec.Body.String(), "SW1A 2AA")
}

func TestPolicyHandler_Get_NotFound(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	uc.EXPECT().
		Get(mock.Anything, "MISSING").
		Return(nil, domainerrors.ErrPolicyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/policies/MISSING", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("MISSING")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POLICY_NOT_FOUND")
}

func TestPolicyHandler_Cancel_ReturnsRefund(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	expectedDate := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().
		Cancel(mock.Anything, "POL-2026-0001", expectedDate).
		Return(decimal.RequireFromString("214"), nil)

	body := `{"cancellation_date": "2026-12-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/policies/POL-2026-0001/cancellation", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refund_amount":"214"`)
}

func TestPolicyHandler_Cancel_InvalidDate(t *testing.T) {
	handler, _, e := newHandlerTest(t)

	body := `{"cancellation_date": "not-a-date"}`
	req := httptest.NewRequest(http.MethodPost, "/api/policies/POL-2026-0001/cancellation", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.Cancel(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPolicyHandler_Renew_ReturnsNewTerm(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	renewed := testPolicy()
	renewed.StartDate = renewed.EndDate
	renewed.EndDate = renewed.EndDate.AddDate(1, 0, 0)

	uc.EXPECT().
		Renew(mock.Anything, "POL-2026-0001").
		Return(renewed, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/policies/POL-2026-0001/renewals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.Renew(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start_date":"2027-09-01"`)
	assert.Contains(t, rec.Body.String(), `"end_date":"2028-09-01"`)
}

func TestPolicyHandler_QuoteCancellationRefund(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	expectedDate := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().
		QuoteCancellationRefund(mock.Anything, "POL-2026-0001", expectedDate).
		Return(decimal.RequireFromString("123.29"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/policies/POL-2026-0001/cancellation-quote?cancellation_date=2026-12-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.QuoteCancellationRefund(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refund_amount":"123.29"`)
}

func TestPolicyHandler_QuoteCancellationRefund_MissingDate(t *testing.T) {
	handler, _, e := newHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/policies/POL-2026-0001/cancellation-quote", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.QuoteCancellationRefund(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPolicyHandler_CheckRenewable(t *testing.T) {
	handler, uc, e := newHandlerTest(t)

	uc.EXPECT().
		CheckRenewable(mock.Anything, "POL-2026-0001").
		Return(&usecase.RenewalEligibility{CanRenew: false, Reason: "Cannot renew a policy after its end date"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/policies/POL-2026-0001/renewal-eligibility", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("POL-2026-0001")

	require.NoError(t, handler.CheckRenewable(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"can_renew":false`)
	assert.Contains(t, rec.Body.String(), "Cannot renew a policy after its end date")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
