package http

import (
	"net/http"
	"time"

	"github.com/ChristianKamdemLab/ckmoney/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	LenderName       string  `json:"lender_name" validate:"required"`
	LenderEmail      string  `json:"lender_email" validate:"required,email"`
	BorrowerName     string  `json:"borrower_name" validate:"required"`
	BorrowerEmail    string  `json:"borrower_email" validate:"required,email"`
	Amount           float64 `json:"amount" validate:"required,gt=0,dec2"`
	Currency         string  `json:"currency" validate:"required,currency3"`
	LoanDate         string  `json:"loan_date" validate:"required"`
	RepaymentDate    string  `json:"repayment_date" validate:"required"`
	LateInterestRate float64 `json:"late_interest_rate" validate:"gte=0,lte=100"`
	City             string  `json:"city"`
	Country          string  `json:"country"`
	LenderSignature  string  `json:"lender_signature"`
}

const dateLayout = "2006-01-02"

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	loanDate, err := time.Parse(dateLayout, req.LoanDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Details: []FieldError{{Field: "loan_date", Message: "must be YYYY-MM-DD"}}})
	}
	repayDate, err := time.Parse(dateLayout, req.RepaymentDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Details: []FieldError{{Field: "repayment_date", Message: "must be YYYY-MM-DD"}}})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		LenderName:       req.LenderName,
		LenderEmail:      req.LenderEmail,
		BorrowerName:     req.BorrowerName,
		BorrowerEmail:    req.BorrowerEmail,
		Amount:           req.Amount,
		Currency:         req.Currency,
		LoanDate:         loanDate,
		RepaymentDate:    repayDate,
		LateInterestRate: req.LateInterestRate,
		City:             req.City,
		Country:          req.Country,
		LenderSignature:  req.LenderSignature,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.ListByParticipant(c.Request().Context(), c.QueryParam("participant"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type signReq struct {
	Signature string `json:"signature" validate:"required"`
}

// SignLoan: the addressed borrower countersigns the contract.
func (h *LoanHandler) SignLoan(c echo.Context) error {
	var req signReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Sign(c.Request().Context(), c.Param("loan_id"), actorEmail(c), req.Signature)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ClaimRepayment: the borrower asserts payment through the portal.
func (h *LoanHandler) ClaimRepayment(c echo.Context) error {
	dto, err := h.uc.Claim(c.Request().Context(), c.Param("loan_id"), actorEmail(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ConfirmRepayment: the lender settles the loan.
func (h *LoanHandler) ConfirmRepayment(c echo.Context) error {
	dto, err := h.uc.Confirm(c.Request().Context(), c.Param("loan_id"), actorEmail(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// DisputeRepayment: the lender rejects a repayment claim.
func (h *LoanHandler) DisputeRepayment(c echo.Context) error {
	dto, err := h.uc.Dispute(c.Request().Context(), c.Param("loan_id"), actorEmail(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
