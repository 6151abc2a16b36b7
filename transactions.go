package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kousthubh02/Chillar/internal/service"
)

// Transaction handler functions

// @Summary Get all transactions
// @Description Retrieve all transactions with person and event names. Dates are DD-MM-YYYY.
// @Tags transactions
// @Produce json
// @Success 200 {array} Transaction "List of transactions"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/transactions [get]
func (a *App) getTransactions(c *gin.Context) {
	details, err := a.ledger.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactions(details))
}

// @Summary List raw transactions
// @Description Debug listing without joins. Not registered in production.
// @Tags transactions
// @Produce json
// @Success 200 {array} RawTransaction
// @Router /api/transactions/debug/all [get]
func (a *App) debugTransactions(c *gin.Context) {
	transactions, err := a.ledger.DebugListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRawTransactions(transactions))
}

// @Summary Create transaction
// @Description Create a transaction. person_id, amount, reason and due_date (DD-MM-YYYY) are required.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body TransactionRequest true "Transaction data"
// @Success 201 {object} CreateTransactionResponse
// @Failure 400 {object} MessageResponse "Invalid input"
// @Failure 404 {object} MessageResponse "Person or event not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/transactions [post]
func (a *App) createTransaction(c *gin.Context) {
	var req TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := a.ledger.CreateTransaction(c.Request.Context(), service.TransactionInput{
		PersonID:   req.PersonID,
		EventID:    req.EventID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		DueDate:    req.DueDate,
		Status:     req.Status,
		PaidAmount: req.PaidAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateTransactionResponse{
		TransactionID: txn.ID,
		Msg:           "Transaction created successfully",
	})
}

// @Summary Update transaction status
// @Description Set the settled flag directly. paid_amount is not changed.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} MessageResponse "Status missing"
// @Failure 404 {object} MessageResponse "Transaction not found"
// @Router /api/transactions/{id} [patch]
func (a *App) updateTransactionStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := a.ledger.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Msg:           "Transaction status updated",
		TransactionID: txn.ID,
		Status:        txn.Status,
	})
}

// @Summary Record partial payment
// @Description Add amount to paid_amount. The transaction is settled once paid_amount reaches amount.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param payment body PaymentRequest true "Payment amount"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} MessageResponse "Amount missing, negative or too large"
// @Failure 404 {object} MessageResponse "Transaction not found"
// @Router /api/transactions/{id}/pay [post]
func (a *App) payTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := a.ledger.RecordPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	paymentsRecorded.Inc()

	c.JSON(http.StatusOK, PaymentResponse{
		Msg:        "Payment updated",
		PaidAmount: txn.PaidAmount,
		Status:     txn.Status,
	})
}
