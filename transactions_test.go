package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kousthubh02/Chillar/internal/config"
	"github.com/Kousthubh02/Chillar/internal/models"
)

func TestGetTransactions(t *testing.T) {
	mustCleanup(t)

	t.Run("should return empty array when no transactions exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
	})

	t.Run("should join person and event names", func(t *testing.T) {
		personID := createTestPerson(t, "John Doe")
		eventID := createTestEvent(t, "Dinner")
		withEvent := createTestTransaction(t, personID, &eventID, 100.50, "Dinner bill", "31-12-2024")
		withoutEvent := createTestTransaction(t, personID, nil, 20, "Cab", "01-01-2025")

		resp := makeRequest("GET", "/api/transactions", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var transactions []Transaction
		assertNoError(t, parseJSONResponse(resp, &transactions))
		require.Len(t, transactions, 2)

		first := transactions[0]
		assert.Equal(t, withEvent, first.TransactionID)
		assert.Equal(t, "John Doe", first.PersonName)
		assert.Equal(t, "Dinner", first.EventName)
		require.NotNil(t, first.EventID)
		assert.Equal(t, eventID, *first.EventID)
		assert.Equal(t, 100.50, first.Amount)
		assert.Equal(t, "31-12-2024", first.DueDate)
		assert.False(t, first.Status)
		assert.NotEmpty(t, first.CreatedDate)

		second := transactions[1]
		assert.Equal(t, withoutEvent, second.TransactionID)
		assert.Nil(t, second.EventID)
		assert.Equal(t, "N/A", second.EventName)
	})
}

func TestDebugTransactions(t *testing.T) {
	mustCleanup(t)
	personID := createTestPerson(t, "John Doe")
	id := createTestTransaction(t, personID, nil, 10, "Coffee", "05-06-2025")

	t.Run("should list raw rows", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions/debug/all", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var rows []RawTransaction
		assertNoError(t, parseJSONResponse(resp, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, id, rows[0].TransactionID)
		assert.Equal(t, personID, rows[0].PersonID)
		assert.Equal(t, "05-06-2025", rows[0].DueDate)
		assert.NotContains(t, resp.Body.String(), "person_name")
	})

	t.Run("should not exist in production", func(t *testing.T) {
		app, err := newTestApp(func(cfg *config.Config) { cfg.Environment = "production" })
		require.NoError(t, err)

		resp := makeRequestWithHeaders(setupRouter(app), "GET", "/api/transactions/debug/all", nil, nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

func TestCreateTransaction(t *testing.T) {
	mustCleanup(t)
	personID := createTestPerson(t, "John Doe")
	eventID := createTestEvent(t, "Trip")

	valid := func() map[string]any {
		return map[string]any{
			"person_id": personID,
			"amount":    250.75,
			"reason":    "Hotel share",
			"due_date":  "15-08-2025",
		}
	}

	t.Run("should create a transaction", func(t *testing.T) {
		resp := makeRequest("POST", "/api/transactions", jsonBody(t, valid()))
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var body CreateTransactionResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "Transaction created successfully", body.Msg)
		assert.Positive(t, body.TransactionID)

		stored, err := testStore.GetTransaction(context.Background(), body.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, 250.75, stored.Amount)
		assert.Equal(t, "Hotel share", stored.Reason)
		assert.Nil(t, stored.EventID)
		assert.False(t, stored.Status)
	})

	t.Run("should accept numeric strings and an event", func(t *testing.T) {
		body := valid()
		body["person_id"] = fmt.Sprint(personID)
		body["event_id"] = fmt.Sprint(eventID)
		body["amount"] = "99.5"

		resp := makeRequest("POST", "/api/transactions", jsonBody(t, body))
		assertStatusCode(t, http.StatusCreated, resp.Code)
	})

	t.Run("should settle when created fully paid", func(t *testing.T) {
		body := valid()
		body["amount"] = 40
		body["paid_amount"] = 40

		resp := makeRequest("POST", "/api/transactions", jsonBody(t, body))
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created CreateTransactionResponse
		assertNoError(t, parseJSONResponse(resp, &created))
		stored, err := testStore.GetTransaction(context.Background(), created.TransactionID)
		require.NoError(t, err)
		assert.True(t, stored.Status)
		assert.Equal(t, 40.0, stored.PaidAmount)
	})

	t.Run("should accept single-digit day and month", func(t *testing.T) {
		body := valid()
		body["due_date"] = "5-8-2025"
		resp := makeRequest("POST", "/api/transactions", jsonBody(t, body))
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var created CreateTransactionResponse
		assertNoError(t, parseJSONResponse(resp, &created))
		stored, err := testStore.GetTransaction(context.Background(), created.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, "05-08-2025", models.FormatDate(stored.DueDate))
	})

	cases := []struct {
		name   string
		mutate func(map[string]any)
		status int
		msg    string
	}{
		{
			name:   "should list missing fields",
			mutate: func(b map[string]any) { delete(b, "amount"); delete(b, "due_date") },
			status: http.StatusBadRequest,
			msg:    "Missing required fields: amount, due_date",
		},
		{
			name:   "should reject a non-numeric person_id",
			mutate: func(b map[string]any) { b["person_id"] = "abc" },
			status: http.StatusBadRequest,
			msg:    "Invalid person_id: abc",
		},
		{
			name:   "should 404 for an unknown person",
			mutate: func(b map[string]any) { b["person_id"] = 999999 },
			status: http.StatusNotFound,
			msg:    "No person found with person_id: 999999",
		},
		{
			name:   "should 404 for an unknown event",
			mutate: func(b map[string]any) { b["event_id"] = 999999 },
			status: http.StatusNotFound,
			msg:    "No event found with event_id: 999999",
		},
		{
			name:   "should reject a zero amount",
			mutate: func(b map[string]any) { b["amount"] = 0 },
			status: http.StatusBadRequest,
			msg:    "Amount must be greater than 0",
		},
		{
			name:   "should reject a negative amount",
			mutate: func(b map[string]any) { b["amount"] = -5 },
			status: http.StatusBadRequest,
			msg:    "Amount must be greater than 0",
		},
		{
			name:   "should reject a bad date format",
			mutate: func(b map[string]any) { b["due_date"] = "2025-08-15" },
			status: http.StatusBadRequest,
			msg:    "Invalid due_date format. Use DD-MM-YYYY",
		},
		{
			name:   "should reject an impossible date",
			mutate: func(b map[string]any) { b["due_date"] = "31-02-2025" },
			status: http.StatusBadRequest,
			msg:    "Invalid due_date format. Use DD-MM-YYYY",
		},
		{
			name:   "should reject a blank reason",
			mutate: func(b map[string]any) { b["reason"] = "   " },
			status: http.StatusBadRequest,
			msg:    "Reason must be a non-empty string",
		},
		{
			name:   "should reject a non-string reason",
			mutate: func(b map[string]any) { b["reason"] = 42 },
			status: http.StatusBadRequest,
			msg:    "Reason must be a non-empty string",
		},
		{
			name:   "should reject a negative paid_amount",
			mutate: func(b map[string]any) { b["paid_amount"] = -1 },
			status: http.StatusBadRequest,
			msg:    "paid_amount must not be negative",
		},
		{
			name:   "should reject an amount past the maximum",
			mutate: func(b map[string]any) { b["amount"] = 1e308 },
			status: http.StatusBadRequest,
			msg:    "Amount is too large",
		},
		{
			name:   "should reject a paid_amount past the maximum",
			mutate: func(b map[string]any) { b["paid_amount"] = 1e308 },
			status: http.StatusBadRequest,
			msg:    "paid_amount is too large",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := valid()
			tc.mutate(body)

			resp := makeRequest("POST", "/api/transactions", jsonBody(t, body))
			assertStatusCode(t, tc.status, resp.Code)
			assert.Equal(t, tc.msg, responseMsg(t, resp))
		})
	}

	t.Run("should reject an empty body", func(t *testing.T) {
		resp := makeRequest("POST", "/api/transactions", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "No data provided", responseMsg(t, resp))
	})
}

func TestUpdateTransactionStatus(t *testing.T) {
	mustCleanup(t)
	personID := createTestPerson(t, "John Doe")
	id := createTestTransaction(t, personID, nil, 100, "Loan", "01-01-2025")
	url := fmt.Sprintf("/api/transactions/%d", id)

	t.Run("should mark a transaction paid", func(t *testing.T) {
		resp := makeRequest("PATCH", url, jsonBody(t, map[string]bool{"status": true}))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var body StatusResponse
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, id, body.TransactionID)
		assert.True(t, body.Status)
	})

	t.Run("should reopen without touching paid_amount", func(t *testing.T) {
		resp := makeRequest("PATCH", url, jsonBody(t, map[string]bool{"status": false}))
		assertStatusCode(t, http.StatusOK, resp.Code)

		stored, err := testStore.GetTransaction(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, stored.Status)
		assert.Zero(t, stored.PaidAmount)
	})

	t.Run("should accept truthy non-boolean values", func(t *testing.T) {
		for _, tc := range []struct {
			body string
			want bool
		}{
			{`{"status": 1}`, true},
			{`{"status": 0}`, false},
			{`{"status": "paid"}`, true},
			{`{"status": ""}`, false},
		} {
			resp := makeRequest("PATCH", url, strings.NewReader(tc.body))
			require.Equal(t, http.StatusOK, resp.Code, tc.body)

			var body StatusResponse
			assertNoError(t, parseJSONResponse(resp, &body))
			assert.Equal(t, tc.want, body.Status, tc.body)
		}
	})

	t.Run("should treat null as missing", func(t *testing.T) {
		resp := makeRequest("PATCH", url, strings.NewReader(`{"status": null}`))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Status is required", responseMsg(t, resp))
	})

	t.Run("should require status", func(t *testing.T) {
		resp := makeRequest("PATCH", url, jsonBody(t, map[string]any{}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Status is required", responseMsg(t, resp))
	})

	t.Run("should 404 for an unknown transaction", func(t *testing.T) {
		resp := makeRequest("PATCH", "/api/transactions/999999", jsonBody(t, map[string]bool{"status": true}))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Transaction not found", responseMsg(t, resp))
	})

	t.Run("should 404 for a non-numeric id", func(t *testing.T) {
		resp := makeRequest("PATCH", "/api/transactions/abc", jsonBody(t, map[string]bool{"status": true}))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

func TestPayTransaction(t *testing.T) {
	mustCleanup(t)
	personID := createTestPerson(t, "John Doe")
	id := createTestTransaction(t, personID, nil, 100, "Loan", "01-01-2025")
	url := fmt.Sprintf("/api/transactions/%d/pay", id)

	pay := func(t *testing.T, amount float64) PaymentResponse {
		t.Helper()
		resp := makeRequest("POST", url, jsonBody(t, map[string]float64{"amount": amount}))
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var body PaymentResponse
		require.NoError(t, parseJSONResponse(resp, &body))
		return body
	}

	t.Run("should accumulate partial payments", func(t *testing.T) {
		body := pay(t, 30)
		assert.Equal(t, "Payment updated", body.Msg)
		assert.Equal(t, 30.0, body.PaidAmount)
		assert.False(t, body.Status)

		body = pay(t, 0.1)
		assert.Equal(t, 30.1, body.PaidAmount)
		assert.False(t, body.Status)
	})

	t.Run("should settle once covered", func(t *testing.T) {
		body := pay(t, 69.9)
		assert.Equal(t, 100.0, body.PaidAmount)
		assert.True(t, body.Status)
	})

	t.Run("should accept overpayment", func(t *testing.T) {
		body := pay(t, 5)
		assert.Equal(t, 105.0, body.PaidAmount)
		assert.True(t, body.Status)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		resp := makeRequest("POST", url, jsonBody(t, map[string]float64{"amount": -10}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Amount must not be negative", responseMsg(t, resp))
	})

	t.Run("should require an amount", func(t *testing.T) {
		resp := makeRequest("POST", url, jsonBody(t, map[string]any{}))

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Amount is required", responseMsg(t, resp))
	})

	t.Run("should reject a payment that overflows the total", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := makeRequest("POST", url, jsonBody(t, map[string]float64{"amount": 1e308}))

			assertStatusCode(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "Payment total is too large", responseMsg(t, resp))
		}

		stored, err := testStore.GetTransaction(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 105.0, stored.PaidAmount)
	})

	t.Run("should 404 before validating the amount", func(t *testing.T) {
		resp := makeRequest("POST", "/api/transactions/999999/pay", jsonBody(t, map[string]any{}))

		assertStatusCode(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Transaction not found", responseMsg(t, resp))
	})
}

func TestPartialPaymentScenario(t *testing.T) {
	mustCleanup(t)

	resp := makeRequest("POST", "/api/people", jsonBody(t, PersonRequest{PersonName: "Alice"}))
	require.Equal(t, http.StatusCreated, resp.Code)
	var alice Person
	require.NoError(t, parseJSONResponse(resp, &alice))

	resp = makeRequest("POST", "/api/transactions", jsonBody(t, map[string]any{
		"person_id": alice.PersonID,
		"amount":    100,
		"reason":    "lunch",
		"due_date":  "01-01-2025",
	}))
	require.Equal(t, http.StatusCreated, resp.Code)
	var created CreateTransactionResponse
	require.NoError(t, parseJSONResponse(resp, &created))
	url := fmt.Sprintf("/api/transactions/%d/pay", created.TransactionID)

	var payment PaymentResponse
	resp = makeRequest("POST", url, jsonBody(t, map[string]float64{"amount": 60}))
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, parseJSONResponse(resp, &payment))
	assert.Equal(t, PaymentResponse{Msg: "Payment updated", PaidAmount: 60, Status: false}, payment)

	resp = makeRequest("POST", url, jsonBody(t, map[string]float64{"amount": 40}))
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, parseJSONResponse(resp, &payment))
	assert.Equal(t, PaymentResponse{Msg: "Payment updated", PaidAmount: 100, Status: true}, payment)

	resp = makeRequest("GET", "/api/transactions", nil)
	var listed []Transaction
	require.NoError(t, parseJSONResponse(resp, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Alice", listed[0].PersonName)
	assert.Equal(t, "01-01-2025", listed[0].DueDate)
	assert.True(t, listed[0].Status)
}
