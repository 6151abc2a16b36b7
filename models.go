package main

import (
	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/service"
)

// MessageResponse is the body of every error and most acknowledgements
type MessageResponse struct {
	Msg string `json:"msg" example:"Account created successfully"`
}

// SignupRequest represents the request structure for creating an account
type SignupRequest struct {
	Username *string `json:"username" binding:"omitempty,max=50"`
	Email    string  `json:"email" binding:"required,email,max=120"`
	MPin     string  `json:"mPin" binding:"required,digits=4"`
}

// LoginRequest is not format-checked; bad input fails as a login
type LoginRequest struct {
	Email string `json:"email"`
	MPin  string `json:"mPin"`
}

// LoginResponse carries the issued tokens
type LoginResponse struct {
	Msg          string `json:"msg"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse carries a new access token
type RefreshResponse struct {
	Msg         string `json:"msg"`
	AccessToken string `json:"access_token"`
}

// OTPRequest asks for a reset code
type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest submits a reset code
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,digits=6"`
}

// ResetMPINRequest sets a new PIN after verification
type ResetMPINRequest struct {
	Email   string `json:"email" binding:"required,email"`
	NewMPin string `json:"new_mPin" binding:"required,digits=4"`
}

// Person represents a transaction counterparty
type Person struct {
	PersonID   int64  `json:"person_id"`
	PersonName string `json:"person_name"`
}

// PersonRequest creates or renames a person
type PersonRequest struct {
	PersonName string `json:"person_name"`
}

// Event represents an optional grouping for transactions
type Event struct {
	EventID   int64  `json:"event_id"`
	EventName string `json:"event_name"`
}

// EventRequest creates or renames an event
type EventRequest struct {
	EventName string `json:"event_name"`
}

// Transaction is a listed transaction with person and event names
type Transaction struct {
	TransactionID int64   `json:"transaction_id"`
	PersonID      int64   `json:"person_id"`
	PersonName    string  `json:"person_name"`
	EventID       *int64  `json:"event_id"`
	EventName     string  `json:"event_name"`
	Amount        float64 `json:"amount"`
	PaidAmount    float64 `json:"paid_amount"`
	Reason        string  `json:"reason"`
	DueDate       string  `json:"due_date" example:"31-12-2024"`
	Status        bool    `json:"status"`
	CreatedDate   string  `json:"created_date" example:"01-12-2024"`
}

// RawTransaction is a transaction row without joined names
type RawTransaction struct {
	TransactionID int64   `json:"transaction_id"`
	PersonID      int64   `json:"person_id"`
	EventID       *int64  `json:"event_id"`
	Amount        float64 `json:"amount"`
	PaidAmount    float64 `json:"paid_amount"`
	Reason        string  `json:"reason"`
	DueDate       string  `json:"due_date"`
	Status        bool    `json:"status"`
	CreatedDate   string  `json:"created_date"`
}

// TransactionRequest is the create payload. Ids and amounts may be numbers
// or numeric strings.
type TransactionRequest struct {
	PersonID   any `json:"person_id" swaggertype:"integer"`
	EventID    any `json:"event_id" swaggertype:"integer"`
	Amount     any `json:"amount" swaggertype:"number"`
	Reason     any `json:"reason" swaggertype:"string"`
	DueDate    any `json:"due_date" swaggertype:"string" example:"31-12-2024"`
	Status     any `json:"status" swaggertype:"boolean"`
	PaidAmount any `json:"paid_amount" swaggertype:"number"`
}

// CreateTransactionResponse acknowledges a new transaction
type CreateTransactionResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Msg           string `json:"msg"`
}

// StatusRequest overrides a transaction's status. Any JSON value is read
// for its truthiness.
type StatusRequest struct {
	Status any `json:"status" swaggertype:"boolean"`
}

// StatusResponse acknowledges a status change
type StatusResponse struct {
	Msg           string `json:"msg"`
	TransactionID int64  `json:"transaction_id"`
	Status        bool   `json:"status"`
}

// PaymentRequest records a partial payment
type PaymentRequest struct {
	Amount *float64 `json:"amount"`
}

// PaymentResponse reports the running paid total
type PaymentResponse struct {
	Msg        string  `json:"msg"`
	PaidAmount float64 `json:"paid_amount"`
	Status     bool    `json:"status"`
}

// PersonTotal represents the aggregate position with a person
type PersonTotal struct {
	PersonID         int64   `json:"person_id"`
	PersonName       string  `json:"person_name"`
	TotalAmount      float64 `json:"total_amount"`
	TotalPaid        float64 `json:"total_paid"`
	Outstanding      float64 `json:"outstanding"`
	OpenTransactions int     `json:"open_transactions"`
}

// AdminLoginRequest holds admin panel credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminUser is a user account as shown to admins
type AdminUser struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	Email    string  `json:"email"`
	OTPState string  `json:"otp_state"`
}

// AdminCounts summarises stored records
type AdminCounts struct {
	Users            int `json:"users"`
	People           int `json:"people"`
	Events           int `json:"events"`
	Transactions     int `json:"transactions"`
	OpenTransactions int `json:"open_transactions"`
}

func toPerson(p *models.Person) Person {
	return Person{PersonID: p.ID, PersonName: p.Name}
}

func toPeople(people []*models.Person) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		out = append(out, toPerson(p))
	}
	return out
}

func toEvent(e *models.Event) Event {
	return Event{EventID: e.ID, EventName: e.Name}
}

func toEvents(events []*models.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, toEvent(e))
	}
	return out
}

func toTransactions(details []*models.TransactionDetail) []Transaction {
	out := make([]Transaction, 0, len(details))
	for _, d := range details {
		out = append(out, Transaction{
			TransactionID: d.ID,
			PersonID:      d.PersonID,
			PersonName:    d.PersonName,
			EventID:       d.EventID,
			EventName:     d.EventLabel(),
			Amount:        d.Amount,
			PaidAmount:    d.PaidAmount,
			Reason:        d.Reason,
			DueDate:       models.FormatDate(d.DueDate),
			Status:        d.Status,
			CreatedDate:   models.FormatDate(d.CreatedDate),
		})
	}
	return out
}

func toRawTransactions(transactions []*models.Transaction) []RawTransaction {
	out := make([]RawTransaction, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, RawTransaction{
			TransactionID: t.ID,
			PersonID:      t.PersonID,
			EventID:       t.EventID,
			Amount:        t.Amount,
			PaidAmount:    t.PaidAmount,
			Reason:        t.Reason,
			DueDate:       models.FormatDate(t.DueDate),
			Status:        t.Status,
			CreatedDate:   models.FormatDate(t.CreatedDate),
		})
	}
	return out
}

func toPersonTotals(totals []models.PersonTotal) []PersonTotal {
	out := make([]PersonTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, PersonTotal{
			PersonID:         t.PersonID,
			PersonName:       t.PersonName,
			TotalAmount:      t.TotalAmount,
			TotalPaid:        t.TotalPaid,
			Outstanding:      t.Outstanding,
			OpenTransactions: t.OpenTransactions,
		})
	}
	return out
}

func toAdminCounts(c *service.Counts) AdminCounts {
	return AdminCounts{
		Users:            c.Users,
		People:           c.People,
		Events:           c.Events,
		Transactions:     c.Transactions,
		OpenTransactions: c.OpenTransactions,
	}
}
