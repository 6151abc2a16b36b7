// Package models defines the core domain models for Chillar.
//
// The models carry the two pieces of state-machine logic the rest of the
// system relies on:
//   - User: the OTP lifecycle used to authorise a PIN reset
//     (NONE -> PENDING -> VERIFIED -> NONE, or PENDING -> EXPIRED).
//   - Transaction: partial-payment reconciliation between amount,
//     paid_amount and the settled status flag.
//
// Relationships are expressed as IDs, never pointers. Storage packages
// return plain values; denormalised reads use TransactionDetail.
package models
