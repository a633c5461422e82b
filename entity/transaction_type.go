// Package entity defines the data models of the BORICA e-Gateway protocol:
// transaction types, MAC modes, the per-type field schema and the
// values exchanged with the presentation layer.
package entity

import (
	"strconv"
	"strings"
)

// TransactionType is the e-Gateway TRTYPE code.
type TransactionType int

const (
	// Sale is a direct payment.
	Sale TransactionType = 1
	// DeferredAuthorization blocks the amount without capturing it.
	DeferredAuthorization TransactionType = 12
	// CompleteDeferredAuthorization captures a previous deferred authorization.
	CompleteDeferredAuthorization TransactionType = 21
	// ReverseDeferredAuthorization releases a previous deferred authorization.
	ReverseDeferredAuthorization TransactionType = 22
	// Reversal cancels a completed payment.
	Reversal TransactionType = 24
	// StatusCheck asks the gateway for the outcome of an earlier transaction.
	StatusCheck TransactionType = 90
)

var transactionNames = map[TransactionType]string{
	Sale:                          "sale",
	DeferredAuthorization:         "deferred_authorization",
	CompleteDeferredAuthorization: "complete_deferred_authorization",
	ReverseDeferredAuthorization:  "reverse_deferred_authorization",
	Reversal:                      "reversal",
	StatusCheck:                   "status_check",
}

// TransactionTypes lists every type the gateway accepts, in code order.
func TransactionTypes() []TransactionType {
	return []TransactionType{
		Sale,
		DeferredAuthorization,
		CompleteDeferredAuthorization,
		ReverseDeferredAuthorization,
		Reversal,
		StatusCheck,
	}
}

// Code is the value written to the TRTYPE wire field.
func (t TransactionType) Code() string {
	return strconv.Itoa(int(t))
}

func (t TransactionType) String() string {
	if name, ok := transactionNames[t]; ok {
		return name
	}
	return "unknown(" + t.Code() + ")"
}

// IsValid reports whether t is one of the six protocol codes.
func (t TransactionType) IsValid() bool {
	_, ok := transactionNames[t]
	return ok
}

// ParseTransactionType reads a TRTYPE value as sent over the wire.
func ParseTransactionType(value string) (TransactionType, bool) {
	code, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	t := TransactionType(code)
	if !t.IsValid() {
		return 0, false
	}
	return t, true
}

// MacMode selects which MAC field list is signed. It is a per-terminal setting
// agreed with the acquirer.
type MacMode string

const (
	MacSimple   MacMode = "simple"
	MacExtended MacMode = "extended"
)

// IsValid reports whether m is simple or extended.
func (m MacMode) IsValid() bool {
	return m == MacSimple || m == MacExtended
}

// ParseMacMode accepts "simple" or "extended" in any case.
func ParseMacMode(value string) (MacMode, bool) {
	mode := MacMode(strings.ToLower(strings.TrimSpace(value)))
	return mode, mode.IsValid()
}
