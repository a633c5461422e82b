package entity

import "time"

// RequestOptions is the structured form of a request. It is validated with
// go-playground/validator before any setter runs.
type RequestOptions struct {
	// Amount of the order, e.g. 10.20; 200 means 200.00
	Amount float64 `json:"amount" validate:"gte=0"`
	// Currency is the ISO 4217 alphabetic code
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
	// Order is the merchant order number, unique for the terminal within the day
	Order int `json:"order" validate:"gte=0"`
	// Description is shown to the cardholder on the payment page, up to 50 characters
	Description string `json:"description" validate:"max=50"`
	// MerchantName is shown to the cardholder, up to 80 characters
	MerchantName string `json:"merchant_name" validate:"max=80"`
	// MerchantUrl is the merchant web site
	MerchantUrl string `json:"merchant_url" validate:"omitempty,url,max=250"`
	// Merchant is the merchant id assigned by the acquirer
	Merchant string `json:"merchant" validate:"max=15"`
	// Terminal is the 8 character terminal id
	Terminal string `json:"terminal" validate:"omitempty,len=8"`
	// Email receives the transaction result from the gateway when set
	Email string `json:"email" validate:"omitempty,email,max=80"`
	// Country is the ISO 3166-1 two-letter code of the merchant
	Country string `json:"country" validate:"omitempty,len=2"`
	// MerchantTimezone is the UTC offset of the merchant, e.g. +03
	MerchantTimezone string `json:"merchant_timezone" validate:"max=5"`
	// Timestamp of the transaction, sent as UTC YYYYMMDDHHMMSS
	Timestamp time.Time `json:"timestamp"`
	// Nonce is 16 random bytes in uppercase hex
	Nonce string `json:"nonce" validate:"omitempty,hexadecimal,max=64"`
	// OrderIdentifier goes to AD.CUST_BOR_ORDER_ID; ';' is replaced with '-'
	OrderIdentifier string `json:"order_identifier" validate:"max=22"`
	// Addendum is the service field "AD,TD"
	Addendum string `json:"addendum" validate:"max=5"`
	// BackRefUrl is where the gateway returns the cardholder
	BackRefUrl string `json:"back_ref_url" validate:"omitempty,url"`
	// Language of the payment page: BG, EN or RU
	Language string `json:"language" validate:"omitempty,oneof=BG EN RU bg en ru"`
	// RetrievalReferenceNumber of the original transaction (ISO-8583 field 37)
	RetrievalReferenceNumber string `json:"rrn" validate:"max=12"`
	// InternalReference of the original transaction
	InternalReference string `json:"int_ref" validate:"max=32"`
	// OriginalTransactionType is used by status checks
	OriginalTransactionType string `json:"tran_trtype" validate:"omitempty,numeric,max=2"`
	// MInfo is the Base64 encoded EMV 3DS data set
	MInfo string `json:"m_info" validate:"max=35000"`
}

// GatewayOptions configures the signing and verification context.
type GatewayOptions struct {
	// KeyFromString means PrivateKey and Certificate hold PEM text instead of file paths
	KeyFromString      bool   `json:"key_from_string"`
	PrivateKey         string `json:"private_key" validate:"required"`
	PrivateKeyPassword string `json:"private_key_password"`
	Certificate        string `json:"certificate" validate:"required"`
	Sandbox            bool   `json:"sandbox"`
	MacMode            string `json:"mac_mode" validate:"omitempty,oneof=simple extended"`
}
