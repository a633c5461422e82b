package entity

// OrderDetails is what a caller knows about a payment before the merchant
// defaults from the configuration are applied.
type OrderDetails struct {
	Type            TransactionType `json:"type"`
	Amount          float64         `json:"amount"`
	Order           int             `json:"order"`
	Description     string          `json:"description"`
	OrderIdentifier string          `json:"order_identifier"`
	Email           string          `json:"email"`
	Language        string          `json:"language"`
	// follow-up transactions reference the original one
	RetrievalReferenceNumber string `json:"rrn"`
	InternalReference        string `json:"int_ref"`
	OriginalTransactionType  string `json:"tran_trtype"`
}

// SignedForm is a signed payload ready for the presentation layer.
type SignedForm struct {
	Action string      `json:"action"`
	Fields []WireValue `json:"fields"`
}

// Value returns the value posted under key.
func (f *SignedForm) Value(key string) string {
	for _, field := range f.Fields {
		if field.Key == key {
			return field.Value
		}
	}
	return ""
}

// CallbackResult summarises a parsed and verified gateway callback.
type CallbackResult struct {
	TransactionType TransactionType `json:"transaction_type"`
	Terminal        string          `json:"terminal"`
	Order           string          `json:"order"`
	Amount          string          `json:"amount"`
	Currency        string          `json:"currency"`
	Action          int             `json:"action"`
	ResponseCode    string          `json:"rc"`
	Description     string          `json:"description"`
	Approval        string          `json:"approval"`
	Card            string          `json:"card"`
	Verified        bool            `json:"verified"`
	Successful      bool            `json:"successful"`
}
