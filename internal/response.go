package internal

import (
	"fmt"
	"strconv"
	"strings"

	"borica/entity"
)

// callbackKeys must all be present in a callback; TRAN_TRTYPE is optional.
var callbackKeys = []string{
	entity.KeyTransactionType,
	entity.KeyTerminal,
	entity.KeyOrder,
	entity.KeyAmount,
	entity.KeyCurrency,
	entity.KeyAction,
	entity.KeyResponseCode,
	entity.KeyApproval,
	entity.KeyRetrievalReference,
	entity.KeyInternalReference,
	entity.KeyStatusMessage,
	entity.KeyCard,
	entity.KeyTransactionDate,
	entity.KeyTimestamp,
	entity.KeyParesStatus,
	entity.KeyCommerceIndicator,
	entity.KeyNonce,
	entity.KeySignature,
	entity.KeyLanguage,
}

// Response is a gateway callback. The exported fields are copies of the
// posted values; the raw field set is kept for signature verification.
type Response struct {
	// echo of the request
	TransactionType entity.TransactionType
	Terminal        string
	Order           string
	Amount          float64
	Currency        string
	Nonce           string
	Language        string

	// Action is the e-Gateway action code: 0 approved, 1 duplicate, 2 declined, 3 processing error
	Action                   int
	ResponseCode             string
	Approval                 string
	RetrievalReferenceNumber string
	InternalReference        string
	OriginalTransactionType  string
	StatusMessage            string
	CardNumber               string
	OriginalTransactionDate  string
	Timestamp                string

	// 3-D Secure
	ParesStatus                 string
	ElectronicCommerceIndicator string

	Signature string

	postData            map[string]string
	signatureIsVerified bool
}

// ParseResponse reads a callback field set. Callbacks whose TRTYPE is missing
// or not a supported transaction type are ignored with a nil response and no
// error. A supported callback with missing keys is rejected.
func ParseResponse(fields map[string]string) (*Response, error) {
	t, ok := entity.ParseTransactionType(fields[entity.KeyTransactionType])
	if !ok {
		return nil, nil
	}

	var missing []string
	for _, key := range callbackKeys {
		if _, present := fields[key]; !present {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedCallback, strings.Join(missing, ", "))
	}

	amount, err := parseNumber(fields[entity.KeyAmount], func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: AMOUNT %q", ErrMalformedCallback, fields[entity.KeyAmount])
	}
	action, err := parseNumber(fields[entity.KeyAction], strconv.Atoi)
	if err != nil {
		return nil, fmt.Errorf("%w: ACTION %q", ErrMalformedCallback, fields[entity.KeyAction])
	}

	postData := make(map[string]string, len(fields))
	for key, value := range fields {
		postData[key] = value
	}

	return &Response{
		TransactionType:             t,
		Terminal:                    fields[entity.KeyTerminal],
		Order:                       fields[entity.KeyOrder],
		Amount:                      amount,
		Currency:                    fields[entity.KeyCurrency],
		Action:                      action,
		ResponseCode:                fields[entity.KeyResponseCode],
		Approval:                    fields[entity.KeyApproval],
		RetrievalReferenceNumber:    fields[entity.KeyRetrievalReference],
		InternalReference:           fields[entity.KeyInternalReference],
		OriginalTransactionType:     fields[entity.KeyOriginalTransactionType],
		StatusMessage:               fields[entity.KeyStatusMessage],
		CardNumber:                  fields[entity.KeyCard],
		OriginalTransactionDate:     fields[entity.KeyTransactionDate],
		Timestamp:                   fields[entity.KeyTimestamp],
		ParesStatus:                 fields[entity.KeyParesStatus],
		ElectronicCommerceIndicator: fields[entity.KeyCommerceIndicator],
		Nonce:                       fields[entity.KeyNonce],
		Signature:                   fields[entity.KeySignature],
		Language:                    fields[entity.KeyLanguage],
		postData:                    postData,
	}, nil
}

// parseNumber treats an empty value as zero.
func parseNumber[T int | float64](value string, parse func(string) (T, error)) (T, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		var zero T
		return zero, nil
	}
	return parse(value)
}

// Verify rebuilds the MAC the gateway signed, with "-" for empty fields, and
// checks P_SIGN against the gateway certificate. The result is also kept in
// SignatureIsVerified. An error means verification could not be attempted.
func (r *Response) Verify(keys *KeyMaterial, mode entity.MacMode) (bool, error) {
	r.signatureIsVerified = false

	schema, ok := entity.SchemaFor(r.TransactionType)
	if !ok {
		return false, signatureError("verify response", ErrUnsupportedTrType)
	}
	fields, ok := schema.ResponseMacFields(mode)
	if !ok {
		return false, signatureError("verify response", fmt.Errorf("%w: %q", ErrUnsupportedMacMode, mode))
	}

	mac := BuildMac(fields, r.postData, MacResponse)
	verified, err := Verify(keys, []byte(mac), r.Signature)
	if err != nil {
		return false, err
	}
	r.signatureIsVerified = verified
	return verified, nil
}

func (r *Response) SignatureIsVerified() bool {
	return r.signatureIsVerified
}

// IsSuccessful reports an approved transaction (RC 00).
func (r *Response) IsSuccessful() bool {
	return r.ResponseCode == "00"
}

// ResponseCodeDescription describes RC in "bg" or "en".
func (r *Response) ResponseCodeDescription(lang string) string {
	return entity.ResponseCodeText(lang, r.ResponseCode)
}

// Raw returns a copy of the posted fields.
func (r *Response) Raw() map[string]string {
	out := make(map[string]string, len(r.postData))
	for key, value := range r.postData {
		out[key] = value
	}
	return out
}
