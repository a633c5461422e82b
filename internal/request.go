package internal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"borica/entity"

	"github.com/leekchan/accounting"
)

const timestampLayout = "20060102150405"

// Request is an outgoing e-Gateway request. Setters mutate it in place and
// return it for chaining; the ones that check their input also return an error.
// A Request is not safe for concurrent use.
type Request struct {
	transactionType entity.TransactionType
	schema          entity.Schema

	amount                   *float64
	currency                 string
	order                    *int
	description              string
	merchantUrl              string
	merchantName             string
	merchant                 string
	terminal                 string
	email                    string
	country                  string
	merchantTimezone         string
	originalTransactionType  string
	timestamp                string
	nonce                    string
	signature                string
	retrievalReferenceNumber string
	internalReference        string
	mInfo                    string
	language                 string
	orderIdentifier          string
	addendum                 string
	backRefUrl               string

	// validation errors: field => messages
	errors map[string][]string
}

// NewRequest creates an empty request of type t with the protocol defaults
// applied.
func NewRequest(t entity.TransactionType) (*Request, error) {
	schema, ok := entity.SchemaFor(t)
	if !ok {
		return nil, parameterError(string(entity.FieldTransactionType), "%v: %d", ErrUnsupportedTrType, int(t))
	}
	return &Request{
		transactionType:  t,
		schema:           schema,
		currency:         "BGN",
		country:          "BG",
		merchantTimezone: "+03",
		language:         "BG",
		addendum:         "AD,TD",
		errors:           map[string][]string{},
	}, nil
}

func (r *Request) TransactionType() entity.TransactionType {
	return r.transactionType
}

func (r *Request) SetAmount(amount float64) *Request {
	r.amount = &amount
	return r
}

func (r *Request) SetCurrency(currency string) *Request {
	r.currency = currency
	return r
}

func (r *Request) SetOrder(order int) *Request {
	r.order = &order
	return r
}

func (r *Request) SetDescription(description string) *Request {
	r.description = description
	return r
}

func (r *Request) SetMerchantName(name string) *Request {
	r.merchantName = name
	return r
}

// SetMerchantUrl accepts an absolute http or https URL.
func (r *Request) SetMerchantUrl(merchantUrl string) (*Request, error) {
	if err := checkUrl(string(entity.FieldMerchantUrl), merchantUrl); err != nil {
		return r, err
	}
	r.merchantUrl = merchantUrl
	return r, nil
}

func (r *Request) SetMerchant(merchant string) *Request {
	r.merchant = merchant
	return r
}

func (r *Request) SetTerminal(terminal string) *Request {
	r.terminal = terminal
	return r
}

func (r *Request) SetEmail(email string) *Request {
	r.email = email
	return r
}

func (r *Request) SetCountry(country string) *Request {
	r.country = country
	return r
}

func (r *Request) SetMerchantTimezone(timezone string) *Request {
	r.merchantTimezone = timezone
	return r
}

// SetTimestamp stores ts as UTC YYYYMMDDHHMMSS.
func (r *Request) SetTimestamp(ts time.Time) *Request {
	r.timestamp = ts.UTC().Format(timestampLayout)
	return r
}

// SetNonce accepts a hex string, normally the output of GenerateNonce.
func (r *Request) SetNonce(nonce string) (*Request, error) {
	if _, err := hex.DecodeString(nonce); err != nil || nonce == "" {
		return r, parameterError(string(entity.FieldNonce), "nonce must be a non-empty hex string")
	}
	r.nonce = nonce
	return r, nil
}

// SetSignature overwrites P_SIGN. Sign sets it as well.
func (r *Request) SetSignature(signature string) *Request {
	r.signature = signature
	return r
}

func (r *Request) SetRetrievalReferenceNumber(rrn string) *Request {
	r.retrievalReferenceNumber = rrn
	return r
}

func (r *Request) SetInternalReference(ref string) *Request {
	r.internalReference = ref
	return r
}

func (r *Request) SetMInfo(mInfo string) *Request {
	r.mInfo = mInfo
	return r
}

// SetOrderIdentifier stores the AD.CUST_BOR_ORDER_ID value; the gateway does
// not allow ';' in it.
func (r *Request) SetOrderIdentifier(identifier string) *Request {
	r.orderIdentifier = strings.ReplaceAll(identifier, ";", "-")
	return r
}

func (r *Request) SetAddendum(addendum string) *Request {
	r.addendum = addendum
	return r
}

func (r *Request) SetOriginalTransactionType(t string) *Request {
	r.originalTransactionType = t
	return r
}

// SetLanguage accepts BG, EN or RU in any case.
func (r *Request) SetLanguage(language string) (*Request, error) {
	lang := strings.ToUpper(strings.TrimSpace(language))
	switch lang {
	case "BG", "EN", "RU":
		r.language = lang
		return r, nil
	}
	return r, parameterError(string(entity.FieldLanguage), "unsupported language %q", language)
}

// SetBackRefUrl accepts an absolute http or https URL, or "" to clear it.
func (r *Request) SetBackRefUrl(backRefUrl string) (*Request, error) {
	if backRefUrl != "" {
		if err := checkUrl(string(entity.FieldBackRefUrl), backRefUrl); err != nil {
			return r, err
		}
	}
	r.backRefUrl = backRefUrl
	return r, nil
}

// Amount renders the amount with two decimals, "" while unset.
func (r *Request) Amount() string {
	if r.amount == nil {
		return ""
	}
	return accounting.FormatNumber(*r.amount, 2, "", ".")
}

// Order renders the order number left padded with zeros to six digits.
// Longer numbers are kept as they are.
func (r *Request) Order() string {
	if r.order == nil {
		return ""
	}
	return fmt.Sprintf("%06d", *r.order)
}

func (r *Request) Timestamp() string {
	return r.timestamp
}

func (r *Request) Nonce() string {
	return r.nonce
}

func (r *Request) Signature() string {
	return r.signature
}

func (r *Request) BackRefUrl() string {
	return r.backRefUrl
}

// Sign builds the MAC of the current field values for mode and stores the
// signature in P_SIGN. Calling it again re-signs whatever is set by then.
func (r *Request) Sign(keys *KeyMaterial, mode entity.MacMode) error {
	fields, ok := r.schema.RequestMacFields(mode)
	if !ok {
		return signatureError("sign request", fmt.Errorf("%w: %q", ErrUnsupportedMacMode, mode))
	}
	mac := BuildMac(fields, r.ToPostData(), MacRequest)
	signature, err := Sign(keys, []byte(mac))
	if err != nil {
		return err
	}
	r.signature = signature
	return nil
}

// Validate records a message for every mandatory field of the transaction
// type that is empty. It never fails; the result is in Errors.
func (r *Request) Validate() bool {
	r.ClearErrors()
	for _, field := range r.schema.Mandatory() {
		if utf8.RuneCountInString(r.value(field)) == 0 {
			name := string(field)
			r.errors[name] = append(r.errors[name], name+" is required.")
		}
	}
	return !r.HasErrors()
}

func (r *Request) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors returns a copy of the validation errors.
func (r *Request) Errors() map[string][]string {
	out := make(map[string][]string, len(r.errors))
	for field, messages := range r.errors {
		out[field] = append([]string(nil), messages...)
	}
	return out
}

func (r *Request) ClearErrors() {
	r.errors = map[string][]string{}
}

// ToPostData projects the current values onto the wire keys the transaction
// type writes. Unset fields are present with an empty value.
func (r *Request) ToPostData() map[string]string {
	wire := r.schema.Wire()
	data := make(map[string]string, len(wire))
	for _, field := range wire {
		data[field.Key] = r.value(field.Field)
	}
	return data
}

// PostFields is ToPostData in payload order.
func (r *Request) PostFields() []entity.WireValue {
	wire := r.schema.Wire()
	fields := make([]entity.WireValue, 0, len(wire))
	for _, field := range wire {
		fields = append(fields, entity.WireValue{Key: field.Key, Value: r.value(field.Field)})
	}
	return fields
}

func (r *Request) value(field entity.RequestField) string {
	switch field {
	case entity.FieldTransactionType:
		return r.transactionType.Code()
	case entity.FieldAmount:
		return r.Amount()
	case entity.FieldCurrency:
		return r.currency
	case entity.FieldOrder:
		return r.Order()
	case entity.FieldDescription:
		return r.description
	case entity.FieldMerchantUrl:
		return r.merchantUrl
	case entity.FieldMerchantName:
		return r.merchantName
	case entity.FieldMerchant:
		return r.merchant
	case entity.FieldTerminal:
		return r.terminal
	case entity.FieldEmail:
		return r.email
	case entity.FieldCountry:
		return r.country
	case entity.FieldMerchantTimezone:
		return r.merchantTimezone
	case entity.FieldOriginalTransactionType:
		return r.originalTransactionType
	case entity.FieldTimestamp:
		return r.timestamp
	case entity.FieldNonce:
		return r.nonce
	case entity.FieldSignature:
		return r.signature
	case entity.FieldRetrievalReference:
		return r.retrievalReferenceNumber
	case entity.FieldInternalReference:
		return r.internalReference
	case entity.FieldMInfo:
		return r.mInfo
	case entity.FieldLanguage:
		return r.language
	case entity.FieldOrderIdentifier:
		return r.orderIdentifier
	case entity.FieldAddendum:
		return r.addendum
	case entity.FieldBackRefUrl:
		return r.backRefUrl
	}
	return ""
}

func checkUrl(field, value string) error {
	parsed, err := url.ParseRequestURI(value)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return parameterError(field, "%q is not a valid url", value)
	}
	return nil
}

// GenerateNonce returns 16 random bytes as 32 uppercase hex characters.
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(bytes)), nil
}
