package entity

// Wire keys of the e-Gateway POST payload. They are case sensitive.
const (
	KeyTerminal                = "TERMINAL"
	KeyTransactionType         = "TRTYPE"
	KeyAmount                  = "AMOUNT"
	KeyCurrency                = "CURRENCY"
	KeyOrder                   = "ORDER"
	KeyMerchant                = "MERCHANT"
	KeyTimestamp               = "TIMESTAMP"
	KeyNonce                   = "NONCE"
	KeySignature               = "P_SIGN"
	KeyDescription             = "DESC"
	KeyMerchantName            = "MERCH_NAME"
	KeyMerchantUrl             = "MERCH_URL"
	KeyEmail                   = "EMAIL"
	KeyCountry                 = "COUNTRY"
	KeyMerchantTimezone        = "MERCH_GMT"
	KeyLanguage                = "LANG"
	KeyOrderIdentifier         = "AD.CUST_BOR_ORDER_ID"
	KeyAddendum                = "ADDENDUM"
	KeyBackRefUrl              = "BACKREF"
	KeyRetrievalReference      = "RRN"
	KeyInternalReference       = "INT_REF"
	KeyOriginalTransactionType = "TRAN_TRTYPE"
	KeyMInfo                   = "M_INFO"
)

// Keys only the gateway writes.
const (
	KeyAction            = "ACTION"
	KeyResponseCode      = "RC"
	KeyApproval          = "APPROVAL"
	KeyStatusMessage     = "STATUSMSG"
	KeyCard              = "CARD"
	KeyTransactionDate   = "TRAN_DATE"
	KeyParesStatus       = "PARES_STATUS"
	KeyCommerceIndicator = "ECI"
)

// RequestField names a property of an outgoing request. The names are the
// ones reported by request validation.
type RequestField string

const (
	FieldTransactionType         RequestField = "transactionType"
	FieldAmount                  RequestField = "amount"
	FieldCurrency                RequestField = "currency"
	FieldOrder                   RequestField = "order"
	FieldDescription             RequestField = "description"
	FieldMerchantUrl             RequestField = "merchantUrl"
	FieldMerchantName            RequestField = "merchantName"
	FieldMerchant                RequestField = "merchant"
	FieldTerminal                RequestField = "terminal"
	FieldEmail                   RequestField = "email"
	FieldCountry                 RequestField = "country"
	FieldMerchantTimezone        RequestField = "merchantTimezone"
	FieldOriginalTransactionType RequestField = "originalTransactionType"
	FieldTimestamp               RequestField = "timestamp"
	FieldNonce                   RequestField = "nonce"
	FieldSignature               RequestField = "pSign"
	FieldRetrievalReference      RequestField = "retrievalReferenceNumber"
	FieldInternalReference       RequestField = "internalReference"
	FieldMInfo                   RequestField = "mInfo"
	FieldLanguage                RequestField = "language"
	FieldOrderIdentifier         RequestField = "adCustBorOrderId"
	FieldAddendum                RequestField = "addendum"
	FieldBackRefUrl              RequestField = "backRefUrl"
)

// WireField binds a request property to the key it is posted under.
type WireField struct {
	Field RequestField
	Key   string
}

// WireValue is one rendered key/value pair of a payload, kept in wire order.
type WireValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Schema is the protocol description of a single transaction type.
type Schema struct {
	requestSimpleMac    []string
	requestExtendedMac  []string
	responseSimpleMac   []string
	responseExtendedMac []string
	mandatory           []RequestField
	wire                []WireField
}

// RequestMacFields returns the ordered request MAC field list for mode.
func (s Schema) RequestMacFields(mode MacMode) ([]string, bool) {
	switch mode {
	case MacSimple:
		return clone(s.requestSimpleMac), true
	case MacExtended:
		return clone(s.requestExtendedMac), true
	}
	return nil, false
}

// ResponseMacFields returns the ordered field list the gateway signs its
// callback with for mode.
func (s Schema) ResponseMacFields(mode MacMode) ([]string, bool) {
	switch mode {
	case MacSimple:
		return clone(s.responseSimpleMac), true
	case MacExtended:
		return clone(s.responseExtendedMac), true
	}
	return nil, false
}

// Mandatory returns the request properties that must be non-empty before a
// request is posted.
func (s Schema) Mandatory() []RequestField {
	return cloneFields(s.mandatory)
}

// Wire returns the properties the type writes, in payload order.
func (s Schema) Wire() []WireField {
	return cloneWire(s.wire)
}

// SchemaFor looks up the schema of t.
func SchemaFor(t TransactionType) (Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

func clone(fields []string) []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

var (
	saleRequestMac = []string{KeyTerminal, KeyTransactionType, KeyAmount, KeyCurrency, KeyTimestamp}
	authRequestMac = []string{KeyTerminal, KeyTransactionType, KeyAmount, KeyTimestamp, KeyDescription}

	paymentRequestExtendedMac = []string{
		KeyTerminal, KeyTransactionType, KeyAmount, KeyCurrency,
		KeyOrder, KeyMerchant, KeyTimestamp, KeyNonce,
	}

	statusRequestMac         = []string{KeyTerminal, KeyTransactionType, KeyOrder}
	statusRequestExtendedMac = []string{KeyTerminal, KeyTransactionType, KeyOrder, KeyNonce}

	saleResponseMac = []string{KeyTerminal, KeyTransactionType, KeyAmount, KeyTimestamp}
	authResponseMac = []string{KeyTerminal, KeyTransactionType, KeyAmount, KeyOrder, KeyTimestamp}

	responseExtendedMac = []string{
		KeyAction, KeyResponseCode, KeyApproval, KeyTerminal, KeyTransactionType,
		KeyAmount, KeyCurrency, KeyOrder, KeyRetrievalReference, KeyInternalReference,
		KeyParesStatus, KeyCommerceIndicator, KeyTimestamp, KeyNonce,
	}

	saleMandatory = []RequestField{
		FieldAmount, FieldCurrency, FieldTerminal, FieldMerchant, FieldTransactionType,
		FieldOrder, FieldTimestamp, FieldNonce, FieldSignature,
	}

	followUpMandatory = append(cloneFields(saleMandatory), FieldRetrievalReference, FieldInternalReference)

	statusMandatory = []RequestField{
		FieldTerminal, FieldTransactionType, FieldOrder,
		FieldOriginalTransactionType, FieldNonce, FieldSignature,
	}

	saleWire = []WireField{
		{FieldAmount, KeyAmount},
		{FieldCurrency, KeyCurrency},
		{FieldTerminal, KeyTerminal},
		{FieldMerchant, KeyMerchant},
		{FieldTransactionType, KeyTransactionType},
		{FieldOrder, KeyOrder},
		{FieldTimestamp, KeyTimestamp},
		{FieldNonce, KeyNonce},
		{FieldSignature, KeySignature},
		{FieldDescription, KeyDescription},
		{FieldMerchantName, KeyMerchantName},
		{FieldMerchantUrl, KeyMerchantUrl},
		{FieldEmail, KeyEmail},
		{FieldCountry, KeyCountry},
		{FieldMerchantTimezone, KeyMerchantTimezone},
		{FieldLanguage, KeyLanguage},
		{FieldOrderIdentifier, KeyOrderIdentifier},
		{FieldAddendum, KeyAddendum},
		{FieldBackRefUrl, KeyBackRefUrl},
	}

	// a deferred authorization may carry the EMV 3DS data set
	deferredWire = append(cloneWire(saleWire), WireField{FieldMInfo, KeyMInfo})

	followUpWire = []WireField{
		{FieldAmount, KeyAmount},
		{FieldCurrency, KeyCurrency},
		{FieldTerminal, KeyTerminal},
		{FieldMerchant, KeyMerchant},
		{FieldTransactionType, KeyTransactionType},
		{FieldOrder, KeyOrder},
		{FieldTimestamp, KeyTimestamp},
		{FieldNonce, KeyNonce},
		{FieldSignature, KeySignature},
		{FieldDescription, KeyDescription},
		{FieldMerchantName, KeyMerchantName},
		{FieldMerchantUrl, KeyMerchantUrl},
		{FieldEmail, KeyEmail},
		{FieldCountry, KeyCountry},
		{FieldMerchantTimezone, KeyMerchantTimezone},
		{FieldLanguage, KeyLanguage},
		{FieldRetrievalReference, KeyRetrievalReference},
		{FieldInternalReference, KeyInternalReference},
		{FieldBackRefUrl, KeyBackRefUrl},
	}

	statusWire = []WireField{
		{FieldTerminal, KeyTerminal},
		{FieldTransactionType, KeyTransactionType},
		{FieldOrder, KeyOrder},
		{FieldOriginalTransactionType, KeyOriginalTransactionType},
		{FieldNonce, KeyNonce},
		{FieldSignature, KeySignature},
	}
)

func cloneWire(fields []WireField) []WireField {
	out := make([]WireField, len(fields))
	copy(out, fields)
	return out
}

func cloneFields(fields []RequestField) []RequestField {
	out := make([]RequestField, len(fields))
	copy(out, fields)
	return out
}

// schemas is never written after package initialisation.
var schemas = map[TransactionType]Schema{
	Sale: {
		requestSimpleMac:    saleRequestMac,
		requestExtendedMac:  paymentRequestExtendedMac,
		responseSimpleMac:   saleResponseMac,
		responseExtendedMac: responseExtendedMac,
		mandatory:           saleMandatory,
		wire:                saleWire,
	},
	DeferredAuthorization: {
		requestSimpleMac:    authRequestMac,
		requestExtendedMac:  paymentRequestExtendedMac,
		responseSimpleMac:   authResponseMac,
		responseExtendedMac: responseExtendedMac,
		mandatory:           saleMandatory,
		wire:                deferredWire,
	},
	CompleteDeferredAuthorization: {
		requestSimpleMac:    authRequestMac,
		requestExtendedMac:  paymentRequestExtendedMac,
		responseSimpleMac:   authResponseMac,
		responseExtendedMac: responseExtendedMac,
		mandatory:           followUpMandatory,
		wire:                followUpWire,
	},
	ReverseDeferredAuthorization: {
		requestSimpleMac:    authRequestMac,
		requestExtendedMac:  paymentRequestExtendedMac,
		responseSimpleMac:   authResponseMac,
		responseExtendedMac: responseExtendedMac,
		mandatory:           followUpMandatory,
		wire:                followUpWire,
	},
	Reversal: {
		requestSimpleMac:    authRequestMac,
		requestExtendedMac:  paymentRequestExtendedMac,
		responseSimpleMac:   authResponseMac,
		responseExtendedMac: responseExtendedMac,
		mandatory:           followUpMandatory,
		wire:                followUpWire,
	},
	// the gateway answers a status check with the Sale simple list
	StatusCheck: {
		requestSimpleMac:    statusRequestMac,
		requestExtendedMac:  statusRequestExtendedMac,
		responseSimpleMac:   saleResponseMac,
		responseExtendedMac: responseExtendedMac,
		mandatory:           statusMandatory,
		wire:                statusWire,
	},
}
