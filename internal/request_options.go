package internal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"borica/entity"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var validate = validator.New()

// validationError folds validator errors into a single ParameterValidationError.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ParameterValidationError{Message: err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		messages = append(messages, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return &ParameterValidationError{Field: strings.Join(fields, ","), Message: strings.Join(messages, "; ")}
}

// NewRequestFromOptions validates opts and applies every non-zero option on
// top of the request defaults.
func NewRequestFromOptions(t entity.TransactionType, opts entity.RequestOptions) (*Request, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, validationError(err)
	}
	r, err := NewRequest(t)
	if err != nil {
		return nil, err
	}

	if opts.Amount > 0 {
		r.SetAmount(opts.Amount)
	}
	if opts.Order > 0 {
		r.SetOrder(opts.Order)
	}
	if !opts.Timestamp.IsZero() {
		r.SetTimestamp(opts.Timestamp)
	}
	if opts.Currency != "" {
		r.SetCurrency(strings.ToUpper(opts.Currency))
	}
	if opts.Country != "" {
		r.SetCountry(strings.ToUpper(opts.Country))
	}
	if opts.MerchantTimezone != "" {
		r.SetMerchantTimezone(opts.MerchantTimezone)
	}
	if opts.Addendum != "" {
		r.SetAddendum(opts.Addendum)
	}
	r.SetDescription(opts.Description).
		SetMerchantName(opts.MerchantName).
		SetMerchant(opts.Merchant).
		SetTerminal(opts.Terminal).
		SetEmail(opts.Email).
		SetOrderIdentifier(opts.OrderIdentifier).
		SetRetrievalReferenceNumber(opts.RetrievalReferenceNumber).
		SetInternalReference(opts.InternalReference).
		SetOriginalTransactionType(opts.OriginalTransactionType).
		SetMInfo(opts.MInfo)

	if opts.MerchantUrl != "" {
		if _, err = r.SetMerchantUrl(opts.MerchantUrl); err != nil {
			return nil, err
		}
	}
	if opts.BackRefUrl != "" {
		if _, err = r.SetBackRefUrl(opts.BackRefUrl); err != nil {
			return nil, err
		}
	}
	if opts.Nonce != "" {
		if _, err = r.SetNonce(opts.Nonce); err != nil {
			return nil, err
		}
	}
	if opts.Language != "" {
		if _, err = r.SetLanguage(opts.Language); err != nil {
			return nil, err
		}
	}
	return r, nil
}

type optionSetter func(r *Request, value interface{}) error

func stringOption(set func(r *Request, value string)) optionSetter {
	return func(r *Request, value interface{}) error {
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		set(r, s)
		return nil
	}
}

func checkedStringOption(set func(r *Request, value string) (*Request, error)) optionSetter {
	return func(r *Request, value interface{}) error {
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		_, err = set(r, s)
		return err
	}
}

// ToOrderNumber reads an order number. Strings are decimal, so zero padded
// orders such as "000123" keep their value.
func ToOrderNumber(value interface{}) (int, error) {
	if s, ok := value.(string); ok {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	return cast.ToIntE(value)
}

// optionSetters maps the option names accepted by NewRequestFromMap to setters.
var optionSetters = map[string]optionSetter{
	"Amount": func(r *Request, value interface{}) error {
		amount, err := cast.ToFloat64E(value)
		if err != nil {
			return err
		}
		r.SetAmount(amount)
		return nil
	},
	"Order": func(r *Request, value interface{}) error {
		order, err := ToOrderNumber(value)
		if err != nil {
			return err
		}
		r.SetOrder(order)
		return nil
	},
	"Timestamp": func(r *Request, value interface{}) error {
		if ts, ok := value.(time.Time); ok {
			r.SetTimestamp(ts)
			return nil
		}
		// unix seconds, as a number or a numeric string
		seconds, err := cast.ToInt64E(value)
		if err != nil {
			return err
		}
		r.SetTimestamp(time.Unix(seconds, 0))
		return nil
	},
	"Currency":                 stringOption(func(r *Request, v string) { r.SetCurrency(v) }),
	"Description":              stringOption(func(r *Request, v string) { r.SetDescription(v) }),
	"MerchantName":             stringOption(func(r *Request, v string) { r.SetMerchantName(v) }),
	"Merchant":                 stringOption(func(r *Request, v string) { r.SetMerchant(v) }),
	"Terminal":                 stringOption(func(r *Request, v string) { r.SetTerminal(v) }),
	"Email":                    stringOption(func(r *Request, v string) { r.SetEmail(v) }),
	"Country":                  stringOption(func(r *Request, v string) { r.SetCountry(v) }),
	"MerchantTimezone":         stringOption(func(r *Request, v string) { r.SetMerchantTimezone(v) }),
	"OrderIdentifier":          stringOption(func(r *Request, v string) { r.SetOrderIdentifier(v) }),
	"Addendum":                 stringOption(func(r *Request, v string) { r.SetAddendum(v) }),
	"RetrievalReferenceNumber": stringOption(func(r *Request, v string) { r.SetRetrievalReferenceNumber(v) }),
	"InternalReference":        stringOption(func(r *Request, v string) { r.SetInternalReference(v) }),
	"OriginalTransactionType":  stringOption(func(r *Request, v string) { r.SetOriginalTransactionType(v) }),
	"MInfo":                    stringOption(func(r *Request, v string) { r.SetMInfo(v) }),
	"MerchantUrl":              checkedStringOption((*Request).SetMerchantUrl),
	"Nonce":                    checkedStringOption((*Request).SetNonce),
	"Language":                 checkedStringOption((*Request).SetLanguage),
	"BackRefUrl": func(r *Request, value interface{}) error {
		if value == nil {
			return nil
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		_, err = r.SetBackRefUrl(s)
		return err
	},
}

// NewRequestFromMap builds a request from loosely typed options, e.g. decoded
// JSON or form values. Keys are applied in sorted order so the first reported
// error is stable. Unknown keys are rejected.
func NewRequestFromMap(t entity.TransactionType, options map[string]interface{}) (*Request, error) {
	r, err := NewRequest(t)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		set, ok := optionSetters[key]
		if !ok {
			return nil, parameterError(key, "unknown option")
		}
		if err = set(r, options[key]); err != nil {
			if _, isParam := err.(*ParameterValidationError); isParam {
				return nil, err
			}
			return nil, parameterError(key, "%v", err)
		}
	}
	return r, nil
}
