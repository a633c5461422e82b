package internal

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"borica/config"
	"borica/entity"
	"borica/services"

	"github.com/leekchan/accounting"
)

// Checkout turns order details into signed forms using the merchant defaults
// from the configuration, and checks callbacks against the same gateway.
type Checkout struct {
	conf    *config.Config
	gateway *Gateway
	logger  services.LogHandler
	now     func() time.Time
}

func NewCheckout(conf *config.Config, gateway *Gateway) *Checkout {
	return &Checkout{
		conf:    conf,
		gateway: gateway,
		now:     time.Now,
	}
}

func (c *Checkout) SetLogger(logger services.LogHandler) {
	c.logger = logger
	if c.gateway.Sandbox() {
		c.logger.Warn(fmt.Sprintf("sandbox mode: %s", c.gateway.ApiUrl()))
	} else {
		c.logger.Info(fmt.Sprintf("production mode: %s", c.gateway.ApiUrl()))
	}
}

// NewRequest applies the configured merchant defaults and the order details,
// stamps the request with the current time and a fresh nonce. It does not sign.
func (c *Checkout) NewRequest(details entity.OrderDetails) (*Request, error) {
	g := c.conf.Gateway
	opts := entity.RequestOptions{
		Amount:                   details.Amount,
		Currency:                 g.Currency,
		Order:                    details.Order,
		Description:              details.Description,
		MerchantName:             g.MerchantName,
		MerchantUrl:              g.MerchantUrl,
		Merchant:                 g.Merchant,
		Terminal:                 g.Terminal,
		Email:                    details.Email,
		Country:                  g.Country,
		MerchantTimezone:         g.Timezone,
		Timestamp:                c.now(),
		OrderIdentifier:          details.OrderIdentifier,
		BackRefUrl:               g.BackRefUrl,
		Language:                 g.Language,
		RetrievalReferenceNumber: details.RetrievalReferenceNumber,
		InternalReference:        details.InternalReference,
		OriginalTransactionType:  details.OriginalTransactionType,
	}
	if details.Language != "" {
		opts.Language = details.Language
	}

	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}
	opts.Nonce = nonce

	return NewRequestFromOptions(details.Type, opts)
}

// PrepareForm builds, signs and validates a request. Validation runs after
// signing so P_SIGN is checked with the other mandatory fields.
func (c *Checkout) PrepareForm(ctx context.Context, details entity.OrderDetails) (*entity.SignedForm, error) {
	reqID := GetRequestID(ctx)

	req, err := c.NewRequest(details)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("[%s] %s order %v: %v", reqID, details.Type, details.Order, err))
		return nil, err
	}
	if err = c.gateway.Sign(req); err != nil {
		c.logger.Error(fmt.Sprintf("[%s] sign %s order %s", reqID, details.Type, req.Order()), err)
		return nil, err
	}
	if !req.Validate() {
		err = fmt.Errorf("%w: %s", ErrRequestNotValidated, formatErrors(req.Errors()))
		c.logger.Warn(fmt.Sprintf("[%s] %s order %s: %v", reqID, details.Type, req.Order(), err))
		return nil, err
	}

	c.logger.Info(fmt.Sprintf("[%s] %s order: %s; amount: %s; terminal: %s; nonce: %s",
		reqID, details.Type, req.Order(), req.Amount(), secret(c.conf.Gateway.Terminal), secret(req.Nonce())))

	return &entity.SignedForm{
		Action: c.gateway.ApiUrl(),
		Fields: req.PostFields(),
	}, nil
}

// VerifyCallback parses and verifies a callback field set. Callbacks of an
// unsupported type yield nil without error.
func (c *Checkout) VerifyCallback(ctx context.Context, fields map[string]string) (*entity.CallbackResult, error) {
	reqID := GetRequestID(ctx)

	resp, err := ParseResponse(fields)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("[%s] callback: %v", reqID, err))
		return nil, err
	}
	if resp == nil {
		c.logger.Warn(fmt.Sprintf("[%s] callback ignored: TRTYPE %q", reqID, fields[entity.KeyTransactionType]))
		return nil, nil
	}

	verified, err := c.gateway.Verify(resp)
	if err != nil {
		c.logger.Error(fmt.Sprintf("[%s] verify callback order %s", reqID, resp.Order), err)
		return nil, err
	}

	result := &entity.CallbackResult{
		TransactionType: resp.TransactionType,
		Terminal:        resp.Terminal,
		Order:           resp.Order,
		Amount:          accounting.FormatNumber(resp.Amount, 2, "", "."),
		Currency:        resp.Currency,
		Action:          resp.Action,
		ResponseCode:    resp.ResponseCode,
		Description:     resp.ResponseCodeDescription(descriptionLanguage(c.conf.Gateway.Language)),
		Approval:        resp.Approval,
		Card:            resp.CardNumber,
		Verified:        verified,
		Successful:      verified && resp.IsSuccessful(),
	}

	if verified {
		c.logger.Info(fmt.Sprintf("[%s] callback %s order %s: rc %s %s", reqID, resp.TransactionType, resp.Order, resp.ResponseCode, result.Description))
	} else {
		c.logger.Warn(fmt.Sprintf("[%s] callback %s order %s: signature mismatch", reqID, resp.TransactionType, resp.Order))
	}
	return result, nil
}

func descriptionLanguage(language string) string {
	if strings.EqualFold(language, entity.LangBG) {
		return entity.LangBG
	}
	return entity.LangEN
}

func formatErrors(errs map[string][]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, strings.Join(errs[field], " "))
	}
	return strings.Join(messages, " ")
}
