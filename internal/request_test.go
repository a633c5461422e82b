package internal

import (
	"errors"
	"testing"
	"time"

	"borica/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNonce = "0123456789ABCDEF0123456789ABCDEF"

var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newSale(t *testing.T) *Request {
	t.Helper()
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)
	r.SetAmount(10.20).
		SetCurrency("BGN").
		SetTerminal("T0000001").
		SetMerchant("M0000001").
		SetOrder(123).
		SetDescription("Order 123").
		SetTimestamp(testTime)
	_, err = r.SetNonce(testNonce)
	require.NoError(t, err)
	return r
}

func TestNewRequest_Defaults(t *testing.T) {
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)

	data := r.ToPostData()
	assert.Equal(t, "BGN", data[entity.KeyCurrency])
	assert.Equal(t, "BG", data[entity.KeyCountry])
	assert.Equal(t, "+03", data[entity.KeyMerchantTimezone])
	assert.Equal(t, "BG", data[entity.KeyLanguage])
	assert.Equal(t, "AD,TD", data[entity.KeyAddendum])
	assert.Equal(t, "1", data[entity.KeyTransactionType])
	assert.Equal(t, "", data[entity.KeyAmount])
	assert.Equal(t, "", data[entity.KeyOrder])
}

func TestNewRequest_UnsupportedType(t *testing.T) {
	_, err := NewRequest(entity.TransactionType(7))
	var paramErr *ParameterValidationError
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "transactionType", paramErr.Field)
}

func TestRequest_Order(t *testing.T) {
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)

	assert.Equal(t, "", r.Order())
	assert.Equal(t, "000123", r.SetOrder(123).Order())
	assert.Equal(t, "000000", r.SetOrder(0).Order())
	assert.Equal(t, "123456", r.SetOrder(123456).Order())
	assert.Equal(t, "1234567", r.SetOrder(1234567).Order())
}

func TestRequest_Amount(t *testing.T) {
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)

	assert.Equal(t, "", r.Amount())
	assert.Equal(t, "10.20", r.SetAmount(10.2).Amount())
	assert.Equal(t, "12.30", r.SetAmount(12.3).Amount())
	assert.Equal(t, "200.00", r.SetAmount(200).Amount())
	assert.Equal(t, "1234.50", r.SetAmount(1234.5).Amount())
}

func TestRequest_Timestamp(t *testing.T) {
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)

	sofia := time.FixedZone("EET", 2*60*60)
	r.SetTimestamp(time.Date(2024, 1, 2, 5, 4, 5, 0, sofia))
	assert.Equal(t, "20240102030405", r.Timestamp())
}

func TestRequest_OrderIdentifier(t *testing.T) {
	r := newSale(t)
	r.SetOrderIdentifier("ORD;123;A")
	assert.Equal(t, "ORD-123-A", r.ToPostData()[entity.KeyOrderIdentifier])
}

func TestRequest_CheckedSetters(t *testing.T) {
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)

	_, err = r.SetMerchantUrl("https://shop.example.com")
	assert.NoError(t, err)

	var paramErr *ParameterValidationError
	for _, bad := range []string{"", "shop.example.com", "ftp://shop.example.com", "https://"} {
		_, err = r.SetMerchantUrl(bad)
		require.True(t, errors.As(err, &paramErr), bad)
		assert.Equal(t, "merchantUrl", paramErr.Field)
	}

	_, err = r.SetBackRefUrl("")
	assert.NoError(t, err)
	_, err = r.SetBackRefUrl("not a url")
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "backRefUrl", paramErr.Field)

	_, err = r.SetNonce("XYZ")
	require.True(t, errors.As(err, &paramErr))
	_, err = r.SetNonce("")
	require.True(t, errors.As(err, &paramErr))

	_, err = r.SetLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, "EN", r.ToPostData()[entity.KeyLanguage])
	_, err = r.SetLanguage("DE")
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "EN", r.ToPostData()[entity.KeyLanguage])
}

func TestRequest_Validate(t *testing.T) {
	r, err := NewRequest(entity.Sale)
	require.NoError(t, err)

	assert.False(t, r.Validate())
	assert.True(t, r.HasErrors())
	errs := r.Errors()
	for _, field := range []string{"amount", "terminal", "merchant", "order", "timestamp", "nonce", "pSign"} {
		assert.Equal(t, []string{field + " is required."}, errs[field], field)
	}
	assert.NotContains(t, errs, "currency")
	assert.NotContains(t, errs, "transactionType")

	// Errors returns a copy
	errs["amount"] = nil
	assert.NotNil(t, r.Errors()["amount"])

	r.ClearErrors()
	assert.False(t, r.HasErrors())
}

func TestRequest_ValidateAfterSign(t *testing.T) {
	r := newSale(t)
	assert.False(t, r.Validate())
	assert.Equal(t, []string{"pSign is required."}, r.Errors()["pSign"])

	require.NoError(t, r.Sign(merchantKeys(t), entity.MacExtended))
	assert.True(t, r.Validate())
	assert.Empty(t, r.Errors())
}

func TestRequest_StatusCheckMandatory(t *testing.T) {
	r, err := NewRequest(entity.StatusCheck)
	require.NoError(t, err)
	r.SetTerminal("T0000001").SetOrder(123)
	_, err = r.SetNonce(testNonce)
	require.NoError(t, err)

	assert.False(t, r.Validate())
	errs := r.Errors()
	assert.Contains(t, errs, "originalTransactionType")
	assert.Contains(t, errs, "pSign")
	assert.NotContains(t, errs, "amount")
	assert.NotContains(t, errs, "merchant")
}

func TestRequest_ToPostData(t *testing.T) {
	r := newSale(t)
	data := r.ToPostData()

	assert.Len(t, data, 19)
	for _, key := range []string{
		"AMOUNT", "CURRENCY", "TERMINAL", "MERCHANT", "TRTYPE", "ORDER", "TIMESTAMP", "NONCE",
		"P_SIGN", "DESC", "MERCH_NAME", "MERCH_URL", "EMAIL", "COUNTRY", "MERCH_GMT", "LANG",
		"AD.CUST_BOR_ORDER_ID", "ADDENDUM", "BACKREF",
	} {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, "10.20", data["AMOUNT"])
	assert.Equal(t, "000123", data["ORDER"])
	assert.Equal(t, "20240102030405", data["TIMESTAMP"])

	fields := r.PostFields()
	require.Len(t, fields, 19)
	assert.Equal(t, entity.WireValue{Key: "AMOUNT", Value: "10.20"}, fields[0])
}

func TestRequest_StatusCheckPostData(t *testing.T) {
	r, err := NewRequest(entity.StatusCheck)
	require.NoError(t, err)
	r.SetTerminal("T0000001").SetOrder(123).SetOriginalTransactionType("1")

	data := r.ToPostData()
	assert.Equal(t, map[string]string{
		"TERMINAL":    "T0000001",
		"TRTYPE":      "90",
		"ORDER":       "000123",
		"TRAN_TRTYPE": "1",
		"NONCE":       "",
		"P_SIGN":      "",
	}, data)
}

func TestRequest_SignExtended(t *testing.T) {
	keys := merchantKeys(t)
	r := newSale(t)

	require.NoError(t, r.Sign(keys, entity.MacExtended))
	assert.Len(t, r.Signature(), 512)

	mac := "8T0000001" + "11" + "510.20" + "3BGN" + "6000123" + "8M0000001" + "1420240102030405" + "32" + testNonce
	ok, err := Verify(keys, []byte(mac), r.Signature())
	require.NoError(t, err)
	assert.True(t, ok)

	// the gateway would see a different amount
	tampered := "8T0000001" + "11" + "510.21" + "3BGN" + "6000123" + "8M0000001" + "1420240102030405" + "32" + testNonce
	ok, err = Verify(keys, []byte(tampered), r.Signature())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequest_SignSimple(t *testing.T) {
	keys := merchantKeys(t)
	r := newSale(t)

	require.NoError(t, r.Sign(keys, entity.MacSimple))
	mac := "8T0000001" + "11" + "510.20" + "3BGN" + "1420240102030405"
	ok, err := Verify(keys, []byte(mac), r.Signature())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRequest_SignTwice(t *testing.T) {
	keys := merchantKeys(t)
	r := newSale(t)

	require.NoError(t, r.Sign(keys, entity.MacExtended))
	first := r.Signature()
	r.SetAmount(11)
	require.NoError(t, r.Sign(keys, entity.MacExtended))
	assert.NotEqual(t, first, r.Signature())
	assert.Equal(t, r.Signature(), r.ToPostData()[entity.KeySignature])
}

func TestRequest_SignErrors(t *testing.T) {
	r := newSale(t)

	err := r.Sign(merchantKeys(t), entity.MacMode("full"))
	var sigErr *SignatureError
	require.True(t, errors.As(err, &sigErr))
	assert.ErrorIs(t, err, ErrUnsupportedMacMode)

	err = r.Sign(&KeyMaterial{}, entity.MacExtended)
	assert.ErrorIs(t, err, ErrMissingPrivateKey)
	assert.Empty(t, r.Signature())
}

func TestGenerateNonce(t *testing.T) {
	first, err := GenerateNonce()
	require.NoError(t, err)
	second, err := GenerateNonce()
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.Regexp(t, "^[0-9A-F]{32}$", first)
	assert.NotEqual(t, first, second)
}
