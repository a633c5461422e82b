package internal

import (
	"errors"
	"testing"

	"borica/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayKeys(t *testing.T) *KeyMaterial {
	_, gateway := testKeys(t)
	return NewKeyMaterialFromKeys(nil, &gateway.PublicKey)
}

func TestParseResponse(t *testing.T) {
	fields := signedCallback(t, entity.Sale, entity.MacExtended, saleCallback())

	resp, err := ParseResponse(fields)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.Sale, resp.TransactionType)
	assert.Equal(t, "T0000001", resp.Terminal)
	assert.Equal(t, "000123", resp.Order)
	assert.Equal(t, 10.2, resp.Amount)
	assert.Equal(t, 0, resp.Action)
	assert.Equal(t, "00", resp.ResponseCode)
	assert.Equal(t, "5100XXXXXXXX0022", resp.CardNumber)
	assert.Equal(t, "", resp.OriginalTransactionType)
	assert.False(t, resp.SignatureIsVerified())
	assert.True(t, resp.IsSuccessful())
	assert.Equal(t, "Transaction completed successfully", resp.ResponseCodeDescription(entity.LangEN))

	raw := resp.Raw()
	raw[entity.KeyAmount] = "99.99"
	assert.Equal(t, "10.20", resp.Raw()[entity.KeyAmount])
}

func TestResponse_Verify(t *testing.T) {
	for _, mode := range []entity.MacMode{entity.MacSimple, entity.MacExtended} {
		t.Run(string(mode), func(t *testing.T) {
			resp, err := ParseResponse(signedCallback(t, entity.Sale, mode, saleCallback()))
			require.NoError(t, err)

			ok, err := resp.Verify(gatewayKeys(t), mode)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, resp.SignatureIsVerified())
		})
	}
}

func TestResponse_VerifyEmptyFields(t *testing.T) {
	callback := saleCallback()
	callback[entity.KeyApproval] = ""
	callback[entity.KeyParesStatus] = ""
	callback[entity.KeyCommerceIndicator] = ""
	fields := signedCallback(t, entity.Sale, entity.MacExtended, callback)

	resp, err := ParseResponse(fields)
	require.NoError(t, err)
	ok, err := resp.Verify(gatewayKeys(t), entity.MacExtended)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResponse_VerifyTampered(t *testing.T) {
	fields := signedCallback(t, entity.Sale, entity.MacExtended, saleCallback())
	fields[entity.KeyAmount] = "1020.00"

	resp, err := ParseResponse(fields)
	require.NoError(t, err)
	ok, err := resp.Verify(gatewayKeys(t), entity.MacExtended)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, resp.SignatureIsVerified())
}

func TestResponse_VerifyWrongMode(t *testing.T) {
	resp, err := ParseResponse(signedCallback(t, entity.Sale, entity.MacExtended, saleCallback()))
	require.NoError(t, err)

	ok, err := resp.Verify(gatewayKeys(t), entity.MacSimple)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = resp.Verify(gatewayKeys(t), entity.MacMode("other"))
	assert.ErrorIs(t, err, ErrUnsupportedMacMode)
}

func TestResponse_VerifyWithoutCertificate(t *testing.T) {
	resp, err := ParseResponse(signedCallback(t, entity.Sale, entity.MacExtended, saleCallback()))
	require.NoError(t, err)

	ok, err := resp.Verify(merchantKeysWithoutPublic(t), entity.MacExtended)
	assert.False(t, ok)
	var sigErr *SignatureError
	require.True(t, errors.As(err, &sigErr))
	assert.ErrorIs(t, err, ErrMissingCertificate)
}

func merchantKeysWithoutPublic(t *testing.T) *KeyMaterial {
	merchant, _ := testKeys(t)
	return &KeyMaterial{private: merchant}
}

func TestResponse_StatusCheck(t *testing.T) {
	callback := saleCallback()
	callback[entity.KeyTransactionType] = "90"
	callback[entity.KeyOriginalTransactionType] = "1"
	fields := signedCallback(t, entity.StatusCheck, entity.MacSimple, callback)

	resp, err := ParseResponse(fields)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCheck, resp.TransactionType)
	assert.Equal(t, "1", resp.OriginalTransactionType)

	ok, err := resp.Verify(gatewayKeys(t), entity.MacSimple)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParseResponse_Ignored(t *testing.T) {
	for _, trType := range []string{"", "abc", "2", "91"} {
		callback := saleCallback()
		callback[entity.KeyTransactionType] = trType
		resp, err := ParseResponse(callback)
		assert.NoError(t, err, trType)
		assert.Nil(t, resp, trType)
	}

	callback := saleCallback()
	delete(callback, entity.KeyTransactionType)
	resp, err := ParseResponse(callback)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestParseResponse_Malformed(t *testing.T) {
	callback := saleCallback()
	delete(callback, entity.KeyResponseCode)
	delete(callback, entity.KeySignature)

	_, err := ParseResponse(callback)
	require.ErrorIs(t, err, ErrMalformedCallback)
	assert.Contains(t, err.Error(), "RC")
	assert.Contains(t, err.Error(), "P_SIGN")

	callback = saleCallback()
	callback[entity.KeySignature] = ""
	callback[entity.KeyAction] = "x"
	_, err = ParseResponse(callback)
	assert.ErrorIs(t, err, ErrMalformedCallback)

	callback = saleCallback()
	callback[entity.KeySignature] = ""
	callback[entity.KeyAmount] = "ten"
	_, err = ParseResponse(callback)
	assert.ErrorIs(t, err, ErrMalformedCallback)
}

func TestResponse_Declined(t *testing.T) {
	callback := saleCallback()
	callback[entity.KeyAction] = "2"
	callback[entity.KeyResponseCode] = "05"
	callback[entity.KeyAmount] = ""
	callback[entity.KeySignature] = ""

	resp, err := ParseResponse(callback)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Action)
	assert.Equal(t, 0.0, resp.Amount)
	assert.False(t, resp.IsSuccessful())
	assert.Equal(t, "Do not Honour", resp.ResponseCodeDescription(entity.LangEN))
	assert.Equal(t, "", resp.ResponseCodeDescription("de"))
}
