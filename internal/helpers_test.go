package internal

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"sync"
	"testing"
	"time"

	"borica/config"
	"borica/entity"

	"github.com/stretchr/testify/require"
)

var (
	keyOnce     sync.Once
	merchantKey *rsa.PrivateKey
	gatewayKey  *rsa.PrivateKey
	keyErr      error
)

// testKeys returns two 2048 bit keys: one playing the merchant, one the gateway.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	keyOnce.Do(func() {
		merchantKey, keyErr = rsa.GenerateKey(rand.Reader, 2048)
		if keyErr != nil {
			return
		}
		gatewayKey, keyErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, keyErr)
	return merchantKey, gatewayKey
}

func pkcs1PEM(key *rsa.PrivateKey) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
}

func pkcs8PEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func publicPEM(t *testing.T, key *rsa.PublicKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func certificatePEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "e-Gateway test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

// merchantKeys signs with the merchant key and verifies with its own public
// half, as a terminal does in a self-test.
func merchantKeys(t *testing.T) *KeyMaterial {
	merchant, _ := testKeys(t)
	return NewKeyMaterialFromKeys(merchant, nil)
}

// signedCallback returns callback fields signed by the gateway key.
func signedCallback(t *testing.T, trType entity.TransactionType, mode entity.MacMode, fields map[string]string) map[string]string {
	t.Helper()
	_, gateway := testKeys(t)
	schema, ok := entity.SchemaFor(trType)
	require.True(t, ok)
	macFields, ok := schema.ResponseMacFields(mode)
	require.True(t, ok)
	signature, err := Sign(NewKeyMaterialFromKeys(gateway, nil), []byte(BuildMac(macFields, fields, MacResponse)))
	require.NoError(t, err)
	fields[entity.KeySignature] = signature
	return fields
}

func saleCallback() map[string]string {
	return map[string]string{
		entity.KeyTransactionType:    "1",
		entity.KeyTerminal:           "T0000001",
		entity.KeyOrder:              "000123",
		entity.KeyAmount:             "10.20",
		entity.KeyCurrency:           "BGN",
		entity.KeyAction:             "0",
		entity.KeyResponseCode:       "00",
		entity.KeyApproval:           "S12345",
		entity.KeyRetrievalReference: "123456789012",
		entity.KeyInternalReference:  "ABCDEF0123456789",
		entity.KeyStatusMessage:      "Approved",
		entity.KeyCard:               "5100XXXXXXXX0022",
		entity.KeyTransactionDate:    "20240102030405",
		entity.KeyTimestamp:          "20240102030410",
		entity.KeyParesStatus:        "Y",
		entity.KeyCommerceIndicator:  "05",
		entity.KeyNonce:              "0123456789ABCDEF0123456789ABCDEF",
		entity.KeyLanguage:           "EN",
	}
}

// testConfig describes a terminal whose keys are given inline: the merchant
// private key and the gateway certificate.
func testConfig(t *testing.T) *config.Config {
	merchant, gateway := testKeys(t)
	conf := &config.Config{}
	conf.Gateway.Sandbox = true
	conf.Gateway.MacMode = "extended"
	conf.Gateway.KeyFromString = true
	conf.Gateway.PrivateKey = pkcs1PEM(merchant)
	conf.Gateway.Certificate = certificatePEM(t, gateway)
	conf.Gateway.Terminal = "T0000001"
	conf.Gateway.Merchant = "M0000001"
	conf.Gateway.MerchantName = "Test shop"
	conf.Gateway.MerchantUrl = "https://shop.example.com"
	conf.Gateway.BackRefUrl = "https://shop.example.com/return"
	conf.Gateway.Currency = "BGN"
	conf.Gateway.Country = "BG"
	conf.Gateway.Timezone = "+03"
	conf.Gateway.Language = "EN"
	return conf
}
