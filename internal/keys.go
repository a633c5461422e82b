package internal

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/youmark/pkcs8"
)

// KeySource tells NewKeyMaterial where the merchant private key and the
// gateway certificate come from. A file path wins over inline text.
type KeySource struct {
	PrivateKeyFile     string
	PrivateKey         string
	PrivateKeyPassword string
	CertificateFile    string
	// Certificate is a PEM certificate, a PEM public key or a bare base64 DER public key
	Certificate string
}

// KeyMaterial holds the parsed keys. It is read once and never changes, so a
// single instance can sign and verify from many goroutines.
type KeyMaterial struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// NewKeyMaterial reads and parses both sides of source. Either side may be left
// empty; using the missing side later fails with a SignatureError.
func NewKeyMaterial(source KeySource) (*KeyMaterial, error) {
	keys := &KeyMaterial{}

	privatePEM, err := readSource(source.PrivateKeyFile, source.PrivateKey)
	if err != nil {
		return nil, signatureError("read private key", err)
	}
	if len(privatePEM) > 0 {
		keys.private, err = parsePrivateKey(privatePEM, source.PrivateKeyPassword)
		if err != nil {
			return nil, signatureError("load private key", err)
		}
	}

	certificate, err := readSource(source.CertificateFile, source.Certificate)
	if err != nil {
		return nil, signatureError("read certificate", err)
	}
	if len(certificate) > 0 {
		keys.public, err = parsePublicKey(certificate)
		if err != nil {
			return nil, signatureError("load certificate", err)
		}
	}

	return keys, nil
}

// NewKeyMaterialFromKeys wraps already parsed keys. Either may be nil.
func NewKeyMaterialFromKeys(private *rsa.PrivateKey, public *rsa.PublicKey) *KeyMaterial {
	if public == nil && private != nil {
		public = &private.PublicKey
	}
	return &KeyMaterial{private: private, public: public}
}

func (k *KeyMaterial) CanSign() bool {
	return k != nil && k.private != nil
}

func (k *KeyMaterial) CanVerify() bool {
	return k != nil && k.public != nil
}

func readSource(path, inline string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		return data, nil
	}
	return []byte(strings.TrimSpace(inline)), nil
}

func parsePrivateKey(data []byte, password string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("bad PEM block for private key")
	}

	if block.Type == "ENCRYPTED PRIVATE KEY" {
		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(password))
		if err != nil {
			return nil, fmt.Errorf("decrypt PKCS8 key: %w", err)
		}
		return key, nil
	}

	der := block.Bytes
	//nolint:staticcheck // legacy OpenSSL "Proc-Type: 4,ENCRYPTED" keys are still issued
	if x509.IsEncryptedPEMBlock(block) {
		var err error
		der, err = x509.DecryptPEMBlock(block, []byte(password))
		if err != nil {
			return nil, fmt.Errorf("decrypt PEM key: %w", err)
		}
	}

	// PKCS#1 first, then PKCS#8
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("cannot parse RSA private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("PKCS8 key is not RSA: %T", parsed)
	}
	return key, nil
}

func parsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		// bare base64 body without armour
		der, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			return nil, errors.New("certificate is neither PEM nor base64 DER")
		}
		return publicKeyFromDER(der)
	}

	switch block.Type {
	case "CERTIFICATE":
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse certificate: %w", err)
		}
		return rsaPublicKey(cert.PublicKey)
	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS1 public key: %w", err)
		}
		return key, nil
	default:
		return publicKeyFromDER(block.Bytes)
	}
}

func publicKeyFromDER(der []byte) (*rsa.PublicKey, error) {
	if key, err := x509.ParsePKIXPublicKey(der); err == nil {
		return rsaPublicKey(key)
	}
	if key, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return key, nil
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("unrecognised public key: %w", err)
	}
	return rsaPublicKey(cert.PublicKey)
}

func rsaPublicKey(key interface{}) (*rsa.PublicKey, error) {
	public, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not RSA: %T", key)
	}
	return public, nil
}
