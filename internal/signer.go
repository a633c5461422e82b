package internal

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign signs data with RSA PKCS#1 v1.5 over SHA-256 and returns the
// signature as uppercase hex, 512 characters for a 2048 bit key.
func Sign(keys *KeyMaterial, data []byte) (string, error) {
	if !keys.CanSign() {
		return "", signatureError("sign", ErrMissingPrivateKey)
	}
	digest := sha256.Sum256(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, keys.private, crypto.SHA256, digest[:])
	if err != nil {
		return "", signatureError("sign", err)
	}
	return strings.ToUpper(hex.EncodeToString(signature)), nil
}

// Verify checks a hex signature over data. A malformed or mismatched signature
// is reported as false; an error means there was no usable public key.
func Verify(keys *KeyMaterial, data []byte, signatureHex string) (bool, error) {
	if !keys.CanVerify() {
		return false, signatureError("verify", ErrMissingCertificate)
	}
	signature, err := hex.DecodeString(strings.TrimSpace(signatureHex))
	if err != nil || len(signature) == 0 {
		return false, nil
	}
	digest := sha256.Sum256(data)
	if err = rsa.VerifyPKCS1v15(keys.public, crypto.SHA256, digest[:], signature); err != nil {
		return false, nil
	}
	return true, nil
}
