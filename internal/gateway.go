package internal

import (
	"fmt"

	"borica/config"
	"borica/entity"
)

const (
	SandboxUrl    = "https://3dsgate-dev.borica.bg/cgi-bin/cgi_link"
	ProductionUrl = "https://3dsgate.borica.bg/cgi-bin/cgi_link"
)

// Gateway is the signing context of one terminal: its keys, the MAC mode agreed
// with the acquirer and the environment. It is read-only after construction.
type Gateway struct {
	keys    *KeyMaterial
	macMode entity.MacMode
	sandbox bool
}

func NewGateway(keys *KeyMaterial, mode entity.MacMode, sandbox bool) (*Gateway, error) {
	if mode == "" {
		mode = entity.MacExtended
	}
	if !mode.IsValid() {
		return nil, parameterError("mac_mode", "%v: %q", ErrUnsupportedMacMode, mode)
	}
	if keys == nil {
		keys = &KeyMaterial{}
	}
	return &Gateway{keys: keys, macMode: mode, sandbox: sandbox}, nil
}

// NewGatewayFromOptions loads both keys; they are required here.
func NewGatewayFromOptions(opts entity.GatewayOptions) (*Gateway, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, validationError(err)
	}
	keys, err := NewKeyMaterial(keySource(opts.KeyFromString, opts.PrivateKey, opts.PrivateKeyPassword, opts.Certificate))
	if err != nil {
		return nil, err
	}
	return NewGateway(keys, entity.MacMode(opts.MacMode), opts.Sandbox)
}

// NewGatewayFromConfig loads whatever keys are configured. A gateway without a
// private key can still verify callbacks, and one without a certificate can sign.
func NewGatewayFromConfig(conf *config.Config) (*Gateway, error) {
	mode, ok := entity.ParseMacMode(conf.Gateway.MacMode)
	if !ok {
		return nil, parameterError("mac_mode", "%v: %q", ErrUnsupportedMacMode, conf.Gateway.MacMode)
	}
	g := conf.Gateway
	keys, err := NewKeyMaterial(keySource(g.KeyFromString, g.PrivateKey, g.PrivateKeyPassword, g.Certificate))
	if err != nil {
		return nil, fmt.Errorf("gateway keys: %w", err)
	}
	return NewGateway(keys, mode, g.Sandbox)
}

func keySource(fromString bool, privateKey, password, certificate string) KeySource {
	if fromString {
		return KeySource{PrivateKey: privateKey, PrivateKeyPassword: password, Certificate: certificate}
	}
	return KeySource{PrivateKeyFile: privateKey, PrivateKeyPassword: password, CertificateFile: certificate}
}

// ApiUrl is the form action for the configured environment.
func (g *Gateway) ApiUrl() string {
	if g.sandbox {
		return SandboxUrl
	}
	return ProductionUrl
}

func (g *Gateway) Sandbox() bool {
	return g.sandbox
}

func (g *Gateway) MacMode() entity.MacMode {
	return g.macMode
}

func (g *Gateway) Keys() *KeyMaterial {
	return g.keys
}

func (g *Gateway) Sign(req *Request) error {
	return req.Sign(g.keys, g.macMode)
}

func (g *Gateway) Verify(resp *Response) (bool, error) {
	return resp.Verify(g.keys, g.macMode)
}
