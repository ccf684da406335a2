package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"dive-booking-gateway/internal/infra/wordpress"
)

var (
	ErrProxyPathNotAllowed   = errors.New("proxy path not allowed")
	ErrProxyMethodNotAllowed = errors.New("proxy method not allowed")
)

// Only these booking-plugin routes are reachable through the proxy.
var proxyAllowlist = map[string]struct{}{
	wordpress.SubpathAvailability: {},
	wordpress.SubpathPrice:        {},
	wordpress.SubpathCreateOrder:  {},
	wordpress.SubpathPersonTypes:  {},
	wordpress.SubpathResources:    {},
	wordpress.SubpathDebug:        {},
}

var proxyMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodDelete: {},
}

type ProxyGateway interface {
	Forward(ctx context.Context, method, subpath string, query url.Values, body []byte) (*wordpress.Response, error)
	Target(subpath string, query url.Values) string
}

type ProxyUseCase interface {
	// Resolve normalizes a subpath and checks it against the allowlist.
	Resolve(method, rawSubpath string) (string, error)
	Forward(ctx context.Context, method, subpath string, query url.Values, body []byte) (*wordpress.Response, error)
	Target(subpath string, query url.Values) string
	RequiresAdmin(subpath string) bool
}

type proxyUseCaseImpl struct {
	gateway ProxyGateway
}

func NewProxyUseCase(gateway ProxyGateway) ProxyUseCase {
	return &proxyUseCaseImpl{gateway: gateway}
}

func NormalizeProxySubpath(raw string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(raw), "/"))
}

func (p *proxyUseCaseImpl) Resolve(method, rawSubpath string) (string, error) {
	subpath := NormalizeProxySubpath(rawSubpath)
	if _, ok := proxyAllowlist[subpath]; !ok {
		return "", ErrProxyPathNotAllowed
	}
	if _, ok := proxyMethods[method]; !ok {
		return "", ErrProxyMethodNotAllowed
	}
	return subpath, nil
}

func (p *proxyUseCaseImpl) Forward(ctx context.Context, method, subpath string, query url.Values, body []byte) (*wordpress.Response, error) {
	if _, err := p.Resolve(method, subpath); err != nil {
		return nil, err
	}
	return p.gateway.Forward(ctx, method, subpath, query, body)
}

func (p *proxyUseCaseImpl) Target(subpath string, query url.Values) string {
	return p.gateway.Target(subpath, query)
}

func (p *proxyUseCaseImpl) RequiresAdmin(subpath string) bool {
	return subpath == wordpress.SubpathDebug
}
