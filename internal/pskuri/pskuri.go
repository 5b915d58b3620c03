package pskuri

import (
	"encoding/base64"
	"net/url"
	"strings"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

const scheme = "algochat-psk"
const schemePrefix = scheme + "://"

// Encode builds an algochat-psk://v1 link for addr and psk, with an
// optional label. Unknown future query parameters are never emitted.
func Encode(addr string, psk domain.PSKKey, label string) string {
	u := &url.URL{Scheme: scheme, Host: "v1"}
	q := url.Values{}
	q.Set("addr", addr)
	q.Set("psk", base64.RawURLEncoding.EncodeToString(psk.Slice()))
	if label != "" {
		q.Set("label", label)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Parse extracts (addr, psk, label) from an algochat-psk:// link. label is
// "" when absent. Unknown query parameters are ignored.
func Parse(uri string) (addr string, psk domain.PSKKey, label string, err error) {
	if !strings.HasPrefix(uri, schemePrefix) {
		return "", domain.PSKKey{}, "", domain.NewError(domain.KindPSKExchangeURIInvalid, "missing %s scheme", schemePrefix)
	}

	u, parseErr := url.Parse(uri)
	if parseErr != nil {
		return "", domain.PSKKey{}, "", domain.NewError(domain.KindPSKExchangeURIInvalid, "%v", parseErr)
	}

	q := u.Query()
	addr = q.Get("addr")
	if addr == "" {
		return "", domain.PSKKey{}, "", domain.NewError(domain.KindPSKExchangeURIInvalid, "missing addr parameter")
	}

	pskParam := q.Get("psk")
	if pskParam == "" {
		return "", domain.PSKKey{}, "", domain.NewError(domain.KindPSKExchangeURIInvalid, "missing psk parameter")
	}
	decoded, decodeErr := base64.RawURLEncoding.DecodeString(pskParam)
	if decodeErr != nil {
		return "", domain.PSKKey{}, "", domain.NewError(domain.KindPSKExchangeURIInvalid, "invalid base64url psk: %v", decodeErr)
	}
	if len(decoded) != 32 {
		return "", domain.PSKKey{}, "", domain.NewError(domain.KindPSKExchangeURIInvalid,
			"psk must decode to 32 bytes, got %d", len(decoded))
	}
	copy(psk[:], decoded)

	label = q.Get("label")
	return addr, psk, label, nil
}
