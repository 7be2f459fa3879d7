package ontario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// xsrfCookieName is the provider's anti-forgery cookie; its value must be
// echoed in the x-xsrf-token header on commits.
const xsrfCookieName = "XSRF-TOKEN"

type browserCookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`
}

// LoadCookies reads a browser-exported JSON cookie file and returns the
// cookies plus the XSRF token value, empty if the cookie is absent.
func LoadCookies(path string) ([]*http.Cookie, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("cookie file %s: %w (export browser cookies to this path before running)", path, err)
	}
	var raw []browserCookie
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("cookie file %s: %w", path, err)
	}

	var xsrf string
	cookies := make([]*http.Cookie, 0, len(raw))
	for _, c := range raw {
		if c.Name == xsrfCookieName {
			xsrf = c.Value
		}
		cookies = append(cookies, &http.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		})
	}
	return cookies, xsrf, nil
}
