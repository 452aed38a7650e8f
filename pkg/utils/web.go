package utils

import (
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// DefaultUserAgent is sent with every request. Some providers refuse
// the Go default agent outright.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:10.0) Gecko/20100101 Firefox/10.0"

// Web fetches pages and resources over HTTP(S) with a fixed User-Agent.
type Web struct {
	client    *http.Client
	userAgent string
}

func NewWeb(userAgent string) *Web {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Web{client: http.DefaultClient, userAgent: userAgent}
}

func (w *Web) get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", w.userAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FetchPage downloads a page and decodes it as UTF-8 text.
func (w *Web) FetchPage(url string) (string, error) {
	body, err := w.get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("fetch %s: page is not valid UTF-8", url)
	}
	return string(body), nil
}

// FetchResource downloads a resource as raw bytes.
func (w *Web) FetchResource(url string) ([]byte, error) {
	body, err := w.get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return body, nil
}
