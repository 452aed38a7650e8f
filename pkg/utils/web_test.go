package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeb_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	_, err := NewWeb("").FetchPage(server.URL)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestWeb_CustomUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := NewWeb("custom-agent/1.0").FetchPage(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "custom-agent/1.0", gotAgent)
}

func TestWeb_FetchPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>zażółć</html>"))
	}))
	defer server.Close()

	page, err := NewWeb("").FetchPage(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>zażółć</html>", page)
}

func TestWeb_FetchPageRejectsInvalidUTF8(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer server.Close()

	_, err := NewWeb("").FetchPage(server.URL)
	assert.Error(t, err)
}

func TestWeb_BadStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewWeb("").FetchResource(server.URL + "/gone.mp3")
	assert.Error(t, err)
}

func TestWeb_FetchResourceKeepsRawBytes(t *testing.T) {
	raw := []byte{0x49, 0x44, 0x33, 0xff, 0x00}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(raw)
	}))
	defer server.Close()

	body, err := NewWeb("").FetchResource(server.URL)
	require.NoError(t, err)
	assert.Equal(t, raw, body)
}
