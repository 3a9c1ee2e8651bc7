package breach

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rangeParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(fmt.Sprintf("%x", sum))
	return digest[:5], digest[5:]
}

func TestCount_Leaked(t *testing.T) {
	prefix, suffix := rangeParts("password")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/range/"+prefix, r.URL.Path)
		fmt.Fprintf(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n")
		fmt.Fprintf(w, "%s:9659365\r\n", suffix)
		fmt.Fprintf(w, "011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n")
	}))
	defer srv.Close()

	n, err := NewClient(srv.URL).Count(context.Background(), "password")
	require.NoError(t, err)
	require.Equal(t, 9659365, n)
}

func TestCount_Unseen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n")
	}))
	defer srv.Close()

	n, err := NewClient(srv.URL).Count(context.Background(), "genuinely-novel-passphrase-4712")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCount_PaddedZeroReadsAsUnseen(t *testing.T) {
	_, suffix := rangeParts("padded-entry")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.Header.Get("Add-Padding"))
		fmt.Fprintf(w, "%s:0\r\n", suffix)
	}))
	defer srv.Close()

	n, err := NewClient(srv.URL).Count(context.Background(), "padded-entry")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCount_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Count(context.Background(), "anything")
	require.Error(t, err)
}
