package deliverability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify_Deliverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/verify", r.URL.Path)
		require.Equal(t, "alice@example.com", r.URL.Query().Get("email"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"result":"deliverable","did_you_mean":""}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "test-key").Verify(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.True(t, res.SafeToSend)
	require.Empty(t, res.DidYouMean)
}

func TestVerify_RiskyIsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"risky","did_you_mean":""}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "").Verify(context.Background(), "bob@sketchy.example")
	require.NoError(t, err)
	require.True(t, res.SafeToSend)
}

func TestVerify_UndeliverableWithRemoteSuggestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"undeliverable","did_you_mean":"carol@gmail.com"}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "").Verify(context.Background(), "carol@gmail.con")
	require.NoError(t, err)
	require.False(t, res.SafeToSend)
	require.Equal(t, "carol@gmail.com", res.DidYouMean)
}

func TestVerify_UndeliverableFallsBackToLocalSuggestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"undeliverable","did_you_mean":""}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "").Verify(context.Background(), "dave@gmial.com")
	require.NoError(t, err)
	require.False(t, res.SafeToSend)
	require.Equal(t, "dave@gmail.com", res.DidYouMean)
}

func TestVerify_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Verify(context.Background(), "erin@example.com")
	require.Error(t, err)
}

func TestDidYouMean(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"known typo table", "a@gmial.com", "a@gmail.com"},
		{"close edit distance", "b@outloook.com", "b@outlook.com"},
		{"exact provider match", "c@gmail.com", ""},
		{"unrelated domain", "d@corporate-intranet.example", ""},
		{"missing at sign", "not-an-email", ""},
		{"empty local part", "@gmail.com", ""},
		{"case insensitive domain", "e@GMAIL.CO", "e@gmail.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DidYouMean(tt.email))
		})
	}
}

func TestDisabledVerifier(t *testing.T) {
	v := Disabled()

	res, err := v.Verify(context.Background(), "frank@gmail.com")
	require.NoError(t, err)
	require.True(t, res.SafeToSend)

	res, err = v.Verify(context.Background(), "frank@gmial.com")
	require.NoError(t, err)
	require.False(t, res.SafeToSend)
	require.Equal(t, "frank@gmail.com", res.DidYouMean)
}
