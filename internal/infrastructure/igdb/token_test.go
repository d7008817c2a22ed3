package igdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sweaty/pkg/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTokenServer(t *testing.T, exchanges *int32, expiresIn int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))

		n := atomic.AddInt32(exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":%d,"token_type":"bearer"}`, n, expiresIn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthenticate_ReusesTokenWithinWindow(t *testing.T) {
	var exchanges int32
	srv := newTokenServer(t, &exchanges, 3600)
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	client := NewClient(Config{ClientID: "client-id", ClientSecret: "secret", TokenURL: srv.URL, Clock: clock})

	first, err := client.Authenticate(context.Background())
	require.NoError(t, err)

	clock.Advance(3600*time.Second - tokenSafetyMargin - time.Second)
	second, err := client.Authenticate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&exchanges))
}

func TestAuthenticate_RefreshesOnceMarginIsBreached(t *testing.T) {
	var exchanges int32
	srv := newTokenServer(t, &exchanges, 3600)
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	client := NewClient(Config{ClientID: "client-id", ClientSecret: "secret", TokenURL: srv.URL, Clock: clock})

	first, err := client.Authenticate(context.Background())
	require.NoError(t, err)

	clock.Advance(3600*time.Second - tokenSafetyMargin + time.Second)
	second, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	third, err := client.Authenticate(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, second, third)
	assert.Equal(t, int32(2), atomic.LoadInt32(&exchanges))
}

func TestAuthenticate_FailedExchangeCachesNothing(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, `{"message":"invalid client secret"}`, http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"access_token":"fresh","expires_in":3600}`)
	}))
	defer srv.Close()

	client := NewClient(Config{ClientID: "client-id", ClientSecret: "secret", TokenURL: srv.URL})

	_, err := client.Authenticate(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeAuthentication))

	token, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestAuthenticate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"expires_in":3600}`)
	}))
	defer srv.Close()

	client := NewClient(Config{ClientID: "client-id", ClientSecret: "secret", TokenURL: srv.URL})

	_, err := client.Authenticate(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.CodeAuthentication))
}

func TestAuthenticate_MissingCredentialsMakesNoCall(t *testing.T) {
	var exchanges int32
	srv := newTokenServer(t, &exchanges, 3600)

	client := NewClient(Config{TokenURL: srv.URL})

	_, err := client.Authenticate(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.CodeConfiguration))
	assert.Zero(t, atomic.LoadInt32(&exchanges))
}
