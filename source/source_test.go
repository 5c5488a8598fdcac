package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestMemory(t *testing.T) {
	s := NewMemory()
	s.Put("a.gz", []byte("payload"))

	ctx := context.Background()

	data, err := s.Fetch(ctx, "a.gz")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)

	// Returned slice is a copy.
	data[0] = 'X'
	again, err := s.Fetch(ctx, "a.gz")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), again)

	_, err = s.Fetch(ctx, "missing.gz")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ContextCanceled(t *testing.T) {
	s := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Fetch(ctx, "a.gz")
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTP_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vectors/chunk.gz":
			_, _ = w.Write([]byte("archive-bytes"))
		case "/vectors/broken.gz":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s, err := NewHTTP(srv.URL+"/vectors/", WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	ctx := context.Background()

	data, err := s.Fetch(ctx, "chunk.gz")
	require.NoError(t, err)
	require.Equal(t, []byte("archive-bytes"), data)

	_, err = s.Fetch(ctx, "missing.gz")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Fetch(ctx, "broken.gz")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestHTTP_RateLimiterHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	// A limiter that would force a long wait; the canceled context must win.
	s, err := NewHTTP(srv.URL,
		WithHTTPClient(srv.Client()),
		WithRateLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)),
	)
	require.NoError(t, err)

	ctx := context.Background()

	// First fetch consumes the burst token.
	_, err = s.Fetch(ctx, "a.gz")
	require.NoError(t, err)

	cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = s.Fetch(cctx, "a.gz")
	require.Error(t, err)
}
