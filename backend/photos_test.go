package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUnsplash 依 query 回傳固定網址；query 為 "none" 時沒有結果
func fakeUnsplash(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Client-ID test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		q := r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		switch q {
		case "none":
			fmt.Fprint(w, `{"results":[]}`)
		case "small":
			fmt.Fprint(w, `{"results":[{"urls":{"small":"https://img.test/small.jpg"}}]}`)
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			fmt.Fprintf(w, `{"results":[{"urls":{"regular":"https://img.test/%s.jpg"}}]}`, q)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPhotoService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("caches by normalized query", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		s := newTestServer(t, nil, fakeUnsplash(t, &hits).URL).photos

		u, err := s.Lookup(ctx, "kyoto")
		require.NoError(t, err)
		assert.Equal(t, "https://img.test/kyoto.jpg", u)

		u, err = s.Lookup(ctx, "  KYOTO ")
		require.NoError(t, err)
		assert.Equal(t, "https://img.test/kyoto.jpg", u)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("falls back to small and empty", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		s := newTestServer(t, nil, fakeUnsplash(t, &hits).URL).photos

		u, err := s.Lookup(ctx, "small")
		require.NoError(t, err)
		assert.Equal(t, "https://img.test/small.jpg", u)

		u, err = s.Lookup(ctx, "none")
		require.NoError(t, err)
		assert.Empty(t, u)
	})

	t.Run("upstream error", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		s := newTestServer(t, nil, fakeUnsplash(t, &hits).URL).photos

		_, err := s.Lookup(ctx, "broken")
		assert.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		s := newPhotoService(Config{UnsplashBaseURL: "http://unused"})
		_, err := s.Lookup(ctx, "kyoto")
		assert.ErrorIs(t, err, errNoPhotoKey)
	})

	t.Run("lookup all", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		s := newTestServer(t, nil, fakeUnsplash(t, &hits).URL).photos

		got, err := s.LookupAll(ctx, []string{"a", "b", "none"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"a":    "https://img.test/a.jpg",
			"b":    "https://img.test/b.jpg",
			"none": "",
		}, got)

		_, err = s.LookupAll(ctx, []string{"a", "broken"})
		assert.Error(t, err)
	})
}

func TestPhotoHandlers(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	r := newTestServer(t, nil, fakeUnsplash(t, &hits).URL).router()

	w := doJSON(t, r, http.MethodGet, "/api/photos?query=nanjing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://img.test/nanjing.jpg"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/photos", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/photos?query=broken", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	created := decode[TravelPlan](t, doJSON(t, r, http.MethodPost, "/api/plans", gin.H{
		"content": "第1天\n上午：总统府\n下午：中山陵",
	}))
	w = doJSON(t, r, http.MethodGet, "/api/plans/"+created.ID+"/photos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"photos":{
		"总统府": "https://img.test/总统府.jpg",
		"中山陵": "https://img.test/中山陵.jpg"
	}}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/plans/missing/photos", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
