// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			body = []byte("Hello, World!")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})

	tests := []struct {
		name           string
		acceptEncoding string
		requestBody    []byte
		compressBody   bool
		wantStatus     int
		wantBody       string
		wantGzipped    bool
	}{
		{"compress response when client accepts gzip", "gzip", nil, false, http.StatusOK, "Hello, World!", true},
		{"no compression without accept-encoding", "", nil, false, http.StatusOK, "Hello, World!", false},
		{"gzip among several encodings", "deflate, gzip, br", nil, false, http.StatusOK, "Hello, World!", true},
		{"gzip request body is decoded", "", []byte(`{"name":"Soup"}`), true, http.StatusOK, `{"name":"Soup"}`, false},
		{"gzip both ways", "gzip", []byte("round trip"), true, http.StatusOK, "round trip", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.requestBody
			if tt.compressBody {
				body = gzipBytes(t, body)
			}
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(body))
			if tt.compressBody {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestGZip_ImplicitStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("recipe ", 100)))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Less(t, rr.Body.Len(), 700)
	assert.Equal(t, strings.Repeat("recipe ", 100), gunzip(t, rr.Body.Bytes()))
}

func TestGZip_NoBodyStatusesAreNotEncoded(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusFound, http.StatusNotModified} {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, status, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Query().Get("n")))
	})
	middleware := withGZip(next)

	const n = 30
	done := make(chan bool, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			want := strings.Repeat("x", i+1)
			req := httptest.NewRequest(http.MethodGet, "/test?n="+want, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if err != nil {
				done <- false
				return
			}
			got, _ := io.ReadAll(zr)
			done <- string(got) == want
		}(i)
	}
	for i := 0; i < n; i++ {
		assert.True(t, <-done)
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("test"), OnClose: func() { closeCalled = true }}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}
