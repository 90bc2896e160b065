package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recording struct {
	states []State
	result *Result
}

func doRecorded(t *testing.T, f Factory, req *Request) *recording {
	t.Helper()

	rec := &recording{}
	f().Do(req, func(state State, result *Result) {
		rec.states = append(rec.states, state)
		if result != nil {
			rec.result = result
		}
	})
	return rec
}

func TestClient_StateSequence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`ok`))
	}))
	defer server.Close()

	rec := doRecorded(t, New(), &Request{Method: "GET", URL: server.URL})

	assert.Equal(t, []State{Opened, HeadersReceived, Loading, Done}, rec.states)
	require.NotNil(t, rec.result)
	assert.Equal(t, 200, rec.result.Status)
	assert.Equal(t, "ok", rec.result.Body)
	assert.NoError(t, rec.result.Err)
}

func TestClient_SendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	header := make(http.Header)
	header.Set("X-Requested-With", "XMLHttpRequest")
	rec := doRecorded(t, New(), &Request{Method: "GET", URL: server.URL, Header: header})

	require.NotNil(t, rec.result)
	assert.Equal(t, 200, rec.result.Status)
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	rec := doRecorded(t, New(), &Request{Method: "GET", URL: url})

	assert.Equal(t, []State{Opened, Done}, rec.states)
	require.NotNil(t, rec.result)
	assert.Equal(t, 0, rec.result.Status)
	assert.Empty(t, rec.result.Body)
	assert.Error(t, rec.result.Err)
}

func TestClient_InvalidURL(t *testing.T) {
	rec := doRecorded(t, New(), &Request{Method: "GET", URL: "://missing-scheme"})

	// The request cannot even be built, so Done is the only notification.
	assert.Equal(t, []State{Done}, rec.states)
	require.NotNil(t, rec.result)
	assert.Equal(t, 0, rec.result.Status)
	assert.Error(t, rec.result.Err)
}

func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`missing`))
	}))
	defer server.Close()

	rec := doRecorded(t, New(), &Request{Method: "GET", URL: server.URL})

	require.NotNil(t, rec.result)
	assert.Equal(t, 404, rec.result.Status)
	assert.Equal(t, "missing", rec.result.Body)
	assert.NoError(t, rec.result.Err)
}

func TestClient_WithCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err != nil {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
			_, _ = w.Write([]byte(`anon`))
			return
		}
		_, _ = w.Write([]byte(`known`))
	}))
	defer server.Close()

	factory := New()

	first := doRecorded(t, factory, &Request{Method: "GET", URL: server.URL, WithCredentials: true})
	require.NotNil(t, first.result)
	assert.Equal(t, "anon", first.result.Body)

	// The jar kept the cookie, so the second credentialed exchange is
	// recognized.
	second := doRecorded(t, factory, &Request{Method: "GET", URL: server.URL, WithCredentials: true})
	require.NotNil(t, second.result)
	assert.Equal(t, "known", second.result.Body)

	plain := doRecorded(t, factory, &Request{Method: "GET", URL: server.URL})
	require.NotNil(t, plain.result)
	assert.Equal(t, "anon", plain.result.Body)
}

func TestClient_UploadProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "hello world", string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var sent []int64
	var totals []int64
	payload := "hello world"
	rec := doRecorded(t, New(), &Request{
		Method:        "POST",
		URL:           server.URL,
		Body:          strings.NewReader(payload),
		ContentLength: int64(len(payload)),
		Progress: func(s, total int64) {
			sent = append(sent, s)
			totals = append(totals, total)
		},
	})

	require.NotNil(t, rec.result)
	assert.Equal(t, 200, rec.result.Status)

	require.NotEmpty(t, sent)
	assert.Equal(t, int64(len(payload)), sent[len(sent)-1])
	for i := 1; i < len(sent); i++ {
		assert.LessOrEqual(t, sent[i-1], sent[i])
	}
	for _, total := range totals {
		assert.Equal(t, int64(len(payload)), total)
	}
}

func TestClient_WithHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	noFollow := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	rec := doRecorded(t, New(WithHTTPClient(noFollow)), &Request{Method: "GET", URL: server.URL})

	require.NotNil(t, rec.result)
	assert.Equal(t, 302, rec.result.Status)
}
