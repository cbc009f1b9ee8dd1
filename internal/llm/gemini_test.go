package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *GeminiClient {
	return &GeminiClient{
		client: resty.New().SetBaseURL(url),
		apiKey: "test-key",
		model:  "gemini-2.0-flash",
	}
}

func TestGeminiClient_Summarize(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "  a short summary\n"}}}},
			},
		})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Summarize("hello world")
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "hello world")
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "same language as the input")

	assert.Equal(t, "hello world", result.OriginalText)
	assert.Equal(t, "a short summary", result.Summary, "reply must be trimmed")
}

func TestGeminiClient_EmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Summarize("hello world")
	assert.ErrorIs(t, err, ErrEmptySummary)
}

func TestGeminiClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "API key not valid"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Summarize("hello world")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv.URL).Summarize("hello world")
	assert.Error(t, err)
}
