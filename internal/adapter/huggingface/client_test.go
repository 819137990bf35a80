package huggingface_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/adapter/huggingface"
	"portfolio/backend/internal/remote"
)

func TestClient_Generate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf-tok", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "HuggingFaceH4/zephyr-7b-beta", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "user", body.Messages[1].Role)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "He studied computer science."}},
			},
		})
	}))
	defer ts.Close()

	client := huggingface.NewClient("hf-tok", "HuggingFaceH4/zephyr-7b-beta")
	client.SetBaseURL(ts.URL)
	assert.Equal(t, "HuggingFaceH4/zephyr-7b-beta", client.Name())

	out, err := client.Generate(context.Background(), "persona", "what did he study")
	require.NoError(t, err)
	assert.Equal(t, "He studied computer science.", out)
}

func TestClient_Generate_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "model loading"}`))
	}))
	defer ts.Close()

	client := huggingface.NewClient("hf-tok", "m")
	client.SetBaseURL(ts.URL)

	_, err := client.Generate(context.Background(), "s", "u")
	var apiErr *remote.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "model loading")
}

func TestClient_Generate_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []any{}})
	}))
	defer ts.Close()

	client := huggingface.NewClient("hf-tok", "m")
	client.SetBaseURL(ts.URL)

	_, err := client.Generate(context.Background(), "s", "u")
	assert.ErrorIs(t, err, huggingface.ErrEmptyResponse)
}
