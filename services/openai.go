package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	openAIImageSize      = "1024x1024"
)

// OpenAIProvider calls the OpenAI image generation endpoint
// (dall-e-2, dall-e-3, gpt-image-1).
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: defaultOpenAIBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewOpenAIProviderWithBaseURL points the provider at a different endpoint.
// Used by tests to target an httptest server.
func NewOpenAIProviderWithBaseURL(apiKey, baseURL string) *OpenAIProvider {
	p := NewOpenAIProvider(apiKey)
	p.baseURL = baseURL
	return p
}

type openAIImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type openAIImageResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, model, prompt string) (*ProviderResult, error) {
	body, err := json.Marshal(openAIImageRequest{
		Model:  model,
		Prompt: prompt,
		Size:   openAIImageSize,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, providerError(fmt.Sprintf("image provider unreachable: %v", err))
	}
	defer resp.Body.Close()

	var result openAIImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, providerError("image provider returned an unreadable response")
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return nil, providerError(result.Error.Message)
		}
		return nil, providerError(fmt.Sprintf("image generation failed with status %d", resp.StatusCode))
	}

	if len(result.Data) == 0 || (result.Data[0].URL == "" && result.Data[0].B64JSON == "") {
		return nil, providerError("image generation failed")
	}

	return &ProviderResult{
		URL:  result.Data[0].URL,
		B64:  result.Data[0].B64JSON,
		Size: openAIImageSize,
	}, nil
}
