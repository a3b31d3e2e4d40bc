package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const stableDiffusionImageSize = "768x768"

// StableDiffusionProvider talks to a Stable Diffusion WebUI txt2img endpoint.
type StableDiffusionProvider struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewStableDiffusionProvider(apiURL, apiKey string) *StableDiffusionProvider {
	return &StableDiffusionProvider{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type txt2imgRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Steps          int    `json:"steps"`
	CfgScale       int    `json:"cfg_scale"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	SamplerIndex   string `json:"sampler_index"`
	Seed           int    `json:"seed"`
	BatchSize      int    `json:"batch_size"`
	NIter          int    `json:"n_iter"`
	SendImages     bool   `json:"send_images"`
	SaveImages     bool   `json:"save_images"`
}

type txt2imgResponse struct {
	Images []string `json:"images"`
}

func (p *StableDiffusionProvider) Generate(ctx context.Context, model, prompt string) (*ProviderResult, error) {
	body, err := json.Marshal(txt2imgRequest{
		Prompt:         prompt,
		NegativePrompt: "blurry, low quality",
		Steps:          24,
		CfgScale:       7,
		Width:          768,
		Height:         768,
		SamplerIndex:   "DPM++ 2M Karras",
		Seed:           -1,
		BatchSize:      1,
		NIter:          1,
		SendImages:     true,
		SaveImages:     false,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+"/sdapi/v1/txt2img", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(p.apiKey)))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, providerError(fmt.Sprintf("image provider unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providerError(fmt.Sprintf("image generation failed with status %d", resp.StatusCode))
	}

	var result txt2imgResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, providerError("image provider returned an unreadable response")
	}

	if len(result.Images) == 0 || result.Images[0] == "" {
		return nil, providerError("image generation failed")
	}

	return &ProviderResult{
		B64:  result.Images[0],
		Size: stableDiffusionImageSize,
	}, nil
}
