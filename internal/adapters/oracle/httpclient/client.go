package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

// Client talks to the translation/nutrition oracle over its JSON batch API.
type Client struct {
	BaseURL string
	APIKey  string
	http    *resty.Client
}

func New(baseURL, apiKey string) *Client {
	c := resty.New().SetTimeout(60 * time.Second)
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, http: c}
}

type translateBody struct {
	Direction string                     `json:"direction"`
	Items     []ports.TranslationRequest `json:"items"`
}

type translateResponse struct {
	Items []ports.TranslationResult `json:"items"`
}

func (c *Client) Translate(ctx context.Context, dir ports.Direction, reqs []ports.TranslationRequest) ([]ports.TranslationResult, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	var resp translateResponse
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(translateBody{Direction: string(dir), Items: reqs}).
		SetResult(&resp).
		Post(c.BaseURL + "/v1/translate")
	if err != nil {
		return nil, err
	}
	if r.StatusCode() == http.StatusTooManyRequests {
		return nil, ports.ErrRateLimited
	}
	if r.IsError() {
		return nil, fmt.Errorf("oracle translate: %s; body: %s", r.Status(), r.String())
	}
	return resp.Items, nil
}

type nutritionBody struct {
	Items []ports.NutritionRequest `json:"items"`
}

type nutritionResponse struct {
	Items []ports.NutritionResult `json:"items"`
}

func (c *Client) Estimate(ctx context.Context, reqs []ports.NutritionRequest) ([]ports.NutritionResult, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	var resp nutritionResponse
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(nutritionBody{Items: reqs}).
		SetResult(&resp).
		Post(c.BaseURL + "/v1/nutrition")
	if err != nil {
		return nil, err
	}
	if r.StatusCode() == http.StatusTooManyRequests {
		return nil, ports.ErrRateLimited
	}
	if r.IsError() {
		return nil, fmt.Errorf("oracle nutrition: %s; body: %s", r.Status(), r.String())
	}
	return resp.Items, nil
}
