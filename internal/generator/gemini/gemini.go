package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Provider calls the Gemini generateContent REST endpoint.
type Provider struct {
	client *resty.Client
	model  string
	apiKey string
}

// New constructs a Gemini provider. timeout bounds each request; the product
// design itself imposes no cancellation beyond it.
func New(baseURL, model, apiKey string, timeout time.Duration) *Provider {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &Provider{client: c, model: model, apiKey: apiKey}
}

type genRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate issues a single generateContent request and returns the
// completion text. An empty completion is returned as-is; the caller decides
// on a fallback.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	var out genResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(genRequest{Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}}}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", p.model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return "", fmt.Errorf("gemini status %d", resp.StatusCode())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	text := ""
	for _, pt := range out.Candidates[0].Content.Parts {
		text += pt.Text
	}
	return text, nil
}

// HealthPing verifies the configured model is reachable.
func (p *Provider) HealthPing(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		Get(fmt.Sprintf("/v1beta/models/%s", p.model))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("gemini status %d", resp.StatusCode())
	}
	return nil
}
