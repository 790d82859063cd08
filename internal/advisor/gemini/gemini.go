// Package gemini implements the Analyzer port against the Gemini API. The
// model is forced into JSON output with a response schema matching the
// dashboard contract, so the reply can be shape-checked and decoded directly.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"coverplan/internal/advisor"
	"coverplan/internal/core"
	"coverplan/internal/household"
	applog "coverplan/internal/log"
)

type Client struct {
	client *genai.Client
	model  string
	log    *applog.Logger
}

// resultSchema is the response contract sent with every request. Required
// fields here are what ParseResult later verifies; liquidityScore and
// premiumToIncomeRatio stay optional.
var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"healthScore":   {Type: genai.TypeNumber},
				"accidentScore": {Type: genai.TypeNumber},
				"lifeScore":     {Type: genai.TypeNumber},
				"wealthScore":   {Type: genai.TypeNumber},
				"liquidityScore": {
					Type:        genai.TypeNumber,
					Description: "流动性/预备金得分",
				},
				"totalPremium": {
					Type:        genai.TypeNumber,
					Description: "汇总后的年总保费 (CNY)",
				},
				"premiumToIncomeRatio": {Type: genai.TypeNumber},
				"gaps": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"healthScore", "accidentScore", "lifeScore", "wealthScore", "liquidityScore", "totalPremium", "gaps"},
		},
		"reportMarkdown": {Type: genai.TypeString},
	},
	Required: []string{"summary", "reportMarkdown"},
}

func New(ctx context.Context, apiKey, model string, logger *applog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}
	cli, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Client{
		client: cli,
		model:  model,
		log:    logger.WithComponent(applog.ComponentAdvisor),
	}, nil
}

func (c *Client) Analyze(ctx context.Context, snap household.Snapshot) (core.AnalysisResult, error) {
	prompt, err := advisor.BuildPrompt(snap)
	if err != nil {
		return core.AnalysisResult{}, fmt.Errorf("gemini: build prompt: %w", err)
	}

	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = resultSchema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return core.AnalysisResult{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	raw, err := firstText(resp)
	if err != nil {
		return core.AnalysisResult{}, err
	}
	c.log.DebugContext(ctx, "Gemini response received",
		applog.FieldModel, c.model,
		"response_bytes", len(raw),
	)
	return advisor.ParseResult([]byte(raw))
}

func (c *Client) Close() error {
	return c.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) (genai.Text, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini: %w: empty response", advisor.ErrMalformedResult)
}
