// Package summarization turns a verification context into a short
// natural-language briefing for the ranger dashboard using OpenAI. It is an
// optional enrichment: when no OPENAI_API_KEY is configured the context is
// served without a briefing.
package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-firewatch/verification"
)

const maxNearbyInPrompt = 5

// GenerateBriefing asks OpenAI for a 2-3 sentence assessment of the evidence
// behind one report.
func GenerateBriefing(ctx context.Context, client *openai.Client, vc *verification.Context) (string, error) {
	prompt := buildPrompt(vc)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that briefs forest rangers on fire report evidence concisely and without speculation.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // Lower temperature for a focused briefing
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(vc *verification.Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A citizen reported a possible forest fire at (%.4f, %.4f).\n", vc.Report.Lat, vc.Report.Long)
	if vc.Report.Description != "" {
		fmt.Fprintf(&b, "Reporter description: %s\n", vc.Report.Description)
	}
	fmt.Fprintf(&b, "ML image confidence: %.0f%%.\n", vc.Report.Confidence)
	fmt.Fprintf(&b, "Satellite hotspots within ~10km: %d.\n", len(vc.FIRMSPoints))

	nearby := len(vc.NearbyReports)
	fmt.Fprintf(&b, "Corroborating reports within ~5km: %d.\n", nearby)
	for i, r := range vc.NearbyReports {
		if i >= maxNearbyInPrompt {
			break
		}
		if r.Description != "" {
			fmt.Fprintf(&b, "- nearby report: %s\n", r.Description)
		}
	}

	if vc.Weather != nil {
		fmt.Fprintf(&b, "Weather: %d°C, humidity %d%%, wind %d km/h, fire risk %s.\n",
			vc.Weather.Temperature, vc.Weather.Humidity, vc.Weather.WindSpeed, vc.Weather.FireRisk)
	}
	fmt.Fprintf(&b, "Composite verification score: %d/100 (%s).\n", vc.Score.Total, vc.Recommendation)
	b.WriteString("\nWrite a 2-3 sentence briefing summarizing the strength of the evidence and what the ranger should check first.")

	return b.String()
}
