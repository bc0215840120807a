package insights

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"optiroute/types"
)

// ErrParseFailure marks a completion response that came back without a
// usable first choice. Callers substitute the fixed fallback text instead
// of surfacing it.
var ErrParseFailure = errors.New("insights: completion response missing choices")

// FallbackText is returned whenever the completion call fails or parses
// empty. Endpoints relying on insights never fail because the model did.
const FallbackText = "AI insights are temporarily unavailable. The numeric projections above are computed locally and remain valid."

const briefingFallback = "Briefing unavailable; dispatch per the plan legs listed."

// Generator wraps the chat-completion client. A nil client degrades every
// call to the fallback text, which keeps the service usable without a key.
type Generator struct {
	client *openai.Client
	model  string
}

func NewGenerator(client *openai.Client, model string) *Generator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Generator{client: client, model: model}
}

// ForecastInsights requests a relief briefing for the scenario and returns
// the first choice's text. Any transport or shape failure yields
// FallbackText and a wrapped error for the log line; it never panics or
// propagates a hard failure.
func (g *Generator) ForecastInsights(ctx context.Context, req types.ForecastRequest) (string, error) {
	prompt := fmt.Sprintf(
		"A %s is projected to affect %s (population %d, severity %d/10) over the next %d days. "+
			"Infrastructure is at %.0f%% capacity and the weather is %s. "+
			"Give a concise operational briefing (3-4 sentences) for relief coordinators: priority resources, staging guidance, and the main risk to watch.",
		req.DisasterType, req.Location, req.Population, req.Severity,
		req.TimeframeDays, req.Infrastructure, req.Weather,
	)
	return g.complete(ctx, "You are an assistant that writes concise disaster-relief operational briefings.", prompt, FallbackText)
}

// TriageNote summarizes a finder result for dispatchers.
func (g *Generator) TriageNote(ctx context.Context, specialty string, results []types.HospitalWithDistance) (string, error) {
	var lines []string
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s: %.1f km away, %d beds free, occupancy %.1f%% (%s)",
			r.Name, r.DistanceKM, r.AvailableBeds, r.Occupancy, r.Band))
	}
	prompt := fmt.Sprintf(
		"A patient needs %s care. Candidate hospitals, nearest first:\n%s\n"+
			"Recommend where to route the patient and why, in 2 sentences.",
		specialty, strings.Join(lines, "\n"),
	)
	return g.complete(ctx, "You are an assistant that helps dispatchers route patients between hospitals.", prompt, FallbackText)
}

// PlanBriefings generates one dispatch briefing per warehouse concurrently.
// Each goroutine owns its map entry via the slot slice; failures fall back
// per warehouse without aborting the rest.
func (g *Generator) PlanBriefings(ctx context.Context, legsByWarehouse map[string][]types.PlanLeg) map[string]string {
	warehouses := make([]string, 0, len(legsByWarehouse))
	for id := range legsByWarehouse {
		warehouses = append(warehouses, id)
	}

	slots := make([]string, len(warehouses))
	var wg sync.WaitGroup
	for i, id := range warehouses {
		wg.Add(1)
		go func(slot int, warehouseID string) {
			defer wg.Done()

			legs := legsByWarehouse[warehouseID]
			var lines []string
			for _, leg := range legs {
				lines = append(lines, fmt.Sprintf("%.0f kg to %s (%.1f km)", leg.QuantityKG, leg.Region, leg.DistanceKM))
			}
			prompt := fmt.Sprintf(
				"Warehouse %s has the following food redistribution legs today:\n%s\n"+
					"Write a 2-sentence dispatch briefing for the warehouse team.",
				warehouseID, strings.Join(lines, "\n"),
			)

			text, err := g.complete(ctx, "You are an assistant that writes short dispatch briefings for food redistribution warehouses.", prompt, briefingFallback)
			if err != nil {
				log.Printf("Briefing for warehouse %s fell back: %v", warehouseID, err)
			}
			slots[slot] = text
		}(i, id)
	}
	wg.Wait()

	briefings := make(map[string]string, len(warehouses))
	for i, id := range warehouses {
		briefings[id] = slots[i]
	}
	return briefings
}

// complete runs one chat-completion round trip. No retry, no streaming.
func (g *Generator) complete(ctx context.Context, system, prompt, fallback string) (string, error) {
	if g.client == nil {
		return fallback, fmt.Errorf("insights: no completion client configured")
	}

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return fallback, fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fallback, ErrParseFailure
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
