package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// RouterUseCase classifies a standalone query into one of the two backends
// with a JSON-constrained generation call.
type RouterUseCase struct {
	generator ports.ChatCompleter
}

func NewRouterUseCase(generator ports.ChatCompleter) *RouterUseCase {
	return &RouterUseCase{generator: generator}
}

// Route returns exactly one of RouteSQL or RouteVector. A malformed or
// unrecognized structured payload falls back to the vector route: numeric
// questions degrade into the broader informational path instead of producing
// an empty SQL answer. Transport failures still propagate.
func (uc *RouterUseCase) Route(ctx context.Context, question string) (domain.Route, error) {
	raw, err := uc.generator.Complete(ctx, domain.Prompt{
		System:      routeSystemPrompt,
		User:        question,
		Temperature: 0,
		JSONObject:  true,
	})
	if err != nil {
		return "", fmt.Errorf("route query: %w", err)
	}

	var decision struct {
		Tool string `json:"tool"`
	}
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		slog.Warn("route_payload_malformed", "payload", raw, "error", err)
		return domain.RouteVector, nil
	}

	switch domain.Route(decision.Tool) {
	case domain.RouteSQL:
		return domain.RouteSQL, nil
	case domain.RouteVector:
		return domain.RouteVector, nil
	default:
		slog.Warn("route_tool_unrecognized", "tool", decision.Tool)
		return domain.RouteVector, nil
	}
}
