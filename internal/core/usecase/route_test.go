package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/laukik86/chatmate/internal/core/domain"
)

type routeCompleterFake struct {
	prompt domain.Prompt
	reply  string
	err    error
}

func (f *routeCompleterFake) Complete(_ context.Context, prompt domain.Prompt) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRouteDecisions(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  domain.Route
	}{
		{name: "sql tool", reply: `{"tool": "sql"}`, want: domain.RouteSQL},
		{name: "vector tool", reply: `{"tool": "vector"}`, want: domain.RouteVector},
		{name: "unknown tool falls back to vector", reply: `{"tool": "graph"}`, want: domain.RouteVector},
		{name: "malformed json falls back to vector", reply: `sql`, want: domain.RouteVector},
		{name: "empty object falls back to vector", reply: `{}`, want: domain.RouteVector},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewRouterUseCase(&routeCompleterFake{reply: tc.reply})
			got, err := uc.Route(context.Background(), "q")
			if err != nil {
				t.Fatalf("Route() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("Route() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouteRequestsJSONObject(t *testing.T) {
	completer := &routeCompleterFake{reply: `{"tool": "vector"}`}
	uc := NewRouterUseCase(completer)

	if _, err := uc.Route(context.Background(), "q"); err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if !completer.prompt.JSONObject {
		t.Fatal("expected JSON object response format")
	}
	if completer.prompt.Temperature != 0 {
		t.Fatalf("expected temperature 0, got %v", completer.prompt.Temperature)
	}
}

func TestRouteTransportErrorPropagates(t *testing.T) {
	uc := NewRouterUseCase(&routeCompleterFake{err: errors.New("timeout")})
	_, err := uc.Route(context.Background(), "q")
	if err == nil {
		t.Fatal("expected error")
	}
}
