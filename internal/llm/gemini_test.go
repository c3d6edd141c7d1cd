package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city":    map[string]any{"type": "string"},
			"salary":  map[string]any{"type": "integer"},
			"outlook": map[string]any{"type": "string", "enum": []any{"up", "flat", "down"}},
			"levels": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"city", "salary"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["city"].Type != "STRING" {
		t.Fatalf("expected STRING for city, got %s", schema.Properties["city"].Type)
	}
	if schema.Properties["salary"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for salary, got %s", schema.Properties["salary"].Type)
	}
	if len(schema.Properties["outlook"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["outlook"].Enum))
	}
	if schema.Properties["levels"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for levels, got %s", schema.Properties["levels"].Type)
	}
	if schema.Properties["levels"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for levels items, got %s", schema.Properties["levels"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_NumericBounds(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{"type": "number", "minimum": 0, "maximum": 100.0},
			"free":  map[string]any{"type": "number"},
		},
	}

	schema := buildGeminiSchema(def)

	level := schema.Properties["level"]
	if level.Minimum == nil || *level.Minimum != 0 {
		t.Fatalf("expected minimum 0, got %v", level.Minimum)
	}
	if level.Maximum == nil || *level.Maximum != 100 {
		t.Fatalf("expected maximum 100, got %v", level.Maximum)
	}
	if schema.Properties["free"].Minimum != nil {
		t.Fatal("expected no minimum on unbounded property")
	}
}

func TestGeminiProvider_TextReply(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": "Study in short bursts."}},
					},
					"finishReason": "STOP",
				},
			},
			"usageMetadata": map[string]any{
				"promptTokenCount":     12,
				"candidatesTokenCount": 5,
				"totalTokenCount":      17,
			},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash",
		BaseURL: server.URL + "/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		System: "persona",
		Messages: []Message{
			{Role: RoleAssistant, Content: "Hi there!"},
			{Role: RoleUser, Content: "How do I focus?"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Study in short bursts." {
		t.Fatalf("unexpected text %q", resp.Text())
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 5 {
		t.Fatalf("unexpected usage %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	contents := gotBody["contents"].([]any)
	if role := contents[0].(map[string]any)["role"]; role != "model" {
		t.Fatalf("expected greeting sent as model turn, got %v", role)
	}
}

func TestGeminiProvider_EmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": ""}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash",
		BaseURL: server.URL + "/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("free-text request: unexpected error: %v", err)
	}
	if resp.Text() != "" {
		t.Fatalf("expected empty text, got %q", resp.Text())
	}

	_, err = p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   levelSchema,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("schema request: expected ErrInvalidResponse, got %v", err)
	}
}
