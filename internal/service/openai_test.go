package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dinushadev/real-estate-agent-sg/internal/config"
)

func TestChatCompletionStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{
			`data: {"choices":[{"delta":{"role":"assistant","content":"🏠 SELECTED"}}]}`,
			`data: {"choices":[{"delta":{"content":" PROPERTIES"}}]}`,
			`data: {"choices":[{"delta":{},"finish_reason":"stop"}]}`,
			`data: [DONE]`,
		}
		for _, chunk := range chunks {
			w.Write([]byte(chunk + "\n\n"))
		}
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIClient(&config.OpenAIConfig{
		APIKey:    "test-key",
		APIBase:   server.URL,
		ChatModel: "gpt-4o",
		Timeout:   5,
		Enabled:   true,
	})

	var content strings.Builder
	err := client.ChatCompletionStream(context.Background(), ChatCompletionRequest{
		Messages: []ChatMessage{{Role: "user", Content: "analyze"}},
	}, func(chunk *StreamChunk) error {
		content.WriteString(chunk.Content)
		return nil
	})
	if err != nil {
		t.Fatalf("ChatCompletionStream() error = %v", err)
	}

	if content.String() != "🏠 SELECTED PROPERTIES" {
		t.Errorf("Accumulated content = %q", content.String())
	}
}

func TestNVIDIAStreamChunkParser_Reasoning(t *testing.T) {
	parser := &NVIDIAStreamChunkParser{}

	chunk, err := parser.ParseChunk([]byte(`{"choices":[{"delta":{"reasoning_content":"comparing prices","content":""}}]}`))
	if err != nil {
		t.Fatalf("ParseChunk() error = %v", err)
	}
	if chunk.ThinkingContent != "comparing prices" {
		t.Errorf("ThinkingContent = %q, want reasoning text", chunk.ThinkingContent)
	}
	if chunk.Done {
		t.Error("Chunk without finish_reason should not be done")
	}
}

func TestOpenAIStreamChunkParser_Done(t *testing.T) {
	parser := &OpenAIStreamChunkParser{}

	chunk, err := parser.ParseChunk([]byte(`{"choices":[{"delta":{},"finish_reason":"stop"}]}`))
	if err != nil {
		t.Fatalf("ParseChunk() error = %v", err)
	}
	if !chunk.Done {
		t.Error("Chunk with finish_reason should be done")
	}
}

func TestChatCompletion_Disabled(t *testing.T) {
	client := NewOpenAIClient(&config.OpenAIConfig{Enabled: false})

	_, err := client.ChatCompletion(context.Background(), ChatCompletionRequest{
		Messages: []ChatMessage{{Role: "user", Content: "analyze"}},
	})
	if err == nil {
		t.Fatal("Expected an error when the client is disabled")
	}
	if !strings.Contains(err.Error(), "not enabled") {
		t.Errorf("Expected a missing-key error, got %v", err)
	}
}

func TestProviderDetection(t *testing.T) {
	if !IsNVIDIAProvider("https://integrate.api.nvidia.com/v1") {
		t.Error("NVIDIA base URL not detected")
	}
	if IsNVIDIAProvider("https://api.openai.com/v1") {
		t.Error("OpenAI base URL misdetected as NVIDIA")
	}
	if !IsOpenAIProvider("https://api.openai.com/v1") {
		t.Error("OpenAI base URL not detected")
	}
}
