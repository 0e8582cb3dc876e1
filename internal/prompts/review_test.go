package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	if result == nil || len(result.Messages) == 0 {
		t.Fatal("prompt result has no messages")
	}
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("message content is %T, want TextContent", result.Messages[0].Content)
	}
	return tc.Text
}

func TestReviewPrompt_Definition(t *testing.T) {
	def := NewReviewPrompt().Definition()
	if def.Name != "story-review" {
		t.Errorf("prompt name = %q, want story-review", def.Name)
	}
}

func TestReviewPrompt_EmbedsStory(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{
		"story": "As a user, I want exports so that I can archive data",
	}

	result, err := NewReviewPrompt().Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := promptText(t, result)
	if !strings.Contains(text, "As a user, I want exports") {
		t.Errorf("prompt text should embed the story:\n%s", text)
	}
	if !strings.Contains(text, "story_analyze") {
		t.Error("prompt text should direct the AI to story_analyze")
	}
	if result.Messages[0].Role != mcp.RoleUser {
		t.Errorf("message role = %q, want user", result.Messages[0].Role)
	}
}

func TestReviewPrompt_MissingStoryUsesPlaceholder(t *testing.T) {
	result, err := NewReviewPrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(promptText(t, result), "ask the user to paste the story") {
		t.Error("prompt text should fall back to the placeholder")
	}
}
