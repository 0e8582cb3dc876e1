// Package prompts implements the MCP prompt handlers for storylint.
//
// Prompts are user-triggered workflows (like slash commands): unlike tools,
// which the AI calls, prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the story-review MCP prompt. It guides the AI through
// analyzing a backlog item and acting on the verdicts.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("story-review",
		mcp.WithPromptDescription(
			"Review a user story and its acceptance criteria with storylint: "+
				"run the quality checks, explain the findings, and propose "+
				"the corrected versions.",
		),
		mcp.WithArgument("story",
			mcp.ArgumentDescription("The user story to review"),
		),
	)
}

// Handle processes the story-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	story := ""
	if args := req.Params.Arguments; args != nil {
		story = args["story"]
	}

	instructions := fmt.Sprintf(`Review this backlog item with storylint.

Story under review:
%s

Steps:
1. Call story_analyze with the story (and its acceptance criteria, if the
   user provided any).
2. Walk the user through each failing check: what the rule is, what it
   matched, and why it matters for this story.
3. For Critical findings (TBD / incomplete information), ask the user to
   supply the missing detail before anything else: incomplete artifacts are
   not rewritable.
4. Once the content is complete, call story_rewrite and criteria_rewrite and
   present the corrected versions side by side with the originals.
5. Re-run story_analyze on the corrected versions to confirm they pass.`,
		storyOrPlaceholder(story))

	return &mcp.GetPromptResult{
		Description: "Review a user story with storylint",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(instructions),
			},
		},
	}, nil
}

func storyOrPlaceholder(story string) string {
	if story == "" {
		return "(ask the user to paste the story)"
	}
	return story
}
