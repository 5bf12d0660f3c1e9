// Package ai implements the language capability provider on top of eino.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Manny2706/servicehire/internal/agent"
	"github.com/Manny2706/servicehire/internal/config"
)

const classifySystemPrompt = `You are an intent classification system.

Classify the user message into ONE of these intents:
{labels}

Return ONLY the intent name.`

// Service exposes Classify and Generate over a single Ark chat model. It
// satisfies agent.Provider.
type Service struct {
	chatModel     model.ChatModel
	classifyChain compose.Runnable[map[string]any, *schema.Message]
	generateChain compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the provider from configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return newService(ctx, chatModel)
}

func newService(ctx context.Context, chatModel model.ChatModel) (*Service, error) {
	classifyTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(classifySystemPrompt),
		schema.UserMessage("{message}"),
	)
	classifyChain := compose.NewChain[map[string]any, *schema.Message]()
	classifyChain.AppendChatTemplate(classifyTemplate)
	classifyChain.AppendChatModel(chatModel)

	classify, err := classifyChain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile classify chain: %w", err)
	}

	generateTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)
	generateChain := compose.NewChain[map[string]any, *schema.Message]()
	generateChain.AppendChatTemplate(generateTemplate)
	generateChain.AppendChatModel(chatModel)

	generate, err := generateChain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile generate chain: %w", err)
	}

	return &Service{
		chatModel:     chatModel,
		classifyChain: classify,
		generateChain: generate,
	}, nil
}

// Classify assigns the text one label from the supplied set. The result is
// lower-cased and trimmed but otherwise whatever the model produced; the
// caller validates it against the label set.
func (s *Service) Classify(ctx context.Context, text string, labels []agent.Label) (string, error) {
	msg, err := s.classifyChain.Invoke(ctx, map[string]any{
		"labels":  formatLabels(labels),
		"message": text,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run classify chain: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(msg.Content)), nil
}

// Generate produces free-form text for the given prompt.
func (s *Service) Generate(ctx context.Context, promptText string) (string, error) {
	msg, err := s.generateChain.Invoke(ctx, map[string]any{
		"prompt": promptText,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run generate chain: %w", err)
	}
	return strings.TrimSpace(msg.Content), nil
}

// formatLabels renders the label set as prompt bullet lines.
func formatLabels(labels []agent.Label) string {
	var builder strings.Builder
	for i, label := range labels {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("- ")
		builder.WriteString(label.Name)
		if label.Description != "" {
			builder.WriteString(" (")
			builder.WriteString(label.Description)
			builder.WriteString(")")
		}
	}
	return builder.String()
}
