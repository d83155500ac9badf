package builder

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient using the official openai-go SDK with
// streaming chat completions. Setting a base URL points it at any
// OpenAI-compatible endpoint (DeepSeek, gateways, local servers).
type OpenAILLM struct {
	Model     string
	MaxTokens int
	Opts      []option.RequestOption
}

func NewOpenAILLM(cfg LLMSettings) (*OpenAILLM, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm api key missing; set LLM_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{Model: cfg.Model, MaxTokens: cfg.MaxTokens, Opts: opts}, nil
}

func (o *OpenAILLM) Stream(ctx context.Context, prompt Prompt, emit func(string) error) error {
	client := openai.NewClient(o.Opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	}
	if o.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(o.MaxTokens))
	}

	stream := client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			if err := emit(delta); err != nil {
				return err
			}
		}
	}
	return stream.Err()
}
