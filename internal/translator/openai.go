package translator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIOptions configures the chat-completions translator
type OpenAIOptions struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string        // empty means the public API
	Prompt      string        // Handlebars template, see Prompt
	Timeout     time.Duration // per call, zero means none
	HTTPClient  *http.Client
}

// OpenAI translates pages through an OpenAI-compatible chat-completions endpoint.
// Every page is sent as a single user message.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	prompt      *Prompt
	timeout     time.Duration
}

// NewOpenAI creates a translator from opts
func NewOpenAI(opts OpenAIOptions) (*OpenAI, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if opts.Model == "" {
		opts.Model = openai.GPT3Dot5Turbo
	}

	prompt, err := NewPrompt(opts.Prompt)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: opts.Temperature,
		prompt:      prompt,
		timeout:     opts.Timeout,
	}, nil
}

// Translate implements Translator. The first choice is returned verbatim.
func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	content, err := o.prompt.Render(text)
	if err != nil {
		return "", &TranslationError{Model: o.model, Err: err}
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: o.temperature,
	})
	if err != nil {
		return "", &TranslationError{Model: o.model, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &TranslationError{Model: o.model, Err: ErrNoChoices}
	}
	return resp.Choices[0].Message.Content, nil
}
