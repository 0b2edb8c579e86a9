package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/internal/config"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/internal/utils"
	"github.com/MKhiriev/go-memo-keeper/models"
)

const (
	transcriptionsPath = "/v1/audio/transcriptions"
	chatCompletionPath = "/v1/chat/completions"

	formatJSON        = "json"
	formatVerboseJSON = "verbose_json"
)

type openAIProvider struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewOpenAIProvider builds a [ModelProvider] for any OpenAI-compatible API.
func NewOpenAIProvider(cfg config.LLM, logger *logger.Logger) (ModelProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: llm base url: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
		utils.WithBearerToken(cfg.APIKey),
	)

	return &openAIProvider{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

type transcriptionResponse struct {
	Text     string   `json:"text"`
	Language string   `json:"language"`
	Duration *float64 `json:"duration"`
}

func (p *openAIProvider) Transcribe(ctx context.Context, req SpeechRequest) (models.TranscriptionResult, error) {
	if p.apiKey == "" {
		return models.TranscriptionResult{}, fmt.Errorf("%w: llm api key", ErrNotConfigured)
	}

	filename := req.Filename
	if filename == "" {
		filename = "audio.webm"
	}

	form := map[string]string{"model": req.Model}
	if req.Language != "" {
		form["language"] = req.Language
	}
	if req.ResponseFormat != "" {
		form["response_format"] = req.ResponseFormat
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetMultipartFormData(form).
		SetMultipartField("file", filename, contentTypeOr(req.ContentType, "application/octet-stream"), bytes.NewReader(req.Audio)).
		Post(transcriptionsPath)
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("transcription request (%s): %w", req.Model, err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Err(err).Str("func", "openAIProvider.Transcribe").Str("model", req.Model).Msg("transcription rejected")
		return models.TranscriptionResult{}, fmt.Errorf("transcription (%s): %w", req.Model, err)
	}

	result := models.TranscriptionResult{Provider: req.Model, Language: req.Language}
	switch req.ResponseFormat {
	case "", formatJSON, formatVerboseJSON:
		var body transcriptionResponse
		if err = json.Unmarshal(resp.Body(), &body); err != nil {
			return models.TranscriptionResult{}, fmt.Errorf("%w: transcription (%s): %w", ErrDecodeResponse, req.Model, err)
		}
		result.Transcript = strings.TrimSpace(body.Text)
		result.DurationSeconds = body.Duration
		if body.Language != "" {
			result.Language = body.Language
		}
	default:
		result.Transcript = strings.TrimSpace(string(resp.Body()))
	}

	return result, nil
}

type wireContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *wireImageURL `json:"image_url,omitempty"`
}

type wireImageURL struct {
	URL string `json:"url"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type wireResponseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string              `json:"model"`
	Messages       []wireMessage       `json:"messages"`
	ResponseFormat *wireResponseFormat `json:"response_format,omitempty"`
	Temperature    *float64            `json:"temperature,omitempty"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *openAIProvider) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%w: llm api key", ErrNotConfigured)
	}

	body := chatCompletionRequest{
		Model:       req.Model,
		Messages:    toWireMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONResponse {
		body.ResponseFormat = &wireResponseFormat{Type: "json_object"}
	}

	var out chatCompletionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(chatCompletionPath)
	if err != nil {
		return "", fmt.Errorf("chat completion request (%s): %w", req.Model, err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Err(err).Str("func", "openAIProvider.Complete").Str("model", req.Model).Msg("chat completion rejected")
		return "", fmt.Errorf("chat completion (%s): %w", req.Model, err)
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyCompletion, req.Model)
	}
	return out.Choices[0].Message.Content, nil
}

func toWireMessages(msgs []ChatMessage) []wireMessage {
	out := make([]wireMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.ImageURL == "" {
			out = append(out, wireMessage{Role: m.Role, Content: m.Text})
			continue
		}
		parts := make([]wireContentPart, 0, 2)
		if m.Text != "" {
			parts = append(parts, wireContentPart{Type: "text", Text: m.Text})
		}
		parts = append(parts, wireContentPart{Type: "image_url", ImageURL: &wireImageURL{URL: m.ImageURL}})
		out = append(out, wireMessage{Role: m.Role, Content: parts})
	}
	return out
}

func contentTypeOr(contentType, fallback string) string {
	if strings.TrimSpace(contentType) == "" {
		return fallback
	}
	return contentType
}
