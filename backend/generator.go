package main

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// PlanGenerator 產生行程文字的大模型
type PlanGenerator interface {
	// Stream 逐段回傳內容；onChunk 回傳錯誤時停止
	Stream(ctx context.Context, prompt string, onChunk func(string) error) error
	// Refine 帶著歷史對話送出一則新訊息，回傳完整回覆
	Refine(ctx context.Context, history []ChatPart, message string) (string, error)
}

const systemInstruction = "你是一个专业的旅行规划师，回答使用简体中文，并严格遵守用户要求的行程格式。"

var _ PlanGenerator = (*geminiGenerator)(nil)

type geminiGenerator struct {
	client *genai.Client
	cfg    Config
}

func newGeminiGenerator(ctx context.Context, cfg Config) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{client: client, cfg: cfg}, nil
}

func (g *geminiGenerator) model() *genai.GenerativeModel {
	model := g.client.GenerativeModel(g.cfg.GeminiModel)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)
	model.SetTemperature(g.cfg.Temperature)
	model.SetTopP(g.cfg.TopP)
	return model
}

func (g *geminiGenerator) Stream(ctx context.Context, prompt string, onChunk func(string) error) error {
	iter := g.model().GenerateContentStream(ctx, genai.Text(prompt))
	for {
		res, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}
		if text := responseText(res); text != "" {
			if err := onChunk(text); err != nil {
				return err
			}
		}
	}
}

func (g *geminiGenerator) Refine(ctx context.Context, history []ChatPart, message string) (string, error) {
	cs := g.model().StartChat()

	var chatHistory []*genai.Content
	for _, h := range history {
		role := "user"
		if h.Role == "model" || h.Role == "assistant" {
			role = "model"
		}
		chatHistory = append(chatHistory, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(h.Text)},
		})
	}
	cs.History = chatHistory

	res, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}
	return responseText(res), nil
}

func (g *geminiGenerator) Close() error {
	return g.client.Close()
}

func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
