package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"commentsift/internal/models"
)

const (
	DefaultBatchSize = 20

	defaultModel        = "gpt-5-nano"
	reasoningEffort     = "minimal"
	maxCompletionTokens = 4096
)

// ChatCompleter is the slice of the OpenAI client the analyzer depends on.
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Analyzer extracts per-comment sentiment, issue, and topic signals by
// submitting comments to a structured completion in fixed-size batches.
type Analyzer struct {
	client ChatCompleter
	model  string
}

type Option func(*Analyzer)

func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

func New(client ChatCompleter, opts ...Option) *Analyzer {
	a := &Analyzer{
		client: client,
		model:  defaultModel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type Result struct {
	Analyses []models.CommentAnalysis `json:"analyses"`
	Stats    models.AnalysisStats     `json:"stats"`
}

// Analyze partitions comments into consecutive batches of at most batchSize,
// issues one structured completion per batch, and aggregates the records that
// come back. Batches whose payload is missing or malformed contribute zero
// records; a transport failure aborts the whole operation.
func (a *Analyzer) Analyze(ctx context.Context, comments []string, productContext string, batchSize int) (*Result, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	analyses := []models.CommentAnalysis{}
	for start := 0; start < len(comments); start += batchSize {
		end := start + batchSize
		if end > len(comments) {
			end = len(comments)
		}

		records, err := a.analyzeBatch(ctx, comments[start:end], start, productContext)
		if err != nil {
			return nil, fmt.Errorf("analyzing batch at offset %d: %w", start, err)
		}
		analyses = append(analyses, records...)
	}

	return &Result{
		Analyses: analyses,
		Stats:    computeStats(analyses),
	}, nil
}

func (a *Analyzer) analyzeBatch(ctx context.Context, batch []string, startIndex int, productContext string) ([]models.CommentAnalysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               a.model,
		Messages:            buildMessages(batch, productContext),
		Tools:               []openai.Tool{analysisTool},
		ToolChoice:          "required",
		ReasoningEffort:     reasoningEffort,
		MaxCompletionTokens: maxCompletionTokens,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		slog.Warn("[Analyzer] Completion returned no structured payload, batch contributes no records",
			slog.Int("start_index", startIndex),
			slog.Int("batch_size", len(batch)))
		return nil, nil
	}

	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	var payload models.BatchAnalysisPayload
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		slog.Warn("[Analyzer] Failed to unmarshal structured payload, batch contributes no records",
			slog.Int("start_index", startIndex),
			slog.String("error", err.Error()))
		return nil, nil
	}

	var records []models.CommentAnalysis
	for _, item := range payload.Analyses {
		if item.CommentIndex < 0 || item.CommentIndex >= len(batch) {
			slog.Warn("[Analyzer] comment_index out of range, dropping record",
				slog.Int("comment_index", item.CommentIndex),
				slog.Int("start_index", startIndex),
				slog.Int("batch_size", len(batch)))
			continue
		}
		if !item.ProductSentiment.Valid() {
			slog.Warn("[Analyzer] Unknown sentiment value, dropping record",
				slog.Int("comment_index", item.CommentIndex),
				slog.String("product_sentiment", string(item.ProductSentiment)))
			continue
		}

		records = append(records, models.CommentAnalysis{
			Comment:          batch[item.CommentIndex],
			OriginalIndex:    startIndex + item.CommentIndex,
			ProductSentiment: item.ProductSentiment,
			HasIssue:         item.HasIssue,
			IssueDescription: item.IssueDescription,
			Topic:            item.Topic,
		})
	}

	return records, nil
}

func computeStats(analyses []models.CommentAnalysis) models.AnalysisStats {
	stats := models.AnalysisStats{TotalAnalyzed: len(analyses)}

	topics := make(map[string]struct{}, len(analyses))
	for _, a := range analyses {
		switch a.ProductSentiment {
		case models.SentimentPositive:
			stats.SentimentBreakdown.Positive++
		case models.SentimentNegative:
			stats.SentimentBreakdown.Negative++
		case models.SentimentNeutral:
			stats.SentimentBreakdown.Neutral++
		case models.SentimentMixed:
			stats.SentimentBreakdown.Mixed++
		}
		if a.HasIssue {
			stats.IssuesFound++
		}
		topics[a.Topic] = struct{}{}
	}
	stats.UniqueTopics = len(topics)

	return stats
}
