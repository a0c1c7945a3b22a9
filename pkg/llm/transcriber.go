package llm

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/studentscope/pkg/config"
)

// Transcriber converts recorded audio into text with a speech-to-text model
type Transcriber struct {
	client *openai.Client
	config config.LLMConfig
}

// NewTranscriber creates a speech-to-text client
func NewTranscriber(cfg config.LLMConfig) *Transcriber {
	return &Transcriber{client: newClient(cfg), config: cfg}
}

// Transcribe sends audio to the transcription endpoint and returns the text.
// The file name only has to carry a recognizable audio extension.
func (t *Transcriber) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.config.Transcription.Model,
		Language: t.config.Transcription.Language,
		FilePath: fileName,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	return resp.Text, nil
}
