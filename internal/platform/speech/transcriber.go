package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// HTTPTranscriber talks to a Whisper-style transcription service over
// multipart POST.
type HTTPTranscriber struct {
	serviceURL string
	httpClient *http.Client
}

func NewHTTPTranscriber(serviceURL string) *HTTPTranscriber {
	return &HTTPTranscriber{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type transcribeResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (c *HTTPTranscriber) Transcribe(ctx context.Context, audio []byte, lang string) (string, error) {
	if c.serviceURL == "" {
		return "", newError(CodeUnsupported, "no transcription service configured")
	}
	if len(audio) == 0 {
		return "", newError(CodeAudioCapture, "empty audio payload")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", newError(CodeAudioCapture, "build upload: %v", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", newError(CodeAudioCapture, "build upload: %v", err)
	}
	if lang != "" {
		if err := writer.WriteField("language", lang); err != nil {
			return "", newError(CodeAudioCapture, "build upload: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", newError(CodeAudioCapture, "build upload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.serviceURL, body)
	if err != nil {
		return "", newError(CodeNetwork, "build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", newError(CodeAborted, "recognition cancelled")
		}
		return "", newError(CodeNetwork, "call transcription service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", statusError(resp.StatusCode, string(respBody))
	}

	var result transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", newError(CodeNetwork, "decode response: %v", err)
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return "", newError(CodeNoSpeech, "no speech detected")
	}
	return text, nil
}

func statusError(status int, body string) *Error {
	switch {
	case status == http.StatusBadRequest:
		return newError(CodeAudioCapture, "service rejected audio: %s", body)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return newError(CodeNotAllowed, "service rejected caller: %s", body)
	default:
		return newError(CodeNetwork, "service error %d: %s", status, body)
	}
}
