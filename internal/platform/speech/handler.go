package speech

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	transcriber Transcriber
}

func NewHandler(t Transcriber) *Handler {
	return &Handler{transcriber: t}
}

func (h *Handler) HandleTranscribe(w http.ResponseWriter, r *http.Request) {
	// Voice messages are short; 10MB is plenty.
	r.ParseMultipartForm(10 << 20)

	file, _, err := r.FormFile("audio")
	if err != nil {
		writeSpeechError(w, newError(CodeAudioCapture, "missing audio file"))
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		writeSpeechError(w, newError(CodeAudioCapture, "read audio file: %v", err))
		return
	}

	text, err := h.transcriber.Transcribe(r.Context(), buf.Bytes(), r.FormValue("language"))
	if err != nil {
		writeSpeechError(w, err)
		return
	}

	json.NewEncoder(w).Encode(Result{Transcript: text, Final: true})
}

func writeSpeechError(w http.ResponseWriter, err error) {
	var speechErr *Error
	if !errors.As(err, &speechErr) {
		speechErr = newError(CodeNetwork, "%v", err)
	}

	status := http.StatusInternalServerError
	switch speechErr.Code {
	case CodeNoSpeech, CodeAudioCapture:
		status = http.StatusBadRequest
	case CodeNotAllowed:
		status = http.StatusForbidden
	case CodeAborted:
		status = http.StatusRequestTimeout
	case CodeUnsupported:
		status = http.StatusNotImplemented
	case CodeNetwork:
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": speechErr.Message,
		"code":  string(speechErr.Code),
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/speech/transcribe", h.HandleTranscribe)
}
