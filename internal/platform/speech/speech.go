// Package speech turns recorded audio into text through an external
// transcription service. Failures are reduced to a small set of codes the
// UI can explain to the user.
package speech

import (
	"context"
	"fmt"
)

type ErrorCode string

const (
	// CodeNoSpeech means the audio contained nothing transcribable.
	CodeNoSpeech ErrorCode = "no-speech"
	// CodeAudioCapture means the audio payload was missing or unreadable.
	CodeAudioCapture ErrorCode = "audio-capture"
	// CodeNotAllowed means the service rejected the caller.
	CodeNotAllowed ErrorCode = "not-allowed"
	// CodeNetwork covers transport failures and service-side errors.
	CodeNetwork ErrorCode = "network"
	// CodeAborted means the caller cancelled the recognition.
	CodeAborted ErrorCode = "aborted"
	// CodeUnsupported means no transcription service is configured.
	CodeUnsupported ErrorCode = "unsupported"
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("speech recognition failed (%s): %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

type Result struct {
	Transcript string `json:"transcript"`
	Final      bool   `json:"final"`
}

// Recognizer accumulates audio and produces transcripts on Results.
// Start and Stop are idempotent; calling either twice is a no-op.
type Recognizer interface {
	Start(ctx context.Context, lang string) error
	Write(chunk []byte) error
	Stop() error
	Results() <-chan Result
}

// Transcriber is the blocking one-shot service call the recognizer is
// built on.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, lang string) (string, error)
}
