package speech

import (
	"context"
	"sync"
)

// BufferedRecognizer collects audio chunks between Start and Stop, then runs
// a single transcription and emits the final result.
type BufferedRecognizer struct {
	transcriber Transcriber

	mu      sync.Mutex
	started bool
	stopped bool
	ctx     context.Context
	lang    string
	audio   []byte
	results chan Result
	lastErr error
}

func NewBufferedRecognizer(t Transcriber) *BufferedRecognizer {
	return &BufferedRecognizer{
		transcriber: t,
		results:     make(chan Result, 1),
	}
}

func (r *BufferedRecognizer) Start(ctx context.Context, lang string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return nil
	}
	if r.stopped {
		return newError(CodeAborted, "recognizer already finished")
	}
	r.started = true
	r.ctx = ctx
	r.lang = lang
	return nil
}

func (r *BufferedRecognizer) Write(chunk []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started || r.stopped {
		return newError(CodeAudioCapture, "recognizer is not recording")
	}
	r.audio = append(r.audio, chunk...)
	return nil
}

// Stop finishes the recording and transcribes it. The result, or nothing on
// failure, arrives on Results; the transcription error is returned here.
func (r *BufferedRecognizer) Stop() error {
	r.mu.Lock()
	if !r.started || r.stopped {
		err := r.lastErr
		r.mu.Unlock()
		return err
	}
	r.stopped = true
	ctx, lang, audio := r.ctx, r.lang, r.audio
	r.mu.Unlock()

	defer close(r.results)

	text, err := r.transcriber.Transcribe(ctx, audio, lang)
	if err != nil {
		r.mu.Lock()
		r.lastErr = err
		r.mu.Unlock()
		return err
	}
	r.results <- Result{Transcript: text, Final: true}
	return nil
}

func (r *BufferedRecognizer) Results() <-chan Result {
	return r.results
}
