// Package speech turns recorded audio into diary text through the
// backend's speech-to-text endpoint. Audio capture itself is outside
// this module; a Source hands over finished segments.
//
// Recognition sources tend to end on their own (silence timeouts), so
// the supervisor restarts them until the user explicitly stops. The
// stop flag is what separates a deliberate end from a dropped session.
package speech

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"
)

// ErrDone tells the supervisor a source is permanently exhausted (a
// finite recording, as opposed to a live session that merely ended and
// should be restarted).
var ErrDone = errors.New("speech: source finished")

// Event is one recognition result. Interim events carry a provisional
// transcript that a later final event supersedes.
type Event struct {
	Final      bool
	Transcript string
}

// Segment is one chunk of recorded audio.
type Segment struct {
	Audio io.Reader
	Final bool
}

// Source produces audio segments. Next blocks until a segment is
// available and returns io.EOF when the capture session ends; the
// supervisor then starts a fresh session by calling Next again. A
// source that can never produce again returns ErrDone instead.
type Source interface {
	Next(ctx context.Context) (Segment, error)
}

// Transcriber converts one audio segment to text. Satisfied by
// *apiclient.Client.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Supervisor pumps segments from a source through the transcriber and
// emits recognition events until stopped.
type Supervisor struct {
	source Source
	stt    Transcriber
	logger *zap.Logger
	events chan Event

	mu            sync.Mutex
	stopRequested bool
	cancel        context.CancelFunc
}

func NewSupervisor(source Source, stt Transcriber, logger *zap.Logger) *Supervisor {
	return &Supervisor{
		source: source,
		stt:    stt,
		logger: logger,
		events: make(chan Event),
	}
}

// Start launches the recognition loop. The returned channel closes when
// the loop ends, either through Stop or a hard source failure.
func (s *Supervisor) Start(ctx context.Context) <-chan Event {
	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	go s.run(runCtx)
	return s.events
}

// Stop ends recognition. Idempotent; a source end after Stop is final
// instead of triggering a restart.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	s.stopRequested = true
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Supervisor) stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopRequested
}

func (s *Supervisor) run(ctx context.Context) {
	defer close(s.events)

	for {
		if s.stopped() {
			return
		}

		segment, err := s.source.Next(ctx)
		if errors.Is(err, ErrDone) {
			return
		}
		if errors.Is(err, io.EOF) {
			if s.stopped() {
				return
			}
			s.logger.Debug("Recognition source ended, restarting")
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// A hard capture failure ends the session; the closed
			// channel tells the caller recognition is over.
			s.logger.Error("Failed to read audio segment", zap.Error(err))
			return
		}

		text, err := s.stt.Transcribe(ctx, "segment.wav", segment.Audio)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("Speech-to-text request failed", zap.Error(err))
			continue
		}
		if text == "" {
			continue
		}

		select {
		case s.events <- Event{Final: segment.Final, Transcript: text}:
		case <-ctx.Done():
			return
		}
	}
}
