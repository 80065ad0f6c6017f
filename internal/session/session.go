package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scanfolio/cv-scanner/internal/extract"
)

// State is the capture-session lifecycle position.
type State string

const (
	StateCapture    State = "capture"
	StateProcessing State = "processing"
	StateReview     State = "review"
	StateConfirmed  State = "confirmed"
	StateDiscarded  State = "discarded"
)

// ReviewStep selects which slice of the shared draft the review screen
// shows. Steps are view selectors only: edits made in any step are
// immediately visible in all others.
type ReviewStep string

const (
	StepPersonal   ReviewStep = "personal"
	StepExperience ReviewStep = "experience"
	StepSkills     ReviewStep = "skills"
	StepSummary    ReviewStep = "summary"
)

var reviewOrder = []ReviewStep{StepPersonal, StepExperience, StepSkills, StepSummary}

// ErrBadState is returned when an operation is attempted outside the
// state that permits it.
var ErrBadState = errors.New("operation not allowed in current state")

// CVStore is the external persistence collaborator. The session's only
// obligation is to hand over the confirmed candidate.
type CVStore interface {
	Create(ctx context.Context, candidate *extract.Candidate) (uuid.UUID, error)
}

// Session drives one capture attempt:
// capture → processing → review(step...) → confirmed | discarded.
// The whole pipeline runs to completion (or failure) before any edit is
// accepted, so extraction and manual correction never race. A Session is
// not safe for concurrent use; it models a single user flow.
type Session struct {
	logger     *slog.Logger
	source     ImageSource
	recognizer extract.TextRecognizer
	store      CVStore

	state    State
	step     ReviewStep
	acquired bool

	// original is the immutable extraction result; draft is the review
	// copy the user edits. Keeping both allows reset without re-scanning.
	original *extract.Candidate
	draft    *extract.Candidate
}

// New opens a session in the capture state and claims the image source.
func New(source ImageSource, recognizer extract.TextRecognizer, store CVStore, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		logger:     logger,
		source:     source,
		recognizer: recognizer,
		store:      store,
		state:      StateCapture,
	}
	if err := s.acquireSource(); err != nil {
		s.state = StateDiscarded
		return nil, err
	}
	return s, nil
}

func (s *Session) State() State     { return s.state }
func (s *Session) Step() ReviewStep { return s.step }

func (s *Session) acquireSource() error {
	if s.acquired {
		return nil
	}
	if err := s.source.Acquire(); err != nil {
		return err
	}
	s.acquired = true
	return nil
}

func (s *Session) releaseSource() {
	if !s.acquired {
		return
	}
	s.source.Release()
	s.acquired = false
}

// Capture takes the image, runs recognition and structuring, and moves to
// review on success. Any failure returns the session to capture with a
// retryable error; no partial candidate is ever surfaced.
func (s *Session) Capture(ctx context.Context, onProgress extract.ProgressFunc) error {
	if s.state != StateCapture {
		return fmt.Errorf("%w: capture from %s", ErrBadState, s.state)
	}

	imagePath, err := s.source.Capture(ctx)
	if err != nil {
		s.logger.Warn("image capture failed", "error", err)
		return err
	}
	// The source is held only while in capture.
	s.releaseSource()
	s.state = StateProcessing

	rec, err := s.recognizer.Recognize(ctx, imagePath, onProgress)
	if err != nil {
		s.logger.Warn("recognition failed, returning to capture", "error", err)
		s.backToCapture()
		return err
	}

	candidate := extract.Run(rec.Text)
	s.original = candidate
	s.draft = candidate.Clone()
	s.state = StateReview
	s.step = StepPersonal
	s.logger.Info("session.review.ready",
		"confidence", rec.Confidence,
		"skills", len(candidate.Skills),
		"experiences", len(candidate.Experiences),
	)
	return nil
}

// backToCapture re-arms the session after a recoverable failure.
func (s *Session) backToCapture() {
	s.original = nil
	s.draft = nil
	s.state = StateCapture
	if err := s.acquireSource(); err != nil {
		// Source gone as well; the caller's retry will surface it.
		s.logger.Warn("source re-acquire failed", "error", err)
	}
}

// Draft exposes the single shared mutable copy the review steps edit.
// Nil outside of review.
func (s *Session) Draft() *extract.Candidate {
	if s.state != StateReview {
		return nil
	}
	return s.draft
}

// ResetDraft discards review edits and restores the extraction result.
func (s *Session) ResetDraft() error {
	if s.state != StateReview {
		return fmt.Errorf("%w: reset from %s", ErrBadState, s.state)
	}
	s.draft = s.original.Clone()
	return nil
}

// Goto jumps to any review step; navigation is non-linear.
func (s *Session) Goto(step ReviewStep) error {
	if s.state != StateReview {
		return fmt.Errorf("%w: goto from %s", ErrBadState, s.state)
	}
	for _, known := range reviewOrder {
		if step == known {
			s.step = step
			return nil
		}
	}
	return fmt.Errorf("unknown review step %q", step)
}

// Next advances one step, clamping at summary.
func (s *Session) Next() error {
	return s.move(1)
}

// Prev goes back one step, clamping at personal.
func (s *Session) Prev() error {
	return s.move(-1)
}

func (s *Session) move(delta int) error {
	if s.state != StateReview {
		return fmt.Errorf("%w: navigate from %s", ErrBadState, s.state)
	}
	for i, step := range reviewOrder {
		if step == s.step {
			next := i + delta
			if next < 0 {
				next = 0
			}
			if next >= len(reviewOrder) {
				next = len(reviewOrder) - 1
			}
			s.step = reviewOrder[next]
			return nil
		}
	}
	return fmt.Errorf("unknown review step %q", s.step)
}

// Confirm hands the edited candidate to the CV store. Only reachable
// from the summary step; terminal on success.
func (s *Session) Confirm(ctx context.Context) (uuid.UUID, error) {
	if s.state != StateReview || s.step != StepSummary {
		return uuid.Nil, fmt.Errorf("%w: confirm from %s/%s", ErrBadState, s.state, s.step)
	}
	id, err := s.store.Create(ctx, s.draft)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store candidate: %w", err)
	}
	s.state = StateConfirmed
	s.logger.Info("session.confirmed", "cv_id", id)
	return id, nil
}

// Discard cancels the session from any state, releasing the image source
// and all in-memory data. Terminal and idempotent.
func (s *Session) Discard() {
	if s.state == StateDiscarded {
		return
	}
	s.releaseSource()
	s.original = nil
	s.draft = nil
	s.state = StateDiscarded
	s.logger.Info("session.discarded")
}
