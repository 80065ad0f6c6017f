package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanfolio/cv-scanner/internal/common"
	"github.com/scanfolio/cv-scanner/internal/extract"
)

// fakeSource counts acquire/release pairs to assert symmetry.
type fakeSource struct {
	acquires   int
	releases   int
	acquireErr error
}

func (f *fakeSource) Acquire() error {
	if f.acquireErr != nil {
		return f.acquireErr
	}
	f.acquires++
	return nil
}

func (f *fakeSource) Capture(context.Context) (string, error) { return "cv.jpg", nil }
func (f *fakeSource) Release()                                { f.releases++ }

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ string, onProgress extract.ProgressFunc) (extract.Recognition, error) {
	if onProgress != nil {
		onProgress(0)
		onProgress(100)
	}
	if f.err != nil {
		return extract.Recognition{}, f.err
	}
	return extract.Recognition{Text: f.text, Confidence: 0.8, Language: "fra+eng"}, nil
}

type fakeStore struct {
	created []*extract.Candidate
	err     error
}

func (f *fakeStore) Create(_ context.Context, c *extract.Candidate) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.created = append(f.created, c)
	return uuid.New(), nil
}

const goodText = "Jean Dupont\njean.dupont@mail.com\nCompétences\nReact, Python"

func newReviewSession(t *testing.T) (*Session, *fakeSource, *fakeStore) {
	t.Helper()
	src := &fakeSource{}
	store := &fakeStore{}
	s, err := New(src, &fakeRecognizer{text: goodText}, store, nil)
	require.NoError(t, err)
	require.NoError(t, s.Capture(context.Background(), nil))
	return s, src, store
}

func TestNewAcquiresSource(t *testing.T) {
	src := &fakeSource{}
	s, err := New(src, &fakeRecognizer{text: goodText}, &fakeStore{}, nil)

	require.NoError(t, err)
	assert.Equal(t, StateCapture, s.State())
	assert.Equal(t, 1, src.acquires)
}

func TestNewAcquireFailure(t *testing.T) {
	src := &fakeSource{acquireErr: fmt.Errorf("%w: busy", common.ErrAcquisition)}

	_, err := New(src, &fakeRecognizer{text: goodText}, &fakeStore{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAcquisition)
}

func TestCaptureMovesToReviewPersonal(t *testing.T) {
	s, src, _ := newReviewSession(t)

	assert.Equal(t, StateReview, s.State())
	assert.Equal(t, StepPersonal, s.Step())
	// source released once we leave capture
	assert.Equal(t, src.acquires, src.releases)

	draft := s.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, "jean.dupont@mail.com", draft.Fields.Email)
	assert.NotEmpty(t, draft.Experiences)
}

func TestCaptureProgressForwarded(t *testing.T) {
	src := &fakeSource{}
	s, err := New(src, &fakeRecognizer{text: goodText}, &fakeStore{}, nil)
	require.NoError(t, err)

	var seen []int
	require.NoError(t, s.Capture(context.Background(), func(pct int) { seen = append(seen, pct) }))
	assert.Equal(t, []int{0, 100}, seen)
}

func TestCaptureRecognitionFailureReturnsToCapture(t *testing.T) {
	src := &fakeSource{}
	rec := &fakeRecognizer{err: fmt.Errorf("%w: recognized text too short", common.ErrRecognition)}
	s, err := New(src, rec, &fakeStore{}, nil)
	require.NoError(t, err)

	err = s.Capture(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRecognition)
	assert.Equal(t, StateCapture, s.State())
	assert.Nil(t, s.Draft())
	// source was re-acquired for the retry
	assert.Equal(t, 2, src.acquires)
	assert.Equal(t, 1, src.releases)

	// the retry can succeed
	rec.err = nil
	rec.text = goodText
	require.NoError(t, s.Capture(context.Background(), nil))
	assert.Equal(t, StateReview, s.State())
}

func TestCaptureOnlyFromCaptureState(t *testing.T) {
	s, _, _ := newReviewSession(t)

	err := s.Capture(context.Background(), nil)

	assert.ErrorIs(t, err, ErrBadState)
}

func TestDraftNilOutsideReview(t *testing.T) {
	src := &fakeSource{}
	s, err := New(src, &fakeRecognizer{text: goodText}, &fakeStore{}, nil)
	require.NoError(t, err)

	assert.Nil(t, s.Draft())
}

func TestDraftSharedAcrossSteps(t *testing.T) {
	s, _, _ := newReviewSession(t)

	s.Draft().Fields.Headline = "Lead Developer"
	require.NoError(t, s.Goto(StepSkills))

	assert.Equal(t, "Lead Developer", s.Draft().Fields.Headline)
}

func TestResetDraftRestoresExtraction(t *testing.T) {
	s, _, _ := newReviewSession(t)

	s.Draft().Fields.Email = "edited@mail.com"
	require.NoError(t, s.ResetDraft())

	assert.Equal(t, "jean.dupont@mail.com", s.Draft().Fields.Email)
}

func TestNavigationClampsAtEnds(t *testing.T) {
	s, _, _ := newReviewSession(t)

	require.NoError(t, s.Prev())
	assert.Equal(t, StepPersonal, s.Step())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Next())
	}
	assert.Equal(t, StepSummary, s.Step())
}

func TestGotoAnyStep(t *testing.T) {
	s, _, _ := newReviewSession(t)

	require.NoError(t, s.Goto(StepSummary))
	assert.Equal(t, StepSummary, s.Step())
	require.NoError(t, s.Goto(StepExperience))
	assert.Equal(t, StepExperience, s.Step())

	assert.Error(t, s.Goto(ReviewStep("unknown")))
}

func TestConfirmOnlyFromSummary(t *testing.T) {
	s, _, store := newReviewSession(t)

	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrBadState)
	assert.Empty(t, store.created)

	require.NoError(t, s.Goto(StepSummary))
	id, err := s.Confirm(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, StateConfirmed, s.State())
	require.Len(t, store.created, 1)
	assert.Equal(t, "jean.dupont@mail.com", store.created[0].Fields.Email)
}

func TestConfirmStoreFailureKeepsReview(t *testing.T) {
	src := &fakeSource{}
	store := &fakeStore{err: errors.New("db down")}
	s, err := New(src, &fakeRecognizer{text: goodText}, store, nil)
	require.NoError(t, err)
	require.NoError(t, s.Capture(context.Background(), nil))
	require.NoError(t, s.Goto(StepSummary))

	_, err = s.Confirm(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateReview, s.State())
	// edits survive a failed confirm
	assert.NotNil(t, s.Draft())
}

func TestDiscardFromAnyStateIdempotent(t *testing.T) {
	s, src, _ := newReviewSession(t)

	s.Discard()
	assert.Equal(t, StateDiscarded, s.State())
	assert.Nil(t, s.Draft())
	assert.Equal(t, src.acquires, src.releases)

	releases := src.releases
	s.Discard()
	assert.Equal(t, releases, src.releases)
}

func TestDiscardFromCaptureReleasesSource(t *testing.T) {
	src := &fakeSource{}
	s, err := New(src, &fakeRecognizer{text: goodText}, &fakeStore{}, nil)
	require.NoError(t, err)

	s.Discard()

	assert.Equal(t, 1, src.acquires)
	assert.Equal(t, 1, src.releases)
}
