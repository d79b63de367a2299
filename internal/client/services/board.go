package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/jobpilot/internal/client/client"
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
)

// SyncState tracks whether a locally applied change has reached the server.
type SyncState string

const (
	StateConfirmed SyncState = "confirmed"
	StatePending   SyncState = "pending"
	StateFailed    SyncState = "failed"
)

// BoardEntry is one resume as the user currently sees it.
type BoardEntry struct {
	Resume   models.Resume
	Active   bool
	State    SyncState
	Deleting bool
	Err      error
}

// ActivationCommitter persists a resume's active flag.
type ActivationCommitter interface {
	CommitActivation(ctx context.Context, resumeID int64, active bool) error
}

// LocalActivation keeps activation client-side; the backend has no endpoint
// for it, so every commit succeeds without a request.
type LocalActivation struct{}

func (LocalActivation) CommitActivation(context.Context, int64, bool) error { return nil }

// ResumeBoard holds the user's resumes and applies changes optimistically:
// the change is visible at once with StatePending, then confirmed or rolled
// back (StateFailed, Err set) once the server answers.
//
// An entry accepts one change at a time; a second change while the first is
// in flight fails with ErrPending.
type ResumeBoard struct {
	client     client.Client
	activation ActivationCommitter
	log        logging.Logger

	mu      sync.Mutex
	userID  int64
	order   []int64
	entries map[int64]*BoardEntry
}

type BoardOption func(*ResumeBoard)

func WithActivationCommitter(ac ActivationCommitter) BoardOption {
	return func(b *ResumeBoard) {
		if ac != nil {
			b.activation = ac
		}
	}
}

func WithBoardLogger(l logging.Logger) BoardOption {
	return func(b *ResumeBoard) {
		if l != nil {
			b.log = l
		}
	}
}

func NewResumeBoard(c client.Client, opts ...BoardOption) *ResumeBoard {
	b := &ResumeBoard{
		client:     c,
		activation: LocalActivation{},
		log:        logging.Discard(),
		entries:    make(map[int64]*BoardEntry),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load replaces the board with the user's resumes from the server. Active
// flags survive for resumes that were already on the board.
//
// Load fails with ErrPending while any change is in flight, including one
// that started during the fetch.
func (b *ResumeBoard) Load(ctx context.Context, userID int64) error {
	b.mu.Lock()
	pending := b.hasPendingLocked()
	b.mu.Unlock()
	if pending {
		return ErrPending
	}

	resumes, err := b.client.ListUserResumes(ctx, userID)
	if err != nil {
		return fmt.Errorf("load resumes: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hasPendingLocked() {
		return ErrPending
	}

	prev := b.entries
	if b.userID != userID {
		prev = nil
	}

	b.userID = userID
	b.order = make([]int64, 0, len(resumes))
	b.entries = make(map[int64]*BoardEntry, len(resumes))
	for _, r := range resumes {
		e := &BoardEntry{Resume: r, State: StateConfirmed}
		if old, ok := prev[r.ID]; ok {
			e.Active = old.Active
		}
		b.order = append(b.order, r.ID)
		b.entries[r.ID] = e
	}
	return nil
}

func (b *ResumeBoard) hasPendingLocked() bool {
	for _, e := range b.entries {
		if e.State == StatePending {
			return true
		}
	}
	return false
}

// UserID reports whose resumes are on the board.
func (b *ResumeBoard) UserID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.userID
}

// Entries returns a snapshot in server order. Entries being deleted are
// hidden.
func (b *ResumeBoard) Entries() []BoardEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]BoardEntry, 0, len(b.order))
	for _, id := range b.order {
		e := b.entries[id]
		if e.Deleting {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// Get returns a snapshot of one entry, including one being deleted.
func (b *ResumeBoard) Get(resumeID int64) (BoardEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[resumeID]
	if !ok {
		return BoardEntry{}, ErrUnknownResume
	}
	return *e, nil
}

// Active returns the first active resume, falling back to the first resume
// on the board.
func (b *ResumeBoard) Active() (models.Resume, bool) {
	entries := b.Entries()
	for _, e := range entries {
		if e.Active {
			return e.Resume, true
		}
	}
	if len(entries) > 0 {
		return entries[0].Resume, true
	}
	return models.Resume{}, false
}

// Upload sends a resume to the server and appends it to the board.
func (b *ResumeBoard) Upload(ctx context.Context, filename string, r io.Reader) (*models.Resume, error) {
	userID := b.UserID()
	if userID == 0 {
		return nil, ErrNoUser
	}

	res, err := b.client.UploadResume(ctx, userID, filename, r)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entries[res.ID]; !ok {
		b.order = append(b.order, res.ID)
	}
	b.entries[res.ID] = &BoardEntry{Resume: *res, State: StateConfirmed}
	return res, nil
}

// begin marks an entry pending after applying mutate to it.
func (b *ResumeBoard) begin(resumeID int64, mutate func(e *BoardEntry)) (BoardEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[resumeID]
	if !ok {
		return BoardEntry{}, ErrUnknownResume
	}
	if e.State == StatePending {
		return BoardEntry{}, ErrPending
	}

	before := *e
	mutate(e)
	e.State = StatePending
	e.Err = nil
	return before, nil
}

// ToggleActive flips the active flag at once and commits it through the
// ActivationCommitter.
func (b *ResumeBoard) ToggleActive(ctx context.Context, resumeID int64) (BoardEntry, error) {
	before, err := b.begin(resumeID, func(e *BoardEntry) { e.Active = !e.Active })
	if err != nil {
		return BoardEntry{}, err
	}

	commitErr := b.activation.CommitActivation(ctx, resumeID, !before.Active)

	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[resumeID]
	if !ok {
		return BoardEntry{}, fmt.Errorf("toggle resume %d: %w", resumeID, ErrUnknownResume)
	}
	if commitErr != nil {
		e.Active = before.Active
		e.State = StateFailed
		e.Err = commitErr
		b.log.Warn(ctx, "activation rolled back", "resume_id", resumeID, "error", commitErr)
		return *e, fmt.Errorf("toggle resume %d: %w", resumeID, commitErr)
	}
	e.State = StateConfirmed
	return *e, nil
}

// Delete hides the resume at once and issues DELETE. On failure the resume
// reappears in its old place with StateFailed.
func (b *ResumeBoard) Delete(ctx context.Context, resumeID int64) (*models.MessageResponse, error) {
	if _, err := b.begin(resumeID, func(e *BoardEntry) { e.Deleting = true }); err != nil {
		return nil, err
	}

	msg, delErr := b.client.DeleteResume(ctx, resumeID)

	b.mu.Lock()
	defer b.mu.Unlock()

	if delErr != nil {
		e, ok := b.entries[resumeID]
		if !ok {
			return nil, fmt.Errorf("delete resume %d: %w", resumeID, delErr)
		}
		e.Deleting = false
		e.State = StateFailed
		e.Err = delErr
		b.log.Warn(ctx, "delete rolled back", "resume_id", resumeID, "error", delErr)
		return nil, fmt.Errorf("delete resume %d: %w", resumeID, delErr)
	}

	delete(b.entries, resumeID)
	for i, id := range b.order {
		if id == resumeID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return msg, nil
}
