package checklist

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/chatcont39-glitch/educheck/internal/models"
	"github.com/chatcont39-glitch/educheck/internal/render"
	"github.com/chatcont39-glitch/educheck/internal/storage"
	"github.com/chatcont39-glitch/educheck/pkg/utils"
)

// View is one of the two top-level views of a session.
type View string

const (
	ViewForm    View = "form"
	ViewHistory View = "history"
)

// Phase is the sub-state of the form view.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhasePreviewing Phase = "previewing"
	PhaseSubmitting Phase = "submitting"
)

var (
	// ErrNotSubmittable is returned by Preview when required fields are
	// missing or a discrepancy lacks a sufficient justification.
	ErrNotSubmittable = errors.New("checklist is not submittable")

	// ErrNoPreview is returned by Submit when no previewed record exists.
	ErrNoPreview = errors.New("no previewed submission to confirm")

	// ErrSubmitInFlight is the reentrancy guard: a second submission while
	// one is outstanding is rejected.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrUnknownItem is returned for quantity operations on an id that is
	// not on the checklist.
	ErrUnknownItem = errors.New("unknown checklist item")
)

// Controller owns the mutable state of one checklist session. All state is
// mutated only through its methods; derived flags (discrepancy,
// submittability) are recomputed on read rather than cached. A single mutex
// guards against misbehaving callers, but the model is one logical thread of
// control per session with at most one outstanding storage call.
type Controller struct {
	mu sync.Mutex

	store storage.Store

	view  View
	phase Phase

	teacherName    string
	usageStartTime string
	usageEndTime   string
	justification  string
	signature      string
	items          []models.InventoryItem

	current *models.SubmissionRecord
	receipt *render.Receipt
	history []models.HistoryEntry
}

// NewController returns a controller seeded from the baseline, in the form
// view and editing phase.
func NewController(store storage.Store) *Controller {
	return &Controller{
		store: store,
		view:  ViewForm,
		phase: PhaseEditing,
		items: Baseline(),
	}
}

// View returns the current top-level view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Phase returns the current form phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Items returns a copy of the working item list.
func (c *Controller) Items() []models.InventoryItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.InventoryItem, len(c.items))
	copy(items, c.items)
	return items
}

// History returns a copy of the most recently fetched history listing.
func (c *Controller) History() []models.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	history := make([]models.HistoryEntry, len(c.history))
	copy(history, c.history)
	return history
}

// SetTeacherName updates the teacher name.
func (c *Controller) SetTeacherName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.teacherName = name
	c.invalidatePreviewLocked()
}

// SetUsagePeriod updates the optional usage period display strings.
func (c *Controller) SetUsagePeriod(start, end string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.usageStartTime = start
	c.usageEndTime = end
	c.invalidatePreviewLocked()
}

// SetJustification updates the discrepancy justification text.
func (c *Controller) SetJustification(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.justification = text
	c.invalidatePreviewLocked()
}

// SetSignature stores the encoded signature image payload.
func (c *Controller) SetSignature(payload string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.signature = payload
	c.invalidatePreviewLocked()
}

// ClearSignature removes the signature.
func (c *Controller) ClearSignature() {
	c.SetSignature("")
}

// AdjustQuantity changes an item's counted quantity by a signed delta,
// clamped at a floor of zero.
func (c *Controller) AdjustQuantity(id string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].CurrentQuantity = ClampQuantity(c.items[i].CurrentQuantity + delta)
			c.invalidatePreviewLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownItem, id)
}

// SetQuantity sets an item's counted quantity from manual input, fail-soft:
// non-numeric input counts as zero, and the result is clamped at zero.
func (c *Controller) SetQuantity(id string, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].CurrentQuantity = ParseQuantity(raw)
			c.invalidatePreviewLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownItem, id)
}

// HasDiscrepancy reports whether any item's counted quantity differs from its
// expected quantity. Recomputed on every call; list sizes are small.
func (c *Controller) HasDiscrepancy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return HasDiscrepancy(c.items)
}

// IsSubmittable reports whether the current state may proceed to preview.
func (c *Controller) IsSubmittable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isSubmittableLocked()
}

func (c *Controller) isSubmittableLocked() bool {
	return IsSubmittable(c.teacherName, c.signature, HasDiscrepancy(c.items), c.justification)
}

// Preview builds the submission record from the current state and renders the
// receipt, moving the form to the previewing phase. The record snapshots the
// item list, so later edits do not alter it; the rendered receipt is kept and
// reused by Submit so the persisted bytes are exactly the previewed bytes.
func (c *Controller) Preview() (*models.SubmissionRecord, *render.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseSubmitting {
		return nil, nil, ErrSubmitInFlight
	}
	if !c.isSubmittableLocked() {
		return nil, nil, ErrNotSubmittable
	}

	items := make([]models.InventoryItem, len(c.items))
	copy(items, c.items)

	record := &models.SubmissionRecord{
		ID:             strconv.FormatInt(time.Now().UnixMilli(), 10),
		TeacherName:    c.teacherName,
		Date:           time.Now(),
		UsageStartTime: c.usageStartTime,
		UsageEndTime:   c.usageEndTime,
		Items:          items,
		Signature:      c.signature,
		Status:         models.StatusCompleted,
	}
	if HasDiscrepancy(items) {
		record.Justification = c.justification
	}

	receipt, err := render.Render(record)
	if err != nil {
		// Rendering a well-formed record is not expected to fail.
		return nil, nil, fmt.Errorf("rendering preview: %w", err)
	}

	c.current = record
	c.receipt = receipt
	c.phase = PhasePreviewing
	return record, receipt, nil
}

// CancelPreview returns to editing without losing any entered data.
func (c *Controller) CancelPreview() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePreviewing {
		return
	}
	c.invalidatePreviewLocked()
}

// Submit persists the previewed receipt under the generated file name and,
// on success, resets the form to the baseline and refreshes history. On
// failure the form returns to the previewing phase with all state intact so
// the user can retry without re-entering data. A second Submit while one is
// outstanding is rejected with ErrSubmitInFlight.
func (c *Controller) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	if c.current == nil || c.receipt == nil {
		c.mu.Unlock()
		return "", ErrNoPreview
	}

	fileName := fmt.Sprintf("checklist_%s_%d%s",
		utils.SanitizeName(c.current.TeacherName), time.Now().UnixMilli(), storage.ReceiptExtension)
	payload := c.receipt.Bytes()
	c.phase = PhaseSubmitting
	c.mu.Unlock()

	path, err := c.store.Persist(ctx, fileName, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		utils.LogError(err, "Failed to persist receipt")
		c.phase = PhasePreviewing
		return "", fmt.Errorf("saving receipt: %w", err)
	}

	c.resetLocked()
	utils.LogInfo("Receipt persisted", map[string]interface{}{"file": fileName, "path": path})
	return path, nil
}

// ShowHistory switches to the history view, re-querying storage. On failure
// the current view and form state are preserved.
func (c *Controller) ShowHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	history, err := c.store.ListHistory(ctx)
	if err != nil {
		utils.LogError(err, "Failed to fetch history")
		return nil, fmt.Errorf("fetching history: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewHistory
	c.history = history
	return history, nil
}

// ShowForm switches back to the form view.
func (c *Controller) ShowForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewForm
}

// Reset discards all entered data and reseeds the working list from the
// baseline.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.teacherName = ""
	c.usageStartTime = ""
	c.usageEndTime = ""
	c.justification = ""
	c.signature = ""
	c.items = Baseline()
	c.current = nil
	c.receipt = nil
	c.phase = PhaseEditing
}

// invalidatePreviewLocked drops a stale previewed record after an edit. The
// record is a snapshot; editing the working state must route through Preview
// again before submission.
func (c *Controller) invalidatePreviewLocked() {
	if c.phase == PhasePreviewing {
		c.phase = PhaseEditing
	}
	c.current = nil
	c.receipt = nil
}
