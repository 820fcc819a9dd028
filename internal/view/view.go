// Package view holds the view controller that sits between the UI and the
// record store. It owns the form buffer, the displayed record list and the
// create/edit mode, and reloads the list after every mutation.
package view

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/zulandar/yardline/internal/models"
	"github.com/zulandar/yardline/internal/record"
	"gorm.io/gorm"
)

// ErrNameRequired is returned by Submit when the trimmed name is empty.
var ErrNameRequired = errors.New("view: name is required")

// Mode tags whether the form creates a new record or edits an existing one.
type Mode int

const (
	Creating Mode = iota
	Editing
)

func (m Mode) String() string {
	switch m {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Form is the raw text of the four inputs.
type Form struct {
	Name       string
	Yardage    string
	UnitCount  string
	ScoreCount string
}

// State is a snapshot of everything the UI renders.
type State struct {
	Mode Mode
	// TargetID is the record being edited; only meaningful in Editing.
	TargetID int64
	Form     Form
	Records  []models.Record
	// PendingDelete is the id awaiting confirmation, 0 when none.
	PendingDelete int64
}

// SubmitLabel is the caption of the submit button for this state.
func (s State) SubmitLabel() string {
	if s.Mode == Editing {
		return "Update"
	}
	return "Save"
}

// Options configures a Controller.
type Options struct {
	// Logf receives store failures. Defaults to log.Printf.
	Logf func(format string, args ...any)
	// OnReload is called with the fresh list after every successful reload.
	OnReload func([]models.Record)
}

// Controller mediates user actions into store calls. Each action holds the
// controller lock across its store call and the following reload, so
// actions never interleave.
type Controller struct {
	mu       sync.Mutex
	db       *gorm.DB
	state    State
	logf     func(format string, args ...any)
	onReload func([]models.Record)
}

// New creates a controller in Creating mode with an empty list. Call Load
// to populate it.
func New(db *gorm.DB, opts Options) *Controller {
	c := &Controller{
		db:       db,
		logf:     opts.Logf,
		onReload: opts.OnReload,
	}
	if c.logf == nil {
		c.logf = log.Printf
	}
	return c
}

// State returns a copy of the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Records = append([]models.Record(nil), c.state.Records...)
	return s
}

// Load reloads the displayed list from the store.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reload(ctx)
}

// SetForm replaces the form buffer.
func (c *Controller) SetForm(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Form = f
}

// StartEdit copies the displayed record with the given id into the form and
// switches to Editing. It reports false, leaving state unchanged, when no
// displayed record has that id.
func (c *Controller) StartEdit(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.state.Records {
		if r.ID != id {
			continue
		}
		c.state.Mode = Editing
		c.state.TargetID = r.ID
		c.state.Form = Form{
			Name:       r.Name,
			Yardage:    strconv.Itoa(r.Yardage),
			UnitCount:  strconv.Itoa(r.UnitCount),
			ScoreCount: strconv.Itoa(r.ScoreCount),
		}
		return true
	}
	return false
}

// Reset abandons any edit and clears the form.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetForm()
}

// Submit writes the form to the store: an insert in Creating mode, an
// update of the target in Editing mode. Once the write succeeds the list is
// reloaded and the form returns to Creating with cleared fields, even if the
// reload fails. A failed write is logged and leaves the form as it was.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submit(ctx)
}

// SubmitForm replaces the form buffer and submits it as one action.
func (c *Controller) SubmitForm(ctx context.Context, f Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Form = f
	return c.submit(ctx)
}

func (c *Controller) submit(ctx context.Context) error {
	f, err := parseForm(c.state.Form)
	if err != nil {
		return err
	}

	if c.state.Mode == Editing {
		err = record.Update(ctx, c.db, c.state.TargetID, f)
	} else {
		_, err = record.Insert(ctx, c.db, f)
	}
	if err != nil {
		c.logf("view: save record: %v", err)
		return err
	}
	err = c.reload(ctx)
	c.resetForm()
	return err
}

// RequestDelete asks for confirmation before deleting id.
func (c *Controller) RequestDelete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PendingDelete = id
}

// CancelDelete dismisses the confirmation without changing anything else.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PendingDelete = 0
}

// ConfirmDelete deletes the pending id and reloads. If that record was
// being edited the form is reset, whether or not the reload succeeds.
// Without a pending id it does nothing.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.state.PendingDelete
	if id == 0 {
		return nil
	}
	c.state.PendingDelete = 0

	if err := record.Delete(ctx, c.db, id); err != nil {
		c.logf("view: delete record %d: %v", id, err)
		return err
	}
	err := c.reload(ctx)
	if c.state.Mode == Editing && c.state.TargetID == id {
		c.resetForm()
	}
	return err
}

// reload must be called with c.mu held.
func (c *Controller) reload(ctx context.Context) error {
	recs, err := record.List(ctx, c.db)
	if err != nil {
		c.logf("view: load records: %v", err)
		return err
	}
	c.state.Records = recs
	if c.onReload != nil {
		c.onReload(append([]models.Record(nil), recs...))
	}
	return nil
}

func (c *Controller) resetForm() {
	c.state.Form = Form{}
	c.state.Mode = Creating
	c.state.TargetID = 0
}

// parseForm trims the name and coerces the numeric inputs. Text that is not
// a non-negative integer counts as 0.
func parseForm(f Form) (record.Fields, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return record.Fields{}, ErrNameRequired
	}
	return record.Fields{
		Name:       name,
		Yardage:    parseCount(f.Yardage),
		UnitCount:  parseCount(f.UnitCount),
		ScoreCount: parseCount(f.ScoreCount),
	}, nil
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
