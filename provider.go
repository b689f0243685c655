package daypick

import (
	"time"

	"github.com/google/uuid"
)

// HoverRange is the transient preview shown while the user is choosing the
// second endpoint of a range. It is never committed and never outlives the
// open range that produced it.
type HoverRange struct {
	From time.Time
	To   time.Time
}

// Provider owns all state for one active picker instance: the resolved
// configuration, the current and last-committed selections, the hover
// preview, and the viewed month. All mutation happens synchronously through
// its methods; a provider must not be shared across goroutines.
//
// A Provider is always constructed through New, so consumers hold a fully
// initialized engine by construction; there is no ambient instance to miss.
type Provider struct {
	id        uuid.UUID
	cfg       Config
	selection Selection
	previous  Selection
	hover     *HoverRange
	viewing   time.Time

	// closePicker is the overlay collaborator notified on commit.
	closePicker func()
}

// New constructs a provider from partial options, an externally supplied
// initial value (any shape ParseValue accepts), and the close collaborator.
// The initial value is parsed once and becomes both the current and the
// committed selection. closePicker may be nil.
func New(opts Options, value any, closePicker func()) *Provider {
	cfg := Resolve(opts)
	sel := ParseValue(value, cfg.SelectionMode)
	return &Provider{
		id:          uuid.New(),
		cfg:         cfg,
		selection:   sel,
		previous:    sel,
		viewing:     initialViewing(sel),
		closePicker: closePicker,
	}
}

// initialViewing picks the month first shown: the selection's anchor when
// one exists, today otherwise.
func initialViewing(sel Selection) time.Time {
	switch sel.Kind {
	case KindSingle:
		return sel.Date
	case KindMulti:
		return sel.Dates[0]
	case KindRange:
		return sel.From
	}
	return Day(time.Now())
}

// ID returns the provider's instance identifier.
func (p *Provider) ID() uuid.UUID { return p.id }

// Config returns the resolved configuration.
func (p *Provider) Config() Config { return p.cfg }

// Selection returns the current (possibly tentative) selection.
func (p *Provider) Selection() Selection { return p.selection }

// Committed returns the last committed selection.
func (p *Provider) Committed() Selection { return p.previous }

// Hover returns the active hover preview, if any.
func (p *Provider) Hover() (HoverRange, bool) {
	if p.hover == nil {
		return HoverRange{}, false
	}
	return *p.hover, true
}

// ViewingDate returns the currently displayed month, day-normalized.
func (p *Provider) ViewingDate() time.Time { return p.viewing }

// FormattedDate renders the current selection per the configured format.
func (p *Provider) FormattedDate() string {
	return Format(p.selection, p.cfg)
}

// Reconfigure replaces the configuration wholesale with opts merged over
// defaults, then re-normalizes both the current and the committed
// selections against the (possibly changed) selection mode so the
// canonical shape stays consistent. Any hover preview that no longer
// matches an open range is dropped.
func (p *Provider) Reconfigure(opts Options) {
	p.cfg = Resolve(opts)
	p.selection = ParseValue(p.selection, p.cfg.SelectionMode)
	p.previous = ParseValue(p.previous, p.cfg.SelectionMode)
	if !p.selection.Open() {
		p.hover = nil
	}
}

// ---------------------------------------------------------------------------
// Commit / revert
// ---------------------------------------------------------------------------

// SaveValue commits the current selection, or an explicitly supplied one,
// making it the durable value and notifying the close collaborator. An
// explicit selection is re-normalized against the configured mode and
// becomes the current selection as well. Committing when nothing changed
// is a no-op: the collaborator is not notified again.
func (p *Provider) SaveValue(sel ...Selection) {
	next := p.selection
	if len(sel) > 0 {
		next = ParseValue(sel[0], p.cfg.SelectionMode)
	}
	if next.Equal(p.selection) && next.Equal(p.previous) && p.hover == nil {
		return
	}
	p.selection = next
	p.previous = next
	p.hover = nil
	if p.closePicker != nil {
		p.closePicker()
	}
}

// RevertValue discards tentative edits (toggles, an open range, any hover
// preview) and restores the last committed selection. The close collaborator
// is not notified. Reverting with no pending change is a no-op.
func (p *Provider) RevertValue() {
	if p.selection.Equal(p.previous) && p.hover == nil {
		return
	}
	p.selection = p.previous
	p.hover = nil
}

// ---------------------------------------------------------------------------
// Month navigation
// ---------------------------------------------------------------------------

// GoToMonth displays the month containing d.
func (p *Provider) GoToMonth(d time.Time) {
	p.viewing = Day(d)
}

// NextMonth advances the view by one calendar month.
func (p *Provider) NextMonth() {
	p.viewing = AddMonths(p.viewing, 1)
}

// PreviousMonth moves the view back one calendar month.
func (p *Provider) PreviousMonth() {
	p.viewing = AddMonths(p.viewing, -1)
}
