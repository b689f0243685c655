// Package daypick implements the date-selection state engine behind a
// date-picker control.
//
// Allowed here:
// - canonicalization of externally supplied selections into one internal model
// - the single/multi/range selection state machine and hover-preview logic
// - two-phase commit (tentative edit vs. confirmed value) and revert
// - per-day status derivation and locale-agnostic formatting
//
// Not allowed here:
// - rendering, styling, or terminal concerns (see internal/tui)
// - file or network I/O (see internal/config for option loading)
//
// All state is owned by a single Provider instance and mutated synchronously
// inside discrete interaction events; there is no locking and no background
// work. Dates are compared at calendar-day resolution throughout.
package daypick
