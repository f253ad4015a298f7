package xlquick

import (
	"fmt"
	"log/slog"
	"strings"
)

// Snapshot is the prior state of one range, captured before a mutating action writes to it.
type Snapshot struct {
	Sheet   string
	Range   string // cell range without sheet or "$" anchors, e.g. "B2:D9"
	Values  Grid
	Formats [][]string // number format per cell
}

// Area resolves the snapshot location into an AreaRef.
func (s *Snapshot) Area() (AreaRef, error) {
	area, err := ParseAreaRef(s.Range)
	if err != nil {
		return AreaRef{}, err
	}
	return area.WithSheet(s.Sheet), nil
}

// UndoCache holds at most one Snapshot. Storing replaces whatever was held before;
// there is no history.
//
// A snapshot is not invalidated when the sheet structure changes afterwards, so restoring
// after rows or columns were inserted or deleted writes to the original coordinates.
type UndoCache struct {
	snap   *Snapshot
	logger *slog.Logger
}

// NewUndoCache creates an empty cache.
func NewUndoCache(logger *slog.Logger) *UndoCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &UndoCache{logger: logger.With(slog.String("component", "undo"))}
}

// Store arms the cache with the prior state of sheet!rangeLabel.
func (u *UndoCache) Store(sheet, rangeLabel string, values Grid, formats [][]string) error {
	if sheet == "" || rangeLabel == "" || values == nil || formats == nil {
		return fmt.Errorf("store undo state: sheet, range, values and formats are required: %w", ErrInvalidArgument)
	}
	u.snap = &Snapshot{
		Sheet:   sheet,
		Range:   strings.ReplaceAll(rangeLabel, "$", ""),
		Values:  values.Clone(),
		Formats: cloneStrings(formats),
	}
	u.logger.Debug("undo state stored",
		slog.String("sheet", sheet),
		slog.String("range", u.snap.Range))
	return nil
}

// StoreArea is Store for an AreaRef.
func (u *UndoCache) StoreArea(area AreaRef, values Grid, formats [][]string) error {
	return u.Store(area.SheetName(), area.CellRange(), values, formats)
}

// CanRestore reports whether a snapshot is held.
func (u *UndoCache) CanRestore() bool {
	return u.snap != nil
}

// Peek returns the held snapshot, or nil.
func (u *UndoCache) Peek() *Snapshot {
	return u.snap
}

// Restore writes the snapshot back through the host and empties the cache.
// With nothing stored it logs and returns nil. When the host rejects the write the
// snapshot is kept, since it is the only copy of the prior state.
func (u *UndoCache) Restore(host Host) error {
	if u.snap == nil {
		u.logger.Warn("no undo state available")
		return nil
	}
	snap := u.snap
	area, err := snap.Area()
	if err != nil {
		return fmt.Errorf("restore %s!%s: %w", snap.Sheet, snap.Range, err)
	}
	if !host.HasSheet(snap.Sheet) {
		return fmt.Errorf("restore %s: %w", area, ErrSheetNotFound)
	}
	if err := host.SetValues(area, snap.Values); err != nil {
		return fmt.Errorf("restore values to %s: %w", area, err)
	}
	if err := host.SetNumberFormats(area, snap.Formats); err != nil {
		return fmt.Errorf("restore number formats to %s: %w", area, err)
	}

	if err := host.ActivateSheet(snap.Sheet); err != nil {
		u.logger.Warn("activate restored sheet", slog.String("sheet", snap.Sheet), slog.String("error", err.Error()))
	} else if err := host.Select(area); err != nil {
		u.logger.Warn("select restored range", slog.String("range", area.String()), slog.String("error", err.Error()))
	}

	u.Clear()
	u.logger.Info("undo restored", slog.String("range", area.String()))
	return nil
}

// Clear empties the cache.
func (u *UndoCache) Clear() {
	u.snap = nil
}

func cloneStrings(in [][]string) [][]string {
	out := make([][]string, len(in))
	for i, row := range in {
		out[i] = append([]string(nil), row...)
	}
	return out
}
