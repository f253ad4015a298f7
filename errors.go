package xlquick

import (
	"errors"
	"fmt"
)

// ErrNoEffectiveRange indicates the selection resolved to zero cells.
var ErrNoEffectiveRange = errors.New("no effective range for the current selection")

// ErrInvalidArgument indicates an internal caller passed a missing or malformed argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownAction indicates an action code that is not in the action table.
var ErrUnknownAction = errors.New("unknown action")

// ErrNeedEntireColumn indicates an action that only works on a whole-column selection.
var ErrNeedEntireColumn = errors.New("an entire column must be selected")

// ErrNeedSingleColumn indicates an action that needs exactly one column with more than one cell.
var ErrNeedSingleColumn = errors.New("select a single column that contains more than one cell of data")

// ErrBadParameter indicates an action parameter that is missing or not understood.
var ErrBadParameter = errors.New("invalid action parameter")

// ErrSheetNotFound indicates a worksheet name that does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoSelection indicates the host has no current selection.
var ErrNoSelection = errors.New("no selection")

// ErrUnsupported indicates the host cannot perform the requested operation.
var ErrUnsupported = errors.New("operation not supported by host")

// ActionError represents a failure while running a menu action.
type ActionError struct {
	Action Action
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
