package xlquick

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CellEnv is the environment a cell expression runs in. Row and Col are 1-based sheet
// coordinates, so "row" matches the row number shown in the spreadsheet.
type CellEnv struct {
	Value    any     `expr:"value"`
	Text     string  `expr:"text"`
	Number   float64 `expr:"number"`
	IsNumber bool    `expr:"isNumber"`
	IsBlank  bool    `expr:"isBlank"`
	Row      int     `expr:"row"`
	Col      int     `expr:"col"`
}

func newCellEnv(v Value, row, col int) CellEnv {
	return CellEnv{
		Value:    v.Any(),
		Text:     v.String(),
		Number:   v.Num,
		IsNumber: v.Kind == KindNumber,
		IsBlank:  IsBlank(v),
		Row:      row + 1,
		Col:      col + 1,
	}
}

// cellFunctions are callable from every expression in addition to the expr-lang builtins.
var cellFunctions = []expr.Option{
	expr.Function("clean", func(params ...any) (any, error) {
		return TrimCleanString(fmt.Sprint(params[0])), nil
	}, new(func(string) string)),
	expr.Function("proper", func(params ...any) (any, error) {
		return TransformString(fmt.Sprint(params[0]), TextPropercase), nil
	}, new(func(string) string)),
	expr.Function("column", func(params ...any) (any, error) {
		return ColToName(params[0].(int) - 1), nil
	}, new(func(int) string)),
}

// ExprEvaluator compiles cell expressions once and runs them per cell.
type ExprEvaluator struct {
	cache sync.Map // expression string → compiled *vm.Program
}

// NewExprEvaluator creates an evaluator with an empty program cache.
func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{}
}

// Compile checks an expression against CellEnv and caches the program.
func (e *ExprEvaluator) Compile(expression string) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	opts := append([]expr.Option{expr.Env(CellEnv{}), expr.AllowUndefinedVariables()}, cellFunctions...)
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}

// Eval runs expression for one cell and converts the result back into a Value.
func (e *ExprEvaluator) Eval(expression string, v Value, row, col int) (Value, error) {
	program, err := e.Compile(expression)
	if err != nil {
		return Value{}, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	out, err := expr.Run(program, newCellEnv(v, row, col))
	if err != nil {
		return Value{}, fmt.Errorf("evaluate expression %q at %s: %w", expression, CellName(row, col), err)
	}
	return ValueOf(out), nil
}

func (a *App) evalExpression(p Params) (string, error) {
	expression := strings.TrimSpace(p.Expression)
	if expression == "" {
		return "", fmt.Errorf("%w: an expression is required", ErrBadParameter)
	}
	if _, err := a.eval.Compile(expression); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadParameter, err)
	}
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}
	size := area.Size()
	out := NewGrid(size.Height, size.Width)
	for r := range out {
		for c := range out[r] {
			v, err := a.eval.Eval(expression, values.At(r, c), area.First.Row+r, area.First.Col+c)
			if err != nil {
				return "", err
			}
			out[r][c] = v
		}
	}
	changed := countChanged(values, out)
	if changed == 0 {
		return "No cells changed.", nil
	}
	if err := a.snapshot(area, values); err != nil {
		return "", err
	}
	if err := a.host.SetValues(area, out); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated %d cells.", changed), nil
}
