package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprEvaluator_Eval(t *testing.T) {
	e := NewExprEvaluator()
	tests := []struct {
		name  string
		expr  string
		value Value
		want  Value
	}{
		{"upper", "upper(text)", Text("abc"), Text("ABC")},
		{"arithmetic", "isNumber ? number * 2 : value", Number(21), Number(42)},
		{"passthrough", "isNumber ? number * 2 : value", Text("x"), Text("x")},
		{"blank check", `isBlank ? "n/a" : text`, Empty(), Text("n/a")},
		{"position", `column(col) + string(row)`, Text("x"), Text("C5")},
		{"clean", `clean(text)`, Text("  a   b "), Text("a b")},
		{"proper", `proper(text)`, Text("jOHN smith"), Text("John Smith")},
		{"nil result", `nil`, Text("x"), Empty()},
		{"bool result", `number > 1`, Number(2), Text("TRUE")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Eval(tt.expr, tt.value, 4, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExprEvaluator_Errors(t *testing.T) {
	e := NewExprEvaluator()
	_, err := e.Compile("text +")
	assert.Error(t, err)

	_, err = e.Eval("1 / number", Number(0), 0, 0)
	require.NoError(t, err, "float division by zero yields +Inf, not an error")

	_, err = e.Eval(`text[10]`, Text("abc"), 0, 0)
	assert.Error(t, err)
}

func TestExprEvaluator_CachesPrograms(t *testing.T) {
	e := NewExprEvaluator()
	p1, err := e.Compile("text + text")
	require.NoError(t, err)
	p2, err := e.Compile("text + text")
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestApp_Expression(t *testing.T) {
	h := newTestHost(t, []any{"sku-1", 10}, []any{"sku-2", 20})
	app := newTestApp(t, h, "A1:B2")

	res := app.Run(ActionExpression, Params{Expression: "isNumber ? number * 1.5 : upper(text)"})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Updated 4 cells.", res.Message)
	assert.Equal(t, Text("SKU-1"), cell(t, h, "Sheet1", "A1"))
	assert.Equal(t, Number(30), cell(t, h, "Sheet1", "B2"))
	assert.True(t, res.UndoAvailable)

	res = app.Run(ActionUndo, Params{})
	require.True(t, res.Success)
	assert.Equal(t, Number(20), cell(t, h, "Sheet1", "B2"))
}

func TestApp_Expression_Invalid(t *testing.T) {
	h := newTestHost(t, []any{"a"})
	app := newTestApp(t, h, "A1")

	res := app.Run(ActionExpression, Params{})
	assert.ErrorIs(t, res.Err, ErrBadParameter)

	res = app.Run(ActionExpression, Params{Expression: "text +"})
	assert.ErrorIs(t, res.Err, ErrBadParameter)
	assert.Equal(t, Text("a"), cell(t, h, "Sheet1", "A1"))

	res = app.Run(ActionExpression, Params{Expression: "text"})
	require.True(t, res.Success)
	assert.Equal(t, "No cells changed.", res.Message)
	assert.False(t, app.CanUndo())
}
