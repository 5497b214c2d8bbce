package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functions returns the function table available to every expression.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"concat":     stdlib.ConcatFunc,
		"distinct":   stdlib.DistinctFunc,
		"flatten":    stdlib.FlattenFunc,
		"format":     stdlib.FormatFunc,
		"formatlist": stdlib.FormatListFunc,
		"join":       stdlib.JoinFunc,
		"length":     stdlib.LengthFunc,
		"lower":      stdlib.LowerFunc,
		"max":        stdlib.MaxFunc,
		"min":        stdlib.MinFunc,
		"range":      stdlib.RangeFunc,
		"replace":    stdlib.ReplaceFunc,
		"reverse":    stdlib.ReverseListFunc,
		"split":      stdlib.SplitFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"upper":      stdlib.UpperFunc,
		"repeat":     RepeatFunc,
	}
}

// RepeatFunc returns a list holding count copies of a string. It is used to
// weight candidate values, e.g. concat(repeat("pass", 9), ["fail"]).
var RepeatFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "value", Type: cty.String},
		{Name: "count", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.List(cty.String)),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var n int
		if err := gocty.FromCtyValue(args[1], &n); err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		if n < 0 {
			return cty.NilVal, function.NewArgError(1, fmt.Errorf("count must not be negative, got %d", n))
		}
		if n == 0 {
			return cty.ListValEmpty(cty.String), nil
		}
		vals := make([]cty.Value, n)
		for i := range vals {
			vals[i] = args[0]
		}
		return cty.ListVal(vals), nil
	},
})
