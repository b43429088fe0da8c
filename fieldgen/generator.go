// Package fieldgen supplies boundary value generators: callables producing a
// target value from the physical coordinates and time of a boundary point.
package fieldgen

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// FieldGenerator produces a boundary target value at normalised coordinates
// (x, y, z) and time t. Expression-backed generators can fail on inputs that
// steer evaluation into non-numeric territory; callers must surface the error.
type FieldGenerator interface {
	Generate(x, y, z, t float64) (float64, error)
}

// Constant is a FieldGenerator returning a fixed value.
type Constant float64

func (c Constant) Generate(x, y, z, t float64) (float64, error) { return float64(c), nil }

// Zero is the default generator for conditions constructed without one.
var Zero FieldGenerator = Constant(0)

func oneArg(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("fieldgen: got %d arguments for function '%s', but needs 1", len(args), name)
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("fieldgen: non-numeric argument %v for function '%s'", args[0], name)
		}
		return fn(v), nil
	}
}

var exprFunctions = map[string]govaluate.ExpressionFunction{
	"sin":  oneArg("sin", math.Sin),
	"cos":  oneArg("cos", math.Cos),
	"tan":  oneArg("tan", math.Tan),
	"exp":  oneArg("exp", math.Exp),
	"log":  oneArg("log", math.Log),
	"sqrt": oneArg("sqrt", math.Sqrt),
	"abs":  oneArg("abs", math.Abs),
}

type exprGenerator struct {
	expr *govaluate.EvaluableExpression
	src  string
}

// Parse compiles an expression in the variables x, y, z, t (and the constant
// pi) into a FieldGenerator. The expression is probe-evaluated once so that
// unknown identifiers and non-numeric results surface here when possible;
// conditional expressions can still fail per-input at Generate time.
func Parse(src string) (FieldGenerator, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, exprFunctions)
	if err != nil {
		return nil, fmt.Errorf("fieldgen: cannot parse %q: %w", src, err)
	}
	g := &exprGenerator{expr: expr, src: src}
	if _, err := g.Generate(0, 0, 0, 0); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *exprGenerator) Generate(x, y, z, t float64) (float64, error) {
	result, err := g.expr.Evaluate(map[string]interface{}{
		"x": x, "y": y, "z": z, "t": t,
		"pi": math.Pi,
	})
	if err != nil {
		return 0, fmt.Errorf("fieldgen: cannot evaluate %q: %w", g.src, err)
	}
	v, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("fieldgen: expression %q is not numeric, got %T", g.src, result)
	}
	return v, nil
}
