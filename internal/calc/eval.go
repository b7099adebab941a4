// internal/calc/eval.go
package calc

import (
	"fmt"

	"exact/bignum"

	"github.com/pkg/errors"
)

// Env holds evaluation state: named values and the prototype Rational
// whose configuration (base, precision, rounding, fixed mode) every
// literal and result inherits.
type Env struct {
	Vars  map[string]bignum.Rational
	Proto bignum.Rational
}

func NewEnv() *Env {
	return &Env{
		Vars:  make(map[string]bignum.Rational),
		Proto: bignum.NewRational(),
	}
}

// EvalString scans, parses and evaluates one expression.
func (e *Env) EvalString(src string) (bignum.Rational, error) {
	tokens, err := NewScanner(src).ScanTokens()
	if err != nil {
		return bignum.Rational{}, errors.Wrap(err, "scan")
	}
	node, err := NewParser(tokens).Parse()
	if err != nil {
		return bignum.Rational{}, errors.Wrap(err, "parse")
	}
	return e.Eval(node)
}

// Eval evaluates an expression tree to a Rational.
func (e *Env) Eval(node Expr) (bignum.Rational, error) {
	switch n := node.(type) {

	case *Literal:
		r := e.Proto
		if err := r.Set(n.Text, true); err != nil {
			return bignum.Rational{}, errors.Wrapf(err, "number at position %d", n.Pos)
		}
		return r, nil

	case *Variable:
		v, ok := e.Vars[n.Name]
		if !ok {
			return bignum.Rational{}, fmt.Errorf("undefined variable %q", n.Name)
		}
		return v, nil

	case *Assign:
		v, err := e.Eval(n.Value)
		if err != nil {
			return bignum.Rational{}, err
		}
		e.Vars[n.Name] = v
		return v, nil

	case *Unary:
		v, err := e.Eval(n.Operand)
		if err != nil {
			return bignum.Rational{}, err
		}
		return v.Neg(), nil

	case *Binary:
		l, err := e.Eval(n.Left)
		if err != nil {
			return bignum.Rational{}, err
		}
		r, err := e.Eval(n.Right)
		if err != nil {
			return bignum.Rational{}, err
		}
		switch n.Operator {
		case TokenPlus:
			return l.Add(r), nil
		case TokenMinus:
			return l.Sub(r), nil
		case TokenStar:
			return l.Mul(r), nil
		case TokenSlash:
			v, err := l.Div(r)
			return v, errors.Wrap(err, "divide")
		case TokenPercent:
			v, err := l.Mod(r)
			return v, errors.Wrap(err, "modulo")
		case TokenCaret:
			v, err := l.Pow(r)
			return v, errors.Wrap(err, "power")
		}
		return bignum.Rational{}, fmt.Errorf("unknown operator %q", n.Operator)

	case *Call:
		return e.call(n)
	}
	return bignum.Rational{}, fmt.Errorf("unknown expression %T", node)
}

func (e *Env) call(n *Call) (bignum.Rational, error) {
	args := make([]bignum.Rational, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return bignum.Rational{}, err
		}
		args[i] = v
	}

	arity := func(want int) error {
		if len(args) != want {
			return fmt.Errorf("%s takes %d argument(s), got %d", n.Name, want, len(args))
		}
		return nil
	}

	switch n.Name {
	case "abs":
		if err := arity(1); err != nil {
			return bignum.Rational{}, err
		}
		return args[0].Abs(), nil
	case "floor":
		if err := arity(1); err != nil {
			return bignum.Rational{}, err
		}
		return args[0].Floor(), nil
	case "ceil":
		if err := arity(1); err != nil {
			return bignum.Rational{}, err
		}
		return args[0].Ceil(), nil
	case "trunc":
		if err := arity(1); err != nil {
			return bignum.Rational{}, err
		}
		return args[0].Truncate(), nil
	case "pow":
		if err := arity(2); err != nil {
			return bignum.Rational{}, err
		}
		v, err := args[0].Pow(args[1])
		return v, errors.Wrap(err, "pow")
	case "root":
		if err := arity(2); err != nil {
			return bignum.Rational{}, err
		}
		v, err := args[0].Root(args[1])
		return v, errors.Wrap(err, "root")
	}
	return bignum.Rational{}, fmt.Errorf("unknown function %q", n.Name)
}
