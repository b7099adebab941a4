// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"exact/bignum"
	"exact/internal/calc"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
)

// Start runs the interactive calculator loop. Directives starting with
// ':' adjust the session configuration; anything else is evaluated as
// an expression and stored in 'ans'.
func Start(in io.Reader, out io.Writer) {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd())
	}

	if interactive {
		fmt.Fprintln(out, "exact calculator | type 'exit' to quit, ':help' for directives")
	}

	env := calc.NewEnv()
	scanner := bufio.NewScanner(in)

	for {
		if interactive {
			fmt.Fprint(out, ">>> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if strings.HasPrefix(line, ":") {
			if err := directive(env, line, out); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
			continue
		}

		glog.V(1).Infof("evaluating %q", line)
		result, err := env.EvalString(line)
		if err != nil {
			glog.Errorf("evaluation failed: %v", err)
			fmt.Fprintln(out, "error:", err)
			continue
		}
		env.Vars["ans"] = result
		fmt.Fprintln(out, result.String())
	}
}

func directive(env *calc.Env, line string, out io.Writer) error {
	fields := strings.Fields(line)
	cmd := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case ":help":
		fmt.Fprint(out, `directives:
  :base N        display base (2..65536)
  :maxradix N    max significant fraction digits
  :round MODE    EVEN NORMAL UP DOWN TOWARD_ZERO FROM_ZERO
  :format F      RADIX FRACTION BOTH
  :fix N         fix N radix places (:fix off to release)
  :stats         size of the last result
`)
		return nil

	case ":base":
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("bad base %q", arg)
		}
		if err := env.Proto.SetBase(uint32(n)); err != nil {
			return err
		}

	case ":maxradix":
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("bad maxradix %q", arg)
		}
		env.Proto.SetMaxRadix(uint(n))

	case ":round":
		env.Proto.SetRound(bignum.RoundMode(arg))

	case ":format":
		env.Proto.SetFormat(bignum.Format(arg))

	case ":fix":
		if arg == "off" {
			env.Proto.SetFixed(false)
			break
		}
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("bad point position %q", arg)
		}
		env.Proto.SetPointPos(uint(n))
		env.Proto.SetFixed(true)

	case ":stats":
		ans, ok := env.Vars["ans"]
		if !ok {
			return fmt.Errorf("nothing computed yet")
		}
		fmt.Fprintf(out, "numerator: %s bits, denominator: %s bits\n",
			humanize.Comma(int64(ans.Num().BitLen())),
			humanize.Comma(int64(ans.Den().BitLen())))
		return nil

	default:
		return fmt.Errorf("unknown directive %q", cmd)
	}

	return nil
}
