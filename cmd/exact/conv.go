// cmd/exact/conv.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"exact/bignum"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// runConv converts one integer from any base to any base. When stdin is
// a terminal it prompts and re-prompts until each input is acceptable;
// when piped it reads input base, number and output base, one per line,
// and fails on the first bad one.
func runConv(in io.Reader, out io.Writer) error {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd())
	}
	r := bufio.NewScanner(in)

	readLine := func(prompt string) (string, error) {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !r.Scan() {
			if err := r.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return r.Text(), nil
	}

	// Input base, given in base 10. The parser's digit alphabet caps it.
	var ibase uint32
	for ibase == 0 {
		line, err := readLine("Input base (in base 10): ")
		if err != nil {
			return errors.Wrap(err, "reading input base")
		}
		b, err := parseBase(line)
		if err != nil || b > bignum.MaxInputBase() {
			if !interactive {
				return errors.Errorf("bad input base %q, need 2..%d", line, bignum.MaxInputBase())
			}
			fmt.Fprintf(out, "Enter a base between 2 and %d.\n", bignum.MaxInputBase())
			continue
		}
		ibase = b
	}

	var number bignum.BigUInt
	if err := number.SetBase(ibase); err != nil {
		return err
	}
	for {
		line, err := readLine("Enter the number in the input base: ")
		if err != nil {
			return errors.Wrap(err, "reading number")
		}
		if err := number.SetString(line); err != nil {
			if !interactive {
				return err
			}
			fmt.Fprintln(out, err)
			continue
		}
		break
	}

	var obase uint32
	for obase == 0 {
		line, err := readLine("Output base (in base 10): ")
		if err != nil {
			return errors.Wrap(err, "reading output base")
		}
		b, err := parseBase(line)
		if err != nil || b > bignum.MaxBase {
			if !interactive {
				return errors.Errorf("bad output base %q, need 2..%d", line, bignum.MaxBase)
			}
			fmt.Fprintf(out, "Enter a base between 2 and %d.\n", bignum.MaxBase)
			continue
		}
		obase = b
	}

	result, err := number.Text(obase)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	if interactive {
		fmt.Fprintf(out, "(%s digits in base %d)\n", humanize.Comma(int64(len(result))), obase)
	}
	return nil
}

// parseBase reads a base-10 base via the numeric engine itself.
func parseBase(s string) (uint32, error) {
	n, err := bignum.ParseBigUInt(s, 10)
	if err != nil {
		return 0, err
	}
	b, err := bignum.Value[uint32](n)
	if err != nil {
		return 0, err
	}
	if b < 2 {
		return 0, errors.New("base must be at least 2")
	}
	return b, nil
}
