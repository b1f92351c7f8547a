package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/selfprint/internal/model"
)

// Fixed text the driver prints between and after the two tables.
const (
	// Bridge terminates the code table and opens the rest table.
	Bridge = "\"\",\n}\n\nvar rest = []string{\n"
	// Closer terminates the rest table.
	Closer = "\"\",\n}\n"
)

// ErrMissingSentinel is returned when a fragment table has no terminating
// empty string.
var ErrMissingSentinel = errors.New("fragment table has no sentinel")

// Printer is the output side of the driver. rawio.Writer implements it.
type Printer interface {
	Print(s string)
	PrintQuoted(s string)
	Err() error
}

// Reproduce prints a quine's source from its two fragment tables: the code
// table verbatim, the code table quoted, the bridge, the rest table quoted,
// the closer and finally the rest table verbatim. Both tables must end with
// the "" sentinel; nothing past it is printed.
func Reproduce(p Printer, code, rest []string) error {
	if err := checkSentinel(m.TableCode, code); err != nil {
		return err
	}

	if err := checkSentinel(m.TableRest, rest); err != nil {
		return err
	}

	for i := 0; code[i] != ""; i++ {
		p.Print(code[i])
	}

	for i := 0; code[i] != ""; i++ {
		p.PrintQuoted(code[i])
	}

	p.Print(Bridge)

	for i := 0; rest[i] != ""; i++ {
		p.PrintQuoted(rest[i])
	}

	p.Print(Closer)

	for i := 0; rest[i] != ""; i++ {
		p.Print(rest[i])
	}

	return p.Err()
}

func checkSentinel(name m.TableName, table []string) error {
	for _, s := range table {
		if s == "" {
			return nil
		}
	}

	return fmt.Errorf("%s: %w", name, ErrMissingSentinel)
}

// withSentinel returns fragments as a terminated string table.
func withSentinel(fragments []m.Fragment) []string {
	out := make([]string, 0, len(fragments)+1)
	for _, f := range fragments {
		out = append(out, string(f))
	}

	return append(out, "")
}
