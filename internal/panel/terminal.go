package panel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// QuitCommand ends a terminal session when typed at any prompt.
const QuitCommand = ".quit"

// Run drives d from a line-oriented terminal. Each round prompts for the
// three fields and then saves. The table is printed at start and after every
// successful save. Run returns nil on end of input or QuitCommand, and the
// first error from writing the table otherwise.
func Run(ctx context.Context, d *Directory, in io.Reader, out io.Writer) error {
	var werr error
	d.Watch(func(t Table) {
		if werr != nil {
			return
		}
		if _, err := fmt.Fprintln(out); err != nil {
			werr = err
			return
		}
		_, werr = t.WriteTo(out)
	})

	fmt.Fprintln(out, "Community Directory")
	fmt.Fprintln(out)
	if _, err := d.Table().WriteTo(out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	prompts := []struct {
		label string
		set   func(string)
	}{
		{"First name", d.SetFirstName},
		{"Last name", d.SetLastName},
		{"ZIP code", d.SetZipCode},
	}
	for {
		fmt.Fprintln(out)
		for _, p := range prompts {
			if err := ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: ", p.label)
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			line := scanner.Text()
			if strings.TrimSpace(line) == QuitCommand {
				return nil
			}
			p.set(line)
		}
		d.Save()
		if werr != nil {
			return fmt.Errorf("write table: %w", werr)
		}
	}
}

// WriterNotifier prints notices to w, one per line.
func WriterNotifier(w io.Writer) Notifier {
	return NotifierFunc(func(level Level, msg string) {
		fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(level.String()), msg)
	})
}
