// Package replio is the interactive command loop: it reads one line at
// a time (raw-mode TTY editing when available, a plain scanner
// otherwise), dispatches scroll/assignment/output-toggle commands
// against an engine.Sheet and a viewport.View, and prints the status
// prompt and grid the way the original terminal UI did.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"sheet/engine"
	"sheet/grid"
	"sheet/viewport"
)

// Hooks lets callers observe each processed command without the REPL
// loop itself knowing about transport or event-bus concerns.
type Hooks struct {
	// OnCommand fires after every command with its resulting status
	// message ("ok", "Invalid cell", ...).
	OnCommand func(cmd, status string)
}

type scanResult struct {
	line string
	ok   bool
}

// Start runs the command loop until "q" or EOF. rows/cols size the
// sheet's grid; the viewport starts at its top-left corner.
func Start(in io.Reader, out io.Writer, sheet *engine.Sheet, rows, cols int, hooks Hooks) {
	var (
		scanCh chan scanResult
		tty    *ttyInput
	)
	if ti, ok := newTTYInput(in, out); ok {
		tty = ti
		defer tty.Close()
	} else {
		scanner := bufio.NewScanner(in)
		scanCh = make(chan scanResult)
		go func() {
			defer close(scanCh)
			for scanner.Scan() {
				scanCh <- scanResult{line: scanner.Text(), ok: true}
			}
		}()
	}

	sessionOut := out
	if tty != nil {
		sessionOut = newTTYLineWriter(out)
	}

	view := viewport.View{}
	outputEnabled := true
	statusMsg := "ok"
	var elapsed time.Duration

	fmt.Fprint(sessionOut, viewport.Render(sheet.Grid, view))
	fmt.Fprintf(sessionOut, "[%.1f] (%s) > ", elapsed.Seconds(), statusMsg)

	for {
		var (
			line string
			ok   bool
		)
		if tty != nil {
			line, ok = tty.readLine("")
		} else {
			line, ok = <-scanCh
		}
		if !ok {
			return
		}

		if line == "q" {
			return
		}

		start := time.Now()
		statusMsg = dispatch(sheet, &view, rows, cols, &outputEnabled, line)
		elapsed = time.Since(start)

		if hooks.OnCommand != nil {
			hooks.OnCommand(line, statusMsg)
		}

		if outputEnabled {
			fmt.Fprint(sessionOut, viewport.Render(sheet.Grid, view))
		}
		fmt.Fprintf(sessionOut, "[%.1f] (%s) > ", elapsed.Seconds(), statusMsg)
	}
}

// dispatch processes a single command line and returns its status
// message.
func dispatch(sheet *engine.Sheet, view *viewport.View, rows, cols int, outputEnabled *bool, cmd string) string {
	switch cmd {
	case "w":
		view.ScrollUp(rows)
		return "ok"
	case "s":
		view.ScrollDown(rows)
		return "ok"
	case "a":
		view.ScrollLeft(cols)
		return "ok"
	case "d":
		view.ScrollRight(cols)
		return "ok"
	case "disable_output":
		*outputEnabled = false
		return "ok"
	case "enable_output":
		*outputEnabled = true
		return "ok"
	}

	if strings.HasPrefix(cmd, "scroll_to") {
		fields := strings.Fields(cmd)
		if len(fields) != 2 {
			return "Invalid command"
		}
		row, col, ok := grid.NameToCoords(fields[1])
		if !ok {
			return "Invalid cell"
		}
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return "Cell reference out of bounds"
		}
		view.ScrollTo(row, col)
		return "ok"
	}

	if eq := strings.IndexByte(cmd, '='); eq >= 0 {
		name := cmd[:eq]
		formulaText := cmd[eq+1:]
		return sheet.AssignByName(name, formulaText)
	}

	return "unrecognized cmd"
}
