package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sheet/engine"
	"sheet/internal/eventbus"
	"sheet/internal/replio"
	"sheet/transport"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rows, cols, serveAddr, eventsAddr, help, err := parseArgs(args)
	if help {
		usage()
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		usage()
		return 1
	}

	sheet := engine.NewSheet(rows, cols)

	var srv *transport.Server
	if serveAddr != "" {
		srv = transport.NewServer(sheet, nil)
		go func() {
			if err := srv.Start(serveAddr); err != nil {
				fmt.Fprintf(os.Stderr, "transport: %v\n", err)
			}
		}()
	}

	var bus *eventbus.Bus
	if eventsAddr != "" {
		b, err := eventbus.Listen(context.Background(), eventsAddr, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eventbus: %v\n", err)
			return 1
		}
		bus = b
		defer bus.Close()
	}

	hooks := replio.Hooks{
		OnCommand: func(cmd, status string) {
			if srv != nil {
				srv.Broadcast(status)
			}
			if bus != nil {
				name, formulaText, ok := splitAssignment(cmd)
				if ok {
					bus.Publish(name, formulaText, status)
				}
			}
		},
	}

	replio.Start(os.Stdin, os.Stdout, sheet, rows, cols, hooks)
	return 0
}

// splitAssignment extracts the cell name and formula text from a
// "<cell>=<formula>" command line, for event publishing only.
func splitAssignment(cmd string) (name, formulaText string, ok bool) {
	eq := strings.IndexByte(cmd, '=')
	if eq < 0 {
		return "", "", false
	}
	return cmd[:eq], cmd[eq+1:], true
}

// parseArgs reads the two required positional dimensions and the
// optional --serve/--events flags.
func parseArgs(args []string) (rows, cols int, serveAddr, eventsAddr string, help bool, err error) {
	var positional []string
	for _, a := range args {
		switch {
		case a == "-h" || a == "--help":
			help = true
		case strings.HasPrefix(a, "--serve="):
			serveAddr = strings.TrimPrefix(a, "--serve=")
		case strings.HasPrefix(a, "--events="):
			eventsAddr = strings.TrimPrefix(a, "--events=")
		default:
			positional = append(positional, a)
		}
	}
	if help {
		return 0, 0, "", "", true, nil
	}
	if len(positional) != 2 {
		return 0, 0, "", "", false, fmt.Errorf("expected <rows> <cols>, got %d positional argument(s)", len(positional))
	}
	rows, err = strconv.Atoi(positional[0])
	if err != nil || rows < 1 {
		return 0, 0, "", "", false, fmt.Errorf("invalid rows: %q", positional[0])
	}
	cols, err = strconv.Atoi(positional[1])
	if err != nil || cols < 1 {
		return 0, 0, "", "", false, fmt.Errorf("invalid cols: %q", positional[1])
	}
	return rows, cols, serveAddr, eventsAddr, false, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  sheet <rows> <cols> [--serve=addr] [--events=addr]\n")
	fmt.Fprintf(os.Stderr, "\nCommands typed at the prompt:\n")
	fmt.Fprintf(os.Stderr, "  <cell>=<formula>   assign a formula, e.g. B1=A1+1\n")
	fmt.Fprintf(os.Stderr, "  w a s d            scroll the viewport\n")
	fmt.Fprintf(os.Stderr, "  scroll_to <cell>   jump the viewport to a cell\n")
	fmt.Fprintf(os.Stderr, "  disable_output     suppress the grid redraw after each command\n")
	fmt.Fprintf(os.Stderr, "  enable_output      resume the grid redraw\n")
	fmt.Fprintf(os.Stderr, "  q                  quit\n")
}
