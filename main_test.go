package main

import "testing"

func TestParseArgsRequiresTwoPositional(t *testing.T) {
	_, _, _, _, _, err := parseArgs([]string{"5"})
	if err == nil {
		t.Fatalf("expected error for missing cols")
	}
}

func TestParseArgsRejectsNonPositiveDimensions(t *testing.T) {
	_, _, _, _, _, err := parseArgs([]string{"0", "5"})
	if err == nil {
		t.Fatalf("expected error for rows=0")
	}
	_, _, _, _, _, err = parseArgs([]string{"5", "-1"})
	if err == nil {
		t.Fatalf("expected error for negative cols")
	}
}

func TestParseArgsAcceptsValidDimensions(t *testing.T) {
	rows, cols, serve, events, help, err := parseArgs([]string{"10", "20"})
	if err != nil || help {
		t.Fatalf("unexpected error/help: %v/%v", err, help)
	}
	if rows != 10 || cols != 20 {
		t.Fatalf("got (%d,%d), want (10,20)", rows, cols)
	}
	if serve != "" || events != "" {
		t.Fatalf("expected no flags set, got serve=%q events=%q", serve, events)
	}
}

func TestParseArgsParsesServeAndEventsFlags(t *testing.T) {
	rows, cols, serve, events, _, err := parseArgs([]string{"5", "5", "--serve=:8080", "--events=tcp://127.0.0.1:5600"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 5 || cols != 5 {
		t.Fatalf("got (%d,%d), want (5,5)", rows, cols)
	}
	if serve != ":8080" {
		t.Errorf("serve = %q, want :8080", serve)
	}
	if events != "tcp://127.0.0.1:5600" {
		t.Errorf("events = %q, want tcp://127.0.0.1:5600", events)
	}
}

func TestParseArgsHelpShortCircuits(t *testing.T) {
	_, _, _, _, help, err := parseArgs([]string{"--help"})
	if err != nil || !help {
		t.Fatalf("expected help=true, no error; got help=%v err=%v", help, err)
	}
}

func TestSplitAssignment(t *testing.T) {
	name, formulaText, ok := splitAssignment("B1=A1+1")
	if !ok || name != "B1" || formulaText != "A1+1" {
		t.Fatalf("got (%q,%q,%v)", name, formulaText, ok)
	}
	if _, _, ok := splitAssignment("w"); ok {
		t.Fatalf("expected ok=false for non-assignment command")
	}
}
