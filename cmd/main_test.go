package main

import (
	"bytes"
	"testing"
)

func TestUnknownFlagIsAParseError(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"stackship", "--bogus"})
	if err == nil {
		t.Error("Expected an error for an unrecognized flag")
	}
}

func TestHelpRuns(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"stackship", "--help"}); err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("deploy")) {
		t.Error("Expected the deploy command to be listed in help output")
	}
}
