package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckedInVectorsAreCurrent(t *testing.T) {
	root := filepath.Join("..", "..", "..", "testdata", "conformance", "bendybutt", "v1")
	var out, errOut bytes.Buffer
	if code := run([]string{"--check", "--out", root}, &out, &errOut); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "first_feed key=%") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestWriteVectors(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	if code := run([]string{"--out", dir}, &out, &errOut); code != 0 {
		t.Fatalf("write: exit %d: %s", code, errOut.String())
	}
	if code := run([]string{"--check", "--out", dir}, &out, &errOut); code != 0 {
		t.Fatalf("check: exit %d: %s", code, errOut.String())
	}
}

func TestBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--nope"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
