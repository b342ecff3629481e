package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func vectorPath(name string) string {
	return filepath.Join("..", "..", "..", "testdata", "conformance", "bendybutt", "v1", name)
}

func readTrimmed(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(vectorPath(name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return strings.TrimSpace(string(b))
}

func TestPrintsKeyAndCID(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{vectorPath("first_feed.bb")}, &out, &errOut); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	want := "key=" + readTrimmed(t, "first_feed.key") + "\n" +
		"cid=" + readTrimmed(t, "first_feed.cid") + "\n" +
		"sequence=1\n" +
		"first=true\n"
	if out.String() != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", out.String(), want)
	}
}

func TestKeyOnly(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-k", vectorPath("metafeed_add.bb")}, &out, &errOut); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if got := strings.TrimSpace(out.String()); got != readTrimmed(t, "metafeed_add.key") {
		t.Fatalf("key mismatch: %s", got)
	}
}

func TestRejectsNonCanonical(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{vectorPath("first_feed.noncanonical_author_format.bb")}, &out, &errOut)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(errOut.String(), "decode: ") {
		t.Fatalf("unexpected stderr: %s", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected stdout: %s", out.String())
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a", "b"}, {"--nope"}} {
		var out, errOut bytes.Buffer
		if code := run(args, &out, &errOut); code != 2 {
			t.Fatalf("%v: expected exit 2, got %d", args, code)
		}
	}
	var out, errOut bytes.Buffer
	if code := run([]string{filepath.Join(t.TempDir(), "missing.bb")}, &out, &errOut); code != 1 {
		t.Fatalf("missing file: expected exit 1, got %d", code)
	}
}
