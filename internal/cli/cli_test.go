package cli

import (
	"strings"
	"testing"

	"github.com/hailam/hexplay/internal/hex"
	"github.com/hailam/hexplay/internal/storage"
)

func TestParseHex(t *testing.T) {
	h, err := parseHex("0,-1,1")
	if err != nil {
		t.Fatal(err)
	}
	if (h != hex.Hex{Q: 0, R: -1, S: 1}) {
		t.Errorf("parsed %v", h)
	}

	for _, bad := range []string{"0,-1", "a,b,c", "1,1,1", ""} {
		if _, err := parseHex(bad); err == nil {
			t.Errorf("parseHex(%q) accepted", bad)
		}
	}
}

func TestRunSession(t *testing.T) {
	store, err := storage.NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	script := strings.Join([]string{
		"move 0,-1,1 0,0,0",
		"moves 0,1,-1",
		"save smoke",
		"history",
		"new",
		"load smoke",
		"games",
		"stats",
		"quit",
	}, "\n")

	var out strings.Builder
	c := New(store, &out)
	c.Run(strings.NewReader(script))

	got := out.String()
	t.Logf("session output:\n%s", got)

	if !strings.Contains(got, "Move 1, white to play") {
		t.Error("missing initial turn info")
	}
	if !strings.Contains(got, "black to play") {
		t.Error("turn did not pass to black after the move")
	}
	if !strings.Contains(got, "saved smoke") {
		t.Error("save did not confirm")
	}
	if !strings.Contains(got, "smoke") {
		t.Error("games did not list the save")
	}
	if !strings.Contains(got, "1. F6") {
		t.Error("history missing the move")
	}
	if strings.Contains(got, "illegal move") {
		t.Error("scripted move was rejected")
	}
}

func TestRejectsIllegalMove(t *testing.T) {
	var out strings.Builder
	c := New(nil, &out)
	c.Run(strings.NewReader("move 0,-1,1 0,3,-3\nquit\n"))

	if !strings.Contains(out.String(), "illegal move") {
		t.Error("expected rejection of three-step pawn move")
	}
}
