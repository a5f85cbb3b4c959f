package teamcsv

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Rank,Team,Mascot,Date of Last Win,Winning Percetnage,Wins,Losses,Ties,Games
1,Michigan,Wolverines,1/8/2024,0.734,1004,348,36,1388
2, Alabama ,Crimson Tide,NULL,??,975,336,43,1354
3,,Ghosts,1/1/2000,0.5,1,1,0,2
4,Kent State,,??,,NULL,n/a,,
`

func TestParse_MapsHeadersAndSentinels(t *testing.T) {
	batch, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(batch.Teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(batch.Teams))
	}
	if batch.Skipped != 1 {
		t.Fatalf("expected 1 skipped row, got %d", batch.Skipped)
	}

	michigan := batch.Teams[0]
	if michigan.Rank != 1 || michigan.Name != "Michigan" || michigan.Mascot != "Wolverines" {
		t.Fatalf("unexpected first team: %+v", michigan)
	}
	if michigan.WinningPercentage == nil || *michigan.WinningPercentage != 0.734 {
		t.Fatalf("expected misspelled header to map winning percentage, got %v", michigan.WinningPercentage)
	}
	if michigan.DateOfLastWin == nil || *michigan.DateOfLastWin != "1/8/2024" {
		t.Fatalf("unexpected date of last win: %v", michigan.DateOfLastWin)
	}
	if michigan.Games == nil || *michigan.Games != 1388 {
		t.Fatalf("unexpected games: %v", michigan.Games)
	}

	alabama := batch.Teams[1]
	if alabama.Name != "Alabama" {
		t.Fatalf("expected trimmed team name, got %q", alabama.Name)
	}
	if alabama.DateOfLastWin != nil {
		t.Fatalf("expected NULL date to be absent, got %q", *alabama.DateOfLastWin)
	}
	if alabama.WinningPercentage != nil {
		t.Fatalf("expected ?? winning percentage to be absent, got %v", *alabama.WinningPercentage)
	}

	kent := batch.Teams[2]
	if kent.Mascot != "" {
		t.Fatalf("expected empty mascot, got %q", kent.Mascot)
	}
	if kent.DateOfLastWin != nil || kent.WinningPercentage != nil || kent.Wins != nil || kent.Losses != nil || kent.Ties != nil || kent.Games != nil {
		t.Fatalf("expected every optional field to be absent: %+v", kent)
	}
}

func TestParse_InvalidRankFails(t *testing.T) {
	in := "Rank,Team\n1,Michigan\nfirst,Ohio State\n"
	_, err := Parse(strings.NewReader(in))
	if err == nil {
		t.Fatalf("expected error for invalid rank")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestParse_MissingOptionalHeaders(t *testing.T) {
	in := "\ufeff Team , Rank\nOhio,30\n"
	batch, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(batch.Teams) != 1 {
		t.Fatalf("expected one team, got %d", len(batch.Teams))
	}
	got := batch.Teams[0]
	if got.Name != "Ohio" || got.Rank != 30 || got.Wins != nil || got.WinningPercentage != nil {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestParse_Empty(t *testing.T) {
	batch, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse empty input: %v", err)
	}
	if len(batch.Teams) != 0 || batch.Skipped != 0 {
		t.Fatalf("unexpected batch: %+v", batch)
	}
}

func TestReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	batch, err := NewReader(path).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(batch.Teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(batch.Teams))
	}
}

func TestReader_Read_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.csv")).Read(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
