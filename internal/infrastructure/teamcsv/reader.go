package teamcsv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gocarina/gocsv"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
)

// headerAliases maps known misspellings in published files to the canonical header.
var headerAliases = map[string]string{
	"Winning Percetnage": "Winning Percentage",
}

// row mirrors one CSV record before type coercion.
type row struct {
	Rank              string `csv:"Rank"`
	Team              string `csv:"Team"`
	Mascot            string `csv:"Mascot"`
	DateOfLastWin     string `csv:"Date of Last Win"`
	WinningPercentage string `csv:"Winning Percentage"`
	Wins              string `csv:"Wins"`
	Losses            string `csv:"Losses"`
	Ties              string `csv:"Ties"`
	Games             string `csv:"Games"`
}

// Reader loads the team catalog from a CSV file on disk.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) Read(ctx context.Context) (team.ImportBatch, error) {
	if err := ctx.Err(); err != nil {
		return team.ImportBatch{}, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return team.ImportBatch{}, errors.Wrapf(err, "open seed csv %s", r.path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a catalog CSV with a header row. Rows without a team name are
// skipped; a row whose rank is not an integer fails the whole parse.
func Parse(in io.Reader) (team.ImportBatch, error) {
	var rows []row
	if err := gocsv.UnmarshalCSV(newHeaderReader(in), &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return team.ImportBatch{}, nil
		}
		return team.ImportBatch{}, errors.Wrap(err, "decode seed csv")
	}

	batch := team.ImportBatch{Teams: make([]team.Team, 0, len(rows))}
	for i, r := range rows {
		// Line 1 is the header.
		line := i + 2

		name := strings.TrimSpace(r.Team)
		if name == "" {
			batch.Skipped++
			continue
		}

		rank, err := strconv.Atoi(strings.TrimSpace(r.Rank))
		if err != nil {
			return team.ImportBatch{}, errors.Wrapf(err, "line %d: invalid rank %q", line, r.Rank)
		}

		batch.Teams = append(batch.Teams, team.Team{
			Rank:              rank,
			Name:              name,
			Mascot:            strings.TrimSpace(r.Mascot),
			DateOfLastWin:     optionalText(r.DateOfLastWin),
			WinningPercentage: optionalDecimal(r.WinningPercentage),
			Wins:              optionalInt(r.Wins),
			Losses:            optionalInt(r.Losses),
			Ties:              optionalInt(r.Ties),
			Games:             optionalInt(r.Games),
		})
	}

	return batch, nil
}

// isSentinel reports whether v is one of the tokens the source files use for
// a missing value.
func isSentinel(v string) bool {
	switch strings.ToUpper(v) {
	case "", "NULL", "??":
		return true
	default:
		return false
	}
}

func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if isSentinel(v) {
		return nil
	}
	return &v
}

func optionalInt(raw string) *int {
	v := strings.TrimSpace(raw)
	if isSentinel(v) {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func optionalDecimal(raw string) *float64 {
	v := strings.TrimSpace(raw)
	if isSentinel(v) {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// headerReader trims header cells and rewrites aliased headers before gocsv
// binds them to struct tags.
type headerReader struct {
	csv        *csv.Reader
	headerDone bool
}

func newHeaderReader(in io.Reader) *headerReader {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	return &headerReader{csv: r}
}

func (r *headerReader) Read() ([]string, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	if r.headerDone {
		return record, nil
	}

	r.headerDone = true
	for i, h := range record {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if canonical, ok := headerAliases[h]; ok {
			h = canonical
		}
		record[i] = h
	}
	return record, nil
}

func (r *headerReader) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
}
