package team

import (
	"strconv"
	"strings"
	"unicode"
)

// AllColumnsLabel is the synthetic selector entry meaning "search every column".
const AllColumnsLabel = "All Columns"

// Column is one searchable field of Team.
type Column struct {
	// Key is the normalized selector value clients send, e.g. "dateoflastwin".
	Key string
	// Label is the display name listed by the column catalog.
	Label string
	// Field is the storage column name.
	Field string
	value func(Team) (string, bool)
}

// Value returns the canonical string form of the column for t.
// The second result is false when t has no value for the column.
func (c Column) Value(t Team) (string, bool) {
	if c.value == nil {
		return "", false
	}
	return c.value(t)
}

// Matches reports whether the column value of t contains term.
// term must already be lower-cased. Absent values never match.
func (c Column) Matches(t Team, term string) bool {
	v, ok := c.Value(t)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(v), term)
}

var (
	ColumnRank = Column{Key: "rank", Label: "Rank", Field: "rank", value: func(t Team) (string, bool) {
		return strconv.Itoa(t.Rank), true
	}}
	ColumnTeam = Column{Key: "team", Label: "Team", Field: "team", value: func(t Team) (string, bool) {
		return t.Name, true
	}}
	ColumnMascot = Column{Key: "mascot", Label: "Mascot", Field: "mascot", value: func(t Team) (string, bool) {
		return t.Mascot, true
	}}
	ColumnDateOfLastWin = Column{Key: "dateoflastwin", Label: "Date of Last Win", Field: "date_of_last_win", value: func(t Team) (string, bool) {
		if t.DateOfLastWin == nil {
			return "", false
		}
		return *t.DateOfLastWin, true
	}}
	ColumnWinningPercentage = Column{Key: "winningpercentage", Label: "Winning Percentage", Field: "winning_percentage", value: func(t Team) (string, bool) {
		if t.WinningPercentage == nil {
			return "", false
		}
		return FormatDecimal(*t.WinningPercentage), true
	}}
	ColumnWins   = intColumn("wins", "Wins", "wins", func(t Team) *int { return t.Wins })
	ColumnLosses = intColumn("losses", "Losses", "losses", func(t Team) *int { return t.Losses })
	ColumnTies   = intColumn("ties", "Ties", "ties", func(t Team) *int { return t.Ties })
	ColumnGames  = intColumn("games", "Games", "games", func(t Team) *int { return t.Games })
)

func intColumn(key, label, field string, get func(Team) *int) Column {
	return Column{Key: key, Label: label, Field: field, value: func(t Team) (string, bool) {
		v := get(t)
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	}}
}

var searchableColumns = []Column{
	ColumnRank,
	ColumnTeam,
	ColumnMascot,
	ColumnDateOfLastWin,
	ColumnWinningPercentage,
	ColumnWins,
	ColumnLosses,
	ColumnTies,
	ColumnGames,
}

var columnByKey = func() map[string]Column {
	out := make(map[string]Column, len(searchableColumns))
	for _, c := range searchableColumns {
		out[c.Key] = c
	}
	return out
}()

// SearchableColumns returns every data column in catalog order.
func SearchableColumns() []Column {
	return append([]Column(nil), searchableColumns...)
}

// ColumnLabels returns the column catalog: AllColumnsLabel followed by every
// data column label.
func ColumnLabels() []string {
	out := make([]string, 0, len(searchableColumns)+1)
	out = append(out, AllColumnsLabel)
	for _, c := range searchableColumns {
		out = append(out, c.Label)
	}
	return out
}

// NormalizeColumnKey lower-cases selector and drops all whitespace, so
// "Date of Last Win" becomes "dateoflastwin".
func NormalizeColumnKey(selector string) string {
	var b strings.Builder
	b.Grow(len(selector))
	for _, r := range selector {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// LookupColumn resolves a client selector to a data column.
// Empty, "All Columns" and unknown selectors return false.
func LookupColumn(selector string) (Column, bool) {
	c, ok := columnByKey[NormalizeColumnKey(selector)]
	return c, ok
}

// ResolveColumns returns the columns a search over selector must scan:
// the single named column, or every column for an empty or unknown selector.
func ResolveColumns(selector string) []Column {
	if c, ok := LookupColumn(selector); ok {
		return []Column{c}
	}
	return SearchableColumns()
}
