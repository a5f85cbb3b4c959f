package sqlite

import (
	"database/sql"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
)

const teamsTable = "teams"

var teamColumns = []string{
	"id",
	"rank",
	"team",
	"mascot",
	"date_of_last_win",
	"winning_percentage",
	"wins",
	"losses",
	"ties",
	"games",
}

type teamTableModel struct {
	ID                int64           `db:"id"`
	Rank              int             `db:"rank"`
	Team              string          `db:"team"`
	Mascot            string          `db:"mascot"`
	DateOfLastWin     sql.NullString  `db:"date_of_last_win"`
	WinningPercentage sql.NullFloat64 `db:"winning_percentage"`
	Wins              sql.NullInt64   `db:"wins"`
	Losses            sql.NullInt64   `db:"losses"`
	Ties              sql.NullInt64   `db:"ties"`
	Games             sql.NullInt64   `db:"games"`
}

type teamInsertModel struct {
	Rank              int             `db:"rank"`
	Team              string          `db:"team"`
	Mascot            string          `db:"mascot"`
	DateOfLastWin     sql.NullString  `db:"date_of_last_win"`
	WinningPercentage sql.NullFloat64 `db:"winning_percentage"`
	Wins              sql.NullInt64   `db:"wins"`
	Losses            sql.NullInt64   `db:"losses"`
	Ties              sql.NullInt64   `db:"ties"`
	Games             sql.NullInt64   `db:"games"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:                m.ID,
		Rank:              m.Rank,
		Name:              m.Team,
		Mascot:            m.Mascot,
		DateOfLastWin:     nullStringToPtr(m.DateOfLastWin),
		WinningPercentage: nullFloat64ToPtr(m.WinningPercentage),
		Wins:              nullInt64ToIntPtr(m.Wins),
		Losses:            nullInt64ToIntPtr(m.Losses),
		Ties:              nullInt64ToIntPtr(m.Ties),
		Games:             nullInt64ToIntPtr(m.Games),
	}
}

func newTeamInsertModel(item team.Team) teamInsertModel {
	return teamInsertModel{
		Rank:              item.Rank,
		Team:              item.Name,
		Mascot:            item.Mascot,
		DateOfLastWin:     ptrToNullString(item.DateOfLastWin),
		WinningPercentage: ptrToNullFloat64(item.WinningPercentage),
		Wins:              intPtrToNullInt64(item.Wins),
		Losses:            intPtrToNullInt64(item.Losses),
		Ties:              intPtrToNullInt64(item.Ties),
		Games:             intPtrToNullInt64(item.Games),
	}
}
