package memory

import "github.com/riskibarqy/football-team-search/internal/domain/team"

// SeedTeams returns a small fixed catalog. Several rows share a rank and
// several carry absent fields.
func SeedTeams() []team.Team {
	return []team.Team{
		{Rank: 3, Name: "Ohio State", Mascot: "Buckeyes", DateOfLastWin: str("11/26/2022"), WinningPercentage: dec(0.73), Wins: num(941), Losses: num(329), Ties: num(53), Games: num(1323)},
		{Rank: 1, Name: "Michigan", Mascot: "Wolverines", DateOfLastWin: str("1/8/2024"), WinningPercentage: dec(0.734), Wins: num(1004), Losses: num(348), Ties: num(36), Games: num(1388)},
		{Rank: 12, Name: "Clemson", Mascot: "Tigers", DateOfLastWin: str("1/1/2024"), WinningPercentage: dec(0.638), Wins: num(790), Losses: num(446), Ties: num(45), Games: num(1281)},
		{Rank: 12, Name: "LSU", Mascot: "Tigers", DateOfLastWin: str("1/1/2024"), WinningPercentage: dec(0.645), Wins: num(825), Losses: num(436), Ties: num(47), Games: num(1308)},
		{Rank: 7, Name: "Auburn", Mascot: "Tigers", WinningPercentage: nil, Wins: num(800), Losses: num(470), Ties: num(47), Games: num(1317)},
		{Rank: 2, Name: "Alabama", Mascot: "Crimson Tide", DateOfLastWin: str("1/1/2024"), WinningPercentage: dec(0.728), Wins: num(975), Losses: num(336), Ties: num(43), Games: num(1354)},
		{Rank: 30, Name: "Ohio", Mascot: "Bobcats", DateOfLastWin: str("12/16/2023"), WinningPercentage: dec(0.5), Wins: num(1), Losses: num(1), Ties: nil, Games: num(2)},
		{Rank: 45, Name: "Kent State", Mascot: "Golden Flashes", DateOfLastWin: nil, WinningPercentage: nil, Wins: nil, Losses: nil, Ties: nil, Games: nil},
	}
}

func str(v string) *string   { return &v }
func dec(v float64) *float64 { return &v }
func num(v int) *int         { return &v }
