package team

import "fmt"

// Team is one row of the college football team catalog.
type Team struct {
	ID                int64
	Rank              int
	Name              string
	Mascot            string
	DateOfLastWin     *string
	WinningPercentage *float64
	Wins              *int
	Losses            *int
	Ties              *int
	Games             *int
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
