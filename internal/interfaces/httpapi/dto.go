package httpapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-team-search/internal/domain/team"
	"github.com/riskibarqy/football-team-search/internal/usecase"
)

type teamDTO struct {
	ID                int64    `json:"id"`
	Rank              int      `json:"rank"`
	Team              string   `json:"team"`
	Mascot            string   `json:"mascot"`
	DateOfLastWin     *string  `json:"dateOfLastWin"`
	WinningPercentage *float64 `json:"winningPercentage"`
	Wins              *int     `json:"wins"`
	Losses            *int     `json:"losses"`
	Ties              *int     `json:"ties"`
	Games             *int     `json:"games"`
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamDTO{
			ID:                item.ID,
			Rank:              item.Rank,
			Team:              item.Name,
			Mascot:            item.Mascot,
			DateOfLastWin:     item.DateOfLastWin,
			WinningPercentage: item.WinningPercentage,
			Wins:              item.Wins,
			Losses:            item.Losses,
			Ties:              item.Ties,
			Games:             item.Games,
		})
	}
	return out
}

// queryParamNames maps request struct fields to the query parameter a client sent.
var queryParamNames = map[string]string{
	"SearchTerm": "searchTerm",
	"Column":     "column",
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := queryParamNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		switch fe.Tag() {
		case "notblank", "required":
			msgs = append(msgs, name+" is required")
		default:
			msgs = append(msgs, name+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, strings.Join(msgs, "; "))
}
