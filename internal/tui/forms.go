package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

type BlockFormModel struct {
	Task       string
	Notes      string
	Recurrence models.RecurrenceType
	Start      string
	End        string
}

func newBlockFormModel(r models.MergedRange) *BlockFormModel {
	rec := r.Recurrence
	if rec == "" {
		rec = models.RecurrenceNone
	}
	return &BlockFormModel{
		Task:       r.Task,
		Notes:      r.Notes,
		Recurrence: rec,
		Start:      strconv.Itoa(r.StartHour),
		End:        strconv.Itoa(r.EndHour),
	}
}

// Range returns the parsed hour bounds of the form.
func (fm *BlockFormModel) Range() (int, int, error) {
	start, err := parseHour(fm.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseHour(fm.End)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("end hour %d is before start hour %d", end, start)
	}
	return start, end, nil
}

func parseHour(s string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("hour must be a number")
	}
	if h < 0 || h > constants.LastHour {
		return 0, fmt.Errorf("hour must be between 0 and %d", constants.LastHour)
	}
	return h, nil
}

func validateHour(s string) error {
	_, err := parseHour(s)
	return err
}

func NewBlockForm(fm *BlockFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Description("Leave empty to clear the block").
				Value(&fm.Task),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
			huh.NewSelect[models.RecurrenceType]().
				Title("Repeat").
				Options(
					huh.NewOption("Never", models.RecurrenceNone),
					huh.NewOption("Daily", models.RecurrenceDaily),
					huh.NewOption("Weekly", models.RecurrenceWeekly),
					huh.NewOption("Monthly", models.RecurrenceMonthly),
				).
				Value(&fm.Recurrence),
			huh.NewInput().
				Title("Start hour").
				Value(&fm.Start).
				Validate(validateHour),
			huh.NewInput().
				Title("End hour").
				Value(&fm.End).
				Validate(validateHour),
		),
	).WithTheme(huh.ThemeDracula())
}

type ConfirmationFormModel struct {
	Message   string
	Confirmed bool
}

func NewConfirmationForm(fm *ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Message).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
