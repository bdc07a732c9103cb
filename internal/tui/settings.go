package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/klippy-app/klippy/internal/core/validate"
)

// SettingsForm wraps the huh form used to edit the history capacity.
type SettingsForm struct {
	form  *huh.Form
	value string
}

// NewSettingsForm creates a settings form pre-filled with the current
// capacity.
func NewSettingsForm(current int) *SettingsForm {
	f := &SettingsForm{
		value: strconv.Itoa(current),
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Max entries").
				Description("History capacity; pinned entries are never evicted.").
				Value(&f.value).
				Validate(func(s string) error {
					_, err := validate.CapacityString(s)
					return err
				}),
		),
	)

	return f
}

// Form returns the underlying huh form.
func (f *SettingsForm) Form() *huh.Form {
	return f.form
}

// Result returns the validated capacity. Only meaningful once the form
// has completed.
func (f *SettingsForm) Result() (int, error) {
	return validate.CapacityString(f.value)
}
