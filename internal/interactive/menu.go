// Package interactive holds the survey prompts behind the interactive mode.
package interactive

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

const exitChoice = "Exit"

var (
	// ErrExit is returned when the user leaves the menu.
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when the answer matches no entry.
	ErrInvalidSelection = errors.New("invalid selection")
)

// MenuOption is one menu entry.
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

func (o MenuOption) label() string {
	if o.Description == "" {
		return o.Name
	}
	return fmt.Sprintf("%s - %s", o.Name, o.Description)
}

// selection maps an answer back to its entry.
func selection(options []MenuOption, answer string) (MenuOption, error) {
	if answer == exitChoice || answer == "" {
		return MenuOption{}, ErrExit
	}
	for _, opt := range options {
		if opt.label() == answer {
			return opt, nil
		}
	}
	return MenuOption{}, fmt.Errorf("%w: %q", ErrInvalidSelection, answer)
}

// ShowMenu asks for one entry and runs its action. Interrupting the prompt
// counts as leaving the menu.
func ShowMenu(message string, options []MenuOption) error {
	labels := make([]string, 0, len(options)+1)
	for _, opt := range options {
		labels = append(labels, opt.label())
	}
	labels = append(labels, exitChoice)

	var answer string
	if err := survey.AskOne(&survey.Select{Message: message, Options: labels, PageSize: len(labels)}, &answer); err != nil {
		return ErrExit
	}

	opt, err := selection(options, answer)
	if err != nil {
		return err
	}
	if opt.Action == nil {
		return nil
	}
	return opt.Action()
}

// PauseForEnter waits for the user to press Enter.
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}

// Confirm asks a yes/no question that defaults to no.
func Confirm(message string) bool {
	confirmed := false
	_ = survey.AskOne(&survey.Confirm{Message: message}, &confirmed)
	return confirmed
}
