package interactive

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNoFeaturePaths is returned when the paths answer is blank.
var ErrNoFeaturePaths = errors.New("at least one feature path is required")

// RunAnswers are the choices made before an interactive run.
type RunAnswers struct {
	Paths    string `survey:"paths"`
	Tags     string `survey:"tags"`
	Browser  string `survey:"browser"`
	Headless bool   `survey:"headless"`
	Combine  bool   `survey:"combine"`
}

// FeaturePaths splits the paths answer on whitespace.
func (a RunAnswers) FeaturePaths() []string {
	return strings.Fields(a.Paths)
}

// AskRun prompts for the run settings, starting from defaults.
func AskRun(defaults RunAnswers, browsers []string) (RunAnswers, error) {
	answers := defaults
	if err := survey.Ask(runQuestions(defaults, browsers), &answers); err != nil {
		return defaults, err
	}
	return answers, nil
}

func runQuestions(defaults RunAnswers, browsers []string) []*survey.Question {
	return []*survey.Question{
		{
			Name: "paths",
			Prompt: &survey.Input{
				Message: "Feature paths (space separated):",
				Default: defaults.Paths,
			},
			Validate: validatePaths,
		},
		{
			Name: "tags",
			Prompt: &survey.Input{
				Message: "Tag expression (empty for all):",
				Default: defaults.Tags,
				Help:    `e.g. "@smoke && ~@wip"`,
			},
			Validate: validateTags,
		},
		{
			Name: "browser",
			Prompt: &survey.Select{
				Message: "Browser:",
				Options: browsers,
				Default: defaults.Browser,
			},
		},
		{
			Name:   "headless",
			Prompt: &survey.Confirm{Message: "Headless?", Default: defaults.Headless},
		},
		{
			Name:   "combine",
			Prompt: &survey.Confirm{Message: "Combine reports afterwards?", Default: defaults.Combine},
		},
	}
}

// validatePaths requires every listed path to exist.
func validatePaths(answer interface{}) error {
	value, _ := answer.(string)
	paths := strings.Fields(value)
	if len(paths) == 0 {
		return ErrNoFeaturePaths
	}
	for _, path := range paths {
		// A feature path may carry a :line suffix.
		if i := strings.LastIndex(path, ":"); i > 0 {
			if _, err := strconv.Atoi(path[i+1:]); err == nil {
				path = path[:i]
			}
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("feature path %q: %w", path, err)
		}
	}
	return nil
}

// validateTags catches unbalanced parentheses before godog does.
func validateTags(answer interface{}) error {
	value, _ := answer.(string)
	depth := 0
	for _, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			break
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced parentheses in tag expression %q", value)
	}
	return nil
}
