package interactive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection(t *testing.T) {
	ran := false
	options := []MenuOption{
		{Name: "Run", Description: "Run features", Action: func() error { ran = true; return nil }},
		{Name: "Clean"},
	}

	opt, err := selection(options, "Run - Run features")
	require.NoError(t, err)
	require.NoError(t, opt.Action())
	assert.True(t, ran)

	opt, err = selection(options, "Clean")
	require.NoError(t, err)
	assert.Equal(t, "Clean", opt.Name)

	_, err = selection(options, exitChoice)
	assert.ErrorIs(t, err, ErrExit)

	_, err = selection(options, "Deploy")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestRunAnswers_FeaturePaths(t *testing.T) {
	answers := RunAnswers{Paths: "  features/login.feature \tfeatures/forms.feature:12 "}
	assert.Equal(t, []string{"features/login.feature", "features/forms.feature:12"}, answers.FeaturePaths())
	assert.Empty(t, RunAnswers{}.FeaturePaths())
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	feature := filepath.Join(dir, "login.feature")
	require.NoError(t, os.WriteFile(feature, []byte("Feature: Login\n"), 0o600))

	tests := []struct {
		name    string
		answer  string
		wantErr error
	}{
		{name: "directory", answer: dir},
		{name: "file with line", answer: feature + ":3"},
		{name: "several", answer: dir + " " + feature},
		{name: "blank", answer: "   ", wantErr: ErrNoFeaturePaths},
		{name: "missing", answer: filepath.Join(dir, "nope.feature"), wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePaths(tt.answer)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTags(t *testing.T) {
	assert.NoError(t, validateTags(""))
	assert.NoError(t, validateTags("@smoke && (@login || @forms)"))
	assert.Error(t, validateTags("(@smoke"))
	assert.Error(t, validateTags("@smoke) && (@forms"))
}

func TestRunQuestions(t *testing.T) {
	defaults := RunAnswers{Paths: "features", Browser: "firefox", Headless: true, Combine: true}
	questions := runQuestions(defaults, []string{"chromium", "firefox", "webkit"})

	names := make([]string, 0, len(questions))
	for _, q := range questions {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"paths", "tags", "browser", "headless", "combine"}, names)

	browser, ok := questions[2].Prompt.(*survey.Select)
	require.True(t, ok)
	assert.Equal(t, "firefox", browser.Default)
	assert.Len(t, browser.Options, 3)

	headless, ok := questions[3].Prompt.(*survey.Confirm)
	require.True(t, ok)
	assert.True(t, headless.Default)
}
