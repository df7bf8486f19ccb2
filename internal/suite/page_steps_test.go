package suite

import (
	"context"
	"testing"
	"time"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(rows ...[]string) *godog.Table {
	t := &godog.Table{}
	for _, row := range rows {
		r := &messages.PickleTableRow{}
		for _, v := range row {
			r.Cells = append(r.Cells, &messages.PickleTableCell{Value: v})
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

func TestColumn(t *testing.T) {
	assert.Equal(t, []string{"Python", "JavaScript"}, column(table(
		[]string{"language"},
		[]string{"Python"},
		[]string{"JavaScript"},
	)))
	assert.Nil(t, column(table([]string{"language"})))
	assert.Nil(t, column(nil))
}

func TestPairs(t *testing.T) {
	rows, err := pairs(table(
		[]string{"Field", "Value"},
		[]string{"First Name", "Ada"},
		[]string{"Email", "ada@example.com"},
	))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"First Name", "Ada"}, {"Email", "ada@example.com"}}, rows)

	rows, err = pairs(table([]string{"Last Name", "Lovelace"}))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"Last Name", "Lovelace"}}, rows)

	_, err = pairs(table([]string{"only one"}))
	require.Error(t, err)
}

func TestExpectHelpers(t *testing.T) {
	require.NoError(t, expectText("title", "Register", "  Register\n", nil))
	require.Error(t, expectText("title", "Register", "Log in", nil))
	require.NoError(t, expectContains("languages", "PYTHON", "PYTHON JAVASCRIPT", nil))
	require.Error(t, expectContains("languages", "RUBY", "PYTHON JAVASCRIPT", nil))
	require.Error(t, expectTrue("form visible", false, nil))
}

func TestPageSteps_RequireSession(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	steps := NewSteps(log, "http://localhost", time.Second)
	ctx := context.Background()

	require.ErrorIs(t, steps.openPlayground(ctx), ErrNoSession)
	require.ErrorIs(t, steps.selectLanguages(ctx, table([]string{"language"}, []string{"Python"})), ErrNoSession)
	require.ErrorIs(t, steps.fillRegistration(ctx, nil), ErrNoSession)
	require.ErrorIs(t, steps.addToCart(ctx), ErrNoSession)

	_, err := steps.readRating(ctx, "Sapiens")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestPageSteps_RatingMustBeReadFirst(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	steps := NewSteps(log, "http://localhost", time.Second)

	require.ErrorIs(t, steps.enterReadRating(context.Background()), ErrNoRating)
}
