package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Metric string `validate:"omitempty,oneof=cases tests"`
	Limit  int    `validate:"min=0,max=10"`
}

func TestInvalidFields(t *testing.T) {
	fields, err := InvalidFields(&sample{Metric: "cases", Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, fields)

	fields, err = InvalidFields(&sample{Metric: "deaths", Limit: 11})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Metric", "Limit"}, fields)
}

func TestInvalidFields_NotAStruct(t *testing.T) {
	_, err := InvalidFields("cases")
	assert.Error(t, err)
}
