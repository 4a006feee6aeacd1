package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuite_EmptyDatasets(t *testing.T) {
	// Setup
	suite := NewSuite(DefaultParserSet())
	sel := selection(t, "2024-01-01", "2024-01-31")

	// Act
	snaps := suite.Analyze(DatasetMap{}, sel)

	// Assert
	assert.Equal(t, sel, snaps.Selection)
	assert.Zero(t, snaps.Email.Totals.Sent)
	assert.Nil(t, snaps.Email.Comparison)
	assert.Nil(t, snaps.Web.Change)

	data, err := json.Marshal(snaps)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "NaN")
}

func TestSuite_ComparisonOnEveryPlatform(t *testing.T) {
	suite := NewSuite(DefaultParserSet())
	sel := comparison(t, "2024-02-01", "2024-02-29", "2024-01-01", "2024-01-31")

	snaps := suite.Analyze(DatasetMap{}, sel)

	assert.NotNil(t, snaps.Email.Comparison)
	assert.NotNil(t, snaps.Facebook.Comparison)
	assert.NotNil(t, snaps.Instagram.Comparison)
	assert.NotNil(t, snaps.YouTube.Comparison)
	assert.NotNil(t, snaps.Web.Comparison)
	assert.NotNil(t, snaps.UTM.Comparison)
	// every previous value is zero, so no change can be computed
	for _, v := range snaps.Email.Change {
		assert.Nil(t, v)
	}
}
