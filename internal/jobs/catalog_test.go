package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoads(t *testing.T) {
	postings, err := Catalog()
	require.NoError(t, err)
	assert.Len(t, postings, 15)

	for _, job := range postings {
		assert.NotEmpty(t, job.ID)
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Company)
		assert.NotEmpty(t, job.ApplyURL)
		assert.False(t, job.PostedDate.IsZero())
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	first, err := Catalog()
	require.NoError(t, err)
	first[0].MatchScore = -1

	second, err := Catalog()
	require.NoError(t, err)
	assert.NotEqual(t, -1, second[0].MatchScore)
}
