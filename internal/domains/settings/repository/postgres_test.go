package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/settings/model"
)

func TestDocumentLeavesUpdatedAtOut(t *testing.T) {
	s := model.Defaults()
	s.UpdatedAt = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	raw, err := json.Marshal(toDocument(s))
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.NotContains(t, keys, "updated_at")
	assert.Contains(t, keys, "site_title")
	assert.Contains(t, keys, "contact_info")
}

func TestDocumentDecodesOverDefaults(t *testing.T) {
	doc := toDocument(model.Defaults())
	stored := `{"site_title":"Ada's Lab","social":{"github":"https://github.com/ada"},"updated_at":"0001-01-01T00:00:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(stored), &doc))

	updatedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got := doc.settings(updatedAt)

	assert.Equal(t, "Ada's Lab", got.SiteTitle)
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, "https://github.com/ada", got.Social["github"])
	assert.Contains(t, got.Social, "linkedin")
	assert.Equal(t, updatedAt, got.UpdatedAt)
}
