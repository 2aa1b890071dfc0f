package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExperienceInputRejectsOverlongLocation(t *testing.T) {
	long := strPtr(strings.Repeat("x", 300))

	create := &ExperienceInput{
		Position:    strPtr("Engineer"),
		Company:     strPtr("Acme"),
		Description: strPtr("Built things"),
		Location:    long,
	}
	update := &ExperienceInput{Location: long}

	for name, err := range map[string]error{"create": create.ValidateCreate(), "update": update.ValidateUpdate()} {
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs, name)
		assert.Contains(t, verrs, "location", name)
	}

	create.Location = strPtr(strings.Repeat("x", 255))
	assert.NoError(t, create.ValidateCreate())
}

func TestExperienceInputRejectsForeignUpload(t *testing.T) {
	err := (&ExperienceInput{ImageURL: strPtr("/uploads/blog/1_cover.png")}).ValidateUpdate()

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "image_url")

	assert.NoError(t, (&ExperienceInput{ImageURL: strPtr("/uploads/experience/1_logo.png")}).ValidateUpdate())
}
