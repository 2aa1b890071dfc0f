package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectInputImageReference(t *testing.T) {
	base := func(ref string) *ProjectInput {
		return &ProjectInput{Title: strPtr("Site"), Description: strPtr("A site"), ImageURL: strPtr(ref)}
	}

	assert.NoError(t, base("/uploads/projects/1_site.png").ValidateCreate())
	assert.NoError(t, base("https://example.com/shot.png").ValidateCreate())

	for _, ref := range []string{"/uploads/skills/1_go.png", "/uploads/projects/../skills/1_go.png", "javascript:alert(1)"} {
		var verrs validation.Errors
		require.ErrorAs(t, base(ref).ValidateCreate(), &verrs, ref)
		assert.Contains(t, verrs, "image_url", ref)
	}
}
