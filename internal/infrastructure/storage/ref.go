package storage

import (
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	errForeignRef = errors.New("must reference an upload of this resource")
	errBadRef     = errors.New("must be an http(s) URL or an upload reference")
)

// OwnedBy reports whether ref points at an object stored under category.
func OwnedBy(ref, category string) bool {
	key, ok := KeyFromRef(strings.TrimSpace(ref))
	return ok && strings.HasPrefix(key, cleanCategory(category)+"/")
}

// RefRule validates an image reference sent by an admin. Empty values, absolute
// http(s) URLs and uploads under category pass. Uploads owned by another
// resource are rejected because replacing or deleting this entity would
// discard them.
func RefRule(category string) validation.Rule {
	return validation.By(func(value interface{}) error {
		var ref string
		switch v := value.(type) {
		case *string:
			if v == nil {
				return nil
			}
			ref = *v
		case string:
			ref = v
		default:
			return nil
		}

		ref = strings.TrimSpace(ref)
		if ref == "" {
			return nil
		}
		if strings.HasPrefix(ref, URLPrefix) {
			if OwnedBy(ref, category) {
				return nil
			}
			return errForeignRef
		}

		u, err := url.Parse(ref)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || is.URL.Validate(ref) != nil {
			return errBadRef
		}
		return nil
	})
}
