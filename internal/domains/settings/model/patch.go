package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ContactInfoPatch struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (c *ContactInfoPatch) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email, is.EmailFormat, validation.Length(0, 255)),
		validation.Field(&c.Phone, validation.Length(0, 50)),
		validation.Field(&c.Address, validation.Length(0, 255)),
	)
}

func (c *ContactInfoPatch) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if c == nil {
		return out
	}
	if c.Email != nil {
		out["email"] = *c.Email
	}
	if c.Phone != nil {
		out["phone"] = *c.Phone
	}
	if c.Address != nil {
		out["address"] = *c.Address
	}
	return out
}

// Patch is a partial settings update. Top-level fields replace; social and
// contact_info merge key by key.
type Patch struct {
	SiteTitle       *string           `json:"site_title"`
	Theme           *string           `json:"theme"`
	MaintenanceMode *bool             `json:"maintenance_mode"`
	Social          map[string]string `json:"social"`
	ContactInfo     *ContactInfoPatch `json:"contact_info"`
}

func (p *Patch) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.SiteTitle, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&p.Theme, validation.NilOrNotEmpty, validation.In(Themes...)),
		validation.Field(&p.Social, validation.Each(is.URL, validation.Length(0, 500))),
		validation.Field(&p.ContactInfo),
	)
}

func (p *Patch) IsEmpty() bool {
	return p.SiteTitle == nil && p.Theme == nil && p.MaintenanceMode == nil &&
		len(p.Social) == 0 && len(p.ContactInfo.fields()) == 0
}

// TopLevel returns the replaced keys.
func (p *Patch) TopLevel() map[string]interface{} {
	out := map[string]interface{}{}
	if p.SiteTitle != nil {
		out["site_title"] = *p.SiteTitle
	}
	if p.Theme != nil {
		out["theme"] = *p.Theme
	}
	if p.MaintenanceMode != nil {
		out["maintenance_mode"] = *p.MaintenanceMode
	}
	return out
}

// SocialFields and ContactFields return the merged keys.
func (p *Patch) SocialFields() map[string]string {
	if p.Social == nil {
		return map[string]string{}
	}
	return p.Social
}

func (p *Patch) ContactFields() map[string]interface{} {
	return p.ContactInfo.fields()
}

// Apply merges the patch into s with the same semantics as the store.
func (p *Patch) Apply(s *Settings) {
	if p.SiteTitle != nil {
		s.SiteTitle = *p.SiteTitle
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.MaintenanceMode != nil {
		s.MaintenanceMode = *p.MaintenanceMode
	}
	if len(p.Social) > 0 && s.Social == nil {
		s.Social = map[string]string{}
	}
	for k, v := range p.Social {
		s.Social[k] = v
	}
	if c := p.ContactInfo; c != nil {
		if c.Email != nil {
			s.ContactInfo.Email = *c.Email
		}
		if c.Phone != nil {
			s.ContactInfo.Phone = *c.Phone
		}
		if c.Address != nil {
			s.ContactInfo.Address = *c.Address
		}
	}
}
