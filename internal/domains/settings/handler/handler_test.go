package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/settings/model"
	"portfolio-backend/internal/shared/apperror"
)

type stubService struct {
	current *model.Settings
	patch   *model.Patch
	social  map[string]string
}

func (s *stubService) Get(context.Context) (*model.Settings, error) { return s.current, nil }

func (s *stubService) Update(_ context.Context, patch *model.Patch) (*model.Settings, error) {
	s.patch = patch
	if err := patch.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}
	if patch.SiteTitle != nil {
		s.current.SiteTitle = *patch.SiteTitle
	}
	return s.current, nil
}

func (s *stubService) UpdateSocial(_ context.Context, social map[string]string) (*model.Settings, error) {
	s.social = social
	for k, v := range social {
		s.current.Social[k] = v
	}
	return s.current, nil
}

func (s *stubService) ContactInfo(context.Context) (*model.PublicContact, error) {
	return s.current.Contact(), nil
}

func (s *stubService) EnsureDefaults(context.Context) (bool, error) { return false, nil }

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSettingsHandler(svc)
	r := gin.New()
	r.GET("/api/settings", h.Get)
	r.PUT("/api/settings", h.Update)
	r.PUT("/api/social", h.UpdateSocial)
	r.GET("/api/public/contact-info", h.ContactInfo)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSettings(t *testing.T) {
	r := newRouter(&stubService{current: model.Defaults()})

	w := do(r, http.MethodGet, "/api/settings", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got model.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Your Portfolio", got.SiteTitle)
	assert.Equal(t, "light", got.Theme)
}

func TestUpdateSettings(t *testing.T) {
	svc := &stubService{current: model.Defaults()}
	r := newRouter(svc)

	w := do(r, http.MethodPut, "/api/settings", `{"site_title":"Ada's Lab"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.patch.SiteTitle)
	assert.Nil(t, svc.patch.Theme)
	assert.Contains(t, w.Body.String(), `"site_title":"Ada's Lab"`)
}

func TestUpdateSettingsRejectsBadTheme(t *testing.T) {
	r := newRouter(&stubService{current: model.Defaults()})

	w := do(r, http.MethodPut, "/api/settings", `{"theme":"neon"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "theme")
}

func TestUpdateSettingsMalformedBody(t *testing.T) {
	r := newRouter(&stubService{current: model.Defaults()})

	w := do(r, http.MethodPut, "/api/settings", `{"site_title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSocialReturnsContact(t *testing.T) {
	svc := &stubService{current: model.Defaults()}
	r := newRouter(svc)

	w := do(r, http.MethodPut, "/api/social", `{"github":"https://github.com/ada"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"github": "https://github.com/ada"}, svc.social)

	var got model.PublicContact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "https://github.com/ada", got.Social["github"])
	assert.Contains(t, got.Social, "linkedin")
}

func TestPublicContactInfo(t *testing.T) {
	current := model.Defaults()
	current.ContactInfo = model.ContactInfo{Email: "hi@ada.dev", Phone: "+44 1234"}
	r := newRouter(&stubService{current: current})

	w := do(r, http.MethodGet, "/api/public/contact-info", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got model.PublicContact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "hi@ada.dev", got.ContactInfo.Email)
	assert.NotContains(t, w.Body.String(), "maintenance_mode")
}
