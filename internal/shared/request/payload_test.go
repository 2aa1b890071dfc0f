package request

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/shared/apperror"
)

func contextWith(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func jsonContext(body string) *gin.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return contextWith(req)
}

func TestReadJSON(t *testing.T) {
	p, err := Read(jsonContext(`{"title":"A","years":3,"featured":true,"technologies":["Go"," ","SQL"],"gpa":3.75,"link":null}`))
	require.NoError(t, err)

	assert.Equal(t, "A", *p.String("title"))
	assert.Equal(t, 3, *p.Int("years"))
	assert.True(t, *p.Bool("featured"))
	assert.Equal(t, []string{"Go", "SQL"}, p.Strings("technologies"))
	assert.Equal(t, "3.75", p.Decimal("gpa").String())
	assert.Nil(t, p.String("link"))
	assert.Nil(t, p.String("missing"))
	assert.Nil(t, p.Strings("missing"))
	assert.True(t, p.Has("link"))
	assert.NoError(t, p.Err())
}

func TestReadJSONTypeErrors(t *testing.T) {
	p, err := Read(jsonContext(`{"years":"many","featured":"maybe","technologies":{"a":1}}`))
	require.NoError(t, err)

	assert.Nil(t, p.Int("years"))
	assert.Nil(t, p.Bool("featured"))
	assert.Nil(t, p.Strings("technologies"))

	err = p.Err()
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindBadRequest, appErr.Kind)
	assert.Contains(t, appErr.Details, "years")
	assert.Contains(t, appErr.Details, "featured")
	assert.Contains(t, appErr.Details, "technologies")
}

func TestReadRejectsNonObject(t *testing.T) {
	_, err := Read(jsonContext(`["a"]`))
	require.Error(t, err)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestReadEmptyBody(t *testing.T) {
	p, err := Read(jsonContext(``))
	require.NoError(t, err)
	assert.Nil(t, p.String("title"))
}

func TestStringsFromJSONArrayString(t *testing.T) {
	p, err := Read(jsonContext(`{"skills":"[\"AWS\",\"GCP\"]","courses":"Algorithms, Databases ,"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"AWS", "GCP"}, p.Strings("skills"))
	assert.Equal(t, []string{"Algorithms", "Databases"}, p.Strings("courses"))
}

func TestReadMultipartWithListConventionAndFile(t *testing.T) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("title", "Portfolio"))
	require.NoError(t, mw.WriteField("technologies[]", "Go"))
	require.NoError(t, mw.WriteField("technologies[]", "Vue"))
	require.NoError(t, mw.WriteField("featured", "true"))
	require.NoError(t, mw.WriteField("years", "4"))
	fw, err := mw.CreateFormFile("image", "shot.PNG")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	p, err := Read(contextWith(req))
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", *p.String("title"))
	assert.Equal(t, []string{"Go", "Vue"}, p.Strings("technologies"))
	assert.True(t, *p.Bool("featured"))
	assert.Equal(t, 4, *p.Int("years"))

	file, closeFn, err := p.OpenFile("image")
	require.NoError(t, err)
	defer closeFn()
	require.NotNil(t, file)
	assert.Equal(t, "shot.PNG", file.Name)
	data, err := io.ReadAll(file.Reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestReadURLEncoded(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Go")
	form.Set("featured", "")
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	p, err := Read(contextWith(req))
	require.NoError(t, err)
	assert.Equal(t, "Go", *p.String("name"))
	assert.Nil(t, p.Bool("featured"))
	assert.NoError(t, p.Err())
}

func TestOpenFileAbsent(t *testing.T) {
	p := FromMap(map[string]interface{}{})

	file, closeFn, err := p.OpenFile("image")
	assert.NoError(t, err)
	assert.Nil(t, file)
	closeFn()
}
