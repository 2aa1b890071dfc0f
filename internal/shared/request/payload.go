package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
)

const maxMultipartMemory = 32 << 20

// formValue keeps whether the key used the "key[]" list convention.
type formValue struct {
	values []string
	list   bool
}

// Payload is one canonical view over a JSON or form request body.
// Accessors return nil for absent keys; type mismatches are collected and reported by Err.
type Payload struct {
	json  map[string]interface{}
	form  map[string]formValue
	files map[string]*multipart.FileHeader
	errs  validation.Errors
}

// Read normalizes the request body regardless of its content type.
func Read(c *gin.Context) (*Payload, error) {
	p := &Payload{
		form:  map[string]formValue{},
		files: map[string]*multipart.FileHeader{},
	}

	contentType := c.ContentType()
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, apperror.BadRequest(apperror.CodeBadRequest, "Malformed multipart body")
		}
		p.loadForm(c.Request.MultipartForm.Value)
		for key, headers := range c.Request.MultipartForm.File {
			if len(headers) > 0 {
				p.files[strings.TrimSuffix(key, "[]")] = headers[0]
			}
		}
	case contentType == "application/x-www-form-urlencoded":
		if err := c.Request.ParseForm(); err != nil {
			return nil, apperror.BadRequest(apperror.CodeBadRequest, "Malformed form body")
		}
		p.loadForm(c.Request.PostForm)
	default:
		if err := p.loadJSON(c.Request.Body); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// FromMap builds a payload from already decoded JSON values.
func FromMap(values map[string]interface{}) *Payload {
	return &Payload{
		json:  values,
		form:  map[string]formValue{},
		files: map[string]*multipart.FileHeader{},
	}
}

func (p *Payload) loadForm(values map[string][]string) {
	for key, vals := range values {
		base := strings.TrimSuffix(key, "[]")
		list := base != key
		existing := p.form[base]
		existing.values = append(existing.values, vals...)
		existing.list = existing.list || list
		p.form[base] = existing
	}
}

func (p *Payload) loadJSON(body io.Reader) error {
	if body == nil {
		p.json = map[string]interface{}{}
		return nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return apperror.BadRequest(apperror.CodeBadRequest, "Unable to read request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		p.json = map[string]interface{}{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var values map[string]interface{}
	if err := dec.Decode(&values); err != nil || values == nil {
		return apperror.BadRequest(apperror.CodeBadRequest, "Request body must be a JSON object")
	}
	p.json = values
	return nil
}

func (p *Payload) fail(key string, msg string) {
	if p.errs == nil {
		p.errs = validation.Errors{}
	}
	p.errs[key] = errors.New(msg)
}

// Err reports every type mismatch seen by the accessors so far.
func (p *Payload) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}

// Has reports whether the key was sent at all.
func (p *Payload) Has(key string) bool {
	if _, ok := p.json[key]; ok {
		return true
	}
	_, ok := p.form[key]
	return ok
}

// raw returns the JSON value, or nil and false when the key is absent or null.
func (p *Payload) raw(key string) (interface{}, bool) {
	v, ok := p.json[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (p *Payload) String(key string) *string {
	if fv, ok := p.form[key]; ok {
		s := ""
		if len(fv.values) > 0 {
			s = fv.values[0]
		}
		return &s
	}

	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return &t
	case json.Number:
		s := t.String()
		return &s
	case bool:
		s := strconv.FormatBool(t)
		return &s
	default:
		p.fail(key, "must be a string")
		return nil
	}
}

// Strings accepts a JSON array, a JSON-array string, a comma separated string
// or repeated "key[]" form fields. Nil means absent; a present but empty list is non-nil.
func (p *Payload) Strings(key string) []string {
	if fv, ok := p.form[key]; ok {
		if fv.list || len(fv.values) > 1 {
			return cleanList(fv.values)
		}
		if len(fv.values) == 0 {
			return []string{}
		}
		return splitList(fv.values[0])
	}

	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			switch s := item.(type) {
			case string:
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			case json.Number:
				out = append(out, s.String())
			default:
				p.fail(key, "must be a list of strings")
				return nil
			}
		}
		return out
	case string:
		return splitList(t)
	default:
		p.fail(key, "must be a list of strings")
		return nil
	}
}

func (p *Payload) Bool(key string) *bool {
	if s := p.formScalar(key); s != nil {
		if strings.TrimSpace(*s) == "" {
			return nil
		}
		b, err := parseBool(*s)
		if err != nil {
			p.fail(key, "must be a boolean")
			return nil
		}
		return &b
	}

	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return &t
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		b, err := parseBool(t)
		if err != nil {
			p.fail(key, "must be a boolean")
			return nil
		}
		return &b
	default:
		p.fail(key, "must be a boolean")
		return nil
	}
}

func (p *Payload) Int(key string) *int {
	text, ok := p.numberText(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		// accept integral floats such as "3.0"
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || f != float64(int(f)) {
			p.fail(key, "must be an integer")
			return nil
		}
		n = int(f)
	}
	return &n
}

func (p *Payload) Decimal(key string) *decimal.Decimal {
	text, ok := p.numberText(key)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		p.fail(key, "must be a number")
		return nil
	}
	return &d
}

// numberText treats an empty string as absent.
func (p *Payload) numberText(key string) (string, bool) {
	if s := p.formScalar(key); s != nil {
		text := strings.TrimSpace(*s)
		return text, text != ""
	}

	v, ok := p.raw(key)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case json.Number:
		return t.String(), true
	case string:
		text := strings.TrimSpace(t)
		return text, text != ""
	default:
		p.fail(key, "must be a number")
		return "", false
	}
}

func (p *Payload) formScalar(key string) *string {
	fv, ok := p.form[key]
	if !ok {
		return nil
	}
	s := ""
	if len(fv.values) > 0 {
		s = fv.values[0]
	}
	return &s
}

// File returns the uploaded file header, nil when none was sent.
func (p *Payload) File(key string) *multipart.FileHeader {
	return p.files[key]
}

// OpenFile opens an uploaded file for the asset store. The returned close func is never nil.
func (p *Payload) OpenFile(key string) (*storage.File, func(), error) {
	fh := p.File(key)
	if fh == nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, apperror.BadRequest(apperror.CodeBadRequest, fmt.Sprintf("Unable to read %s upload", key))
	}
	return &storage.File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      f,
	}, func() { f.Close() }, nil
}

// UploadedFile reads the single file field of an upload-only endpoint.
func UploadedFile(c *gin.Context, field string) (*storage.File, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, apperror.BadRequest(apperror.CodeBadRequest, "No file provided")
		}
		return nil, func() {}, apperror.BadRequest(apperror.CodeBadRequest, "Malformed multipart body")
	}
	p := &Payload{files: map[string]*multipart.FileHeader{field: fh}}
	return p.OpenFile(field)
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return cleanList(arr)
		}
	}
	return cleanList(strings.Split(s, ","))
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
