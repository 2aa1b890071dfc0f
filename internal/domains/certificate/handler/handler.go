package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/certificate/model"
	"portfolio-backend/internal/domains/certificate/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// CERTIFICATE HANDLER
// =====================================================

type CertificateHandler struct {
	certificateService service.ServiceInterface
}

func NewCertificateHandler(certificateService service.ServiceInterface) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

func bindCertificateInput(p *request.Payload) *model.CertificateInput {
	return &model.CertificateInput{
		Name:          p.String("name"),
		Issuer:        p.String("issuer"),
		IssueDate:     p.String("issue_date"),
		ExpiryDate:    p.String("expiry_date"),
		CredentialID:  p.String("credential_id"),
		CredentialURL: p.String("credential_url"),
		Category:      p.String("category"),
		Status:        p.String("status"),
		Description:   p.String("description"),
		Level:         p.String("level"),
		Icon:          p.String("icon"),
		Priority:      p.String("priority"),
		Skills:        p.Strings("skills"),
		ImageURL:      p.String("image_url"),
	}
}

// queryFilter treats "all" as no filter.
func queryFilter(c *gin.Context, key string) string {
	v := request.QueryString(c, key)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

func certificateFilter(c *gin.Context) (model.CertificateFilter, error) {
	sort, err := request.QueryEnum(c, "sort", model.SortIssueDate, model.SortKeys...)
	if err != nil {
		return model.CertificateFilter{}, err
	}
	order, err := request.QueryEnum(c, "order", "desc", "asc", "desc")
	if err != nil {
		return model.CertificateFilter{}, err
	}
	return model.CertificateFilter{
		Category:  queryFilter(c, "category"),
		Status:    queryFilter(c, "status"),
		Level:     queryFilter(c, "level"),
		Priority:  queryFilter(c, "priority"),
		Search:    request.QueryString(c, "search"),
		Sort:      sort,
		Ascending: order == "asc",
	}, nil
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// List lists certificates with every field
// GET /api/certificates
func (h *CertificateHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter, err := certificateFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.certificateService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Create creates a certificate from JSON or multipart (optional "image" file)
// POST /api/certificates
func (h *CertificateHandler) Create(c *gin.Context) {
	// Step 1: Normalize body
	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindCertificateInput(p)
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	// Step 2: Open the optional image
	image, closeImage, err := p.OpenFile("image")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeImage()

	// Step 3: Call service
	certificate, err := h.certificateService.Create(c.Request.Context(), middleware.CurrentUserID(c), in, image)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Certificate created successfully", certificate.ID.String(), certificate)
}

// Get returns one certificate
// GET /api/certificates/:id
func (h *CertificateHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "certificate")
	if err != nil {
		response.Error(c, err)
		return
	}

	certificate, err := h.certificateService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, certificate)
}

// Update applies a partial update
// PUT /api/certificates/:id
func (h *CertificateHandler) Update(c *gin.Context) {
	id, err := request.ParseID(c, "certificate")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := bindCertificateInput(p)
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	image, closeImage, err := p.OpenFile("image")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeImage()

	certificate, changed, err := h.certificateService.Update(c.Request.Context(), id, in, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Updated(c, "Certificate updated successfully", changed, certificate)
}

// Delete removes a certificate and its image
// DELETE /api/certificates/:id
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "certificate")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.certificateService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Certificate deleted successfully")
}

// Stats aggregates counts by status, category and level
// GET /api/certificates/stats
func (h *CertificateHandler) Stats(c *gin.Context) {
	stats, err := h.certificateService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPublic GET /api/public/certificates
func (h *CertificateHandler) ListPublic(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter, err := certificateFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.certificateService.ListPublic(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// GetPublic GET /api/public/certificates/:id
func (h *CertificateHandler) GetPublic(c *gin.Context) {
	id, err := request.ParseID(c, "certificate")
	if err != nil {
		response.Error(c, err)
		return
	}

	certificate, err := h.certificateService.GetPublic(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, certificate)
}
