package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/domains/message/service"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/request"
	"portfolio-backend/internal/shared/response"
)

type MessageHandler struct {
	messageService service.ServiceInterface
}

func NewMessageHandler(messageService service.ServiceInterface) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit stores a contact form message
// POST /api/messages
func (h *MessageHandler) Submit(c *gin.Context) {
	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	in := &model.ContactInput{
		Name:     p.String("name"),
		Email:    p.String("email"),
		Subject:  p.String("subject"),
		Message:  p.String("message"),
		Platform: p.String("platform"),
	}
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	receipt, err := h.messageService.Submit(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Message saved successfully", receipt.ID.String(), receipt)
}

// List GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	read, err := request.QueryBool(c, "read")
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := model.MessageFilter{Read: read, Search: request.QueryString(c, "search")}
	result, err := h.messageService.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result)
}

// Get GET /api/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := request.ParseID(c, "message")
	if err != nil {
		response.Error(c, err)
		return
	}

	msg, err := h.messageService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, msg)
}

// MarkRead sets the read flag, true unless the body says otherwise
// PUT /api/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := request.ParseID(c, "message")
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := request.Read(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	read := p.Bool("read")
	if err := p.Err(); err != nil {
		response.Error(c, apperror.Validation(err))
		return
	}

	msg, err := h.messageService.MarkRead(c.Request.Context(), id, read == nil || *read)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, msg)
}

// Delete DELETE /api/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "message")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Message deleted")
}
