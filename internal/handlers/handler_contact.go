package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/eggkhata/egg_khata_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles HTTP requests related to contacts.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
	postingService portssvc.PostingSvc
}

// newContactHandler creates a new contactHandler.
func newContactHandler(contactService portssvc.ContactSvcFacade, postingService portssvc.PostingSvc) *contactHandler {
	return &contactHandler{
		contactService: contactService,
		postingService: postingService,
	}
}

// registerContactRoutes sets up the routes for contact management.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade, postingService portssvc.PostingSvc) {
	h := newContactHandler(contactService, postingService)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactID", h.getContact)
		contacts.PUT("/:contactID", h.updateContact)
		contacts.GET("/:contactID/transactions", h.getContactTransactions)
	}
}

// createContact godoc
// @Summary Create a contact
// @Description Creates a new vendor or customer with a zero starting balance
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create contact"
// @Router /contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create contact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// listContacts godoc
// @Summary List contacts
// @Description Retrieves all contacts, optionally filtered by type
// @Tags contacts
// @Produce json
// @Param type query string false "Contact type filter" Enums(VENDOR, CUSTOMER)
// @Success 200 {object} dto.ListContactsResponse
// @Failure 400 {object} ErrorResponse "Invalid type filter"
// @Failure 500 {object} ErrorResponse "Failed to list contacts"
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid type filter"})
		return
	}

	var typeFilter *domain.ContactType
	if params.Type != nil {
		t := domain.ContactType(*params.Type)
		typeFilter = &t
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), typeFilter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list contacts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListContactsResponse(contacts))
}

// getContact godoc
// @Summary Get a contact
// @Description Retrieves a contact by ID
// @Tags contacts
// @Produce json
// @Param contactID path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve contact"
// @Router /contacts/{contactID} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("contactID")

	contact, err := h.contactService.GetContactByID(c.Request.Context(), contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
			return
		}
		logger.Error("Failed to get contact", slog.String("error", err.Error()), slog.String("contact_id", contactID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve contact"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// updateContact godoc
// @Summary Update a contact
// @Description Updates a contact's name, phone or price adjustment. The balance cannot be edited.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contactID path string true "Contact ID"
// @Param contact body dto.UpdateContactRequest true "Fields to update"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to update contact"
// @Router /contacts/{contactID} [put]
func (h *contactHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("contactID")

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), contactID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update contact", slog.String("error", err.Error()), slog.String("contact_id", contactID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update contact"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// getContactTransactions godoc
// @Summary Get a contact's transaction history
// @Description Retrieves one page of a contact's transactions newest first, items and products embedded. Use nextToken from the response to fetch the following page.
// @Tags contacts
// @Produce json
// @Param contactID path string true "Contact ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transactions"
// @Router /contacts/{contactID}/transactions [get]
func (h *contactHandler) getContactTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("contactID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	txns, nextToken, err := h.postingService.GetContactTransactions(c.Request.Context(), contactID, params.Limit, params.NextToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
		default:
			logger.Error("Failed to get contact transactions", slog.String("error", err.Error()), slog.String("contact_id", contactID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}
