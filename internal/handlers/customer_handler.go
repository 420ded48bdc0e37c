package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/dto"
	"github.com/BruksfildServices01/customer-service/internal/httperr"
	"github.com/BruksfildServices01/customer-service/internal/httpresp"
	"github.com/BruksfildServices01/customer-service/internal/middleware"
	"github.com/BruksfildServices01/customer-service/internal/security"
	ucCustomer "github.com/BruksfildServices01/customer-service/internal/usecase/customer"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	create    *ucCustomer.Create
	get       *ucCustomer.Get
	identify  *ucCustomer.Identify
	anonymous *ucCustomer.CreateAnonymous
	logger    *zap.Logger
}

func NewCustomerHandler(
	create *ucCustomer.Create,
	get *ucCustomer.Get,
	identify *ucCustomer.Identify,
	anonymous *ucCustomer.CreateAnonymous,
	logger *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		create:    create,
		get:       get,
		identify:  identify,
		anonymous: anonymous,
		logger:    logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCustomerRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	CPF      *string `json:"cpf"`
	Password *string `json:"password"`
}

type GetCustomersQuery struct {
	// CustomerID 0 is treated as absent.
	CustomerID uint `form:"customer_id"`
	Skip       int  `form:"skip,default=0" binding:"min=0"`
	Limit      int  `form:"limit,default=10" binding:"min=1"`
}

type IdentifyRequest struct {
	CPF string `json:"cpf" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) CreateAdmin(c *gin.Context) {
	h.createCustomer(c, "admin")
}

func (h *CustomerHandler) Register(c *gin.Context) {
	h.createCustomer(c, "register")
}

func (h *CustomerHandler) createCustomer(c *gin.Context, kind string) {
	user := middleware.CurrentUser(c)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	customer, err := h.create.Execute(c.Request.Context(), ucCustomer.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
		ActorID:  &user.Customer.ID,
		Kind:     kind,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			httperr.BadRequest(c, MsgEmailRegistered)
		case errors.Is(err, domain.ErrDuplicateCPF):
			httperr.BadRequest(c, MsgCPFRegistered)
		case errors.Is(err, domain.ErrConstraintViolation):
			httperr.BadRequest(c, MsgCustomerRegistered)
		case errors.Is(err, domain.ErrInvalidEmail):
			httperr.Unprocessable(c, msgValidationPrefix+"Email: email")
		case errors.Is(err, domain.ErrPasswordTooLong):
			httperr.Unprocessable(c, fmt.Sprintf("%sPassword: max=%d bytes", msgValidationPrefix, security.MaxPasswordBytes))
		default:
			internalError(c, h.logger, "error creating customer", err)
		}
		return
	}

	httpresp.OK(c, dto.FromCustomer(customer))
}

// ======================================================
// READ
// ======================================================

func (h *CustomerHandler) Get(c *gin.Context) {
	var q GetCustomersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}

	res, err := h.get.Execute(c.Request.Context(), ucCustomer.GetInput{
		CustomerID: q.CustomerID,
		Skip:       q.Skip,
		Limit:      q.Limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, MsgCustomerNotFound)
			return
		}
		internalError(c, h.logger, "error fetching customers", err)
		return
	}

	if res.Customer != nil {
		httpresp.OK(c, dto.FromCustomer(res.Customer))
		return
	}

	httpresp.List(c, dto.FromCustomers(res.Customers), res.Total)
}

func (h *CustomerHandler) Identify(c *gin.Context) {
	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	customer, err := h.identify.Execute(c.Request.Context(), req.CPF)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, MsgCustomerNotFound)
			return
		}
		internalError(c, h.logger, "error identifying customer", err)
		return
	}

	httpresp.OK(c, dto.FromCustomer(customer))
}

// ======================================================
// ANONYMOUS
// ======================================================

func (h *CustomerHandler) CreateAnonymous(c *gin.Context) {
	user := middleware.CurrentUser(c)

	customer, err := h.anonymous.Execute(c.Request.Context(), &user.Customer.ID)
	if err != nil {
		internalError(c, h.logger, "error creating anonymous customer", err)
		return
	}

	httpresp.OK(c, dto.FromCustomer(customer))
}
