// Package http exposes the pricing and tracking operations over a JSON API.
// Handlers translate transport concerns into commands and queries; all
// business rules stay in the application and domain layers.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for quote and shipment operations.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createQuoteHandler            commands.CreateQuoteCommandHandler
	addQuoteItemHandler           commands.AddQuoteItemCommandHandler
	updateQuoteStatusHandler      commands.UpdateQuoteStatusCommandHandler
	createShipmentHandler         commands.CreateShipmentCommandHandler
	changeShipmentStatusHandler   commands.ChangeShipmentStatusCommandHandler
	updateShipmentLocationHandler commands.UpdateShipmentLocationCommandHandler
	addShipmentMilestoneHandler   commands.AddShipmentMilestoneCommandHandler

	// Query handlers
	getShipmentTrackingHandler queries.GetShipmentTrackingQueryHandler
	getActiveShipmentsHandler  queries.GetActiveShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createQuoteHandler commands.CreateQuoteCommandHandler,
	addQuoteItemHandler commands.AddQuoteItemCommandHandler,
	updateQuoteStatusHandler commands.UpdateQuoteStatusCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	changeShipmentStatusHandler commands.ChangeShipmentStatusCommandHandler,
	updateShipmentLocationHandler commands.UpdateShipmentLocationCommandHandler,
	addShipmentMilestoneHandler commands.AddShipmentMilestoneCommandHandler,
	getShipmentTrackingHandler queries.GetShipmentTrackingQueryHandler,
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler,
) *Server {
	return &Server{
		createQuoteHandler:            createQuoteHandler,
		addQuoteItemHandler:           addQuoteItemHandler,
		updateQuoteStatusHandler:      updateQuoteStatusHandler,
		createShipmentHandler:         createShipmentHandler,
		changeShipmentStatusHandler:   changeShipmentStatusHandler,
		updateShipmentLocationHandler: updateShipmentLocationHandler,
		addShipmentMilestoneHandler:   addShipmentMilestoneHandler,
		getShipmentTrackingHandler:    getShipmentTrackingHandler,
		getActiveShipmentsHandler:     getActiveShipmentsHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/quotes", s.CreateQuote)
	api.POST("/quotes/:code/items", s.AddQuoteItem)
	api.PATCH("/quotes/:code/status", s.UpdateQuoteStatus)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.PATCH("/shipments/:code/status", s.ChangeShipmentStatus)
	api.POST("/shipments/:code/location", s.UpdateShipmentLocation)
	api.POST("/shipments/:code/milestones", s.AddShipmentMilestone)
	api.GET("/shipments/:code/tracking", s.GetShipmentTracking)

	e.GET("/health", s.Health)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateQuote handles POST /api/v1/quotes - registers and prices a new quote.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var request CreateQuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := toAddress(request.Origin)
	if err != nil {
		return badRequest(ctx, "Invalid origin: "+err.Error())
	}
	destination, err := toAddress(request.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}
	serviceType, err := kernel.ServiceTypeFromString(request.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid service type: "+err.Error())
	}
	items, err := toItems(request.Items)
	if err != nil {
		return badRequest(ctx, "Invalid items: "+err.Error())
	}
	discounts, err := toDiscounts(request.Discounts)
	if err != nil {
		return badRequest(ctx, "Invalid discounts: "+err.Error())
	}

	cmd, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), origin, destination, serviceType, items, discounts)
	if err != nil {
		return badRequest(ctx, "Invalid quote data: "+err.Error())
	}

	code, err := s.createQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "Failed to create quote")
	}

	return ctx.JSON(http.StatusCreated, CreateQuoteResponse{Code: code.String()})
}

// AddQuoteItem handles POST /api/v1/quotes/:code/items - appends an item and reprices.
func (s *Server) AddQuoteItem(ctx echo.Context) error {
	code, err := kernel.NewQuoteCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid quote code: "+err.Error())
	}

	var request AddQuoteItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	item, err := toItem(request.Item)
	if err != nil {
		return badRequest(ctx, "Invalid item: "+err.Error())
	}

	cmd, err := commands.NewAddQuoteItemCommand(code, item)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err := s.addQuoteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to add quote item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateQuoteStatus handles PATCH /api/v1/quotes/:code/status.
func (s *Server) UpdateQuoteStatus(ctx echo.Context) error {
	code, err := kernel.NewQuoteCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid quote code: "+err.Error())
	}

	var request UpdateQuoteStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := quote.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateQuoteStatusCommand(code, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err := s.updateQuoteStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to update quote status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments - books, prices, and assesses
// a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := toAddress(request.Origin)
	if err != nil {
		return badRequest(ctx, "Invalid origin: "+err.Error())
	}
	destination, err := toAddress(request.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}
	serviceType, err := kernel.ServiceTypeFromString(request.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid service type: "+err.Error())
	}
	items, err := toItems(request.Items)
	if err != nil {
		return badRequest(ctx, "Invalid items: "+err.Error())
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), origin, destination, serviceType, items,
		request.RequestedPickupAt, request.EstimatedDeliveryAt)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	code, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "Failed to create shipment")
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{Code: code.String()})
}

// ChangeShipmentStatus handles PATCH /api/v1/shipments/:code/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	code, err := kernel.NewTrackingCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code: "+err.Error())
	}

	var request ChangeShipmentStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(code, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err := s.changeShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to change shipment status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentLocation handles POST /api/v1/shipments/:code/location.
func (s *Server) UpdateShipmentLocation(ctx echo.Context) error {
	code, err := kernel.NewTrackingCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code: "+err.Error())
	}

	var request UpdateShipmentLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentLocationCommand(code, point, request.Address, request.RecordedAt)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err := s.updateShipmentLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to update shipment location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddShipmentMilestone handles POST /api/v1/shipments/:code/milestones.
func (s *Server) AddShipmentMilestone(ctx echo.Context) error {
	code, err := kernel.NewTrackingCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code: "+err.Error())
	}

	var request AddShipmentMilestoneRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddShipmentMilestoneCommand(
		code, request.Event, request.Location, request.Description, request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid milestone data: "+err.Error())
	}

	if err := s.addShipmentMilestoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to add shipment milestone")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentTracking handles GET /api/v1/shipments/:code/tracking.
func (s *Server) GetShipmentTracking(ctx echo.Context) error {
	code, err := kernel.NewTrackingCode(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code: "+err.Error())
	}

	query, err := queries.NewGetShipmentTrackingQuery(code)
	if err != nil {
		return badRequest(ctx, "Invalid tracking code: "+err.Error())
	}

	tracking, err := s.getShipmentTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		return internalError(ctx, "Failed to retrieve tracking")
	}

	return ctx.JSON(http.StatusOK, tracking)
}

// GetActiveShipments handles GET /api/v1/shipments/active.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetActiveShipmentsQuery()

	shipments, err := s.getActiveShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve active shipments")
	}

	return ctx.JSON(http.StatusOK, shipments)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// commandError maps application errors to HTTP statuses. Lookups that miss
// map to 404, domain rejections to 409, everything else to 500.
func commandError(ctx echo.Context, err error, message string) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": not found",
		})
	}

	if errors.Is(err, quote.ErrQuoteIsExpired) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: message + ": quote is expired",
		})
	}

	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: message + ": " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
