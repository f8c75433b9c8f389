package http

import (
	"errors"
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createPizzaHandler       commands.CreatePizzaCommandHandler
	updatePizzaHandler       commands.UpdatePizzaCommandHandler
	deletePizzaHandler       commands.DeletePizzaCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler
	getOrderByIDHandler   queries.GetOrderByIDQueryHandler
	getAllPizzasHandler   queries.GetAllPizzasQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The status handler is shared because it serializes IN_PROGRESS
// transitions process-wide.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createPizzaHandler commands.CreatePizzaCommandHandler,
	updatePizzaHandler commands.UpdatePizzaCommandHandler,
	deletePizzaHandler commands.DeletePizzaCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllPizzasHandler queries.GetAllPizzasQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		createPizzaHandler:       createPizzaHandler,
		updatePizzaHandler:       updatePizzaHandler,
		deletePizzaHandler:       deletePizzaHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderByCodeHandler:    getOrderByCodeHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getAllPizzasHandler:      getAllPizzasHandler,
	}
}

// GetOrders handles GET /api/v1/orders - the preparation board.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, raw := range *params.Status {
			status, err := order.StatusFromString(string(raw))
			if err != nil {
				return badRequest(ctx, "Invalid status filter: "+err.Error())
			}
			statuses = append(statuses, status)
		}
	}

	var pickupDate *time.Time
	if params.PickupDate != nil {
		pickupDate = &params.PickupDate.Time
	}

	query, err := queries.NewGetAllOrdersQuery(statuses, pickupDate)
	if err != nil {
		return badRequest(ctx, "Invalid order filter: "+err.Error())
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, "Failed to retrieve orders", err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := order.NewCustomer(
		newOrder.CustomerName, newOrder.PickupFrom, newOrder.PickupTo, deref(newOrder.Comment))
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	lines, err := requestedLines(newOrder.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(customer, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, "Failed to create order", err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrderByCode handles GET /api/v1/orders/{code} - order tracking.
func (s *Server) GetOrderByCode(ctx echo.Context, code string) error {
	query, err := queries.NewGetOrderByCodeQuery(code)
	if err != nil {
		return badRequest(ctx, "Invalid order code: "+err.Error())
	}

	result, err := s.getOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// GetOrderById handles GET /api/v1/orders/by-id/{id} - fetches an order by
// its internal id.
func (s *Server) GetOrderById(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// UpdateOrder handles PUT /api/v1/orders/{code} - replaces the contents of
// a queued order.
func (s *Server) UpdateOrder(ctx echo.Context, code string) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := order.NewCustomer(
		body.CustomerName, body.PickupFrom, body.PickupTo, deref(body.Comment))
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	lines, err := requestedLines(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(code, customer, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, "Failed to update order", err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{code}/status - moves an
// order through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context, code string) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(code, status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, "Failed to update order status", err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{code}. Deleting an absent
// order succeeds; deleting a non-queued order requires force=true.
func (s *Server) DeleteOrder(ctx echo.Context, code string, params servers.DeleteOrderParams) error {
	force := params.Force != nil && *params.Force

	cmd, err := commands.NewDeleteOrderCommand(code, force)
	if err != nil {
		return badRequest(ctx, "Invalid order code: "+err.Error())
	}

	if _, err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, "Failed to delete order", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPizzas handles GET /api/v1/pizzas - the menu.
func (s *Server) GetPizzas(ctx echo.Context) error {
	query := queries.NewGetAllPizzasQuery()

	pizzas, err := s.getAllPizzasHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, "Failed to retrieve pizzas", err)
	}

	response := make([]servers.Pizza, len(pizzas))
	for i, p := range pizzas {
		response[i] = servers.Pizza{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Description: optional(p.Description),
			Ingredients: p.Ingredients,
			Price:       p.Price.InexactFloat64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePizza handles POST /api/v1/pizzas - adds a pizza to the menu.
func (s *Server) CreatePizza(ctx echo.Context) error {
	var newPizza servers.NewPizza
	if err := ctx.Bind(&newPizza); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreatePizzaCommand(
		newPizza.Name, deref(newPizza.Description), newPizza.Ingredients,
		decimal.NewFromFloat(newPizza.Price))
	if err != nil {
		return badRequest(ctx, "Invalid pizza data: "+err.Error())
	}

	created, err := s.createPizzaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, "Failed to create pizza", err)
	}

	return ctx.JSON(http.StatusCreated, pizzaFromAggregate(created))
}

// UpdatePizza handles PUT /api/v1/pizzas/{id} - replaces a catalog entry.
func (s *Server) UpdatePizza(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.UpdatePizzaJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pizzaID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(ctx, "Invalid pizza id: "+err.Error())
	}

	cmd, err := commands.NewUpdatePizzaCommand(
		pizzaID, body.Name, deref(body.Description), body.Ingredients,
		decimal.NewFromFloat(body.Price))
	if err != nil {
		return badRequest(ctx, "Invalid pizza data: "+err.Error())
	}

	updated, err := s.updatePizzaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, "Failed to update pizza", err)
	}

	return ctx.JSON(http.StatusOK, pizzaFromAggregate(updated))
}

// DeletePizza handles DELETE /api/v1/pizzas/{id}. Deleting an absent entry
// succeeds.
func (s *Server) DeletePizza(ctx echo.Context, id openapi_types.UUID) error {
	pizzaID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(ctx, "Invalid pizza id: "+err.Error())
	}

	cmd, err := commands.NewDeletePizzaCommand(pizzaID)
	if err != nil {
		return badRequest(ctx, "Invalid pizza id: "+err.Error())
	}

	if _, err = s.deletePizzaHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, "Failed to delete pizza", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// requestedLines converts the incoming item payloads into command lines.
func requestedLines(items []servers.NewOrderItem) ([]commands.RequestedLine, error) {
	lines := make([]commands.RequestedLine, 0, len(items))
	for _, item := range items {
		pizzaID, err := kernel.UUIDFromBytes(item.PizzaId[:])
		if err != nil {
			return nil, err
		}

		line, err := commands.NewRequestedLine(pizzaID, deref(item.Note))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func orderFromReadModel(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			PizzaId:   item.PizzaID.Bytes(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			Note:      optional(item.Note),
		}
	}

	return servers.Order{
		Id:           o.ID.Bytes(),
		Code:         o.Code,
		Status:       servers.OrderStatus(o.Status.String()),
		CustomerName: o.CustomerName,
		PickupFrom:   o.PickupFrom,
		PickupTo:     o.PickupTo,
		Comment:      optional(o.Comment),
		CreatedAt:    o.CreatedAt,
		TotalPrice:   o.TotalPrice.InexactFloat64(),
		Items:        items,
	}
}

func orderFromAggregate(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.LineItems()))
	for i, item := range o.LineItems() {
		items[i] = servers.OrderItem{
			PizzaId:   item.PizzaID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().InexactFloat64(),
			Note:      optional(item.Note()),
		}
	}

	customer := o.Customer()
	return servers.Order{
		Id:           o.ID().Bytes(),
		Code:         o.Code(),
		Status:       servers.OrderStatus(o.Status().String()),
		CustomerName: customer.Name(),
		PickupFrom:   customer.PickupFrom(),
		PickupTo:     customer.PickupTo(),
		Comment:      optional(customer.Comment()),
		CreatedAt:    o.CreatedAt(),
		TotalPrice:   o.TotalPrice().InexactFloat64(),
		Items:        items,
	}
}

func pizzaFromAggregate(p *pizza.Pizza) servers.Pizza {
	return servers.Pizza{
		Id:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: optional(p.Description()),
		Ingredients: p.Ingredients(),
		Price:       p.Price().InexactFloat64(),
	}
}

// errorResponse maps application errors to HTTP responses. Not-found lookups
// become 404, state conflicts 409, rejected input 400 and everything else a
// generic 500 carrying the given message.
func errorResponse(ctx echo.Context, message string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, message+": "+err.Error())
	case errors.Is(err, commands.ErrAnotherOrderInProgress),
		errors.Is(err, pizza.ErrDuplicateName),
		errors.Is(err, order.ErrOnlyQueuedCanBeUpdated),
		errors.Is(err, order.ErrOnlyQueuedCanBeDeleted):
		return jsonError(ctx, http.StatusConflict, message+": "+err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrInvalidPickupWindow),
		errors.Is(err, commands.ErrNoValidItems):
		return jsonError(ctx, http.StatusBadRequest, message+": "+err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, message)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func jsonError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
