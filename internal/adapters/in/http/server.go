package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dinner/internal/core/application/usecases/commands"
	"dinner/internal/core/application/usecases/queries"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// CommandHandler is implemented by every handler in the commands package except the batch ones.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is implemented by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	CreateCustomer     CommandHandler[commands.CreateCustomerCommand]
	CreateOrder        CommandHandler[commands.CreateOrderCommand]
	AddDinnerToOrder   CommandHandler[commands.AddDinnerToOrderCommand]
	AddMenuItemToOrder CommandHandler[commands.AddMenuItemToOrderCommand]
	RemoveOrderItem    CommandHandler[commands.RemoveOrderItemCommand]
	SetOrderCharges    CommandHandler[commands.SetOrderChargesCommand]
	ConfirmOrder       CommandHandler[commands.ConfirmOrderCommand]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	AdvanceOrderStatus CommandHandler[commands.AdvanceOrderStatusCommand]

	GetOrder         QueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetActiveOrders  QueryHandler[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse]
	GetDinnerCatalog QueryHandler[queries.GetDinnerCatalogQuery, []queries.DinnerCatalogEntry]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers        Handlers
	defaultCurrency kernel.Currency
	now             func() time.Time
	logger          *slog.Logger
}

// NewServer creates a new HTTP server. Orders placed without a currency use defaultCurrency.
func NewServer(handlers Handlers, defaultCurrency kernel.Currency, logger *slog.Logger) *Server {
	return &Server{
		handlers:        handlers,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
		logger:          logger.With("component", "http_server"),
	}
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	address, err := toAddress(body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, body.Name, body.Email, body.Phone, address)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: customerID.Bytes()})
}

// GetDinners handles GET /api/v1/dinners - prices every dinner policy.
func (s *Server) GetDinners(ctx echo.Context, params GetDinnersParams) error {
	currency := s.defaultCurrency
	if params.Currency != nil {
		currency = kernel.Currency(*params.Currency)
	}

	overrides := make(map[string]decimal.Decimal)
	for name, raw := range map[string]*string{
		menu.English.Name():        params.EnglishBasePrice,
		menu.French.Name():         params.FrenchBasePrice,
		menu.Valentine.Name():      params.ValentineBasePrice,
		menu.ChampagneFeast.Name(): params.ChampagneFeastBasePrice,
	} {
		if raw == nil {
			continue
		}
		price, err := parseAmount(name+"BasePrice", *raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		overrides[name] = price
	}

	query, err := queries.NewGetDinnerCatalogQuery(currency, overrides)
	if err != nil {
		return s.fail(ctx, err)
	}

	catalog, err := s.handlers.GetDinnerCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Dinner, len(catalog))
	for i, entry := range catalog {
		response[i] = toDinner(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens an empty order for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	currency := s.defaultCurrency
	if body.Currency != nil {
		currency = kernel.Currency(*body.Currency)
	}

	var address *kernel.Address
	if body.DeliveryAddress != nil {
		a, addrErr := toAddress(*body.DeliveryAddress)
		if addrErr != nil {
			return s.fail(ctx, addrErr)
		}
		address = &a
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, address, currency, s.now().UTC(), deref(body.Notes))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders that are not final.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:                    o.ID.Bytes(),
			CustomerID:            o.CustomerID.Bytes(),
			Status:                o.Status,
			OrderTime:             o.OrderTime,
			TotalAmount:           o.TotalAmount,
			Currency:              o.Currency,
			ItemCount:             o.ItemCount,
			EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// AddDinner handles POST /api/v1/orders/{orderId}/dinners.
func (s *Server) AddDinner(ctx echo.Context, orderID openapi_types.UUID) error {
	var body NewDinnerLine
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	policy, err := menu.ParsePolicy(body.Policy)
	if err != nil {
		return s.fail(ctx, err)
	}
	basePrice, err := parseAmount("basePrice", body.BasePrice)
	if err != nil {
		return s.fail(ctx, err)
	}
	style := menu.UnknownServingStyle
	if body.ServingStyle != nil {
		if style, err = menu.ParseServingStyle(*body.ServingStyle); err != nil {
			return s.fail(ctx, err)
		}
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddDinnerToOrderCommand(
		id, itemID, policy, body.Name, deref(body.Description), basePrice, style, body.Quantity,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddDinnerToOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.Bytes()})
}

// AddMenuItem handles POST /api/v1/orders/{orderId}/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context, orderID openapi_types.UUID) error {
	var body NewMenuItemLine
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := parseAmount("price", body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	itemType, err := menu.ParseItemType(body.ItemType)
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemToOrderCommand(
		id, itemID, body.Name, deref(body.Description), price, itemType, body.PreparationTimeMinutes, body.Quantity,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddMenuItemToOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.Bytes()})
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error {
	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	iid, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(oid, iid)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderCharges handles PUT /api/v1/orders/{orderId}/charges.
func (s *Server) SetOrderCharges(ctx echo.Context, orderID openapi_types.UUID) error {
	var body OrderCharges
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	tax, err := parseAmount("tax", body.Tax)
	if err != nil {
		return s.fail(ctx, err)
	}
	fee, err := parseAmount("deliveryFee", body.DeliveryFee)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetOrderChargesCommand(id, tax, fee)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SetOrderCharges.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(id, s.now().UTC())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, target, s.now().UTC())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
