package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const apiPrefix = "/api/v1"

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (GET /api/v1/dinners)
	GetDinners(ctx echo.Context, params GetDinnersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/active)
	GetActiveOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/dinners)
	AddDinner(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/menu-items)
	AddMenuItem(ctx echo.Context, orderID openapi_types.UUID) error
	// (DELETE /api/v1/orders/{orderId}/items/{itemId})
	RemoveOrderItem(ctx echo.Context, orderID openapi_types.UUID, itemID openapi_types.UUID) error
	// (PUT /api/v1/orders/{orderId}/charges)
	SetOrderCharges(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetDinners(ctx echo.Context) error {
	var params GetDinnersParams

	for name, dest := range map[string]**string{
		"currency":                &params.Currency,
		"englishBasePrice":        &params.EnglishBasePrice,
		"frenchBasePrice":         &params.FrenchBasePrice,
		"valentineBasePrice":      &params.ValentineBasePrice,
		"champagneFeastBasePrice": &params.ChampagneFeastBasePrice,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
	}

	return w.Handler.GetDinners(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddDinner(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddDinner(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddMenuItem(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddMenuItem(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	itemID, err := bindUUIDPathParam(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RemoveOrderItem(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) SetOrderCharges(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.SetOrderCharges(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si under /api/v1.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST(apiPrefix+"/customers", w.CreateCustomer)
	router.GET(apiPrefix+"/dinners", w.GetDinners)
	router.POST(apiPrefix+"/orders", w.CreateOrder)
	router.GET(apiPrefix+"/orders/active", w.GetActiveOrders)
	router.GET(apiPrefix+"/orders/:orderId", w.GetOrder)
	router.POST(apiPrefix+"/orders/:orderId/dinners", w.AddDinner)
	router.POST(apiPrefix+"/orders/:orderId/menu-items", w.AddMenuItem)
	router.DELETE(apiPrefix+"/orders/:orderId/items/:itemId", w.RemoveOrderItem)
	router.PUT(apiPrefix+"/orders/:orderId/charges", w.SetOrderCharges)
	router.POST(apiPrefix+"/orders/:orderId/confirm", w.ConfirmOrder)
	router.POST(apiPrefix+"/orders/:orderId/cancel", w.CancelOrder)
	router.POST(apiPrefix+"/orders/:orderId/status", w.ChangeOrderStatus)
}
