package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinner/api"
	"dinner/internal/core/application/usecases/commands"
	"dinner/internal/core/application/usecases/queries"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockQueryHandler[Q, R any] struct {
	mock.Mock
}

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}

var testNow = time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)

type testServer struct {
	echo    *echo.Echo
	metrics *metrics.Metrics

	createCustomer  *MockCommandHandler[commands.CreateCustomerCommand]
	createOrder     *MockCommandHandler[commands.CreateOrderCommand]
	addDinner       *MockCommandHandler[commands.AddDinnerToOrderCommand]
	addMenuItem     *MockCommandHandler[commands.AddMenuItemToOrderCommand]
	removeItem      *MockCommandHandler[commands.RemoveOrderItemCommand]
	setCharges      *MockCommandHandler[commands.SetOrderChargesCommand]
	confirmOrder    *MockCommandHandler[commands.ConfirmOrderCommand]
	cancelOrder     *MockCommandHandler[commands.CancelOrderCommand]
	advanceStatus   *MockCommandHandler[commands.AdvanceOrderStatusCommand]
	getOrder        *MockQueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	getActiveOrders *MockQueryHandler[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse]
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		createCustomer:  new(MockCommandHandler[commands.CreateCustomerCommand]),
		createOrder:     new(MockCommandHandler[commands.CreateOrderCommand]),
		addDinner:       new(MockCommandHandler[commands.AddDinnerToOrderCommand]),
		addMenuItem:     new(MockCommandHandler[commands.AddMenuItemToOrderCommand]),
		removeItem:      new(MockCommandHandler[commands.RemoveOrderItemCommand]),
		setCharges:      new(MockCommandHandler[commands.SetOrderChargesCommand]),
		confirmOrder:    new(MockCommandHandler[commands.ConfirmOrderCommand]),
		cancelOrder:     new(MockCommandHandler[commands.CancelOrderCommand]),
		advanceStatus:   new(MockCommandHandler[commands.AdvanceOrderStatusCommand]),
		getOrder:        new(MockQueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]),
		getActiveOrders: new(MockQueryHandler[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse]),
	}

	server := NewServer(Handlers{
		CreateCustomer:     ts.createCustomer,
		CreateOrder:        ts.createOrder,
		AddDinnerToOrder:   ts.addDinner,
		AddMenuItemToOrder: ts.addMenuItem,
		RemoveOrderItem:    ts.removeItem,
		SetOrderCharges:    ts.setCharges,
		ConfirmOrder:       ts.confirmOrder,
		CancelOrder:        ts.cancelOrder,
		AdvanceOrderStatus: ts.advanceStatus,
		GetOrder:           ts.getOrder,
		GetActiveOrders:    ts.getActiveOrders,
		GetDinnerCatalog:   queries.NewGetDinnerCatalogQueryHandler(),
	}, kernel.USD, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server.now = func() time.Time { return testNow }

	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	ts.metrics = metrics.New(prometheus.NewRegistry())
	ts.echo, err = NewRouter(server, doc, ts.metrics)
	require.NoError(t, err)

	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()
	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validAddress = `{"street":"1 Main St","city":"Springfield","postalCode":"12345","country":"US"}`

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateCustomer_Created(t *testing.T) {
	ts := newTestServer(t)
	ts.createCustomer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCustomerCommand) bool {
		return cmd.Email() == "ada@example.com" && cmd.Address().City() == "Springfield"
	})).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/customers",
		`{"name":"Ada","email":"ada@example.com","phone":"5551234567","address":`+validAddress+`}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created Created
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, [16]byte{}, [16]byte(created.ID))
	ts.createCustomer.AssertExpectations(t)
}

func TestCreateCustomer_MissingField_RejectedByContract(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/customers", `{"name":"Ada","phone":"5551234567","address":`+validAddress+`}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	ts.createCustomer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateCustomer_DuplicateEmail_Conflict(t *testing.T) {
	ts := newTestServer(t)
	ts.createCustomer.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsErrorWithCause("customer", "ada@example.com", nil)).Once()

	rec := ts.do(http.MethodPost, "/api/v1/customers",
		`{"name":"Ada","email":"ada@example.com","phone":"5551234567","address":`+validAddress+`}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateOrder_DefaultsCurrencyAndTime(t *testing.T) {
	ts := newTestServer(t)
	customerID := kernel.NewUUID()
	ts.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.CustomerID() == customerID &&
			cmd.Currency() == kernel.USD &&
			cmd.OrderTime().Equal(testNow) &&
			cmd.DeliveryAddress() == nil &&
			cmd.Notes() == "no onions"
	})).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"`+customerID.String()+`","notes":"no onions"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ts.createOrder.AssertExpectations(t)
}

func TestCreateOrder_UnknownCustomer_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("customer", "x")).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"`+kernel.NewUUID().String()+`","currency":"EUR","deliveryAddress":`+validAddress+`}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_ReturnsView(t *testing.T) {
	ts := newTestServer(t)
	orderID := kernel.NewUUID()
	ts.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID() == orderID
	})).Return(queries.GetOrderQueryResponse{
		ID:          orderID,
		CustomerID:  kernel.NewUUID(),
		Status:      "Pending",
		Currency:    "USD",
		OrderTime:   testNow,
		Items:       []queries.OrderItemView{{ID: kernel.NewUUID(), ProductName: "French dinner", ProductKind: "FrenchDinner", UnitPrice: "53.50", Quantity: 2, TotalPrice: "107.00", PreparationTimeMinutes: 10}},
		Subtotal:    "107.00",
		Tax:         "0.00",
		DeliveryFee: "0.00",
		TotalAmount: "107.00",
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "107.00", body.TotalAmount)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "FrenchDinner", body.Items[0].ProductKind)
	assert.Nil(t, body.EstimatedDeliveryTime)
}

func TestGetOrder_MalformedID_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetActiveOrders(t *testing.T) {
	ts := newTestServer(t)
	ts.getActiveOrders.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetActiveOrdersQueryResponse{
		{ID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), Status: "Confirmed", OrderTime: testNow, TotalAmount: "37.00", Currency: "USD", ItemCount: 1},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/orders/active", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []ActiveOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Confirmed", body[0].Status)
}

func TestAddDinner_Created(t *testing.T) {
	ts := newTestServer(t)
	orderID := kernel.NewUUID()
	ts.addDinner.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddDinnerToOrderCommand) bool {
		return cmd.OrderID() == orderID &&
			cmd.Policy().Name() == "French" &&
			cmd.BasePrice().String() == "30" &&
			cmd.Quantity() == 2
	})).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/dinners",
		`{"policy":"FrenchDinner","name":"Bistro","basePrice":"30","quantity":2}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ts.addDinner.AssertExpectations(t)
}

func TestAddDinner_UnknownServingStyle_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/dinners",
		`{"policy":"ChampagneFeast","name":"Gala","basePrice":"100","servingStyle":"Picnic","quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.addDinner.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAddDinner_DisallowedStyle_BadRequest(t *testing.T) {
	ts := newTestServer(t)
	ts.addDinner.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewValueIsInvalidError("servingStyle")).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/dinners",
		`{"policy":"ChampagneFeast","name":"Gala","basePrice":"100","servingStyle":"Buffet","quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "servingStyle")
}

func TestAddDinner_FinalOrder_Conflict(t *testing.T) {
	ts := newTestServer(t)
	ts.addDinner.On("Handle", mock.Anything, mock.Anything).Return(order.ErrOrderIsImmutable).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/dinners",
		`{"policy":"English","name":"Roast","basePrice":"25","quantity":1}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddMenuItem_Created(t *testing.T) {
	ts := newTestServer(t)
	ts.addMenuItem.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/menu-items",
		`{"name":"Tiramisu","price":"7.50","itemType":"Dessert","preparationTimeMinutes":4,"quantity":1}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ts.addMenuItem.AssertExpectations(t)
}

func TestRemoveOrderItem_NoContent(t *testing.T) {
	ts := newTestServer(t)
	orderID, itemID := kernel.NewUUID(), kernel.NewUUID()
	ts.removeItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RemoveOrderItemCommand) bool {
		return cmd.OrderID() == orderID && cmd.ItemID() == itemID
	})).Return(nil).Once()

	rec := ts.do(http.MethodDelete, "/api/v1/orders/"+orderID.String()+"/items/"+itemID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.removeItem.AssertExpectations(t)
}

func TestSetOrderCharges(t *testing.T) {
	ts := newTestServer(t)
	ts.setCharges.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetOrderChargesCommand) bool {
		return cmd.Tax().String() == "4.2" && cmd.DeliveryFee().String() == "5"
	})).Return(nil).Once()

	rec := ts.do(http.MethodPut, "/api/v1/orders/"+kernel.NewUUID().String()+"/charges",
		`{"tax":"4.20","deliveryFee":"5"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.setCharges.AssertExpectations(t)
}

func TestSetOrderCharges_Negative_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPut, "/api/v1/orders/"+kernel.NewUUID().String()+"/charges",
		`{"tax":"-1","deliveryFee":"5"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmOrder(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"confirmed", nil, http.StatusNoContent},
		{"empty order", order.ErrOrderIsEmpty, http.StatusConflict},
		{"already confirmed", errs.NewInvalidStateTransitionError("Confirmed", "Confirmed"), http.StatusConflict},
		{"unknown order", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.confirmOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ConfirmOrderCommand) bool {
				return cmd.ConfirmedAt().Equal(testNow)
			})).Return(tt.err).Once()

			rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/confirm", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
			}
		})
	}
}

func TestCancelOrder(t *testing.T) {
	ts := newTestServer(t)
	ts.cancelOrder.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChangeOrderStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.advanceStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderStatusCommand) bool {
		return cmd.Target() == order.Preparing
	})).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"Preparing"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.advanceStatus.AssertExpectations(t)
}

func TestChangeOrderStatus_UnknownStatus_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"Eaten"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDinners(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/dinners?currency=EUR&frenchBasePrice=40", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body []Dinner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 4)
	assert.Equal(t, "English", body[0].Policy)
	assert.Equal(t, "37.00", body[0].TotalPrice)
	assert.Equal(t, "French", body[1].Policy)
	assert.Equal(t, "66.00", body[1].TotalPrice)
	assert.Equal(t, "EUR", body[1].Currency)
}

func TestGetDinners_EveryBasePriceOverride(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet,
		"/api/v1/dinners?englishBasePrice=20&frenchBasePrice=40&valentineBasePrice=50&champagneFeastBasePrice=200", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body []Dinner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	totals := make(map[string]string, len(body))
	for _, d := range body {
		totals[d.Policy] = d.TotalPrice
	}
	assert.Equal(t, map[string]string{
		"English":        "32.00",
		"French":         "66.00",
		"Valentine":      "73.00",
		"ChampagneFeast": "415.00",
	}, totals)
}

func TestGetDinners_InvalidCurrency_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/dinners?currency=euro", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute_NotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/kitchens", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestMetrics_RecordsLatency(t *testing.T) {
	ts := newTestServer(t)
	ts.do(http.MethodGet, "/health", "")

	rec := ts.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dinner_http_request_duration_ms_count{code="200",method="GET",route="/health"} 1`)
}

func TestSwaggerDoc(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/{orderId}")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), http.StatusBadRequest},
		{errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{errs.NewCurrencyMismatchError("USD", "EUR"), http.StatusConflict},
		{commands.ErrCustomerIsNotActive, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
