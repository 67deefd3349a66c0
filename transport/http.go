package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/kidswear/application/admin"
	"github.com/muhammadheryan/kidswear/application/order"
	"github.com/muhammadheryan/kidswear/application/payment"
	"github.com/muhammadheryan/kidswear/application/product"
	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/utils/errors"
	validatorx "github.com/muhammadheryan/kidswear/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

const maxBodyBytes = 1 << 20

type RestHandler struct {
	Config     *config.Config
	OrderApp   order.OrderApp
	PaymentApp payment.PaymentApp
	ProductApp product.ProductApp
	AdminApp   admin.AdminApp
}

func NewTransport(rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)
	router.HandleFunc(payment.MockPaymentPath, rh.MockPaymentPage).Methods(http.MethodGet)

	// Public routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	api.HandleFunc("/payments/{gateway:bkash|nagad}", rh.InitiatePayment).Methods(http.MethodPost)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)

	// Gateway callbacks
	webhooks := api.PathPrefix("/webhooks").Subrouter()
	webhooks.HandleFunc("/{gateway:bkash|nagad}", rh.PaymentWebhook).Methods(http.MethodPost)
	webhooks.Use(WebhookMiddleware(rh.Config))

	// Admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.HandleFunc("/login", rh.AdminLogin).Methods(http.MethodPost)
	adminRouter.HandleFunc("/logout", rh.AdminLogout).Methods(http.MethodPost)
	adminRouter.HandleFunc("/orders", rh.AdminListOrders).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}", rh.AdminGetOrder).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}/status", rh.AdminUpdateOrderStatus).Methods(http.MethodPatch)
	adminRouter.HandleFunc("/orders/{id}/payment-events", rh.AdminListPaymentEvents).Methods(http.MethodGet)
	adminRouter.HandleFunc("/products", rh.AdminListProducts).Methods(http.MethodGet)
	adminRouter.HandleFunc("/products/{id}", rh.AdminUpdateProduct).Methods(http.MethodPatch)
	adminRouter.HandleFunc("/products/{id}", rh.AdminDeleteProduct).Methods(http.MethodDelete)
	adminRouter.Use(AuthMiddleware(rh.AdminApp))

	// middleware
	router.Use(LoggingMiddleware())

	return router
}

// decodeBody reads a JSON body into dst. Unparseable input is a malformed
// request, not a validation failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// CreateOrder handler
// @Summary Create order
// @Description Prices the cart from the catalog and stores a pending order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.OrderSubmission true "Order submission"
// @Success 200 {object} model.CreateOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderSubmission
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	req.Normalize()
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Description Order with its items
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// InitiatePayment handler
// @Summary Start a payment
// @Description Issues a mock payment session and returns the redirect URL
// @Tags Payments
// @Accept json
// @Produce json
// @Param gateway path string true "Gateway" Enums(bkash, nagad)
// @Param request body model.PaymentRequest true "Payment request"
// @Success 200 {object} model.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/payments/{gateway} [post]
func (s *RestHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PaymentRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	gateway := constant.PaymentMethod(mux.Vars(r)["gateway"])
	res, err := s.PaymentApp.InitiatePayment(ctx, gateway, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PaymentWebhook handler
// @Summary Payment gateway callback
// @Description Applies a payment result. Replays of a completed payment succeed without changes.
// @Tags Payments
// @Accept json
// @Produce json
// @Param gateway path string true "Gateway" Enums(bkash, nagad)
// @Param X-Webhook-Secret header string false "Shared webhook secret"
// @Param request body model.WebhookRequest true "Webhook payload"
// @Success 200 {object} model.WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/webhooks/{gateway} [post]
func (s *RestHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.WebhookRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	gateway := constant.PaymentMethod(mux.Vars(r)["gateway"])
	res, err := s.PaymentApp.HandleWebhook(ctx, gateway, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Description Active catalog entries
// @Tags Products
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ProductListResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)
	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage, false)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.GetProduct(r.Context(), mux.Vars(r)["id"], false)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
