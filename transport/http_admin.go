package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	"github.com/muhammadheryan/kidswear/utils/errors"
	validatorx "github.com/muhammadheryan/kidswear/utils/validator"
)

// AdminLogin handler
// @Summary Admin login
// @Description Exchanges the shared admin credential for a session token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminLogout handler
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/logout [post]
func (s *RestHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := s.AdminApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"ok": true})
}

// AdminListOrders handler
// @Summary List orders
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.OrderListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/admin/orders [get]
func (s *RestHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)
	res, err := s.OrderApp.ListOrders(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminGetOrder handler
// @Summary Get order
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/orders/{id} [get]
func (s *RestHandler) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminUpdateOrderStatus handler
// @Summary Update order status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body model.StatusUpdateRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/admin/orders/{id}/status [patch]
func (s *RestHandler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.UpdateOrderStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminListPaymentEvents handler
// @Summary Payment webhook journal of an order
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {array} model.PaymentEvent
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/admin/orders/{id}/payment-events [get]
func (s *RestHandler) AdminListPaymentEvents(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentApp.ListPaymentEvents(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminListProducts handler
// @Summary List all products
// @Description Includes deactivated products
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ProductListResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/products [get]
func (s *RestHandler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r)
	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage, true)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminUpdateProduct handler
// @Summary Update product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.ProductUpdateRequest true "Changed fields"
// @Success 200 {object} model.Product
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/admin/products/{id} [patch]
func (s *RestHandler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), mux.Vars(r)["id"], req.Patch())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminDeleteProduct handler
// @Summary Deactivate product
// @Description Soft delete; the row stays for existing order items
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/products/{id} [delete]
func (s *RestHandler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.ProductApp.DeactivateProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"ok": true})
}
