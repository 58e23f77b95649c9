package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/kboat10/babs10/docs"
	authhandlers "github.com/kboat10/babs10/internal/handlers/auth"
	backuphandlers "github.com/kboat10/babs10/internal/handlers/backups"
	balancehandlers "github.com/kboat10/babs10/internal/handlers/balance"
	breakdownhandlers "github.com/kboat10/babs10/internal/handlers/breakdown"
	customerhandlers "github.com/kboat10/babs10/internal/handlers/customers"
	healthhandlers "github.com/kboat10/babs10/internal/handlers/health"
	ordershandlers "github.com/kboat10/babs10/internal/handlers/orders"
	"github.com/kboat10/babs10/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	ListCustomers(w http.ResponseWriter, r *http.Request)
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	DeleteCustomer(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrders(w http.ResponseWriter, r *http.Request)
	DeleteAllOrders(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	TopUp(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
}

type BreakdownHandler interface {
	CurrentOrderBreakdown(w http.ResponseWriter, r *http.Request)
	CustomerBreakdown(w http.ResponseWriter, r *http.Request)
}

type BackupHandler interface {
	ListBackups(w http.ResponseWriter, r *http.Request)
	RestoreBackup(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	CustomerHandler  CustomerHandler
	OrderHandler     OrderHandler
	BalanceHandler   BalanceHandler
	BreakdownHandler BreakdownHandler
	HealthHandler    HealthHandler
	BackupHandler    BackupHandler

	authMiddleware func(http.Handler) http.Handler
}

func New(s *service.Services, authMiddleware func(http.Handler) http.Handler, storage string) *Handlers {
	h := &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		CustomerHandler:  customerhandlers.New(s.CustomerService),
		OrderHandler:     ordershandlers.New(s.OrderService),
		BalanceHandler:   balancehandlers.New(s.BalanceService),
		BreakdownHandler: breakdownhandlers.New(s.BreakdownService),
		HealthHandler:    healthhandlers.New(storage),
		authMiddleware:   authMiddleware,
	}
	if s.BackupService != nil {
		h.BackupHandler = backuphandlers.New(s.BackupService)
	}
	return h
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler.Health)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.AuthHandler.Register)
			r.Get("/", h.AuthHandler.ListUsers)
			r.Post("/signin", h.AuthHandler.Login)
			r.Get("/{email}", h.AuthHandler.GetUser)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)
			r.Post("/breakdown", h.BreakdownHandler.CurrentOrderBreakdown)
			if h.BackupHandler != nil {
				r.Route("/backups", func(r chi.Router) {
					r.Get("/", h.BackupHandler.ListBackups)
					r.Post("/restore", h.BackupHandler.RestoreBackup)
				})
			}
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.CustomerHandler.ListCustomers)
				r.Post("/", h.CustomerHandler.CreateCustomer)
				r.Route("/{customerID}", func(r chi.Router) {
					r.Get("/", h.CustomerHandler.GetCustomer)
					r.Delete("/", h.CustomerHandler.DeleteCustomer)
					r.Post("/topup", h.BalanceHandler.TopUp)
					r.Post("/refund", h.BalanceHandler.Refund)
					r.Get("/breakdown", h.BreakdownHandler.CustomerBreakdown)
					r.Route("/orders", func(r chi.Router) {
						r.Post("/", h.OrderHandler.AddOrder)
						r.Delete("/", h.OrderHandler.DeleteOrders)
						r.Delete("/all", h.OrderHandler.DeleteAllOrders)
						r.Put("/{orderID}", h.OrderHandler.UpdateOrder)
					})
				})
			})
		})
	})

	return r
}
