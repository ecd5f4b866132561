package http

import (
	"caters-backend/internal/handlers"
	"caters-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	eventHandler *handlers.EventHandler,
	menuHandler *handlers.MenuHandler,
	paymentHandler *handlers.PaymentHandler,
	expenseHandler *handlers.ExpenseHandler,
	healthHandler *handlers.HealthHandler,
	systemHandler *handlers.SystemHandler,
	backupHandler *handlers.BackupHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Auth
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")
	authAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Protected API routes - Customers (no delete; customer records are kept)
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")

	// Protected API routes - Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}", orderHandler.DeleteOrder).Methods("DELETE")
	ordersAPI.HandleFunc("/{id}/pdf", orderHandler.OrderPDF).Methods("GET")

	// Protected API routes - Events (every mutation triggers the rollup chain)
	eventsAPI := r.PathPrefix("/api/events").Subrouter()
	eventsAPI.Use(authMiddleware.Authenticate)
	eventsAPI.HandleFunc("", eventHandler.ListEvents).Methods("GET")
	eventsAPI.HandleFunc("", eventHandler.CreateEvent).Methods("POST")
	eventsAPI.HandleFunc("/{id}", eventHandler.GetEvent).Methods("GET")
	eventsAPI.HandleFunc("/{id}", eventHandler.UpdateEvent).Methods("PUT")
	eventsAPI.HandleFunc("/{id}", eventHandler.DeleteEvent).Methods("DELETE")

	// Protected API routes - Menus
	menusAPI := r.PathPrefix("/api/menus").Subrouter()
	menusAPI.Use(authMiddleware.Authenticate)
	menusAPI.HandleFunc("", menuHandler.ListMenus).Methods("GET")
	menusAPI.HandleFunc("", menuHandler.CreateMenu).Methods("POST")
	menusAPI.HandleFunc("/{id}", menuHandler.GetMenu).Methods("GET")
	menusAPI.HandleFunc("/{id}", menuHandler.UpdateMenu).Methods("PUT")
	menusAPI.HandleFunc("/{id}", menuHandler.DeleteMenu).Methods("DELETE")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.UpdatePayment).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.DeletePayment).Methods("DELETE")

	// Protected API routes - Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")
	expensesAPI.HandleFunc("/{id}", expenseHandler.GetExpense).Methods("GET")
	expensesAPI.HandleFunc("/{id}", expenseHandler.UpdateExpense).Methods("PUT")
	expensesAPI.HandleFunc("/{id}", expenseHandler.DeleteExpense).Methods("DELETE")

	// Protected API routes - Operations
	systemAPI := r.PathPrefix("/api/system").Subrouter()
	systemAPI.Use(authMiddleware.Authenticate)
	systemAPI.HandleFunc("/stats", systemHandler.SystemStats).Methods("GET")

	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.Authenticate)
	adminAPI.HandleFunc("/backup", backupHandler.RunBackup).Methods("POST")
	adminAPI.HandleFunc("/activity", authHandler.Activity).Methods("GET")

	return r
}
