package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/correduria/backoffice/internal/application/auth"
	"github.com/correduria/backoffice/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.Usecase
	UserUC      *usecase.UserUsecase
	CompanyUC   *usecase.CompanyUsecase
	EmployeeUC  *usecase.EmployeeUsecase
	CustomerUC  *usecase.CustomerUsecase
	InsuranceUC *usecase.InsuranceUsecase
	IssueUC     *usecase.IssueUsecase
}

// Router registra las rutas de la API. Solo /login es pública; todo lo demás
// pasa por el middleware de autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/user", authHandler.Me)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Show)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/get-my-company-id", companyHandler.MyCompanyID)
	companies := protected.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.Show)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	protected.Get("/get-my-employees", employeeHandler.Mine)
	employees := protected.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.Show)
	employees.Get("/:id/get-employee-detail", employeeHandler.Detail)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	protected.Get("/get-my-customers", customerHandler.Mine)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.Show)
	customers.Get("/:id/get-customer-detail", customerHandler.Detail)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	insuranceHandler := NewInsuranceHandler(deps.InsuranceUC)
	protected.Get("/get-my-insurances", insuranceHandler.Mine)
	insurances := protected.Group("/insurances")
	insurances.Get("/", insuranceHandler.List)
	insurances.Post("/", insuranceHandler.Create)
	insurances.Get("/:id", insuranceHandler.Show)
	insurances.Get("/:id/get-insurance-detail", insuranceHandler.Detail)
	insurances.Put("/:id", insuranceHandler.Update)
	insurances.Delete("/:id", insuranceHandler.Delete)

	issueHandler := NewIssueHandler(deps.IssueUC)
	protected.Get("/get-my-issues", issueHandler.Mine)
	issues := protected.Group("/issues")
	issues.Get("/", issueHandler.List)
	issues.Post("/", issueHandler.Create)
	issues.Get("/:id", issueHandler.Show)
	issues.Put("/:id", issueHandler.Update)
	issues.Delete("/:id", issueHandler.Delete)

	// Fallback para rutas desconocidas.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Ruta no encontrada",
			"success": false,
			"error":   "404 Not Found",
		})
	})
}
