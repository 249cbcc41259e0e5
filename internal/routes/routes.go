package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	"github.com/BruksfildServices01/clinica-api/internal/config"
	photodomain "github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinica-api/internal/infra/repository"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
	"github.com/BruksfildServices01/clinica-api/internal/middleware"
	"github.com/BruksfildServices01/clinica-api/internal/observability"
	"github.com/BruksfildServices01/clinica-api/internal/timezone"
	ucAnnotation "github.com/BruksfildServices01/clinica-api/internal/usecase/annotation"
	ucBudget "github.com/BruksfildServices01/clinica-api/internal/usecase/budget"
	ucPatient "github.com/BruksfildServices01/clinica-api/internal/usecase/patient"
	ucPhoto "github.com/BruksfildServices01/clinica-api/internal/usecase/photo"
)

// Deps são os singletons montados no main.
type Deps struct {
	DB     *gorm.DB
	Photos photodomain.Store
	Config *config.Config
	Log    *logger.Logger
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(observability.Middleware(cfg.ServiceName))
	r.Use(middleware.AttachTraceContext())
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	patientRepo := infraRepo.NewPatientGormRepository(deps.DB)
	annotationRepo := infraRepo.NewAnnotationGormRepository(deps.DB)
	budgetRepo := infraRepo.NewBudgetGormRepository(deps.DB)

	loc := timezone.Location(cfg.ClinicTimezone)

	// ======================================================
	// USE CASES - FOTOS
	// ======================================================
	folders := ucPhoto.NewFolders(patientRepo, deps.Photos, deps.Log)
	renameFolderUC := ucPhoto.NewRenameFolder(folders, deps.Photos, deps.Log)

	photoHandler := handlers.NewPhotoHandler(
		ucPhoto.NewSaveImage(folders, deps.Photos, loc, deps.Log),
		ucPhoto.NewListImages(folders, deps.Photos, loc),
		ucPhoto.NewUpdateImage(folders, deps.Photos),
		ucPhoto.NewDeleteImage(folders, deps.Photos),
	)

	// ======================================================
	// USE CASES - PACIENTES / ANOTAÇÕES / ORÇAMENTOS
	// ======================================================
	patientHandler := handlers.NewPatientHandler(
		ucPatient.NewCreatePatient(patientRepo, deps.Audit),
		ucPatient.NewListPatients(patientRepo),
		ucPatient.NewGetPatient(patientRepo),
		ucPatient.NewGetDetails(patientRepo, annotationRepo),
		ucPatient.NewUpdatePatient(patientRepo, renameFolderUC, deps.Audit, deps.Log),
		ucPatient.NewDeletePatient(patientRepo, deps.Audit),
	)

	annotationHandler := handlers.NewAnnotationHandler(
		ucAnnotation.NewAddAnnotation(annotationRepo, patientRepo, deps.Audit, cfg.AnnotationClientEpoch),
		ucAnnotation.NewListAnnotations(annotationRepo, patientRepo),
		ucAnnotation.NewUpdateAnnotation(annotationRepo, deps.Audit),
		ucAnnotation.NewDeleteAnnotation(annotationRepo, deps.Audit),
	)

	budgetHandler := handlers.NewBudgetHandler(
		ucBudget.NewCreateBudget(budgetRepo, patientRepo, deps.Audit),
		ucBudget.NewListBudgets(budgetRepo, patientRepo),
		ucBudget.NewListDescriptions(budgetRepo, patientRepo),
		ucBudget.NewUpdateBudget(budgetRepo, deps.Audit),
		ucBudget.NewDeleteBudget(budgetRepo, deps.Audit),
		ucBudget.NewItems(budgetRepo, deps.Audit),
		ucBudget.NewPayments(budgetRepo, deps.Audit),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/health", healthHandler.Health)

	pacientes := r.Group("/pacientes")
	{
		pacientes.POST("", patientHandler.Create)
		pacientes.GET("", patientHandler.List)
		pacientes.GET("/:id", patientHandler.Get)
		pacientes.PUT("/:id", patientHandler.Update)
		pacientes.DELETE("/:id", patientHandler.Delete)
	}

	paciente := r.Group("/paciente/:id")
	{
		paciente.GET("", patientHandler.Details)

		paciente.GET("/anotacoes", annotationHandler.List)
		paciente.POST("/anotacoes", annotationHandler.Create)
		paciente.PUT("/anotacoes/:epoch", annotationHandler.Update)
		paciente.DELETE("/anotacoes/:epoch", annotationHandler.Delete)

		paciente.GET("/orcamentos", budgetHandler.List)
		paciente.POST("/orcamentos", budgetHandler.Create)
		paciente.GET("/orcamentos/descricoes", budgetHandler.Descriptions)
		paciente.PUT("/orcamentos/:budgetId", budgetHandler.Update)
		paciente.DELETE("/orcamentos/:budgetId", budgetHandler.Delete)
	}

	orcamentos := r.Group("/orcamentos/:id")
	{
		orcamentos.POST("/itens", budgetHandler.AddItem)
		orcamentos.PUT("/itens/:itemId", budgetHandler.UpdateItem)
		orcamentos.DELETE("/itens/:itemId", budgetHandler.DeleteItem)

		orcamentos.POST("/pagamentos", budgetHandler.AddPayment)
		orcamentos.PUT("/pagamentos/:paymentId", budgetHandler.UpdatePayment)
		orcamentos.DELETE("/pagamentos/:paymentId", budgetHandler.DeletePayment)
	}

	// ------------------------------
	// FOTOS (rotas herdadas do front)
	// ------------------------------
	r.POST("/save_image", photoHandler.Save)
	r.PUT("/update_image", photoHandler.Update)
	r.GET("/get_images", photoHandler.List)
	r.DELETE("/delete_image", photoHandler.Delete)

	r.GET("/audit_logs", auditLogsHandler.List)
}
