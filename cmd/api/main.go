package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/config"
	appHTTP "github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/middleware"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/cache"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/database"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/email"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/jwt"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/oauth"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/screening"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/storage"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/repository/postgresql"
	attendanceService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/attendance"
	authService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/auth"
	documentService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/document"
	employeeService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/employee"
	invitationService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/invitation"
	leaveService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/leave"
	newsService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/news"
	organizationService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/organization"
	payrollService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/payroll"
	recruitmentService "github.com/aiaugments-collab/Augment-HR-sub000/internal/service/recruitment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leavePolicyRepo := postgresql.NewLeavePolicyRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	newsRepo := postgresql.NewNewsRepository(db)
	recruitmentRepo := postgresql.NewRecruitmentRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	screeningClient := screening.NewClient(cfg.Screening.BaseURL, cfg.Screening.APIKey)
	employeeCache := cache.NewEmployeeCache(employeeRepo)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService, googleService)
	organizationSvc := organizationService.NewOrganizationService(db, organizationRepo, employeeRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, employeeCache)
	invitationSvc := invitationService.NewInvitationService(db, invitationRepo, employeeRepo, organizationRepo, userRepo, emailService, cfg.App, cfg.Invitation)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leavePolicyRepo, leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, organizationRepo, leaveRequestRepo)
	newsSvc := newsService.NewNewsService(newsRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(recruitmentRepo, fileStorage, screeningClient)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileStorage)

	accessControl := middleware.NewAccessControl(employeeCache)

	router := appHTTP.NewRouter(cfg.App, jwtService, accessControl, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Organization: appHTTP.NewOrganizationHandler(organizationSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Invitation:   appHTTP.NewInvitationHandler(invitationSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		News:         appHTTP.NewNewsHandler(newsSvc),
		Recruitment:  appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
