package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/config"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/middleware"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Organization OrganizationHandler
	Employee     EmployeeHandler
	Invitation   InvitationHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	News         NewsHandler
	Recruitment  RecruitmentHandler
	Document     DocumentHandler
}

func NewRouter(cfg config.AppConfig, jwtService jwt.Service, ac *middleware.AccessControl, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "augment-hr"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			// Requires authentication but no active organization
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/select-organization", h.Auth.SelectOrganization)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/organizations", h.Organization.Create)
			r.Get("/organizations/memberships", h.Organization.ListMemberships)
			r.Post("/invitations/accept", h.Invitation.Accept)

			// Requires an active organization
			r.Group(func(r chi.Router) {
				r.Use(ac.WithTenant)

				r.Get("/organizations/my", h.Organization.GetMine)

				r.Route("/employees", func(r chi.Router) {
					r.With(middleware.Require(ability.CapabilityRead, ability.SubjectEmployee)).
						Get("/", h.Employee.List)
					r.With(middleware.Require(ability.CapabilityRead, ability.SubjectEmployee)).
						Get("/{id}", h.Employee.Get)
					r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectEmployee)).
						Put("/{id}", h.Employee.Update)
					r.With(middleware.Require(ability.CapabilityDelete, ability.SubjectEmployee)).
						Delete("/{id}", h.Employee.Terminate)

					r.Route("/{employeeID}/salary-settings", func(r chi.Router) {
						r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectSalarySettings)).
							Put("/", h.Payroll.UpsertSalarySettings)
						r.With(middleware.RequireOwnedOr(ability.CapabilityRead, ability.SubjectSalarySettings)).
							Get("/", h.Payroll.GetSalarySettings)
					})
				})

				r.Route("/invitations", func(r chi.Router) {
					// Inviting creates a membership, so it rides on the
					// Employee create grant.
					r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectEmployee)).
						Post("/", h.Invitation.Create)
					r.With(middleware.Require(ability.CapabilityRead, ability.SubjectEmployee)).
						Get("/", h.Invitation.List)
				})

				r.Route("/attendances", func(r chi.Router) {
					// Clocking is always a self operation; no grant needed.
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
					r.With(middleware.RequireOwnedOr(ability.CapabilityRead, ability.SubjectAttendance)).
						Get("/", h.Attendance.List)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Route("/policies", func(r chi.Router) {
						r.Get("/", h.Leave.ListPolicies)
						r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectLeavePolicy)).
							Post("/", h.Leave.CreatePolicy)
						r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectLeavePolicy)).
							Put("/{id}", h.Leave.UpdatePolicy)
						r.With(middleware.Require(ability.CapabilityDelete, ability.SubjectLeavePolicy)).
							Delete("/{id}", h.Leave.DeletePolicy)
					})

					r.Route("/requests", func(r chi.Router) {
						r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectLeaveRequest)).
							Post("/", h.Leave.CreateRequest)
						r.With(middleware.RequireOwnedOr(ability.CapabilityRead, ability.SubjectLeaveRequest)).
							Get("/", h.Leave.ListRequests)
						r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectLeaveRequest)).
							Patch("/{id}/review", h.Leave.ReviewRequest)
					})
				})

				r.Route("/payrolls", func(r chi.Router) {
					r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectPayroll)).
						Post("/", h.Payroll.GenerateRecord)
					r.With(middleware.RequireOwnedOr(ability.CapabilityRead, ability.SubjectPayroll)).
						Get("/", h.Payroll.ListRecords)
					r.With(middleware.RequireOwnedOr(ability.CapabilityRead, ability.SubjectPayroll)).
						Get("/{id}", h.Payroll.GetRecord)
					r.With(middleware.RequireOwnedOr(ability.CapabilityRead, ability.SubjectPayroll)).
						Get("/{id}/payslip", h.Payroll.DownloadPayslip)
					r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectPayroll)).
						Patch("/{id}/payment-status", h.Payroll.UpdatePaymentStatus)
				})

				r.Route("/news", func(r chi.Router) {
					r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectNews)).
						Post("/", h.News.Create)
					r.With(middleware.Require(ability.CapabilityRead, ability.SubjectNews)).
						Get("/", h.News.List)
					r.With(middleware.Require(ability.CapabilityRead, ability.SubjectNews)).
						Get("/{id}", h.News.Get)
					r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectNews)).
						Put("/{id}", h.News.Update)
					r.With(middleware.Require(ability.CapabilityDelete, ability.SubjectNews)).
						Delete("/{id}", h.News.Delete)
				})

				r.Route("/recruitments", func(r chi.Router) {
					r.Route("/postings", func(r chi.Router) {
						r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectRecruitment)).
							Post("/", h.Recruitment.CreatePosting)
						r.With(middleware.Require(ability.CapabilityRead, ability.SubjectRecruitment)).
							Get("/", h.Recruitment.ListPostings)
						r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectRecruitment)).
							Patch("/{id}", h.Recruitment.UpdatePosting)
						r.With(middleware.Require(ability.CapabilityCreate, ability.SubjectRecruitment)).
							Post("/{id}/candidates", h.Recruitment.AddCandidate)
						r.With(middleware.Require(ability.CapabilityRead, ability.SubjectRecruitment)).
							Get("/{id}/candidates", h.Recruitment.ListCandidates)
					})

					r.Route("/candidates/{candidateID}", func(r chi.Router) {
						r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectRecruitment)).
							Post("/resume", h.Recruitment.UploadResume)
						r.With(middleware.Require(ability.CapabilityUpdate, ability.SubjectRecruitment)).
							Post("/screen", h.Recruitment.ScreenCandidate)
					})
				})

				r.Route("/documents", func(r chi.Router) {
					// Self uploads and deletes are resolved in the service.
					r.Post("/", h.Document.Upload)
					r.With(middleware.Require(ability.CapabilityRead, ability.SubjectDocument)).
						Get("/", h.Document.List)
					r.Delete("/{id}", h.Document.Delete)
				})
			})
		})
	})

	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))).ServeHTTP(w, r)
	})

	return r
}
