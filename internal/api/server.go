package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okhotin/habitlog/internal/service"
)

type Server struct {
	mx            *chi.Mux
	userService   service.UserServiceI
	habitsService service.HabitsServiceI
	logsService   service.HabitLogsServiceI
	jwtService    JWTServiceI
}

type ServicesList struct {
	UserService   service.UserServiceI
	HabitsService service.HabitsServiceI
	LogsService   service.HabitLogsServiceI
	JwtService    JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:            chi.NewMux(),
		userService:   servicesOptions.UserService,
		habitsService: servicesOptions.HabitsService,
		logsService:   servicesOptions.LogsService,
		jwtService:    servicesOptions.JwtService,
	}
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Post("/users", s.Register)
	s.mx.Post("/users/token", s.Token)
	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Delete("/users/{id}", s.DeleteUser)
		r.Post("/habits", s.CreateHabit)
		r.Get("/habits", s.GetHabits)
		r.Get("/habits/{id}", s.GetHabit)
		r.Put("/habits/{id}", s.UpdateHabit)
		r.Delete("/habits/{id}", s.DeleteHabit)
		r.Post("/habits/{id}/track", s.TrackHabit)
		r.Get("/habits/{id}/log", s.GetHabitLogs)
		r.Get("/habits/{id}/stats", s.GetHabitStats)
		r.Delete("/habits/{id}/track/{date}", s.UntrackHabit)
	})
}

func (s *Server) Run(addr string) error {
	s.registerRoutes()
	slog.Info("starting server", slog.String("addr", addr))
	return http.ListenAndServe(addr, s.mx)
}
