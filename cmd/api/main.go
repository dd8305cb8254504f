// @title Habit-log API
// @description REST backend for tracking daily habit completions
// @schemes http
package main

import (
	"log"

	"github.com/okhotin/habitlog/internal/api"
	"github.com/okhotin/habitlog/internal/repository"
	"github.com/okhotin/habitlog/internal/service"
	"github.com/okhotin/habitlog/pkg/cleanup"
	"github.com/okhotin/habitlog/pkg/config"
	jwtservice "github.com/okhotin/habitlog/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	habitsService := service.NewHabitsService(habitsRepo)
	logsService := service.NewHabitLogsService(habitsRepo, repository.NewHabitLogsRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:   userService,
		HabitsService: habitsService,
		LogsService:   logsService,
		JwtService:    jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
