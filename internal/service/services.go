package service

import (
	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CourseService  CourseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	hasher := utils.NewPasswordHasher(cfg.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, validators.NewUserValidator(), logger),
		CourseService:  NewCourseService(storages.CourseRepository, validators.NewCourseValidator(), logger),
		AppInfoService: NewAppInfoService(cfg, logger),
	}
}
