package service

import (
	"context"
	"time"

	"archetype-quiz-be/internal/config"
	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/pkg/serverutils"
	"archetype-quiz-be/internal/repository/contract"
	"archetype-quiz-be/pkg/admin/dashboard"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// IAdminService backs the operator dashboard. There is a single admin
// account configured from the environment; no user table.
type IAdminService interface {
	Login(ctx context.Context, request *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	GetStats(ctx context.Context) (*dto.AdminDashboardStats, error)
	GetLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	cfg        *config.Config
	resultRepo contract.QuizResultRepository
	podRepo    contract.PodSignupRepository
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(
	cfg *config.Config,
	resultRepo contract.QuizResultRepository,
	podRepo contract.PodSignupRepository,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		cfg:        cfg,
		resultRepo: resultRepo,
		podRepo:    podRepo,
		aggregator: dashboard.NewAggregator(log),
		logger:     log,
	}
}

func (as *adminService) Login(ctx context.Context, request *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if as.cfg.Admin.Email == "" || as.cfg.Admin.PasswordHash == "" {
		as.logger.Warn("AdminService", "Admin login attempted without configured credentials", nil)
		return nil, serverutils.Unauthorized("Invalid email or password")
	}

	if request.Email != as.cfg.Admin.Email {
		return nil, serverutils.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(as.cfg.Admin.PasswordHash), []byte(request.Password)); err != nil {
		as.logger.Warn("AdminService", "Admin login failed", map[string]interface{}{"email": request.Email})
		return nil, serverutils.Unauthorized("Invalid email or password")
	}

	claims := jwt.MapClaims{
		"email": request.Email,
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.cfg.Admin.JWTSecret))
	if err != nil {
		as.logger.Error("AdminService", "Failed to sign admin token", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	as.logger.Info("AdminService", "Admin logged in", map[string]interface{}{"email": request.Email})

	return &dto.AdminLoginResponse{Token: signed}, nil
}

func (as *adminService) GetStats(ctx context.Context) (*dto.AdminDashboardStats, error) {
	return as.aggregator.GetStats(ctx, as.resultRepo, as.podRepo)
}

func (as *adminService) GetLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return as.aggregator.GetSystemLogs(ctx, as.logger, page, limit, level)
}

func (as *adminService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	detail, err := as.aggregator.GetLogDetail(ctx, as.logger, logId)
	if err != nil {
		return nil, serverutils.NotFound("Log entry not found")
	}
	return detail, nil
}
