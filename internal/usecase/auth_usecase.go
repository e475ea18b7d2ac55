package usecase

import (
	"context"
	"strings"

	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"
	"clinic-records/internal/infrastructure/cache"
	"clinic-records/internal/service"
	"clinic-records/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, auth entity.AuthContext, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentDoctor(ctx context.Context, auth entity.AuthContext) (*dto.DoctorResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	tokenStore   cache.TokenStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokenStore cache.TokenStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	doctor, err := u.doctorRepo.FindByEmail(ctx, u.db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, doctor)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, u.db.WithContext(ctx), &doctor.ID, entity.AuditActionDoctorLogin); err != nil {
		return nil, err
	}

	return tokens, nil
}

// Logout revokes the access token of the current session and, when given, its refresh token.
func (u *authUsecase) Logout(ctx context.Context, auth entity.AuthContext, refreshToken string) error {
	if err := u.tokenStore.Revoke(ctx, jwt.AccessToken, auth.DoctorID, auth.TokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.DoctorID == auth.DoctorID {
			if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, auth.DoctorID, claims.TokenID); err != nil {
				u.log.Warnf("Failed to revoke refresh token: %+v", err)
				return err
			}
		}
	}

	return u.auditService.LogEvent(ctx, u.db.WithContext(ctx), &auth.DoctorID, entity.AuditActionDoctorLogout)
}

// RefreshToken rotates the pair: the presented refresh token is revoked before new tokens are issued.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenStore.Exists(ctx, jwt.RefreshToken, claims.DoctorID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, claims.DoctorID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, claims.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrInvalidToken
	}

	return u.issueTokens(ctx, doctor)
}

func (u *authUsecase) GetCurrentDoctor(ctx context.Context, auth entity.AuthContext) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, auth.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, doctor *entity.Doctor) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(doctor.ID, doctor.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(doctor.ID, doctor.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeToken(ctx, jwt.AccessToken, doctor.ID, accessTokenID); err != nil {
		return nil, err
	}
	if err := u.storeToken(ctx, jwt.RefreshToken, doctor.ID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		Doctor:       *converter.DoctorToResponse(doctor),
	}, nil
}

func (u *authUsecase) storeToken(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string) error {
	ttl := u.jwtService.GetAccessExpiry()
	if tokenType == jwt.RefreshToken {
		ttl = u.jwtService.GetRefreshExpiry()
	}

	if err := u.tokenStore.Store(ctx, tokenType, doctorID, tokenID, ttl); err != nil {
		u.log.Warnf("Failed to store %s token: %+v", tokenType, err)
		return err
	}
	return nil
}
