// internal/service/auth/service.go
package auth

import (
	"context"
	"fmt"
	"time"

	"voltride-service/internal/domain/admin"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/pkg/jwt"
	"voltride-service/internal/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service authenticates back-office admins. Tokens are HS256 JWTs whose JTI
// keys a Redis session; revoking the session kills the token before expiry.
type Service struct {
	adminRepo admin.Repository
	jwtMgr    *jwt.Manager
	sessions  *session.Manager
	limiter   *session.RateLimiter
	logger    *zap.Logger
}

func NewService(adminRepo admin.Repository, jwtMgr *jwt.Manager, sessions *session.Manager, limiter *session.RateLimiter, logger *zap.Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		jwtMgr:    jwtMgr,
		sessions:  sessions,
		limiter:   limiter,
		logger:    logger,
	}
}

// Login checks credentials and opens a session. Failed lookups and bad
// passwords return the same unauthorized error so the response does not
// reveal which accounts exist.
func (s *Service) Login(ctx context.Context, req *admin.LoginRequest, ip, userAgent string) (*admin.LoginResponse, error) {
	allowed, err := s.limiter.CheckLoginAttempt(ctx, ip, req.Email)
	if err != nil {
		s.logger.Warn("login rate limit check failed, allowing attempt", zap.Error(err))
	} else if !allowed {
		s.logger.Warn("login rate limited", zap.String("ip", ip), zap.String("email", req.Email))
		return nil, xerrors.ErrRateLimited
	}

	a, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", xerrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !a.IsActive {
		return nil, fmt.Errorf("%w: account disabled", xerrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", xerrors.ErrUnauthorized)
	}

	token, jti, err := s.jwtMgr.Generate(a.ID, a.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	now := time.Now()
	if err := s.sessions.Create(ctx, &session.Data{
		JTI:       jti,
		AdminID:   a.ID,
		Email:     a.Email,
		Role:      a.Role,
		IPAddress: ip,
		UserAgent: userAgent,
		LoginAt:   now,
		ExpiresAt: now.Add(s.jwtMgr.TTL()),
	}); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, a.ID); err != nil {
		s.logger.Warn("failed to record last login", zap.Int64("admin_id", a.ID), zap.Error(err))
	}
	if err := s.limiter.ResetLoginAttempts(ctx, ip, req.Email); err != nil {
		s.logger.Warn("failed to reset login counter", zap.Error(err))
	}

	s.logger.Info("admin logged in",
		zap.Int64("admin_id", a.ID),
		zap.String("email", a.Email),
		zap.String("ip", ip),
	)

	return &admin.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtMgr.TTL().Seconds()),
		Admin:     a,
	}, nil
}

// ValidateToken verifies a bearer token and confirms its session is still
// live in Redis. A revoked session invalidates the token before its JWT
// expiry.
func (s *Service) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtMgr.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", xerrors.ErrUnauthorized)
	}

	if _, err := s.sessions.Get(ctx, claims.AdminID, claims.ID); err != nil {
		return nil, fmt.Errorf("%w: session expired or revoked", xerrors.ErrUnauthorized)
	}
	return claims, nil
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(ctx context.Context, adminID int64, jti string) error {
	if err := s.sessions.Revoke(ctx, adminID, jti); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.logger.Info("admin logged out", zap.Int64("admin_id", adminID))
	return nil
}

// Me returns the authenticated admin's profile.
func (s *Service) Me(ctx context.Context, adminID int64) (*admin.Admin, error) {
	return s.adminRepo.FindByID(ctx, adminID)
}

// EnsureBootstrapAdmin creates the configured super admin on startup when it
// does not exist yet. A blank email disables bootstrapping.
func (s *Service) EnsureBootstrapAdmin(ctx context.Context, email, password, fullName string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	a := &admin.Admin{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         admin.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(ctx, a); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.Info("bootstrap admin created", zap.String("email", email))
	return nil
}
