package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eshop-labs/storefront-api/internal/cart"
	"github.com/eshop-labs/storefront-api/internal/users"
	"github.com/eshop-labs/storefront-api/internal/wishlist"
	pkgAuth "github.com/eshop-labs/storefront-api/pkg/auth"
	"github.com/eshop-labs/storefront-api/pkg/auth/session"
	"github.com/eshop-labs/storefront-api/pkg/config"
	"github.com/eshop-labs/storefront-api/pkg/db/models"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
	"github.com/eshop-labs/storefront-api/pkg/logger"
	redisclient "github.com/eshop-labs/storefront-api/pkg/redis"
	"github.com/eshop-labs/storefront-api/pkg/security"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

const invalidCodeMessage = "invalid or expired code"

// Service defines the session provider behavior needed by the controllers.
type Service interface {
	RequestCode(ctx context.Context, input RequestCodeInput) (*RequestCodeResponse, error)
	VerifyCode(ctx context.Context, input VerifyCodeInput) (*SessionResponse, error)
	FederatedSignIn(ctx context.Context, input FederatedSignInInput) (*SessionResponse, error)
	Refresh(ctx context.Context, input RefreshInput) (*RefreshResponse, error)
	SignOut(ctx context.Context, accessID string) error
}

type userRepository interface {
	FindOrCreateByPhone(ctx context.Context, phone string) (*models.User, error)
	FindOrCreateFederated(ctx context.Context, provider, email, name string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// codeStore is the slice of the redis client used for pending codes.
type codeStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	GetDel(ctx context.Context, key string) (string, error)
	OTPCodeKey(phone string) string
}

type cartFetcher interface {
	Fetch(ctx context.Context, userID uuid.UUID) (cart.CartDTO, error)
}

type wishlistFetcher interface {
	Fetch(ctx context.Context, userID uuid.UUID) (wishlist.WishlistDTO, error)
}

// CodeSender delivers a one-time code out of band. The dev sender just
// logs the code; a production deployment plugs in an SMS gateway here.
type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
}

// ServiceParams bundles the dependencies required to build the session
// provider.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	CodeStore      codeStore
	CodeSender     CodeSender
	Verifier       IdentityVerifier
	Cart           cartFetcher
	Wishlist       wishlistFetcher
	JWTConfig      config.JWTConfig
	OTPConfig      config.OTPConfig
	Federated      config.FederatedConfig
}

type service struct {
	users     userRepository
	session   sessionManager
	codes     codeStore
	sender    CodeSender
	verifier  IdentityVerifier
	cart      cartFetcher
	wishlist  wishlistFetcher
	jwtCfg    config.JWTConfig
	otpCfg    config.OTPConfig
	federated config.FederatedConfig
}

// NewService constructs a session provider with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if params.CodeStore == nil {
		return nil, fmt.Errorf("code store is required")
	}
	if params.CodeSender == nil {
		return nil, fmt.Errorf("code sender is required")
	}
	if params.Verifier == nil {
		return nil, fmt.Errorf("identity verifier is required")
	}
	if params.Cart == nil || params.Wishlist == nil {
		return nil, fmt.Errorf("cart and wishlist services are required")
	}
	return &service{
		users:     params.UserRepo,
		session:   params.SessionManager,
		codes:     params.CodeStore,
		sender:    params.CodeSender,
		verifier:  params.Verifier,
		cart:      params.Cart,
		wishlist:  params.Wishlist,
		jwtCfg:    params.JWTConfig,
		otpCfg:    params.OTPConfig,
		federated: params.Federated,
	}, nil
}

// RequestCode generates a one-time code for the phone number, stores its
// hash with a TTL, and hands the clear code to the sender. A repeated
// request overwrites the previous pending code.
func (s *service) RequestCode(ctx context.Context, input RequestCodeInput) (*RequestCodeResponse, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}

	code, err := security.GenerateNumericCode(s.otpCfg.CodeLength)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate code")
	}
	hash, err := security.HashCode(code, s.otpCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash code")
	}
	if err := s.codes.Set(ctx, s.codes.OTPCodeKey(phone), hash, s.otpCfg.TTL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store code")
	}
	if err := s.sender.Send(ctx, phone, code); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send code")
	}

	return &RequestCodeResponse{
		Phone:     phone,
		ExpiresIn: int(s.otpCfg.TTL.Seconds()),
	}, nil
}

// VerifyCode consumes the pending code for the phone number and, when it
// matches, signs the shopper in. The code is single use: it is removed from
// the store on first read regardless of outcome.
func (s *service) VerifyCode(ctx context.Context, input VerifyCodeInput) (*SessionResponse, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" || strings.TrimSpace(input.Code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCodeMessage)
	}

	hash, err := s.codes.GetDel(ctx, s.codes.OTPCodeKey(phone))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCodeMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load code")
	}

	valid, err := security.VerifyCode(strings.TrimSpace(input.Code), hash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify code")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCodeMessage)
	}

	user, err := s.users.FindOrCreateByPhone(ctx, phone)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return s.openSession(ctx, user)
}

// FederatedSignIn validates the provider token and signs the shopper in.
func (s *service) FederatedSignIn(ctx context.Context, input FederatedSignInInput) (*SessionResponse, error) {
	identity, err := s.verifier.Verify(ctx, input.IDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindOrCreateFederated(ctx, s.federated.Provider, strings.ToLower(identity.Email), identity.Name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return s.openSession(ctx, user)
}

// Refresh rotates the token pair. The expired access token is only parsed
// for its jti; the refresh token in Redis is what authenticates the call.
func (s *service) Refresh(ctx context.Context, input RefreshInput) (*RefreshResponse, error) {
	claims, err := pkgAuth.ParseAccessTokenAllowExpired(s.jwtCfg, input.AccessToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid access token")
	}

	newAccessID, newRefresh, err := s.session.Rotate(ctx, claims.ID, input.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:   claims.UserID,
		Phone:    claims.Phone,
		Email:    claims.Email,
		Provider: claims.Provider,
		JTI:      newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

// SignOut revokes the session tied to the access token's jti. The caller's
// cart and wishlist rows stay in the store untouched; the next anonymous
// fetch simply renders empty collections.
func (s *service) SignOut(ctx context.Context, accessID string) error {
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

// openSession mints the token pair and hydrates the cart and wishlist so
// the response carries everything the new session owns.
func (s *service) openSession(ctx context.Context, user *models.User) (*SessionResponse, error) {
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account is disabled")
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update last login")
	}
	user.LastLoginAt = &now

	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		UserID:   user.ID,
		Phone:    user.Phone,
		Email:    user.Email,
		Provider: user.Provider,
		JTI:      accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	cartDTO, err := s.cart.Fetch(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	wishlistDTO, err := s.wishlist.Fetch(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &SessionResponse{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		User:            users.FromModel(user),
		Cart:            cartDTO,
		Wishlist:        wishlistDTO,
		CartProductIDs:  cartDTO.ProductIDs(),
		LikedProductIDs: wishlistDTO.ProductIDs(),
	}, nil
}

// LogSender is the development CodeSender: it writes the code to the
// structured log instead of dispatching an SMS.
type LogSender struct {
	Logger *logger.Logger
}

// Send logs the code for local testing.
func (l *LogSender) Send(ctx context.Context, phone, code string) error {
	if l.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	ctx = l.Logger.WithFields(ctx, map[string]any{"phone": phone, "code": code})
	l.Logger.Info(ctx, "one-time code issued")
	return nil
}

var _ codeStore = (*redisclient.Client)(nil)
