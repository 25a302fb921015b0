package auth

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/candyycode/pet-store-api/internal/application/dto"
	"github.com/candyycode/pet-store-api/internal/domain"
	"github.com/candyycode/pet-store-api/internal/domain/entity"
	"github.com/candyycode/pet-store-api/internal/domain/repository"
	"github.com/candyycode/pet-store-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// El registro lo usa para que usuario y carrito nazcan juntos o no nazcan.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, carts repository.CartRepository) error) error
}

// Hash bcrypt (costo 10) que no corresponde a ningún password emitido.
// Login lo compara cuando el email no existe para que ambas ramas paguen
// el mismo costo: sin esto el tiempo de respuesta delata si la cuenta existe.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUseCase casos de uso de autenticación: registro, login y resolución de identidad.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea la cuenta: hashea el password con bcrypt y persiste usuario y
// carrito en una sola transacción. Devuelve ErrEmailAlreadyExists si el email ya existe.
// El flag admin nunca se toma de la entrada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	cart := &entity.Cart{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
	}
	err = uc.tx.Run(ctx, func(users repository.UserRepository, carts repository.CartRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return carts.Create(cart)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo ErrUnauthorized:
// el login no debe revelar si una cuenta existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Resolve valida el token y carga al usuario autenticado.
// Token inválido y usuario inexistente devuelven el mismo ErrUnauthorized
// para no distinguir "mal token" de "cuenta borrada".
func (uc *AuthUseCase) Resolve(token string) (*dto.AuthUser, error) {
	userID, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	// El flag de admin sale de la DB, no del claim: revocar admin surte efecto
	// sin esperar a que expiren los tokens emitidos.
	return &dto.AuthUser{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
