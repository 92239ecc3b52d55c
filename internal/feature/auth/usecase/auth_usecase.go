package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard_backend/internal/domain/entity"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/mailer"
	"jobboard_backend/internal/shared/apperror"
)

// tokenValidity is the lifetime of verification and reset tokens.
const tokenValidity = 24 * time.Hour

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer.
type UserRepository interface {
	// FindByEmail returns the user with email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID returns the user with id or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByVerificationToken returns the user holding token or ErrUserNotFound.
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// EmailInUse reports whether email is a user login or a company contact email.
	EmailInUse(ctx context.Context, email string) (bool, error)
	// SlugInUse reports whether a company already owns slug.
	SlugInUse(ctx context.Context, slug string) (bool, error)

	// CreateUser persists a user without a profile (administrators).
	CreateUser(ctx context.Context, u *entity.User) error
	// CreateCandidate persists the user and its candidate profile atomically.
	CreateCandidate(ctx context.Context, u *entity.User, c *entity.Candidate) error
	// CreateCompany persists the user and its company profile atomically.
	CreateCompany(ctx context.Context, u *entity.User, c *entity.Company) error

	MarkEmailVerified(ctx context.Context, userID string) error
	// SetTemporaryPassword replaces the credential hash and records the
	// plaintext temporary password as the reset token.
	SetTemporaryPassword(ctx context.Context, userID, hash, tempPassword string, expiry time.Time) error
	// UpdatePassword replaces the credential hash and clears any reset token.
	UpdatePassword(ctx context.Context, userID, hash string) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	GenerateToken(userID string, role entity.Role) (jwtmw.Token, error)
}

// SessionRevoker puts a token id on the revocation list.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, email mailer.Email) error
}

// LoginResult is a successful login.
type LoginResult struct {
	Token jwtmw.Token
	User  *entity.User
}

// CandidateRegistration is the input of RegisterCandidate.
type CandidateRegistration struct {
	Email    string
	Password string
	Name     string
	Phone    string
	City     string
	State    string
}

// CompanyRegistration is the input of RegisterCompany.
type CompanyRegistration struct {
	Email       string
	Password    string
	Name        string
	Slug        string
	CNPJ        string
	Description string
}

type authUsecase struct {
	users   UserRepository
	tokens  TokenIssuer
	revoker SessionRevoker
	mail    Mailer
	baseURL string
	now     func() time.Time
	hash    func(password string) (string, error)
}

// NewAuthUsecase creates the auth usecase. baseURL prefixes links in
// outbound email.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, revoker SessionRevoker, mail Mailer, baseURL string) *authUsecase {
	return &authUsecase{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		mail:    mail,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		hash:    HashPassword,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates the user and issues a session token. A bcrypt
// comparison runs even when the user does not exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if user == nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

// Logout revokes the session token so it stops working before it expires.
func (u *authUsecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if u.revoker == nil || tokenID == "" {
		return nil
	}
	return u.revoker.Revoke(ctx, tokenID, expiresAt)
}

// CheckEmail returns ErrEmailUnavailable when email is used by any user or
// company. Login and contact emails share one namespace.
func (u *authUsecase) CheckEmail(ctx context.Context, email string) error {
	inUse, err := u.users.EmailInUse(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if inUse {
		return ErrEmailUnavailable
	}
	return nil
}

// RegisterCandidate creates a CANDIDATE account and sends the verification email.
func (u *authUsecase) RegisterCandidate(ctx context.Context, in CandidateRegistration) (*entity.User, error) {
	user, err := u.newUser(ctx, in.Email, in.Password, in.Name, entity.RoleCandidate)
	if err != nil {
		return nil, err
	}
	cand := &entity.Candidate{
		Name:  strings.TrimSpace(in.Name),
		Phone: in.Phone,
		City:  in.City,
		State: in.State,
	}
	if err := u.users.CreateCandidate(ctx, user, cand); err != nil {
		return nil, err
	}
	u.sendVerification(ctx, user)
	return user, nil
}

// RegisterCompany creates a COMPANY account awaiting approval. The slug
// follows the same rules as the slug checks.
func (u *authUsecase) RegisterCompany(ctx context.Context, in CompanyRegistration) (*entity.User, error) {
	slug := entity.NormalizeSlug(in.Slug)
	if msg, ok := entity.ValidateSlug(slug); !ok {
		return nil, apperror.Validation(msg)
	}
	taken, err := u.users.SlugInUse(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	user, err := u.newUser(ctx, in.Email, in.Password, in.Name, entity.RoleCompany)
	if err != nil {
		return nil, err
	}
	company := &entity.Company{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Email:       user.Email,
		CNPJ:        in.CNPJ,
		Description: in.Description,
	}
	if err := u.users.CreateCompany(ctx, user, company); err != nil {
		return nil, err
	}
	u.sendVerification(ctx, user)
	return user, nil
}

// CreateAdmin creates an ADMIN account with a verified email. It is used by
// the maintenance CLI and hashes exactly like registration.
func (u *authUsecase) CreateAdmin(ctx context.Context, email, password, name string) (*entity.User, error) {
	user, err := u.newUser(ctx, email, password, name, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	user.IsEmailVerified = true
	user.EmailVerificationToken = nil
	user.EmailVerificationExpiry = nil
	if err := u.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) newUser(ctx context.Context, email, password, name string, role entity.Role) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	inUse, err := u.users.EmailInUse(ctx, email)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := u.hash(password)
	if err != nil {
		return nil, err
	}
	token := uuid.NewString()
	expiry := u.now().Add(tokenValidity)
	return &entity.User{
		Email:                   email,
		Name:                    strings.TrimSpace(name),
		Password:                hashed,
		Role:                    role,
		IsActive:                true,
		EmailVerificationToken:  &token,
		EmailVerificationExpiry: &expiry,
	}, nil
}

// sendVerification is best effort; the user can request a new link later.
func (u *authUsecase) sendVerification(ctx context.Context, user *entity.User) {
	if u.mail == nil || user.EmailVerificationToken == nil {
		return
	}
	link := u.baseURL + "/verificar-email?token=" + *user.EmailVerificationToken
	err := u.mail.Send(ctx, mailer.Email{
		To:       user.Email,
		Subject:  "Confirme seu e-mail",
		HTMLBody: fmt.Sprintf(`<p>Olá %s,</p><p>Confirme seu e-mail em <a href="%s">%s</a>. O link expira em 24 horas.</p>`, user.Name, link, link),
		Body:     fmt.Sprintf("Olá %s,\n\nConfirme seu e-mail em %s\nO link expira em 24 horas.", user.Name, link),
	})
	if err != nil {
		slog.Warn("verification email failed", "error", err, "user_id", user.ID)
	}
}

// VerifyEmail marks the email of the token's owner as verified.
func (u *authUsecase) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidVerificationToken
	}
	user, err := u.users.FindByVerificationToken(ctx, token)
	if errors.Is(err, ErrUserNotFound) {
		return ErrInvalidVerificationToken
	}
	if err != nil {
		return err
	}
	if user.EmailVerificationExpiry == nil || u.now().After(*user.EmailVerificationExpiry) {
		return ErrInvalidVerificationToken
	}
	return u.users.MarkEmailVerified(ctx, user.ID)
}

// ForgotPassword replaces the password of the account with a temporary one
// and emails it. An unknown email returns nil so callers cannot tell
// whether an account exists; it still pays for one bcrypt hash so both
// outcomes take comparable time. A mail failure returns ErrEmailDelivery.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	temp, err := generateTempPassword()
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		_, _ = u.hash(temp)
		return nil
	}
	if err != nil {
		return err
	}

	hashed, err := u.hash(temp)
	if err != nil {
		return err
	}
	if err := u.users.SetTemporaryPassword(ctx, user.ID, hashed, temp, u.now().Add(tokenValidity)); err != nil {
		return err
	}

	if u.mail == nil {
		return ErrEmailDelivery
	}
	err = u.mail.Send(ctx, mailer.Email{
		To:       user.Email,
		Subject:  "Sua senha temporária",
		HTMLBody: fmt.Sprintf(`<p>Olá %s,</p><p>Sua senha temporária é <strong>%s</strong>. Ela expira em 24 horas; altere-a após entrar em <a href="%s/login">%s/login</a>.</p>`, user.Name, temp, u.baseURL, u.baseURL),
		Body:     fmt.Sprintf("Olá %s,\n\nSua senha temporária é %s\nEla expira em 24 horas; altere-a após entrar em %s/login.", user.Name, temp, u.baseURL),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmailDelivery, err)
	}
	return nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (u *authUsecase) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return ErrWrongPassword
	}
	if err := validatePassword(next); err != nil {
		return err
	}
	hashed, err := u.hash(next)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, user.ID, hashed)
}
