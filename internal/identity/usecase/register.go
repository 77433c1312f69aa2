package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=5,max=100,alphaspace"`
	Role     string `validate:"omitempty,oneof=Customer ProductOwner StoreUser"`
}

type RegisterOutput struct {
	UserID int64
}

// Register completes the registration flow. It requires a verified, still
// live registration challenge for the email and consumes it before creating
// the account, so a verified code grants exactly one registration.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Role == "" {
		in.Role = entity.RoleCustomer
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposeRegistration, "")
	if res := s.ledger.ConsumeVerified(key, s.clock.Now()); res != otpledger.ResultSuccess {
		slog.WarnContext(ctx, "registration challenge not consumable", "email", in.Email, "reason", res.String())
		return nil, rejectChallenge(res)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newUserID := s.uid.Generate()
	newUser := entity.NewUser{
		ID:        newUserID,
		Email:     in.Email,
		FullName:  in.FullName,
		AvatarURL: "https://ui-avatars.com/api/?name=" + url.QueryEscape(in.FullName),
		Status:    entity.UserStatusActive,
		CreatedBy: newUserID,
		UpdatedBy: newUserID,
	}

	if err := s.repoDB.CreateUser(ctx, newUser, string(hashedPassword)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.rbac.Grant(ctx, newUserID, in.Role); err != nil {
		slog.ErrorContext(ctx, "failed to grant role", "user_id", newUserID, "role", in.Role, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID:   newUserID,
		Email:    newUser.Email,
		FullName: newUser.FullName,
		Role:     in.Role,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered", "user_id", newUserID, "error", err)
	}

	return &RegisterOutput{UserID: newUserID}, nil
}
