package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	idp "github.com/oggyb/campus-connect/internal/identity"
	"github.com/oggyb/campus-connect/internal/repository"
)

// Service maps verified external identities to campus profiles.
type Service struct {
	appCtx     *app.AppContext
	profiles   *repository.ProfileRepository
	moderation *repository.ModerationRepository
	rules      idp.Rules
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:     appCtx,
		profiles:   repository.NewProfileRepository(appCtx.DB),
		moderation: repository.NewModerationRepository(appCtx.DB),
		rules: idp.Rules{
			Domain: appCtx.Config.Campus.Domain,
			Infix:  appCtx.Config.Campus.Infix,
		},
	}
}

// Resolve returns the single profile owned by externalID.
//
// Behavior:
//   - A profile already linked to externalID is returned (and marked verified).
//   - A legacy profile with the same email and no link is linked and returned.
//   - A permanently banned email fails with ErrBlacklisted; the caller should
//     revoke the external identity.
//   - Otherwise a profile is created with defaults decoded from the email.
//
// Banned profiles are refused with ErrBanned.
func (s *Service) Resolve(ctx context.Context, externalID, email, displayName string) (*db.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if externalID == "" || email == "" {
		return nil, svcErr.Invalid("external id and email are required")
	}

	p, err := s.profiles.FindByExternalID(ctx, externalID)
	switch {
	case err == nil:
		if err := s.profiles.MarkVerified(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("mark verified: %w", err)
		}
		p.Verified = true
		return s.refuseBanned(ctx, p)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find by external id: %w", err)
	}

	p, err = s.profiles.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return s.linkLegacy(ctx, p, externalID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find by email: %w", err)
	}

	blacklisted, err := s.moderation.IsEmailBlacklisted(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check blacklist: %w", err)
	}
	if blacklisted {
		s.appCtx.Logger.Warn("blacklisted email tried to sign in", "email", email, "external_id", externalID)
		return nil, svcErr.ErrBlacklisted
	}

	rn, err := idp.ParseEmail(email, s.rules, s.appCtx.Now())
	if err != nil {
		return nil, err
	}

	if displayName = strings.TrimSpace(displayName); displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}
	ext := externalID
	p = &db.Profile{
		ID:         uuid.NewString(),
		ExternalID: &ext,
		Email:      email,
		Verified:   true,
		Name:       displayName,
		Department: rn.Branch,
		Year:       rn.AcademicYear,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		// lost a race with a concurrent first login
		if existing, findErr := s.profiles.FindByExternalID(ctx, externalID); findErr == nil {
			return s.refuseBanned(ctx, existing)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.appCtx.Logger.Info("profile created", "user_id", p.ID, "department", p.Department, "year", p.Year)
	return p, nil
}

func (s *Service) linkLegacy(ctx context.Context, p *db.Profile, externalID string) (*db.Profile, error) {
	if p.ExternalID != nil {
		if *p.ExternalID == externalID {
			return s.refuseBanned(ctx, p)
		}
		return nil, svcErr.ErrIdentityConflict
	}

	linked, err := s.profiles.LinkExternal(ctx, p.ID, externalID)
	if err != nil {
		return nil, fmt.Errorf("link external id: %w", err)
	}
	if !linked {
		// linked concurrently, maybe to the same identity
		current, err := s.profiles.FindByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if current.ExternalID == nil || *current.ExternalID != externalID {
			return nil, svcErr.ErrIdentityConflict
		}
		return s.refuseBanned(ctx, current)
	}

	ext := externalID
	p.ExternalID = &ext
	p.Verified = true
	s.appCtx.Logger.Info("legacy profile linked", "user_id", p.ID)
	return s.refuseBanned(ctx, p)
}

func (s *Service) refuseBanned(ctx context.Context, p *db.Profile) (*db.Profile, error) {
	banned, err := s.moderation.IsBanned(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("check ban: %w", err)
	}
	if banned {
		return nil, svcErr.ErrBanned
	}
	return p, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*db.Profile, error) {
	p, err := s.profiles.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrUserNotFound
	}
	return p, err
}

// Warnings lists the user's own warnings, newest first.
func (s *Service) Warnings(ctx context.Context, userID string) ([]db.Warning, error) {
	return s.moderation.ListWarnings(ctx, userID)
}

// AcknowledgeWarning marks one of the user's warnings resolved. It does not
// change the count used for automatic bans.
func (s *Service) AcknowledgeWarning(ctx context.Context, userID, warningID string) error {
	ok, err := s.moderation.ResolveWarning(ctx, userID, warningID)
	if err != nil {
		return err
	}
	if !ok {
		return svcErr.ErrNotFound.WithMsg("warning %s not found", warningID)
	}
	return nil
}
