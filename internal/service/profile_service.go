package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/pkg/entity"
)

type profileContextKey struct{}

// ContextWithProfile lets GetOrCreate answer from ctx for the rest of a request.
func ContextWithProfile(ctx context.Context, profile *entity.Profile) context.Context {
	return context.WithValue(ctx, profileContextKey{}, profile)
}

type ProfileService struct {
	repo            repository.ProfilesRepositoryI
	defaultTimezone string
	opts            options
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI, defaultTimezone string, opts ...Option) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("on profile service provided nil repo")
	}
	InitValidator()
	if _, err := time.LoadLocation(defaultTimezone); err != nil || defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &ProfileService{
		repo:            profilesRepo,
		defaultTimezone: defaultTimezone,
		opts:            buildOptions(opts),
	}
}

func (ps *ProfileService) GetOrCreate(ctx context.Context, uid entity.UserID) (*entity.Profile, error) {
	if cached, ok := ctx.Value(profileContextKey{}).(*entity.Profile); ok && cached != nil && cached.UserID == uid {
		return cached, nil
	}
	profile, err := ps.repo.FindByUserID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, errorvalues.ErrProfileNotFound) {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	profile = &entity.Profile{
		UserID:    uid,
		Timezone:  ps.defaultTimezone,
		CreatedAt: ps.opts.now(),
	}
	profile.ProgramStart = entity.DateIn(ps.opts.now(), profile.Location())
	err = ps.repo.Create(ctx, profile)
	if err != nil {
		// Another request of the same user created it first
		if errors.Is(err, errorvalues.ErrProfileExists) {
			return ps.repo.FindByUserID(ctx, uid)
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	ps.opts.logger.Info("profile created",
		"uid", uid.String(),
		"program_start", profile.ProgramStart.String(),
	)
	return profile, nil
}

func (ps *ProfileService) UpdateTimezone(ctx context.Context, uid entity.UserID, timezone string) (*entity.Profile, error) {
	if err := validate.Struct(UpdateTimezoneRequest{Timezone: timezone}); err != nil {
		return nil, validationError(err)
	}
	profile, err := ps.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err = ps.repo.UpdateTimezone(ctx, uid, timezone); err != nil {
		return nil, fmt.Errorf("repository updating error: %w", err)
	}
	updated := *profile
	updated.Timezone = timezone
	return &updated, nil
}
