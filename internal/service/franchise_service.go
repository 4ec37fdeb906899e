package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"usina-leads/internal/model"
	"usina-leads/internal/repository"
)

type FranchiseService struct {
	franchises *repository.FranchiseRepository
}

func NewFranchiseService(franchises *repository.FranchiseRepository) *FranchiseService {
	return &FranchiseService{franchises: franchises}
}

func (s *FranchiseService) List(ctx context.Context) ([]model.Franchise, error) {
	return s.franchises.List(ctx)
}

func (s *FranchiseService) Get(ctx context.Context, id string) (*model.Franchise, error) {
	franchiseID, err := parseID(id, "franchise id")
	if err != nil {
		return nil, err
	}
	franchise, err := s.franchises.Get(ctx, franchiseID)
	if err != nil {
		return nil, storeError(err)
	}
	return franchise, nil
}

func (s *FranchiseService) Create(ctx context.Context, principal model.Principal, input model.FranchiseInput) (*model.Franchise, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}

	franchise := &model.Franchise{ID: uuid.New()}
	required := []struct {
		value *string
		field string
		dest  *string
	}{
		{input.Name, "name", &franchise.Name},
		{input.CVU, "cvu", &franchise.CVU},
		{input.Owner, "owner", &franchise.Owner},
		{input.Link, "link", &franchise.Link},
	}
	for _, r := range required {
		value, err := requiredText(r.value, r.field)
		if err != nil {
			return nil, err
		}
		*r.dest = value
	}
	if input.Password == nil || *input.Password == "" {
		return nil, invalid("password is required")
	}
	if input.Alias != nil {
		franchise.Alias = strings.TrimSpace(*input.Alias)
	}

	hash, err := hashPassword(*input.Password)
	if err != nil {
		return nil, err
	}
	franchise.PasswordHash = hash

	if err := s.franchises.Create(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// Update applies the fields present in input. A new password replaces the
// stored hash.
func (s *FranchiseService) Update(ctx context.Context, principal model.Principal, id string, input model.FranchiseInput) (*model.Franchise, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	franchise, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		value *string
		field string
		dest  *string
	}{
		{input.Name, "name", &franchise.Name},
		{input.CVU, "cvu", &franchise.CVU},
		{input.Owner, "owner", &franchise.Owner},
		{input.Link, "link", &franchise.Link},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		value, err := requiredText(f.value, f.field)
		if err != nil {
			return nil, err
		}
		*f.dest = value
	}
	if input.Alias != nil {
		franchise.Alias = strings.TrimSpace(*input.Alias)
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, invalid("password must not be empty")
		}
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		franchise.PasswordHash = hash
	}

	if err := s.franchises.Update(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

func (s *FranchiseService) Phones(ctx context.Context, franchiseID string) ([]model.FranchisePhone, error) {
	franchise, err := s.Get(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	return s.franchises.Phones(ctx, franchise.ID)
}

func (s *FranchiseService) CreatePhone(ctx context.Context, principal model.Principal, franchiseID string, input model.FranchisePhoneInput) (*model.FranchisePhone, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	franchise, err := s.Get(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, invalid("number is required")
	}
	if input.Order < 0 {
		return nil, invalid("order must not be negative")
	}
	if input.DailyGoal < 0 {
		return nil, invalid("daily_goal must not be negative")
	}

	phone := &model.FranchisePhone{
		ID:          uuid.New(),
		FranchiseID: franchise.ID,
		Number:      number,
		Order:       input.Order,
		DailyGoal:   input.DailyGoal,
		Status:      statusOr(input.Status, model.StatusActive),
	}
	if err := s.franchises.CreatePhone(ctx, phone); err != nil {
		return nil, err
	}
	return phone, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", invalid("password is too long")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
