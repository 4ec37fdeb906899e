package service

import (
	"context"

	"github.com/google/uuid"

	"usina-leads/internal/model"
	"usina-leads/internal/repository"
)

// Catalog is the CRUD surface for one advertising entity. T is the stored
// model and I the request body accepted by Create and Update.
type Catalog[T repository.Entity, I any] struct {
	repo *repository.AdvertisingRepository

	// Parent is the column holding the parent reference used by List, empty
	// for top level entities.
	Parent string

	apply func(ctx context.Context, item *T, input I, creating bool) error
	id    func(item *T) *uuid.UUID
}

// List returns all entities, or only the children of parentID when it is set.
func (c *Catalog[T, I]) List(ctx context.Context, parentID string) ([]T, error) {
	if c.Parent == "" || parentID == "" {
		return repository.List[T](ctx, c.repo, "", nil)
	}
	id, err := parseID(parentID, c.Parent)
	if err != nil {
		return nil, err
	}
	return repository.List[T](ctx, c.repo, c.Parent, &id)
}

func (c *Catalog[T, I]) Get(ctx context.Context, id string) (*T, error) {
	itemID, err := parseID(id, "id")
	if err != nil {
		return nil, err
	}
	item, err := repository.Get[T](ctx, c.repo, itemID)
	if err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (c *Catalog[T, I]) Create(ctx context.Context, principal model.Principal, input I) (*T, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	item := new(T)
	*c.id(item) = uuid.New()
	if err := c.apply(ctx, item, input, true); err != nil {
		return nil, err
	}
	if err := repository.Create(ctx, c.repo, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Catalog[T, I]) Update(ctx context.Context, principal model.Principal, id string, input I) (*T, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	item, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.apply(ctx, item, input, false); err != nil {
		return nil, err
	}
	if err := repository.Save(ctx, c.repo, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Catalog[T, I]) Delete(ctx context.Context, principal model.Principal, id string) error {
	if err := requireWriter(principal); err != nil {
		return err
	}
	itemID, err := parseID(id, "id")
	if err != nil {
		return err
	}
	return storeError(repository.Delete[T](ctx, c.repo, itemID))
}

// setName validates the name on create and on updates that carry one.
func setName(dest *string, value *string, creating bool) error {
	if value == nil && !creating {
		return nil
	}
	name, err := requiredText(value, "name")
	if err != nil {
		return err
	}
	*dest = name
	return nil
}

func setStatus(dest *string, value *string, creating bool) {
	if creating {
		*dest = statusOr(value, model.StatusActive)
		return
	}
	if value != nil && *value != "" {
		*dest = statusOr(value, *dest)
	}
}

func nonNegative(dest **float64, value *float64, field string) error {
	if value == nil {
		return nil
	}
	if *value < 0 {
		return invalid("%s must not be negative", field)
	}
	v := *value
	*dest = &v
	return nil
}

// setParent resolves an optional parent reference and checks it exists. An
// explicit empty string clears the reference.
func setParent[P repository.Entity](ctx context.Context, repo *repository.AdvertisingRepository, dest **uuid.UUID, value *string, field string) error {
	if value == nil {
		return nil
	}
	id, err := parseOptionalID(value, field)
	if err != nil {
		return err
	}
	if id != nil {
		ok, err := repository.Exists[P](ctx, repo, *id)
		if err != nil {
			return err
		}
		if !ok {
			return invalid("%s does not exist", field)
		}
	}
	*dest = id
	return nil
}
