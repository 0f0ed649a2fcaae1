package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/logger"
	"github.com/shopspring/decimal"
)

// Store is the external durability contract. The service saves the
// whole collection after every mutating operation.
type Store interface {
	LoadOrders() ([]*order.Order, error)
	SaveOrders([]*order.Order) error
}

type Service struct {
	repo   *Repository
	store  Store
	logger logger.Logger
}

func NewService(repo *Repository, store Store, logger logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("nil dependency: repository")
	}
	if store == nil {
		return nil, errors.New("nil dependency: store")
	}
	return &Service{repo: repo, store: store, logger: logger}, nil
}

// Load populates the repository from the store. A missing snapshot
// bootstraps an empty one.
func (s *Service) Load(ctx context.Context) error {
	items, err := s.store.LoadOrders()
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.logger.Info("orders snapshot not found, creating an empty one")
			if err = s.store.SaveOrders(nil); err != nil {
				return fmt.Errorf("bootstrap orders: %w", err)
			}
			s.repo.Reset(nil)
			return nil
		}
		return fmt.Errorf("load orders: %w", err)
	}

	s.repo.Reset(items)
	s.logger.Infof("loaded %d orders", len(items))
	return nil
}

// CreateParams carries the collected fields of a new order.
type CreateParams struct {
	Name            string
	Brand           string
	FullName        string
	Phone           string
	Status          string
	Price           decimal.Decimal
	DateAppointment string
	DateIssue       string
}

// Create validates the fields, appends the order and saves.
func (s *Service) Create(ctx context.Context, p CreateParams) (*order.Order, error) {
	o, err := order.New(p.Name, p.Brand, p.FullName, p.Phone, p.Status,
		p.Price, p.DateAppointment, p.DateIssue)
	if err != nil {
		return nil, err
	}

	if err = s.repo.Add(o); err != nil {
		return nil, err
	}

	s.logOperation(ctx, "order added", o.ID)
	return o, s.saveAfterMutation(ctx)
}

// Update carries a single-field (or few-field) edit; nil means "keep".
type Update struct {
	Name            *string
	Brand           *string
	FullName        *string
	Phone           *string
	Status          *string
	Price           *decimal.Decimal
	DateAppointment *string
	DateIssue       *string
}

// Update applies the edit to the order with the given ID. Only the
// edited fields are revalidated; the order keeps its ID and position.
func (s *Service) Update(ctx context.Context, id string, upd Update) (*order.Order, error) {
	o, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if err = order.ValidateText("name", *upd.Name, order.MaxNameLength); err != nil {
			return nil, err
		}
		o.Name = *upd.Name
	}
	if upd.Brand != nil {
		if err = order.ValidateText("brand", *upd.Brand, order.MaxBrandLength); err != nil {
			return nil, err
		}
		o.Brand = *upd.Brand
	}
	if upd.FullName != nil {
		if err = order.ValidateText("full name", *upd.FullName, order.MaxFullNameLength); err != nil {
			return nil, err
		}
		o.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		if err = order.ValidateText("phone", *upd.Phone, order.MaxPhoneLength); err != nil {
			return nil, err
		}
		o.Phone = *upd.Phone
	}
	if upd.Status != nil {
		if err = order.ValidateText("status", *upd.Status, order.MaxStatusLength); err != nil {
			return nil, err
		}
		o.Status = *upd.Status
	}
	if upd.Price != nil {
		o.Price = *upd.Price
	}
	if upd.DateAppointment != nil {
		if err = order.ValidateAppointment(*upd.DateAppointment); err != nil {
			return nil, err
		}
		o.DateAppointment = *upd.DateAppointment
	}
	if upd.DateIssue != nil {
		if err = order.ValidateIssue(*upd.DateIssue); err != nil {
			return nil, err
		}
		o.DateIssue = *upd.DateIssue
	}

	s.logOperation(ctx, "order updated", o.ID)
	return o, s.saveAfterMutation(ctx)
}

// Remove deletes the order with the given ID and saves.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(id); err != nil {
		return err
	}

	s.logOperation(ctx, "order removed", id)
	return s.saveAfterMutation(ctx)
}

// Get resolves an order by its ID.
func (s *Service) Get(id string) (*order.Order, error) {
	return s.repo.Get(id)
}

// List returns the live ordered collection.
func (s *Service) List() []*order.Order {
	return s.repo.All()
}

// saveAfterMutation persists the current snapshot. The in-memory
// mutation is kept even when the save fails; the caller gets a wrapped
// errs.ErrPersistence and the divergence is logged.
func (s *Service) saveAfterMutation(ctx context.Context) error {
	if err := s.store.SaveOrders(s.repo.All()); err != nil {
		s.logger.Errorf("orders snapshot save failed, memory and disk diverge: %s", err)
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (s *Service) logOperation(ctx context.Context, msg, orderID string) {
	if u, ok := user.FromContext(ctx); ok {
		s.logger.With("login", u.Login, "order_id", orderID).Info(msg)
		return
	}
	s.logger.With("order_id", orderID).Info(msg)
}
