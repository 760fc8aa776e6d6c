package usecase

import (
	"context"
	"errors"
	"strings"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxCommentLength = 1000

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong   = errors.New("comment too long")
	ErrLineNotConfirmed = errors.New("only confirmed lines can be rated")
)

// IReviewUseCase collects feedback after (or while) paying.
type IReviewUseCase interface {
	Submit(ctx context.Context, tableID, guestID string, rating int, comment string) (entities.Review, error)
	RateLine(ctx context.Context, tableID, lineID string, rating int) (entities.OrderItem, error)
	List(ctx context.Context, tableID string) ([]entities.Review, error)
}

type ReviewUseCase struct {
	restaurants interfaces.IRestaurantRepository
	orders      interfaces.IOrderRepository
	guests      interfaces.IGuestRepository
	items       interfaces.IOrderItemRepository
	reviews     interfaces.IReviewRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(
	restaurants interfaces.IRestaurantRepository,
	orders interfaces.IOrderRepository,
	guests interfaces.IGuestRepository,
	items interfaces.IOrderItemRepository,
	reviews interfaces.IReviewRepository,
) *ReviewUseCase {
	return &ReviewUseCase{restaurants: restaurants, orders: orders, guests: guests, items: items, reviews: reviews}
}

func (u *ReviewUseCase) Submit(ctx context.Context, tableID, guestID string, rating int, comment string) (entities.Review, error) {
	if rating < 1 || rating > 5 {
		return entities.Review{}, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return entities.Review{}, ErrCommentTooLong
	}
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return entities.Review{}, err
	}
	guest, err := loadGuest(ctx, u.guests, table.ID, guestID)
	if err != nil {
		return entities.Review{}, err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return entities.Review{}, err
	}
	if order.ID == "" {
		return entities.Review{}, ErrOrderNotFound
	}

	created, err := u.reviews.Create(ctx, entities.Review{
		ID:        newID(),
		OrderID:   order.ID,
		TableID:   table.ID,
		GuestID:   guest.ID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: nowUTC(),
	})
	if err != nil {
		return entities.Review{}, err
	}
	zap.L().Info("[review][usecase] review stored", zap.String("order_id", order.ID), zap.Int("rating", rating))
	return created, nil
}

// RateLine attaches a post-hoc rating to a confirmed line.
func (u *ReviewUseCase) RateLine(ctx context.Context, tableID, lineID string, rating int) (entities.OrderItem, error) {
	if rating < 1 || rating > 5 {
		return entities.OrderItem{}, ErrInvalidRating
	}
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.OrderItem{}, ErrInvalidLineID
	}
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	line, err := u.items.GetByID(ctx, lineID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if line.ID == "" || line.TableID != table.ID {
		return entities.OrderItem{}, ErrCartLineNotFound
	}
	if !line.IsConfirmed {
		return entities.OrderItem{}, ErrLineNotConfirmed
	}
	return u.items.SetRating(ctx, line.ID, rating)
}

// List returns the reviews left on the latest order of the table.
func (u *ReviewUseCase) List(ctx context.Context, tableID string) ([]entities.Review, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return nil, err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.reviews.ListByOrderID(ctx, order.ID)
}
