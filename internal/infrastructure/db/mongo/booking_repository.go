package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
	"github.com/shuvo-art/Sheba-Task/internal/core/ports"
)

const collectionBookings = "bookings"

// BookingRepository implements ports.BookingRepository using MongoDB.
type BookingRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{db: db, col: db.Collection(collectionBookings)}
}

// Insert persists a new booking, assigning its identifier and timestamps.
func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionBookings)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *b
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &created, nil
}

// FindByIDAndOwner returns the booking only when it belongs to userID. The
// owner filter is part of the query, so a missing id and a foreign owner are
// indistinguishable to the caller.
func (r *BookingRepository) FindByIDAndOwner(ctx context.Context, id, userID int64) (*ports.BookingDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	detail := &ports.BookingDetail{Booking: b}

	var svc domain.Service
	if err := r.db.Collection(collectionServices).
		FindOne(ctx, bson.M{"_id": b.ServiceID}).Decode(&svc); err == nil {
		detail.Service = ports.ServiceSummary{Name: svc.Name, Price: svc.Price}
	}

	return detail, nil
}

// ListAll returns every booking with its service {name, price} and user
// {email} projections attached. Projections for entities deleted after the
// booking was created are left zero-valued.
func (r *BookingRepository) ListAll(ctx context.Context) ([]*ports.BookingOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []domain.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	serviceIDs := make([]int64, 0, len(bookings))
	userIDs := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		serviceIDs = append(serviceIDs, b.ServiceID)
		userIDs = append(userIDs, b.UserID)
	}

	services, err := r.serviceSummaries(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	emails, err := r.userEmails(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.BookingOverview, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, &ports.BookingOverview{
			Booking:   b,
			Service:   services[b.ServiceID],
			UserEmail: emails[b.UserID],
		})
	}
	return out, nil
}

func (r *BookingRepository) serviceSummaries(ctx context.Context, ids []int64) (map[int64]ports.ServiceSummary, error) {
	out := make(map[int64]ports.ServiceSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.db.Collection(collectionServices).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load booking services: %w", err)
	}
	defer cur.Close(ctx)

	var services []domain.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode booking services: %w", err)
	}
	for _, s := range services {
		out[s.ID] = ports.ServiceSummary{Name: s.Name, Price: s.Price}
	}
	return out, nil
}

func (r *BookingRepository) userEmails(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.db.Collection(collectionUsers).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load booking users: %w", err)
	}
	defer cur.Close(ctx)

	var users []mongoUser
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode booking users: %w", err)
	}
	for _, u := range users {
		out[u.ID] = u.Email
	}
	return out, nil
}

// EnsureIndexes creates the owner-lookup index on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "service_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
