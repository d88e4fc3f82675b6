package bookings

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

// activeFilter also matches documents written before the cancelled flag existed.
func activeFilter(filter bson.M) bson.M {
	filter["cancelled"] = bson.M{"$ne": true}
	return filter
}

func (repo *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrBookingDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("inserted id is not an ObjectID"))
	}
	booking.ID = insertedID
	return insertedID.Hex(), nil
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrInvalidIdentity(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := repo.Collection.Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) FindActiveByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	var bookings []models.Booking
	findOptions := options.Find().SetProjection(bson.D{
		{Key: "treatment", Value: 1},
		{Key: "slot", Value: 1},
		{Key: "appointmentDate", Value: 1},
	})
	cursor, err := repo.Collection.Find(ctx, activeFilter(bson.M{"appointmentDate": appointmentDate}), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) CountActiveByTriple(ctx context.Context, treatment, appointmentDate, email string) (int64, error) {
	filter := activeFilter(bson.M{
		"treatment":       treatment,
		"appointmentDate": appointmentDate,
		"email":           email,
	})
	count, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

// MarkPaid returns the number of matched bookings.
func (repo *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return 0, exceptions.ErrInvalidIdentity(err)
	}

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": transactionID,
		"updatedAt":     time.Now().UTC(),
	}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

// Cancel returns the number of bookings that moved to cancelled.
func (repo *BookingMongoRepository) Cancel(ctx context.Context, bookingID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return 0, exceptions.ErrInvalidIdentity(err)
	}

	update := bson.M{"$set": bson.M{
		"cancelled": true,
		"updatedAt": time.Now().UTC(),
	}}
	result, err := repo.Collection.UpdateOne(ctx, activeFilter(bson.M{"_id": objectID}), update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (repo *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_active_booking_triple").
				SetPartialFilterExpression(bson.M{"cancelled": false}),
		},
		{
			Keys:    bson.D{{Key: "appointmentDate", Value: 1}},
			Options: options.Index().SetName("idx_booking_date"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_booking_email"),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionBookings)
	}
	return nil
}
