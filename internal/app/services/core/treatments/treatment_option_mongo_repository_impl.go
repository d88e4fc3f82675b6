package treatments

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TreatmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentOptionMongoRepository(db *mongo.Client, dbName string) contracts.TreatmentOptionRepository {
	return &TreatmentOptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTreatmentOptions),
	}
}

func (repo *TreatmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.TreatmentOption, error) {
	var treatmentOptions []models.TreatmentOption
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &treatmentOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatmentOptions, nil
}

func (repo *TreatmentOptionMongoRepository) FindByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	var treatmentOption models.TreatmentOption
	err := repo.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&treatmentOption)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &treatmentOption, nil
}

func (repo *TreatmentOptionMongoRepository) FindNames(ctx context.Context) ([]models.TreatmentOption, error) {
	var treatmentOptions []models.TreatmentOption
	findOptions := options.Find().
		SetProjection(bson.D{{Key: "name", Value: 1}}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &treatmentOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatmentOptions, nil
}

func (repo *TreatmentOptionMongoRepository) FindAllWithBookedSlots(ctx context.Context, appointmentDate string) ([]models.TreatmentOptionWithBookedSlots, error) {
	var result []models.TreatmentOptionWithBookedSlots
	cursor, err := repo.Collection.Aggregate(ctx, BuildAvailabilityPipeline(appointmentDate))
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	err = cursor.All(ctx, &result)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

// BuildAvailabilityPipeline joins every option with the slot labels of its
// non cancelled bookings on appointmentDate. The array keeps one entry per
// booking so the caller decides how to subtract.
func BuildAvailabilityPipeline(appointmentDate string) mongo.Pipeline {
	bookingMatch := bson.D{{Key: "$expr", Value: bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{"$treatment", "$$treatmentName"}}},
		bson.D{{Key: "$eq", Value: bson.A{"$appointmentDate", appointmentDate}}},
		bson.D{{Key: "$ne", Value: bson.A{"$cancelled", true}}},
	}}}}}

	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionBookings},
			{Key: "let", Value: bson.D{{Key: "treatmentName", Value: "$name"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bookingMatch}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: "slot", Value: 1}}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "bookedSlots", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$booked"},
				{Key: "as", Value: "booking"},
				{Key: "in", Value: "$$booking.slot"},
			}}}},
		}}},
	}
}

// UpsertByName replaces the price and slots of the named option, inserting
// it when absent. It reports whether a new document was created.
func (repo *TreatmentOptionMongoRepository) UpsertByName(ctx context.Context, option *models.TreatmentOption) (bool, error) {
	filter := bson.M{"name": option.Name}
	update := bson.M{"$set": bson.M{
		"price": option.Price,
		"slots": option.Slots,
	}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.UpsertedCount > 0, nil
}

func (repo *TreatmentOptionMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_treatment_name"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionTreatmentOptions)
	}
	return nil
}
