package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

const patientsCollection = "patients"

type MongoPatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{coll: db.Collection(patientsCollection)}
}

type mongoPatient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"first_name"`
	LastName    string             `bson:"last_name"`
	DateOfBirth time.Time          `bson:"date_of_birth"`
	Gender      string             `bson:"gender,omitempty"`
	Email       string             `bson:"email,omitempty"`
	PhoneNumber string             `bson:"phone_number,omitempty"`
	Address     string             `bson:"address,omitempty"`
	Diagnosis   string             `bson:"diagnosis,omitempty"`
	Version     int64              `bson:"version"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MongoPatientRepository) Insert(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	doc := toMongoPatient(p)
	doc.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoPatientRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cur.Close(ctx)

	var patients []domain.Patient
	for cur.Next(ctx) {
		var mp mongoPatient
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		patients = append(patients, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// Update overwrites the record matched by id AND version, bumping the
// version. Matching zero documents means either the record vanished or
// another writer got there first; the follow-up existence check tells the
// two apart.
func (r *MongoPatientRepository) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	filter := bson.M{"_id": oid, "version": p.Version}
	update := bson.M{
		"$set": bson.M{
			"first_name":    p.FirstName,
			"last_name":     p.LastName,
			"date_of_birth": p.DateOfBirth,
			"gender":        p.Gender,
			"email":         p.Email,
			"phone_number":  p.PhoneNumber,
			"address":       p.Address,
			"diagnosis":     p.Diagnosis,
			"updated_at":    p.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	if res.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return nil, fmt.Errorf("update patient: %w", err)
		}
		if n == 0 {
			return nil, domain.ErrPatientNotFound
		}
		return nil, domain.ErrConcurrencyConflict
	}

	updated := *p
	updated.Version = p.Version + 1
	return &updated, nil
}

func (r *MongoPatientRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete patient: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func toMongoPatient(p *domain.Patient) mongoPatient {
	return mongoPatient{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		Diagnosis:   p.Diagnosis,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (mp *mongoPatient) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:          mp.ID.Hex(),
		FirstName:   mp.FirstName,
		LastName:    mp.LastName,
		DateOfBirth: mp.DateOfBirth,
		Gender:      mp.Gender,
		Email:       mp.Email,
		PhoneNumber: mp.PhoneNumber,
		Address:     mp.Address,
		Diagnosis:   mp.Diagnosis,
		Version:     mp.Version,
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
}
