package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewmate/backend/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	u.CreatedAt = time.Now().UTC()
	res, err := s.colUsers.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ConsumeVerificationToken flips an unverified user to verified and clears the
// token in one step. A second call with the same token matches nothing, so
// the caller sees "invalid token" rather than a repeat success.
func (s *Store) ConsumeVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	res := s.colUsers.FindOneAndUpdate(
		ctx,
		bson.M{"verificationToken": token, "isVerified": false},
		bson.M{
			"$set":   bson.M{"isVerified": true},
			"$unset": bson.M{"verificationToken": ""},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var u domain.User
	if err := res.Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) SetResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	_, err := s.colUsers.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"resetToken": token, "resetTokenExpiry": expiry.UTC()}},
	)
	return err
}

// ConsumeResetToken swaps in the new password hash for the user holding an
// unexpired reset token, clearing both reset fields. Single-use: the match
// and the clear happen in one FindOneAndUpdate.
func (s *Store) ConsumeResetToken(ctx context.Context, token, newHash string) (*domain.User, error) {
	res := s.colUsers.FindOneAndUpdate(
		ctx,
		bson.M{
			"resetToken":       token,
			"resetTokenExpiry": bson.M{"$gt": time.Now().UTC()},
		},
		bson.M{
			"$set":   bson.M{"password": newHash},
			"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var u domain.User
	if err := res.Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
