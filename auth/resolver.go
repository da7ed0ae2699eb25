package auth

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/models"
)

// Resolver maps verified token claims to a persisted user record.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{db: db} }

// Resolve loads the user the claims point at. The subject is tried first
// as a record key; a subject that does not parse as one falls back to the
// email claim, which tolerates tokens minted before the key encoding
// settled. Fails closed: a missing or inactive user is ErrUserNotFound,
// a store failure is ErrStoreUnavailable.
func (r *Resolver) Resolve(claims *Claims) (*models.User, error) {
	var u models.User
	var err error
	if id, perr := strconv.ParseUint(claims.Subject, 10, 64); perr == nil {
		err = r.db.First(&u, "id = ?", id).Error
	} else if claims.Email != "" {
		err = r.db.First(&u, "email = ?", claims.Email).Error
	} else {
		return nil, ErrUserNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrStoreUnavailable
	}
	if !u.IsActive {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
