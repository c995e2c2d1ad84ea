package repository

import (
	"spa-booking/pkg/database"
	"spa-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	Category       CategoryRepository
	Service        ServiceRepository
	Branch         BranchRepository
	Booking        BookingRepository
	BookingService BookingServiceRepository
	Payment        PaymentRepository
	Review         ReviewRepository
	Draft          DraftRepository
}

func NewRepository(db database.PgxIface, rdb *redis.Client, cfg utils.RedisConfig, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Session:        NewSessionRepository(db, log),
		Category:       NewCategoryRepository(db, log),
		Service:        NewServiceRepository(db, log),
		Branch:         NewBranchRepository(db, log),
		Booking:        NewBookingRepository(db, log),
		BookingService: NewBookingServiceRepository(db, log),
		Payment:        NewPaymentRepository(db, log),
		Review:         NewReviewRepository(db, log),
		Draft:          NewDraftRepository(rdb, cfg, log),
	}
}
