package usecase

import (
	"context"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes over the repository interfaces. Only what the tests
// exercise is implemented with real behavior; the rest returns zero values.

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func (f *fakeServiceRepo) FindAll(ctx context.Context, limit, offset int, categoryID *uuid.UUID, featured *bool) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) CountAll(ctx context.Context, categoryID *uuid.UUID, featured *bool) (int64, error) {
	return int64(len(f.services)), nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBranchRepo struct {
	branches map[uuid.UUID]*entity.Branch
}

func (f *fakeBranchRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.branches {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBranchRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.branches)), nil
}

func (f *fakeBranchRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	return f.branches[id], nil
}

type fakeCategoryRepo struct{}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return f.sessions[token], nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	dayBusy  []repository.BranchDayBooking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, ref string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ReferenceNumber == ref {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0, status)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) FindActiveByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) ([]repository.BranchDayBooking, error) {
	return f.dayBusy, nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status *entity.BookingStatus, from, to *time.Time) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if status == nil || b.Status == *status {
			n++
		}
	}
	return n, nil
}

type fakeBookingServiceRepo struct {
	items []*entity.BookingService
}

func (f *fakeBookingServiceRepo) CreateBatch(ctx context.Context, items []*entity.BookingService) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeBookingServiceRepo) FindServiceIDsByBooking(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, it := range f.items {
		if it.BookingID == bookingID {
			out = append(out, it.ServiceID)
		}
	}
	return out, nil
}

func (f *fakeBookingServiceRepo) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindPendingByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID && p.Status == entity.PaymentStatusPending {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.TransactionID != nil && *p.TransactionID == transactionID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID *string) error {
	if p, ok := f.payments[id]; ok {
		p.Status = status
		if transactionID != nil {
			p.TransactionID = transactionID
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, r *entity.Review) error {
	f.reviews = append(f.reviews, r)
	return nil
}

func (f *fakeReviewRepo) FindAll(ctx context.Context, limit, offset int, serviceID, branchID *uuid.UUID) ([]*entity.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) CountAll(ctx context.Context, serviceID, branchID *uuid.UUID) (int64, error) {
	return int64(len(f.reviews)), nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return nil, nil
}

type fakeDraftRepo struct {
	sessions map[string]*entity.WizardSession
}

func (f *fakeDraftRepo) Save(ctx context.Context, session *entity.WizardSession) error {
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeDraftRepo) Find(ctx context.Context, id string) (*entity.WizardSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeDraftRepo) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

type testRepo struct {
	services        *fakeServiceRepo
	branches        *fakeBranchRepo
	users           *fakeUserRepo
	bookings        *fakeBookingRepo
	bookingServices *fakeBookingServiceRepo
	payments        *fakePaymentRepo
	drafts          *fakeDraftRepo
}

func newTestRepo() (*repository.Repository, *testRepo) {
	fakes := &testRepo{
		services:        &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{}},
		branches:        &fakeBranchRepo{branches: map[uuid.UUID]*entity.Branch{}},
		users:           &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		bookings:        &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		bookingServices: &fakeBookingServiceRepo{},
		payments:        &fakePaymentRepo{payments: map[uuid.UUID]*entity.Payment{}},
		drafts:          &fakeDraftRepo{sessions: map[string]*entity.WizardSession{}},
	}

	repo := &repository.Repository{
		User:           fakes.users,
		Session:        &fakeSessionRepo{sessions: map[string]*entity.Session{}},
		Category:       &fakeCategoryRepo{},
		Service:        fakes.services,
		Branch:         fakes.branches,
		Booking:        fakes.bookings,
		BookingService: fakes.bookingServices,
		Payment:        fakes.payments,
		Review:         &fakeReviewRepo{},
		Draft:          fakes.drafts,
	}

	return repo, fakes
}

func addService(fakes *testRepo, name string, price float64, duration int) *entity.Service {
	svc := &entity.Service{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         name,
		Price:        price,
		Duration:     duration,
		Active:       true,
	}
	fakes.services.services[svc.ID] = svc
	return svc
}

func addBranch(fakes *testRepo, name string, hours entity.OperatingHours) *entity.Branch {
	branch := &entity.Branch{
		BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New()},
		Name:           name,
		Address:        "12 Nguyen Hue",
		Phone:          "0281234567",
		OperatingHours: hours,
		Active:         true,
	}
	fakes.branches.branches[branch.ID] = branch
	return branch
}
