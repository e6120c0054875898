package service_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/repo"
	"gigflow/internal/repo/repo_errors"
	"gigflow/internal/service"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the Postgres repos. It honors the
// same contract the pgdb layer gets from the database: (gig_id,
// freelancer_id) uniqueness on insert, and a hire transition that either
// applies completely under one lock or not at all, guarded by a
// compare-and-swap on the gig status.
type memStore struct {
	mu    sync.Mutex
	gigs  map[uuid.UUID]*entity.Gig
	bids  map[uuid.UUID]*entity.Bid
	users map[uuid.UUID]*entity.User
	seq   map[uuid.UUID]int64
	next  int64

	// when set, HireBid fails after the status guard has passed,
	// simulating a commit fault; no mutation may survive
	hireErr error
}

func newMemStore() *memStore {
	return &memStore{
		gigs:  make(map[uuid.UUID]*entity.Gig),
		bids:  make(map[uuid.UUID]*entity.Bid),
		users: make(map[uuid.UUID]*entity.User),
		seq:   make(map[uuid.UUID]int64),
	}
}

func (s *memStore) nextSeq(id uuid.UUID) {
	s.next++
	s.seq[id] = s.next
}

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

type memUserRepo struct{ *memStore }

func (r memUserRepo) CreateUser(_ context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == input.Email {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}
	}

	id := uuid.New()
	r.users[id] = &entity.User{
		Id:           id,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    timestamp(),
	}

	return id, nil
}

func (r memUserRepo) GetUserById(_ context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := *user

	return &copied, nil
}

func (r memUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

type memGigRepo struct{ *memStore }

func (r memGigRepo) CreateGig(_ context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.gigs[id] = &entity.Gig{
		Id:          id,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		OwnerId:     ownerUuid,
		Status:      common.GigOpen,
		CreatedAt:   timestamp(),
		UpdatedAt:   timestamp(),
	}
	r.nextSeq(id)

	return id, nil
}

func (r memGigRepo) GetGigById(_ context.Context, id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := *gig

	return &copied, nil
}

func (r memGigRepo) GetGigs(_ context.Context, filter *entity.GigFilter, pg *entity.PaginationInput) ([]entity.Gig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]entity.Gig, 0)
	for _, gig := range r.gigs {
		if filter.Status != "" && gig.Status != filter.Status {
			continue
		}
		if filter.Text != "" {
			text := strings.ToLower(filter.Text)
			haystack := strings.ToLower(gig.Title + " " + gig.Description)
			if !strings.Contains(haystack, text) {
				continue
			}
		}
		matched = append(matched, *gig)
	}

	// newest first
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if r.seq[matched[j].Id] > r.seq[matched[i].Id] {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}

	start := pg.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pg.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], nil
}

type memBidRepo struct{ *memStore }

func (r memBidRepo) CreateBid(_ context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, err
	}
	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, bid := range r.bids {
		if bid.GigId == gigUuid && bid.FreelancerId == freelancerUuid {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}
	}

	id := uuid.New()
	r.bids[id] = &entity.Bid{
		Id:           id,
		GigId:        gigUuid,
		FreelancerId: freelancerUuid,
		Message:      input.Message,
		Price:        input.Price,
		Status:       common.BidPending,
		CreatedAt:    timestamp(),
		UpdatedAt:    timestamp(),
	}
	r.nextSeq(id)

	return id, nil
}

func (r memBidRepo) GetBidById(_ context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := *bid

	return &copied, nil
}

func (r memBidRepo) GetGigBids(_ context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]entity.Bid, 0)
	for _, bid := range r.bids {
		if bid.GigId == gigUuid {
			matched = append(matched, *bid)
		}
	}

	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if r.seq[matched[j].Id] > r.seq[matched[i].Id] {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}

	start := pg.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pg.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], nil
}

func (r memBidRepo) HireBid(_ context.Context, gigId uuid.UUID, bidId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[gigId]
	if !ok {
		return repo_errors.ErrNotFound
	}

	// the conditional-update guard: status must still be open
	if gig.Status != common.GigOpen {
		return repo_errors.ErrNoRowsMatched
	}

	if r.hireErr != nil {
		// commit fault: abandon without touching anything
		return r.hireErr
	}

	gig.Status = common.GigAssigned
	gig.UpdatedAt = timestamp()

	for _, bid := range r.bids {
		if bid.Id == bidId {
			bid.Status = common.BidHired
			bid.UpdatedAt = timestamp()
		} else if bid.GigId == gigId && bid.Status == common.BidPending {
			bid.Status = common.BidRejected
			bid.UpdatedAt = timestamp()
		}
	}

	return nil
}

type memDiagnosticsRepo struct{}

func (memDiagnosticsRepo) Ping() error { return nil }

// fakeNotifier records deliveries and optionally fails every one of them.
type fakeNotifier struct {
	mu       sync.Mutex
	userIds  []string
	events   []*entity.HiredEvent
	failWith error
}

func (n *fakeNotifier) NotifyHired(userId string, event *entity.HiredEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.userIds = append(n.userIds, userId)
	n.events = append(n.events, event)

	return n.failWith
}

func (n *fakeNotifier) deliveries() ([]string, []*entity.HiredEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.userIds...), append([]*entity.HiredEvent(nil), n.events...)
}

type testEnv struct {
	store    *memStore
	notifier *fakeNotifier
	services *service.Services
}

func newTestEnv() *testEnv {
	store := newMemStore()
	notifier := &fakeNotifier{}
	repos := &repo.Repositories{
		Diagnostics: memDiagnosticsRepo{},
		User:        memUserRepo{store},
		Gig:         memGigRepo{store},
		Bid:         memBidRepo{store},
	}

	return &testEnv{
		store:    store,
		notifier: notifier,
		services: service.NewServices(repos, notifier, "test-secret"),
	}
}

var userCounter struct {
	sync.Mutex
	n int
}

func (e *testEnv) addUser(name string) *entity.User {
	userCounter.Lock()
	userCounter.n++
	email := fmt.Sprintf("%s%d@example.com", strings.ToLower(name), userCounter.n)
	userCounter.Unlock()

	id, err := memUserRepo{e.store}.CreateUser(context.Background(), &entity.CreateUserInput{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	})
	if err != nil {
		panic(err)
	}

	user, _ := memUserRepo{e.store}.GetUserById(context.Background(), id.String())

	return user
}

func (e *testEnv) addGig(owner *entity.User) *entity.Gig {
	id, err := memGigRepo{e.store}.CreateGig(context.Background(), &entity.CreateGigInput{
		Title:       "Build a landing page",
		Description: "Need a responsive landing page for a product launch",
		Budget:      500,
		OwnerId:     owner.Id.String(),
	})
	if err != nil {
		panic(err)
	}

	gig, _ := memGigRepo{e.store}.GetGigById(context.Background(), id.String())

	return gig
}

func (e *testEnv) addBid(gig *entity.Gig, freelancer *entity.User, price float64) *entity.Bid {
	id, err := memBidRepo{e.store}.CreateBid(context.Background(), &entity.CreateBidInput{
		GigId:        gig.Id.String(),
		FreelancerId: freelancer.Id.String(),
		Message:      "I can deliver this within a week",
		Price:        price,
	})
	if err != nil {
		panic(err)
	}

	bid, _ := memBidRepo{e.store}.GetBidById(context.Background(), id.String())

	return bid
}
