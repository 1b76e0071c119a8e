package controller

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
	"github.com/skillswaphq/skillswap-backend/internal/store"
	storeuser "github.com/skillswaphq/skillswap-backend/internal/store/user"
	"github.com/skillswaphq/skillswap-backend/internal/types/environments"
	"github.com/skillswaphq/skillswap-backend/internal/utils/config"
	"github.com/skillswaphq/skillswap-backend/internal/utils/logger"
)

// In-memory stand-ins for the gorm stores. The tx handle is ignored; the
// controller under test never touches the database directly.

type fakeUserStore struct {
	seq   int
	users map[string]*model.User

	// recorded by UpdateFields for allow-list assertions
	lastUpdates map[string]interface{}
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) add(name, email string) *model.User {
	f.seq++
	u := &model.User{
		ID:              fmt.Sprintf("user-%d", f.seq),
		Name:            name,
		Email:           email,
		ProfilePhotoURL: "https://photos.test/" + name,
		IsPublic:        true,
		CreatedAt:       time.Now().Add(time.Duration(f.seq) * time.Millisecond),
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserStore) Create(tx *gorm.DB, u *model.User) (*model.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) GetByID(tx *gorm.DB, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(tx *gorm.DB, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Find(tx *gorm.DB, filter storeuser.ListFilter) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if !u.IsPublic {
			continue
		}
		if filter.Availability != "" && u.Availability != filter.Availability {
			continue
		}
		if filter.Search != "" && !matchesSearch(u, filter.Search) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matchesSearch(u *model.User, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(u.Name), q) {
		return true
	}
	for _, s := range append(u.SkillsOffered, u.SkillsWanted...) {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func (f *fakeUserStore) UpdateFields(tx *gorm.DB, id string, updates map[string]interface{}) (*model.User, error) {
	updates["updated_at"] = time.Now()
	f.lastUpdates = updates
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for col, v := range updates {
		switch col {
		case "name":
			u.Name = v.(string)
		case "location":
			u.Location = v.(string)
		case "skills_offered":
			u.SkillsOffered = v.(model.StringArray)
		case "skills_wanted":
			u.SkillsWanted = v.(model.StringArray)
		case "availability":
			u.Availability = v.(string)
		case "is_public":
			u.IsPublic = v.(bool)
		case "updated_at":
			u.UpdatedAt = v.(time.Time)
		}
	}
	return u, nil
}

type fakeSwapRequestStore struct {
	seq      int
	requests map[string]*model.SwapRequest
	users    *fakeUserStore

	// forceDuplicateOnCreate simulates losing a concurrent create race: the
	// pre-check passed but the partial unique index rejected the insert.
	forceDuplicateOnCreate bool
}

func newFakeSwapRequestStore(users *fakeUserStore) *fakeSwapRequestStore {
	return &fakeSwapRequestStore{
		requests: map[string]*model.SwapRequest{},
		users:    users,
	}
}

func (f *fakeSwapRequestStore) Create(tx *gorm.DB, r *model.SwapRequest) (*model.SwapRequest, error) {
	if f.forceDuplicateOnCreate {
		return nil, gorm.ErrDuplicatedKey
	}
	for _, existing := range f.requests {
		if existing.RequesterID == r.RequesterID &&
			existing.AccepterID == r.AccepterID &&
			existing.Status == model.SwapRequestStatusPending {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	r.ID = fmt.Sprintf("swap-%d", f.seq)
	r.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	r.UpdatedAt = r.CreatedAt
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeSwapRequestStore) GetByID(tx *gorm.DB, id string) (*model.SwapRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeSwapRequestStore) GetByIDWithUsers(tx *gorm.DB, id string) (*model.SwapRequest, error) {
	r, err := f.GetByID(tx, id)
	if err != nil {
		return nil, err
	}
	enriched := *r
	enriched.Requester = f.users.users[r.RequesterID]
	enriched.Accepter = f.users.users[r.AccepterID]
	return &enriched, nil
}

func (f *fakeSwapRequestStore) HasPending(tx *gorm.DB, requesterID, accepterID string) (bool, error) {
	for _, r := range f.requests {
		if r.RequesterID == requesterID && r.AccepterID == accepterID && r.Status == model.SwapRequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSwapRequestStore) FindForUser(tx *gorm.DB, userID string, status model.SwapRequestStatus) ([]model.SwapRequest, error) {
	var out []model.SwapRequest
	for _, r := range f.requests {
		if r.RequesterID != userID && r.AccepterID != userID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		enriched := *r
		enriched.Requester = f.users.users[r.RequesterID]
		enriched.Accepter = f.users.users[r.AccepterID]
		out = append(out, enriched)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSwapRequestStore) UpdateStatusIfPending(tx *gorm.DB, id string, status model.SwapRequestStatus) (int64, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != model.SwapRequestStatusPending {
		return 0, nil
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeSwapRequestStore) DeleteIfPending(tx *gorm.DB, id string) (int64, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != model.SwapRequestStatusPending {
		return 0, nil
	}
	delete(f.requests, id)
	return 1, nil
}

func (f *fakeSwapRequestStore) CountByStatus(tx *gorm.DB) (map[model.SwapRequestStatus]int64, error) {
	counts := map[model.SwapRequestStatus]int64{}
	for _, r := range f.requests {
		counts[r.Status]++
	}
	return counts, nil
}

type testEnv struct {
	ctrl  IController
	users *fakeUserStore
	swaps *fakeSwapRequestStore
}

func newTestEnv() *testEnv {
	users := newFakeUserStore()
	swaps := newFakeSwapRequestStore(users)
	s := &store.Store{
		User:        users,
		SwapRequest: swaps,
	}
	ctrl := New(nil, s, logger.New(environments.Test), &config.AppConfig{}).(*Controller)
	ctrl.doInTx = func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
		return fn(db)
	}
	return &testEnv{
		ctrl:  ctrl,
		users: users,
		swaps: swaps,
	}
}
