package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/contact"
	"wynngrid/internal/domain/profile"
	"wynngrid/internal/domain/project"
	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/googleauth"
	"wynngrid/internal/pkg/upload"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	deleted []uuid.UUID
	err     error
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{byID: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) DeleteAccount(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return user.ErrNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockProfileRepo struct {
	byUser map[uuid.UUID]profile.Profile

	replacedAverages bool
	err              error
}

func newMockProfileRepo(profiles ...profile.Profile) *mockProfileRepo {
	m := &mockProfileRepo{byUser: map[uuid.UUID]profile.Profile{}}
	for _, p := range profiles {
		m.byUser[p.UserID] = p
	}
	return m
}

func (m *mockProfileRepo) Create(_ context.Context, p profile.Profile) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byUser[p.UserID]; ok {
		return profile.ErrAlreadyExists
	}
	m.byUser[p.UserID] = p
	return nil
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	p, ok := m.byUser[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) ExistsByUserID(_ context.Context, userID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byUser[userID]
	return ok, nil
}

func (m *mockProfileRepo) Update(_ context.Context, p profile.Profile, replaceAverages bool) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byUser[p.UserID]; !ok {
		return profile.ErrNotFound
	}
	if !replaceAverages {
		p.Averages = m.byUser[p.UserID].Averages
	}
	m.byUser[p.UserID] = p
	m.replacedAverages = replaceAverages
	return nil
}

func (m *mockProfileRepo) Delete(_ context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byUser[userID]; !ok {
		return profile.ErrNotFound
	}
	delete(m.byUser, userID)
	return nil
}

type mockProjectRepo struct {
	byID map[uuid.UUID]project.Project
	err  error
}

func newMockProjectRepo(projects ...project.Project) *mockProjectRepo {
	m := &mockProjectRepo{byID: map[uuid.UUID]project.Project{}}
	for _, p := range projects {
		m.byID[p.ID] = p
	}
	return m
}

func (m *mockProjectRepo) Create(_ context.Context, p project.Project) error {
	if m.err != nil {
		return m.err
	}
	m.byID[p.ID] = p
	return nil
}

func (m *mockProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]project.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []project.Project
	for _, p := range m.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id, userID uuid.UUID) (project.Project, error) {
	if m.err != nil {
		return project.Project{}, m.err
	}
	p, ok := m.byID[id]
	if !ok || p.UserID != userID {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (m *mockProjectRepo) Update(_ context.Context, p project.Project) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[p.ID]; !ok {
		return project.ErrNotFound
	}
	m.byID[p.ID] = p
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.byID[id]
	if !ok || p.UserID != userID {
		return project.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockContactRepo struct {
	contacts    []contact.Contact
	subscribers []contact.Subscriber
	err         error
}

func (m *mockContactRepo) CreateContact(_ context.Context, c contact.Contact) error {
	if m.err != nil {
		return m.err
	}
	m.contacts = append(m.contacts, c)
	return nil
}

func (m *mockContactRepo) CreateSubscriber(_ context.Context, s contact.Subscriber) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.subscribers {
		if existing.Email == s.Email {
			return contact.ErrAlreadySubscribed
		}
	}
	m.subscribers = append(m.subscribers, s)
	return nil
}

func (m *mockContactRepo) SubscriberExists(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.subscribers {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mockMailer struct {
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type mockVerifier struct {
	identity googleauth.Identity
	err      error
}

func (m mockVerifier) Verify(context.Context, string) (googleauth.Identity, error) {
	return m.identity, m.err
}

type mockCache struct {
	data    map[string][]byte
	deleted []string
	sets    []string
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.sets = append(m.sets, key)
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

type mockFile struct {
	name string
	data string
}

func (f mockFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.data)), nil
}
func (f mockFile) Filename() string { return f.name }
func (f mockFile) Size() int64      { return int64(len(f.data)) }

type mockUploader struct {
	mu      sync.Mutex
	uploads []string
	err     error
}

func (m *mockUploader) Upload(_ context.Context, f upload.File, folder string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	url := "https://cdn.example.com/" + folder + "/" + f.Filename()
	m.mu.Lock()
	m.uploads = append(m.uploads, url)
	m.mu.Unlock()
	return url, nil
}

var errMockFailure = errors.New("mock failure")
