package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/profolio/profolio/internal/database"
	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/http/handler"
	"github.com/profolio/profolio/internal/http/router"
	"github.com/profolio/profolio/internal/repository"
	"github.com/profolio/profolio/internal/security"
	"github.com/profolio/profolio/internal/service"
)

var codePattern = regexp.MustCompile(`<b>([A-Za-z0-9]{8})</b>`)

// captureMailer records outbound mail so tests can read verification codes
// the way a real recipient would.
type captureMailer struct {
	mu       sync.Mutex
	messages []service.MailMessage
}

func (m *captureMailer) Send(_ context.Context, msg service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *captureMailer) lastCodeFor(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].To != email {
			continue
		}
		match := codePattern.FindStringSubmatch(m.messages[i].HTMLBody)
		if match == nil {
			t.Fatalf("mail to %s carries no verification code: %q", email, m.messages[i].HTMLBody)
		}
		return match[1]
	}
	t.Fatalf("no mail captured for %s", email)
	return ""
}

// memStorage keeps uploaded objects in a map; the avatar tests that need a
// real backend swap in MinIO via a container.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	seq     int
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (s *memStorage) UploadProfileImage(_ context.Context, ownerEmail string, file io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	key := fmt.Sprintf("profiles/%s/object-%d.png", ownerEmail, s.seq)
	s.objects[key] = data
	return key, nil
}

func (s *memStorage) DeleteProfileImage(_ context.Context, _ string, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey)
	return nil
}

func (s *memStorage) ResolveImageURL(_ context.Context, objectKey string) (string, error) {
	return "https://storage.test/" + objectKey, nil
}

type envOptions struct {
	authRateLimitRPM int
	storage          service.StorageService
}

type testEnv struct {
	db      *gorm.DB
	mailer  *captureMailer
	server  *httptest.Server
	client  *http.Client
	baseURL string
}

func newTestEnv(t *testing.T, mutate ...func(*envOptions)) *testEnv {
	t.Helper()

	opts := envOptions{authRateLimitRPM: 100}
	for _, fn := range mutate {
		fn(&opts)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "integration.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db, ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	userRepo := repository.NewUserRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	identityRepo := repository.NewExternalIdentityRepository(db)

	hasher := security.NewHasher("sha256")
	jwtMgr := security.NewJWTManager("profolio-test", strings.Repeat("s", 32))
	tokenSvc := service.NewTokenService(jwtMgr, 15*time.Minute, 24*time.Hour)

	mailer := &captureMailer{}
	storage := opts.storage
	if storage == nil {
		storage = newMemStorage()
	}

	authSvc := service.NewAuthService(hasher, tokenSvc, userRepo, verificationRepo, profileRepo, mailer, storage)
	registrationSvc := service.NewRegistrationService(hasher, userRepo, profileRepo, identityRepo)
	lookupCache := service.NewRedisLookupCache(lookupRepo, rdb, time.Minute)
	profileSvc := service.NewProfileService(userRepo, profileRepo, lookupCache, storage)

	h := router.NewRouter(router.Dependencies{
		AuthHandler:      handler.NewAuthHandler(authSvc, registrationSvc),
		ProfileHandler:   handler.NewProfileHandler(profileSvc),
		LookupHandler:    handler.NewLookupHandler(lookupCache),
		JWTManager:       jwtMgr,
		CORSOrigins:      []string{"*"},
		AuthRateLimitRPM: opts.authRateLimitRPM,
		APIRateLimitRPM:  10000,
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &testEnv{
		db:      db,
		mailer:  mailer,
		server:  srv,
		client:  srv.Client(),
		baseURL: srv.URL,
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// doJSON issues a request with an optional JSON body and bearer token and
// returns the status code and raw body.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.baseURL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeErrorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, raw)
	}
	return env.Error.Code
}

// registerUser walks the full verification and registration flow over HTTP.
func (e *testEnv) registerUser(t *testing.T, email, nickname, password string) {
	t.Helper()
	status, raw := e.doJSON(t, http.MethodPost, "/api/v1/auth/verify/request", map[string]string{"email": email}, "")
	if status != http.StatusOK {
		t.Fatalf("request code: status=%d body=%s", status, raw)
	}
	code := e.mailer.lastCodeFor(t, email)
	status, raw = e.doJSON(t, http.MethodPost, "/api/v1/auth/verify/confirm", map[string]string{"email": email, "code": code}, "")
	if status != http.StatusOK {
		t.Fatalf("confirm code: status=%d body=%s", status, raw)
	}
	status, raw = e.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":           email,
		"nickname":        nickname,
		"password":        password,
		"verify_password": password,
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register: status=%d body=%s", status, raw)
	}
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Nickname     string `json:"nickname"`
	IsAdmin      bool   `json:"is_admin"`
	ImageURL     string `json:"image_url"`
}

func (e *testEnv) login(t *testing.T, email, password string) tokenPair {
	t.Helper()
	status, raw := e.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": email, "password": password}, "")
	if status != http.StatusOK {
		t.Fatalf("login: status=%d body=%s", status, raw)
	}
	var pair tokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return pair
}

func (e *testEnv) seedIdentity(t *testing.T, memberID, name, birthDate string) {
	t.Helper()
	rec := &domain.ExternalIdentity{MemberID: memberID, Name: name, BirthDate: birthDate}
	if err := e.db.Create(rec).Error; err != nil {
		t.Fatalf("seed external identity: %v", err)
	}
}
