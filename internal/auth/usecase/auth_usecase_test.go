package usecase

import (
	"testing"
	"time"

	authdomain "donorhub-backend/internal/auth/domain"
	authdto "donorhub-backend/internal/auth/dto"
	"donorhub-backend/pkg/config"
)

// memoryUserRepository is an in-memory UserRepository for tests.
type memoryUserRepository struct {
	users  map[string]*authdomain.User
	tokens map[string]*authdomain.RefreshToken
	nextID int
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		users:  map[string]*authdomain.User{},
		tokens: map[string]*authdomain.RefreshToken{},
	}
}

func (r *memoryUserRepository) Create(user *authdomain.User) error {
	r.nextID++
	user.ID = "u" + string(rune('0'+r.nextID))
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *memoryUserRepository) Update(user *authdomain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryUserRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.tokens[token], nil
}

func (r *memoryUserRepository) DeleteRefreshToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *memoryUserRepository) DeleteRefreshTokensByUser(userID string) error {
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("issues tokens and hides the password", func(t *testing.T) {
		uc := NewAuthUsecase(newMemoryUserRepository(), testConfig())

		tokens, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "hunter22", Name: "Dev"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tokens.AccessToken == "" || tokens.RefreshToken == "" {
			t.Error("token pair should be issued on registration")
		}
		if tokens.User.Password == "hunter22" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newMemoryUserRepository()
		uc := NewAuthUsecase(repo, testConfig())

		if _, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "hunter22", Name: "Dev"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "other", Name: "Dev 2"}); err == nil {
			t.Fatal("want error on duplicate email, got nil")
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())
	if _, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "hunter22", Name: "Dev"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("correct credentials", func(t *testing.T) {
		tokens, err := uc.Login(&authdto.LoginRequest{Email: "dev@example.org", Password: "hunter22"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tokens.User.Email != "dev@example.org" {
			t.Errorf("email = %q", tokens.User.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := uc.Login(&authdto.LoginRequest{Email: "dev@example.org", Password: "nope"}); err == nil {
			t.Fatal("want error, got nil")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := uc.Login(&authdto.LoginRequest{Email: "ghost@example.org", Password: "hunter22"}); err == nil {
			t.Fatal("want error, got nil")
		}
	})
}

func TestAuthUsecase_TokenLifecycle(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())
	tokens, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "hunter22", Name: "Dev"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("access token validates back to the user", func(t *testing.T) {
		user, err := uc.ValidateToken(tokens.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "dev@example.org" {
			t.Errorf("email = %q", user.Email)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := uc.ValidateToken("not.a.jwt"); err == nil {
			t.Fatal("want error, got nil")
		}
	})

	t.Run("refresh rotates the pair", func(t *testing.T) {
		fresh, err := uc.RefreshToken(tokens.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fresh.AccessToken == "" {
			t.Error("refresh should issue a new access token")
		}
	})

	t.Run("logout invalidates the refresh token", func(t *testing.T) {
		if err := uc.Logout(tokens.RefreshToken); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if _, err := uc.RefreshToken(tokens.RefreshToken); err == nil {
			t.Fatal("want error after logout, got nil")
		}
	})
}

func TestAuthUsecase_LogoutAll(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())

	// Two sessions for the same account, one for somebody else.
	first, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "hunter22", Name: "Dev"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	second, err := uc.Login(&authdto.LoginRequest{Email: "dev@example.org", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	other, err := uc.Register(&authdto.RegisterRequest{Email: "other@example.org", Password: "hunter22", Name: "Other"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := uc.LogoutAll(first.User.ID); err != nil {
		t.Fatalf("logout all: %v", err)
	}

	if _, err := uc.RefreshToken(first.RefreshToken); err == nil {
		t.Error("first session should be revoked")
	}
	if _, err := uc.RefreshToken(second.RefreshToken); err == nil {
		t.Error("second session should be revoked")
	}
	if _, err := uc.RefreshToken(other.RefreshToken); err != nil {
		t.Errorf("other user's session should survive: %v", err)
	}
}

func TestAuthUsecase_UpdateProfile(t *testing.T) {
	repo := newMemoryUserRepository()
	uc := NewAuthUsecase(repo, testConfig())
	tokens, err := uc.Register(&authdto.RegisterRequest{Email: "dev@example.org", Password: "hunter22", Name: "Dev"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("renames the user", func(t *testing.T) {
		updated, err := uc.UpdateProfile(tokens.User.ID, &authdto.UpdateProfileRequest{Name: "Devon"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Devon" {
			t.Errorf("name = %q, want %q", updated.Name, "Devon")
		}
		stored, _ := repo.FindByID(tokens.User.ID)
		if stored.Name != "Devon" {
			t.Errorf("stored name = %q, want %q", stored.Name, "Devon")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := uc.UpdateProfile("missing", &authdto.UpdateProfileRequest{Name: "Nobody"}); err == nil {
			t.Fatal("want error, got nil")
		}
	})
}
