package service

import (
	"testing"

	"github.com/akozyreva/coursehub/config"
	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
)

func newAuthForTest(store *memStore) AuthService {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.TokenTTLMinutes = 60
	return NewAuthService(&fakeUserRepo{store: store}, cfg)
}

func TestRegisterLoginVerifyRoundTrip(t *testing.T) {
	auth := newAuthForTest(newMemStore())

	user, err := auth.Register(dto.RegisterDTO{
		Email:     "bob@example.com",
		Password:  "hunter22",
		FullName:  "Bob",
		IsTeacher: false,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != "student" {
		t.Errorf("role = %q, want student", user.Role)
	}

	token, profile, err := auth.Login(dto.LoginDTO{Email: "bob@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile.ID != user.ID {
		t.Errorf("profile id = %d, want %d", profile.ID, user.ID)
	}

	id, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != user.ID {
		t.Errorf("verified id = %d, want %d", id, user.ID)
	}

	loaded, err := auth.UserByID(id)
	if err != nil {
		t.Fatalf("user by id: %v", err)
	}
	if loaded.Email != "bob@example.com" {
		t.Errorf("email = %q", loaded.Email)
	}
}

func TestRegisterMapsLegacyTeacherFlag(t *testing.T) {
	auth := newAuthForTest(newMemStore())

	user, err := auth.Register(dto.RegisterDTO{
		Email:     "alice@example.com",
		Password:  "secret1",
		FullName:  "Alice",
		IsTeacher: true,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != "teacher" {
		t.Errorf("role = %q, want teacher", user.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthForTest(newMemStore())

	req := dto.RegisterDTO{Email: "bob@example.com", Password: "hunter22", FullName: "Bob"}
	if _, err := auth.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(req)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("duplicate register: kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newAuthForTest(newMemStore())

	if _, err := auth.Register(dto.RegisterDTO{Email: "bob@example.com", Password: "hunter22", FullName: "Bob"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name string
		req  dto.LoginDTO
	}{
		{"wrong password", dto.LoginDTO{Email: "bob@example.com", Password: "wrong"}},
		{"unknown email", dto.LoginDTO{Email: "nobody@example.com", Password: "hunter22"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := auth.Login(tt.req)
			if apperr.KindOf(err) != apperr.KindUnauthenticated {
				t.Errorf("kind = %v, want unauthenticated", apperr.KindOf(err))
			}
			if apperr.MessageOf(err) != "incorrect email or password" {
				t.Errorf("message = %q, wrong-password and unknown-email must be indistinguishable", apperr.MessageOf(err))
			}
		})
	}
}

func TestVerifyRejectsGarbageTokens(t *testing.T) {
	store := newMemStore()
	auth := newAuthForTest(store)

	if _, err := auth.Verify("not-a-jwt"); apperr.KindOf(err) != apperr.KindUnauthenticated {
		t.Errorf("garbage token: kind = %v, want unauthenticated", apperr.KindOf(err))
	}

	// A token signed with a different secret must not verify.
	otherCfg := &config.Config{}
	otherCfg.Auth.SecretKey = "other-secret"
	otherCfg.Auth.TokenTTLMinutes = 60
	other := NewAuthService(&fakeUserRepo{store: store}, otherCfg)

	if _, err := other.Register(dto.RegisterDTO{Email: "eve@example.com", Password: "secret1", FullName: "Eve"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := other.Login(dto.LoginDTO{Email: "eve@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := auth.Verify(token); apperr.KindOf(err) != apperr.KindUnauthenticated {
		t.Errorf("cross-secret token: kind = %v, want unauthenticated", apperr.KindOf(err))
	}
}
