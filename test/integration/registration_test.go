package integration

import (
	"net/http"
	"testing"

	"github.com/profolio/profolio/internal/domain"
)

func TestMemberRegistrationAgainstIdentityRegistry(t *testing.T) {
	env := newTestEnv(t)
	env.seedIdentity(t, "M-1001", "Jordan Example", "19940506")

	memberBody := func() map[string]string {
		return map[string]string{
			"email":           "member@example.com",
			"nickname":        "member",
			"password":        "pw-member-1",
			"verify_password": "pw-member-1",
			"tier":            "member",
			"member_id":       "M-1001",
			"legal_name":      "Jordan Example",
			"birth_date":      "19940506",
		}
	}

	t.Run("unmatched identity is rejected", func(t *testing.T) {
		body := memberBody()
		body["legal_name"] = "Someone Else"
		status, raw := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", body, "")
		if status != http.StatusForbidden {
			t.Fatalf("status=%d body=%s, want 403", status, raw)
		}
	})

	t.Run("invalid birth date is rejected", func(t *testing.T) {
		body := memberBody()
		body["birth_date"] = "19940231"
		status, raw := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", body, "")
		if status != http.StatusBadRequest {
			t.Fatalf("status=%d body=%s, want 400", status, raw)
		}
	})

	t.Run("matched identity registers with member attributes", func(t *testing.T) {
		status, raw := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", memberBody(), "")
		if status != http.StatusCreated {
			t.Fatalf("status=%d body=%s, want 201", status, raw)
		}
		var user domain.User
		if err := env.db.First(&user, "email = ?", "member@example.com").Error; err != nil {
			t.Fatalf("load registered user: %v", err)
		}
		if user.Tier != domain.TierMember {
			t.Fatalf("tier = %q, want member", user.Tier)
		}
		if user.MemberID == nil || *user.MemberID != "M-1001" {
			t.Fatalf("member id not bound: %+v", user.MemberID)
		}
		var profile domain.Profile
		if err := env.db.First(&profile, "user_email = ?", "member@example.com").Error; err != nil {
			t.Fatalf("profile row missing after registration: %v", err)
		}
		if profile.IsOpen {
			t.Fatal("new profile should start closed")
		}
	})

	t.Run("identity already bound wins over duplicate email", func(t *testing.T) {
		// Same member id and a colliding email: the bound-identity
		// conflict is reported, not the duplicate email.
		status, raw := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", memberBody(), "")
		if status != http.StatusConflict {
			t.Fatalf("status=%d body=%s, want 409", status, raw)
		}
	})
}

func TestBasicRegistrationConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "taken@example.com", "taken", "password-one")

	t.Run("duplicate email", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email":           "taken@example.com",
			"nickname":        "someone-new",
			"password":        "password-two",
			"verify_password": "password-two",
		}, "")
		if status != http.StatusConflict {
			t.Fatalf("status=%d, want 409", status)
		}
	})

	t.Run("duplicate nickname", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email":           "fresh@example.com",
			"nickname":        "taken",
			"password":        "password-two",
			"verify_password": "password-two",
		}, "")
		if status != http.StatusConflict {
			t.Fatalf("status=%d, want 409", status)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email":           "fresh@example.com",
			"nickname":        "fresh",
			"password":        "password-two",
			"verify_password": "password-three",
		}, "")
		if status != http.StatusBadRequest {
			t.Fatalf("status=%d, want 400", status)
		}
	})
}
