package usecase

import (
	"context"
	"errors"
	"testing"

	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

func TestGetProfileStripsPasswordHash(t *testing.T) {
	users := newMockUserRepo()
	usr := user.User{ID: uuid.New(), Name: "Dana", Email: "dana@hirehub.dev", PasswordHash: "hash"}
	users.add(usr)
	uc := NewUserUsecase(users)

	got, err := uc.GetProfile(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PasswordHash != "" {
		t.Error("expected password hash to be stripped")
	}
	if got.Name != "Dana" {
		t.Errorf("expected Dana, got %q", got.Name)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	uc := NewUserUsecase(newMockUserRepo())

	_, err := uc.GetProfile(context.Background(), uuid.New())
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfileMergesOpenFields(t *testing.T) {
	users := newMockUserRepo()
	usr := user.User{
		ID:      uuid.New(),
		Name:    "Dana",
		Email:   "dana@hirehub.dev",
		Profile: user.Profile{"phone": "123", "location": "Berlin"},
	}
	users.add(usr)
	uc := NewUserUsecase(users)

	name := "  Dana Миронова  "
	got, err := uc.UpdateProfile(context.Background(), usr.ID, UpdateProfileInput{
		Name:    &name,
		Profile: map[string]any{"phone": "456", "skills": []string{"Go"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Dana Миронова" {
		t.Errorf("expected trimmed name, got %q", got.Name)
	}
	if got.Profile["phone"] != "456" {
		t.Errorf("expected phone to be overwritten, got %v", got.Profile["phone"])
	}
	if got.Profile["location"] != "Berlin" {
		t.Errorf("expected untouched keys to survive, got %v", got.Profile["location"])
	}
	if _, ok := got.Profile["skills"]; !ok {
		t.Error("expected new profile key to be merged")
	}
}

func TestUpdateProfileValidatesNameAndEmail(t *testing.T) {
	users := newMockUserRepo()
	usr := user.User{ID: uuid.New(), Name: "Dana", Email: "dana@hirehub.dev"}
	users.add(usr)
	uc := NewUserUsecase(users)

	empty := "   "
	_, err := uc.UpdateProfile(context.Background(), usr.ID, UpdateProfileInput{Name: &empty})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty name, got %v", err)
	}

	bad := "not-an-email"
	_, err = uc.UpdateProfile(context.Background(), usr.ID, UpdateProfileInput{Email: &bad})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for bad email, got %v", err)
	}
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	users := newMockUserRepo()
	usr := user.User{ID: uuid.New(), Name: "Dana", Email: "dana@hirehub.dev"}
	users.add(usr)
	uc := NewUserUsecase(users)

	// The mock only reports conflicts on Create, so force it here.
	users.updateErr = user.ErrEmailTaken

	taken := "other@hirehub.dev"
	_, err := uc.UpdateProfile(context.Background(), usr.ID, UpdateProfileInput{Email: &taken})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestListCandidatesRecruiterOnly(t *testing.T) {
	users := newMockUserRepo()
	users.byRole = []user.User{{ID: uuid.New(), Name: "Sam", PasswordHash: "hash"}}
	uc := NewUserUsecase(users)

	_, err := uc.ListCandidates(context.Background(), candidateIdentity())
	if !errors.Is(err, ErrRecruitersOnly) {
		t.Fatalf("expected ErrRecruitersOnly, got %v", err)
	}

	out, err := uc.ListCandidates(context.Background(), recruiterIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one candidate, got %d", len(out))
	}
	if out[0].PasswordHash != "" {
		t.Error("expected password hash to be stripped")
	}
}
