package auth

import (
	"context"
	"testing"

	"voltride-service/internal/domain/admin"
	xerrors "voltride-service/internal/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]*admin.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*admin.Admin), nextID: 1}
}

func (r *fakeAdminRepo) Create(ctx context.Context, a *admin.Admin) error {
	a.ID = r.nextID
	r.nextID++
	r.admins[a.Email] = a
	return nil
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return a, nil
}

func (r *fakeAdminRepo) FindByID(ctx context.Context, id int64) (*admin.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeAdminRepo) UpdateLastLogin(ctx context.Context, id int64) error { return nil }

func (r *fakeAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.admins[email]
	return ok, nil
}

func TestEnsureBootstrapAdminCreatesAccount(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil, nil, nil, zap.NewNop())

	if err := svc.EnsureBootstrapAdmin(context.Background(), "root@voltride.in", "correct-horse-battery", "Root"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	a, err := repo.FindByEmail(context.Background(), "root@voltride.in")
	if err != nil {
		t.Fatalf("bootstrap admin not created: %v", err)
	}
	if a.Role != admin.RoleSuperAdmin {
		t.Errorf("expected role %q, got %q", admin.RoleSuperAdmin, a.Role)
	}
	if !a.IsActive {
		t.Error("bootstrap admin must be active")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("correct-horse-battery")); err != nil {
		t.Error("stored hash does not match the bootstrap password")
	}
}

func TestEnsureBootstrapAdminIsIdempotent(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil, nil, nil, zap.NewNop())

	if err := svc.EnsureBootstrapAdmin(context.Background(), "root@voltride.in", "pw-one-two-three", "Root"); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	first := repo.admins["root@voltride.in"].PasswordHash

	if err := svc.EnsureBootstrapAdmin(context.Background(), "root@voltride.in", "different-password", "Root"); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if repo.admins["root@voltride.in"].PasswordHash != first {
		t.Error("existing admin must not be overwritten")
	}
}

func TestEnsureBootstrapAdminDisabledWhenUnconfigured(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil, nil, nil, zap.NewNop())

	if err := svc.EnsureBootstrapAdmin(context.Background(), "", "", ""); err != nil {
		t.Fatalf("blank config must be a no-op, got %v", err)
	}
	if len(repo.admins) != 0 {
		t.Error("no admin should be created without configuration")
	}
}
