package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"wynngrid/internal/database"
	"wynngrid/internal/domain/user"
)

type fakeTx struct {
	execs      []string
	execErrOn  string
	usersRows  int64
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.execs = append(t.execs, query)
	if t.execErrOn != "" && strings.Contains(query, t.execErrOn) {
		return 0, errors.New("exec failed")
	}
	if strings.Contains(query, "DELETE FROM users") {
		return t.usersRows, nil
	}
	return 1, nil
}

func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }
func (db *fakeDB) SQLDB() *sql.DB             { return nil }

func (db *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("not implemented")
}

func (db *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (db *fakeDB) Begin(context.Context) (database.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

func TestDeleteAccount_CascadeOrderAndCommit(t *testing.T) {
	tx := &fakeTx{usersRows: 1}
	repo := NewPostgresUserRepository(&fakeDB{tx: tx})

	if err := repo.DeleteAccount(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !tx.committed {
		t.Fatalf("expected commit")
	}
	if tx.rolledBack {
		t.Fatalf("commit must not be followed by rollback")
	}

	wantOrder := []string{"project_averages", "projects", "profiles", "users"}
	if len(tx.execs) != len(wantOrder) {
		t.Fatalf("expected %d statements, got %d", len(wantOrder), len(tx.execs))
	}
	for i, table := range wantOrder {
		if !strings.Contains(tx.execs[i], table) {
			t.Fatalf("statement %d should target %s, got %q", i, table, tx.execs[i])
		}
	}
}

func TestDeleteAccount_MissingUserRollsBack(t *testing.T) {
	tx := &fakeTx{usersRows: 0}
	repo := NewPostgresUserRepository(&fakeDB{tx: tx})

	if err := repo.DeleteAccount(context.Background(), uuid.New()); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tx.committed {
		t.Fatalf("must not commit when the account is missing")
	}
	if !tx.rolledBack {
		t.Fatalf("expected rollback")
	}
}

func TestDeleteAccount_ChildFailureRollsBack(t *testing.T) {
	tx := &fakeTx{usersRows: 1, execErrOn: "projects "}
	repo := NewPostgresUserRepository(&fakeDB{tx: tx})

	if err := repo.DeleteAccount(context.Background(), uuid.New()); err == nil {
		t.Fatalf("expected error")
	}
	if tx.committed {
		t.Fatalf("must not commit after a failed child delete")
	}
	if !tx.rolledBack {
		t.Fatalf("expected rollback")
	}
}
