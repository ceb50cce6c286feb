package sqlite

import (
	"context"
	"database/sql"

	"github.com/angicungduoc/foodreview/internal/api/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                 { return &usersRepo{db: t.tx} }
func (t *txStore) Posts() store.Posts                 { return &postsRepo{db: t.tx} }
func (t *txStore) Categories() store.Categories       { return &categoriesRepo{db: t.tx} }
func (t *txStore) Comments() store.Comments           { return &commentsRepo{db: t.tx} }
func (t *txStore) Rates() store.Rates                 { return &ratesRepo{db: t.tx} }
func (t *txStore) ReportTypes() store.ReportTypes     { return &reportTypesRepo{db: t.tx} }
func (t *txStore) Reports() store.Reports             { return &reportsRepo{db: t.tx} }
func (t *txStore) Wishlists() store.Wishlists         { return &wishlistsRepo{db: t.tx} }
func (t *txStore) RevokedTokens() store.RevokedTokens { return &revokedTokensRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations run before any tx starts
