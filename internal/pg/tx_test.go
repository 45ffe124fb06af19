package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func TestManager_Begin(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO ledger_transactions")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn, tx *Manager) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commits on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec(insert).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, "INSERT INTO ledger_transactions (account_id) VALUES ($1)", 1)
					return err
				}
			},
		},
		{
			name: "Rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			fn: func(_ *Conn, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("boom")
				}
			},
			expectErr: true,
		},
		{
			name: "Nested begin joins the outer transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec(insert).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(insert).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn, tx *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					if _, err := conn.Exec(ctx, "INSERT INTO ledger_transactions (account_id) VALUES ($1)", 1); err != nil {
						return err
					}
					return tx.Begin(ctx, func(ctx context.Context) error {
						_, err := conn.Exec(ctx, "INSERT INTO ledger_transactions (account_id) VALUES ($1)", 2)
						return err
					})
				}
			},
		},
		{
			name: "Begin failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted).WillReturnError(errors.New("connection refused"))
			},
			fn: func(_ *Conn, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run without a transaction")
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "Commit failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(_ *Conn, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			manager := NewTXManager(mock)
			conn := New(mock)

			err = manager.Begin(context.Background(), tt.fn(conn, manager))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConn_WithoutTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT balance FROM accounts WHERE account_id = $1")).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(10)))

	var balance int64
	err = New(mock).QueryRow(context.Background(), "SELECT balance FROM accounts WHERE account_id = $1", 7).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
