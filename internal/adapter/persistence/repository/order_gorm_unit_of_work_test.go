package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func TestOrderGormTx_AddOrderAmounts(t *testing.T) {
	t.Run("increments inside the database, not in application code", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		tx := &orderGormTx{db: db}

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE `orders` SET `subtotal_amount`=subtotal_amount + ?,`total_amount`=total_amount + ?,`updated_at`=? WHERE id = ?",
		)).
			WithArgs(3000, 3000, sqlmock.AnyArg(), "order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := tx.AddOrderAmounts(context.Background(), "order-1", 3000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}

func TestOrderGormUnitOfWork_Do(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		uow := NewOrderGormUnitOfWork(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `orders` SET").
			WithArgs(500, 500, sqlmock.AnyArg(), "order-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := uow.Do(context.Background(), func(tx interfaces.IOrderTx) error {
			return tx.AddOrderAmounts(context.Background(), "order-1", 500)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		db, mock := newMockGormDB(t)
		uow := NewOrderGormUnitOfWork(db)

		boom := errors.New("composer failed")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := uow.Do(context.Background(), func(tx interfaces.IOrderTx) error {
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected composer error, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}
