package unitofwork

import (
	"context"
	"fmt"

	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PesantrenRepository() contract.PesantrenRepository {
	return implementation.NewPesantrenRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FinancialsRepository() contract.FinancialsRepository {
	return implementation.NewFinancialsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BankAccountRepository() contract.BankAccountRepository {
	return implementation.NewBankAccountRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SantriRepository() contract.SantriRepository {
	return implementation.NewSantriRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MasterDataRepository() contract.MasterDataRepository {
	return implementation.NewMasterDataRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UstadzRepository() contract.UstadzRepository {
	return implementation.NewUstadzRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TagihanRepository() contract.TagihanRepository {
	return implementation.NewTagihanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TransactionRepository() contract.TransactionRepository {
	return implementation.NewTransactionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlatformTransactionRepository() contract.PlatformTransactionRepository {
	return implementation.NewPlatformTransactionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WithdrawalRepository() contract.WithdrawalRepository {
	return implementation.NewWithdrawalRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MonetizationRepository() contract.MonetizationRepository {
	return implementation.NewMonetizationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContentCategoryRepository() contract.ContentCategoryRepository {
	return implementation.NewContentCategoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GlobalContentRepository() contract.GlobalContentRepository {
	return implementation.NewGlobalContentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdRepository() contract.AdRepository {
	return implementation.NewAdRepository(u.getDB())
}
