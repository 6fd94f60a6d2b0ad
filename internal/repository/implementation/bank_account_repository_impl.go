package implementation

import (
	"context"
	"errors"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PesantrenMapper
}

func NewBankAccountRepository(db *gorm.DB) contract.BankAccountRepository {
	return &BankAccountRepositoryImpl{
		db:     db,
		mapper: mapper.NewPesantrenMapper(),
	}
}

func (r *BankAccountRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BankAccountRepositoryImpl) Create(ctx context.Context, account *entity.BankAccount) error {
	m := &model.BankAccount{
		Id:            account.Id,
		PesantrenId:   account.PesantrenId,
		BankName:      account.BankName,
		AccountHolder: account.AccountHolder,
		AccountNumber: account.AccountNumber,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.BankAccountToEntity(m)
	return nil
}

func (r *BankAccountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BankAccount{}, id).Error
}

func (r *BankAccountRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BankAccount, error) {
	var m model.BankAccount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BankAccountToEntity(&m), nil
}

func (r *BankAccountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BankAccount, error) {
	var models []*model.BankAccount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.BankAccountsToEntities(models), nil
}
