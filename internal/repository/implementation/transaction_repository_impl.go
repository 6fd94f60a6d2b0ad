package implementation

import (
	"context"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, transaction *entity.Transaction) error {
	m := r.mapper.ToModel(transaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*transaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var models []*model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TransactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Transaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TransactionRepositoryImpl) KoperasiIncomeSince(ctx context.Context, pesantrenId uuid.UUID, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Table("koperasi_transactions").
		Select("SUM(koperasi_transactions.total)").
		Joins("JOIN koperasi ON koperasi.id = koperasi_transactions.koperasi_id").
		Where("koperasi.pesantren_id = ?", pesantrenId).
		Where("koperasi_transactions.created_at >= ?", since).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

type PlatformTransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewPlatformTransactionRepository(db *gorm.DB) contract.PlatformTransactionRepository {
	return &PlatformTransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *PlatformTransactionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlatformTransactionRepositoryImpl) Create(ctx context.Context, transaction *entity.PlatformTransaction) error {
	m := &model.PlatformTransaction{
		Id:          transaction.Id,
		PesantrenId: transaction.PesantrenId,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		FeeAmount:   transaction.FeeAmount,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*transaction = *r.mapper.PlatformToEntity(m)
	return nil
}

func (r *PlatformTransactionRepositoryImpl) FindAllWithPesantren(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformTransaction, error) {
	var models []*model.PlatformTransaction
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Pesantren"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlatformToEntities(models), nil
}

func (r *PlatformTransactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PlatformTransaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PlatformTransactionRepositoryImpl) SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	return r.sumColumn(ctx, "amount", specs...)
}

func (r *PlatformTransactionRepositoryImpl) SumFees(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	return r.sumColumn(ctx, "fee_amount", specs...)
}

func (r *PlatformTransactionRepositoryImpl) sumColumn(ctx context.Context, column string, specs ...specification.Specification) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PlatformTransaction{}), specs...)
	if err := query.Select("SUM(" + column + ")").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
