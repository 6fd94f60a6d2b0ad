package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type TransactionMapper struct {
	pesantrenMapper *PesantrenMapper
}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{pesantrenMapper: NewPesantrenMapper()}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:          t.Id,
		PesantrenId: t.PesantrenId,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:          t.Id,
		PesantrenId: t.PesantrenId,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TransactionMapper) ToEntities(list []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(list))
	for i, t := range list {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TransactionMapper) PlatformToEntity(t *model.PlatformTransaction) *entity.PlatformTransaction {
	if t == nil {
		return nil
	}
	return &entity.PlatformTransaction{
		Id:          t.Id,
		PesantrenId: t.PesantrenId,
		Type:        entity.PlatformTransactionType(t.Type),
		Amount:      t.Amount,
		FeeAmount:   t.FeeAmount,
		CreatedAt:   t.CreatedAt,
		Pesantren:   m.pesantrenMapper.ToEntity(t.Pesantren),
	}
}

func (m *TransactionMapper) PlatformToEntities(list []*model.PlatformTransaction) []*entity.PlatformTransaction {
	entities := make([]*entity.PlatformTransaction, len(list))
	for i, t := range list {
		entities[i] = m.PlatformToEntity(t)
	}
	return entities
}
