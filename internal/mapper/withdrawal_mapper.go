package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type WithdrawalMapper struct {
	pesantrenMapper *PesantrenMapper
}

func NewWithdrawalMapper() *WithdrawalMapper {
	return &WithdrawalMapper{pesantrenMapper: NewPesantrenMapper()}
}

func (m *WithdrawalMapper) ToEntity(w *model.WithdrawalRequest) *entity.WithdrawalRequest {
	if w == nil {
		return nil
	}
	return &entity.WithdrawalRequest{
		Id:            w.Id,
		PesantrenId:   w.PesantrenId,
		BankAccountId: w.BankAccountId,
		Amount:        w.Amount,
		Status:        entity.WithdrawalStatus(w.Status),
		Reason:        w.Reason,
		RequestedAt:   w.RequestedAt,
		ProcessedAt:   w.ProcessedAt,
		Pesantren:     m.pesantrenMapper.ToEntity(w.Pesantren),
		BankAccount:   m.pesantrenMapper.BankAccountToEntity(w.BankAccount),
	}
}

func (m *WithdrawalMapper) ToModel(w *entity.WithdrawalRequest) *model.WithdrawalRequest {
	if w == nil {
		return nil
	}
	return &model.WithdrawalRequest{
		Id:            w.Id,
		PesantrenId:   w.PesantrenId,
		BankAccountId: w.BankAccountId,
		Amount:        w.Amount,
		Status:        string(w.Status),
		Reason:        w.Reason,
		RequestedAt:   w.RequestedAt,
		ProcessedAt:   w.ProcessedAt,
	}
}

func (m *WithdrawalMapper) ToEntities(list []*model.WithdrawalRequest) []*entity.WithdrawalRequest {
	entities := make([]*entity.WithdrawalRequest, len(list))
	for i, w := range list {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
