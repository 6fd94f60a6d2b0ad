package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type PesantrenMapper struct {
	profileMapper *ProfileMapper
}

func NewPesantrenMapper() *PesantrenMapper {
	return &PesantrenMapper{profileMapper: NewProfileMapper()}
}

func (m *PesantrenMapper) ToEntity(p *model.Pesantren) *entity.Pesantren {
	if p == nil {
		return nil
	}
	return &entity.Pesantren{
		Id:                p.Id,
		Name:              p.Name,
		Address:           p.Address,
		Contact:           p.Contact,
		LogoURL:           p.LogoURL,
		DocumentURL:       p.DocumentURL,
		SantriCount:       p.SantriCount,
		UstadzCount:       p.UstadzCount,
		Status:            entity.PesantrenStatus(p.Status),
		SubscriptionUntil: p.SubscriptionUntil,
		RejectionReason:   p.RejectionReason,
		AdminId:           p.AdminId,
		CreatedAt:         p.CreatedAt,
		Admin:             m.profileMapper.ToEntity(p.Admin),
	}
}

func (m *PesantrenMapper) ToModel(p *entity.Pesantren) *model.Pesantren {
	if p == nil {
		return nil
	}
	return &model.Pesantren{
		Id:                p.Id,
		Name:              p.Name,
		Address:           p.Address,
		Contact:           p.Contact,
		LogoURL:           p.LogoURL,
		DocumentURL:       p.DocumentURL,
		SantriCount:       p.SantriCount,
		UstadzCount:       p.UstadzCount,
		Status:            string(p.Status),
		SubscriptionUntil: p.SubscriptionUntil,
		RejectionReason:   p.RejectionReason,
		AdminId:           p.AdminId,
		CreatedAt:         p.CreatedAt,
	}
}

func (m *PesantrenMapper) ToEntities(list []*model.Pesantren) []*entity.Pesantren {
	entities := make([]*entity.Pesantren, len(list))
	for i, p := range list {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PesantrenMapper) FinancialsToEntity(f *model.PesantrenFinancials) *entity.PesantrenFinancials {
	if f == nil {
		return nil
	}
	return &entity.PesantrenFinancials{
		PesantrenId:      f.PesantrenId,
		AvailableBalance: f.AvailableBalance,
		PendingBalance:   f.PendingBalance,
		MonthlyIncome:    f.MonthlyIncome,
		LastWithdrawal:   f.LastWithdrawal,
		UpdatedAt:        f.UpdatedAt,
	}
}

func (m *PesantrenMapper) FinancialsToModel(f *entity.PesantrenFinancials) *model.PesantrenFinancials {
	if f == nil {
		return nil
	}
	return &model.PesantrenFinancials{
		PesantrenId:      f.PesantrenId,
		AvailableBalance: f.AvailableBalance,
		PendingBalance:   f.PendingBalance,
		MonthlyIncome:    f.MonthlyIncome,
		LastWithdrawal:   f.LastWithdrawal,
		UpdatedAt:        f.UpdatedAt,
	}
}

func (m *PesantrenMapper) BankAccountToEntity(b *model.BankAccount) *entity.BankAccount {
	if b == nil {
		return nil
	}
	return &entity.BankAccount{
		Id:            b.Id,
		PesantrenId:   b.PesantrenId,
		BankName:      b.BankName,
		AccountHolder: b.AccountHolder,
		AccountNumber: b.AccountNumber,
		CreatedAt:     b.CreatedAt,
	}
}

func (m *PesantrenMapper) BankAccountsToEntities(list []*model.BankAccount) []*entity.BankAccount {
	entities := make([]*entity.BankAccount, len(list))
	for i, b := range list {
		entities[i] = m.BankAccountToEntity(b)
	}
	return entities
}
