package unitofwork

import (
	"context"

	"santripay-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	PesantrenRepository() contract.PesantrenRepository
	FinancialsRepository() contract.FinancialsRepository
	BankAccountRepository() contract.BankAccountRepository
	SantriRepository() contract.SantriRepository
	MasterDataRepository() contract.MasterDataRepository
	UstadzRepository() contract.UstadzRepository
	TagihanRepository() contract.TagihanRepository
	TransactionRepository() contract.TransactionRepository
	PlatformTransactionRepository() contract.PlatformTransactionRepository
	WithdrawalRepository() contract.WithdrawalRepository
	MonetizationRepository() contract.MonetizationRepository
	ContentCategoryRepository() contract.ContentCategoryRepository
	GlobalContentRepository() contract.GlobalContentRepository
	AdRepository() contract.AdRepository
}
