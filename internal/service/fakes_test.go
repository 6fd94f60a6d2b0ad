package service

import (
	"context"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/identity"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hand-rolled fakes for the repository facade; each test wires only the
// repositories its flow touches.

type fakeFactory struct {
	uow      *fakeUow
	newCalls int
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.newCalls++
	return f.uow
}

type fakeUow struct {
	begun      int
	committed  int
	rolledBack int

	profiles     contract.ProfileRepository
	pesantren    contract.PesantrenRepository
	financials   contract.FinancialsRepository
	bankAccounts contract.BankAccountRepository
	santri       contract.SantriRepository
	masterData   contract.MasterDataRepository
	ustadz       contract.UstadzRepository
	tagihan      contract.TagihanRepository
	transactions contract.TransactionRepository
	platformTx   contract.PlatformTransactionRepository
	withdrawals  contract.WithdrawalRepository
	monetization contract.MonetizationRepository
	categories   contract.ContentCategoryRepository
	content      contract.GlobalContentRepository
	ads          contract.AdRepository
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begun++; return nil }
func (u *fakeUow) Commit() error                   { u.committed++; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUow) ProfileRepository() contract.ProfileRepository         { return u.profiles }
func (u *fakeUow) PesantrenRepository() contract.PesantrenRepository     { return u.pesantren }
func (u *fakeUow) FinancialsRepository() contract.FinancialsRepository   { return u.financials }
func (u *fakeUow) BankAccountRepository() contract.BankAccountRepository { return u.bankAccounts }
func (u *fakeUow) SantriRepository() contract.SantriRepository           { return u.santri }
func (u *fakeUow) MasterDataRepository() contract.MasterDataRepository   { return u.masterData }
func (u *fakeUow) UstadzRepository() contract.UstadzRepository           { return u.ustadz }
func (u *fakeUow) TagihanRepository() contract.TagihanRepository         { return u.tagihan }
func (u *fakeUow) TransactionRepository() contract.TransactionRepository { return u.transactions }
func (u *fakeUow) PlatformTransactionRepository() contract.PlatformTransactionRepository {
	return u.platformTx
}
func (u *fakeUow) WithdrawalRepository() contract.WithdrawalRepository     { return u.withdrawals }
func (u *fakeUow) MonetizationRepository() contract.MonetizationRepository { return u.monetization }
func (u *fakeUow) ContentCategoryRepository() contract.ContentCategoryRepository {
	return u.categories
}
func (u *fakeUow) GlobalContentRepository() contract.GlobalContentRepository { return u.content }
func (u *fakeUow) AdRepository() contract.AdRepository                       { return u.ads }

type fakeProfileRepo struct {
	findOneResult *entity.Profile
	created       []*entity.Profile
	updatedId     uuid.UUID
	updatedFields map[string]interface{}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	r.created = append(r.created, profile)
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }

func (r *fakeProfileRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.updatedId = id
	r.updatedFields = fields
	return nil
}

func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	return r.findOneResult, nil
}

func (r *fakeProfileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	return nil, nil
}

type fakePesantrenRepo struct {
	findOneResult *entity.Pesantren
	created       []*entity.Pesantren
	updatedFields map[string]interface{}
	santriTotal   int64
	santriSums    int
}

func (r *fakePesantrenRepo) Create(ctx context.Context, pesantren *entity.Pesantren) error {
	r.created = append(r.created, pesantren)
	return nil
}

func (r *fakePesantrenRepo) Update(ctx context.Context, pesantren *entity.Pesantren) error {
	return nil
}

func (r *fakePesantrenRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.updatedFields = fields
	return nil
}

func (r *fakePesantrenRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pesantren, error) {
	return r.findOneResult, nil
}

func (r *fakePesantrenRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pesantren, error) {
	return nil, nil
}

func (r *fakePesantrenRepo) FindAllWithAdmin(ctx context.Context, specs ...specification.Specification) ([]*entity.Pesantren, error) {
	return nil, nil
}

func (r *fakePesantrenRepo) FindOneWithAdmin(ctx context.Context, specs ...specification.Specification) (*entity.Pesantren, error) {
	return r.findOneResult, nil
}

func (r *fakePesantrenRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *fakePesantrenRepo) SumSantriCount(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.santriSums++
	return r.santriTotal, nil
}

type fakeWithdrawalRepo struct {
	findOneResult     *entity.WithdrawalRequest
	rows              []*entity.WithdrawalRequest
	created           []*entity.WithdrawalRequest
	updatedId         uuid.UUID
	updatedFields     map[string]interface{}
	countSpecs        []specification.Specification
	listSpecs         []specification.Specification
	processedTodaySum decimal.Decimal
}

func (r *fakeWithdrawalRepo) Create(ctx context.Context, request *entity.WithdrawalRequest) error {
	r.created = append(r.created, request)
	return nil
}

func (r *fakeWithdrawalRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.updatedId = id
	r.updatedFields = fields
	return nil
}

func (r *fakeWithdrawalRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WithdrawalRequest, error) {
	return r.findOneResult, nil
}

func (r *fakeWithdrawalRepo) FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawalRequest, error) {
	r.listSpecs = specs
	return r.rows, nil
}

func (r *fakeWithdrawalRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.countSpecs = specs
	return int64(len(r.rows)), nil
}

func (r *fakeWithdrawalRepo) SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeWithdrawalRepo) SumProcessedSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	return r.processedTodaySum, nil
}

type fakeFinancialsRepo struct {
	byPesantren *entity.PesantrenFinancials
	decremented []decimal.Decimal
	created     []*entity.PesantrenFinancials
}

func (r *fakeFinancialsRepo) Create(ctx context.Context, financials *entity.PesantrenFinancials) error {
	r.created = append(r.created, financials)
	return nil
}

func (r *fakeFinancialsRepo) FindByPesantren(ctx context.Context, pesantrenId uuid.UUID) (*entity.PesantrenFinancials, error) {
	return r.byPesantren, nil
}

func (r *fakeFinancialsRepo) DecrementAvailable(ctx context.Context, pesantrenId uuid.UUID, amount decimal.Decimal) error {
	r.decremented = append(r.decremented, amount)
	return nil
}

type fakeMasterDataRepo struct {
	items        []*entity.MasterDataItem
	insertedTo   []string
	updates      int
	deletes      int
	writeTenants []uuid.UUID
}

func (r *fakeMasterDataRepo) FindAll(ctx context.Context, table string, pesantrenId uuid.UUID) ([]*entity.MasterDataItem, error) {
	return r.items, nil
}

func (r *fakeMasterDataRepo) Insert(ctx context.Context, table string, item *entity.MasterDataItem) error {
	r.insertedTo = append(r.insertedTo, table)
	return nil
}

func (r *fakeMasterDataRepo) UpdateName(ctx context.Context, table string, pesantrenId, id uuid.UUID, name string) error {
	r.updates++
	r.writeTenants = append(r.writeTenants, pesantrenId)
	return nil
}

func (r *fakeMasterDataRepo) Delete(ctx context.Context, table string, pesantrenId, id uuid.UUID) error {
	r.deletes++
	r.writeTenants = append(r.writeTenants, pesantrenId)
	return nil
}

type fakePlatformTxRepo struct {
	sumAmountSpecs [][]specification.Specification
	sumFeesSpecs   [][]specification.Specification
	amountTotal    decimal.Decimal
	feeTotal       decimal.Decimal
}

func (r *fakePlatformTxRepo) Create(ctx context.Context, transaction *entity.PlatformTransaction) error {
	return nil
}

func (r *fakePlatformTxRepo) FindAllWithPesantren(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformTransaction, error) {
	return nil, nil
}

func (r *fakePlatformTxRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakePlatformTxRepo) SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	r.sumAmountSpecs = append(r.sumAmountSpecs, specs)
	return r.amountTotal, nil
}

func (r *fakePlatformTxRepo) SumFees(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	r.sumFeesSpecs = append(r.sumFeesSpecs, specs)
	return r.feeTotal, nil
}

type fakeTransactionRepo struct {
	rows           []*entity.Transaction
	findSpecs      []specification.Specification
	koperasiIncome decimal.Decimal
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.rows = append(r.rows, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	r.findSpecs = specs
	return r.rows, nil
}

func (r *fakeTransactionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeTransactionRepo) KoperasiIncomeSince(ctx context.Context, pesantrenId uuid.UUID, since time.Time) (decimal.Decimal, error) {
	return r.koperasiIncome, nil
}

type fakeTagihanRepo struct {
	rows []*entity.Tagihan
}

func (r *fakeTagihanRepo) Create(ctx context.Context, tagihan *entity.Tagihan) error { return nil }
func (r *fakeTagihanRepo) Update(ctx context.Context, tagihan *entity.Tagihan) error { return nil }
func (r *fakeTagihanRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}
func (r *fakeTagihanRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeTagihanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tagihan, error) {
	return nil, nil
}
func (r *fakeTagihanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tagihan, error) {
	return r.rows, nil
}
func (r *fakeTagihanRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeBankAccountRepo struct {
	accounts []*entity.BankAccount
}

func (r *fakeBankAccountRepo) Create(ctx context.Context, account *entity.BankAccount) error {
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeBankAccountRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeBankAccountRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BankAccount, error) {
	return nil, nil
}

func (r *fakeBankAccountRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BankAccount, error) {
	return r.accounts, nil
}

type fakeGlobalContentRepo struct {
	rows []*entity.GlobalContent
}

func (r *fakeGlobalContentRepo) Create(ctx context.Context, content *entity.GlobalContent) error {
	r.rows = append(r.rows, content)
	return nil
}

func (r *fakeGlobalContentRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (r *fakeGlobalContentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeGlobalContentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GlobalContent, error) {
	return nil, nil
}

func (r *fakeGlobalContentRepo) FindAllWithPesantren(ctx context.Context, specs ...specification.Specification) ([]*entity.GlobalContent, error) {
	return r.rows, nil
}

func (r *fakeGlobalContentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeProvider struct {
	signInProfile *entity.Profile
	signInToken   string
	signInErr     error
	signUpProfile *entity.Profile
	signUpErr     error
	signUps       []identity.SignUpParams
}

func (p *fakeProvider) SignUp(ctx context.Context, params identity.SignUpParams) (*entity.Profile, error) {
	p.signUps = append(p.signUps, params)
	return p.signUpProfile, p.signUpErr
}

func (p *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Profile, string, error) {
	return p.signInProfile, p.signInToken, p.signInErr
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
