package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BankAccountResponse struct {
	Id            uuid.UUID `json:"id"`
	BankName      string    `json:"bankName"`
	AccountHolder string    `json:"accountHolder"`
	AccountNumber string    `json:"accountNumber"`
}

type TransactionResponse struct {
	Id          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

type PesantrenFinancialsSummary struct {
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	PendingBalance   decimal.Decimal `json:"pendingBalance"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	LastWithdrawal   decimal.Decimal `json:"lastWithdrawal"`
}

type PesantrenFinancialsResponse struct {
	Summary      PesantrenFinancialsSummary     `json:"summary"`
	BankAccounts []BankAccountResponse          `json:"bankAccounts"`
	Transactions Paginated[TransactionResponse] `json:"transactions"`
}

type PesantrenSummaryResponse struct {
	JumlahSantri              int64                 `json:"jumlahSantri"`
	JumlahUstadz              int64                 `json:"jumlahUstadz"`
	TotalTagihanBelumLunas    decimal.Decimal       `json:"totalTagihanBelumLunas"`
	PendapatanKoperasiBulanan decimal.Decimal       `json:"pendapatanKoperasiBulanan"`
	AktivitasTerbaru          []TransactionResponse `json:"aktivitasTerbaru"`
}

type WithdrawalBankAccount struct {
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
}

type WithdrawalResponse struct {
	Id          uuid.UUID              `json:"id"`
	TenantId    uuid.UUID              `json:"tenantId"`
	TenantName  string                 `json:"tenantName"`
	RequestDate time.Time              `json:"requestDate"`
	Amount      decimal.Decimal        `json:"amount"`
	Status      string                 `json:"status"`
	Reason      string                 `json:"reason,omitempty"`
	BankAccount *WithdrawalBankAccount `json:"bankAccount"`
}

type WithdrawalStatsResponse struct {
	PendingCount   int64           `json:"pendingCount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	ProcessedToday decimal.Decimal `json:"processedToday"`
}

type RequestWithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	BankAccountId *uuid.UUID      `json:"bankAccountId"`
}

type UpdateWithdrawalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed rejected"`
	Reason string `json:"reason"`
}
