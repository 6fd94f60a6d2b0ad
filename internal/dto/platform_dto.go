package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlatformSummaryResponse struct {
	TotalPesantren        int             `json:"totalPesantren"`
	TotalSantri           int             `json:"totalSantri"`
	TotalTransaksiBulanan decimal.Decimal `json:"totalTransaksiBulanan"`
	PendapatanPlatform    decimal.Decimal `json:"pendapatanPlatform"`
}

type PlatformTransactionResponse struct {
	Id            uuid.UUID       `json:"id"`
	PesantrenName string          `json:"pesantrenName"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        string          `json:"status"`
}

type PlatformFinancialsSummary struct {
	TotalVolume          decimal.Decimal `json:"totalVolume"`
	TotalPendapatan      decimal.Decimal `json:"totalPendapatan"`
	TotalTopUpBulanan    decimal.Decimal `json:"totalTopUpBulanan"`
	TotalWithdrawBulanan decimal.Decimal `json:"totalWithdrawBulanan"`
}

type PlatformFinancialsResponse struct {
	Summary      PlatformFinancialsSummary            `json:"summary"`
	Transactions Paginated[PlatformTransactionResponse] `json:"transactions"`
}
