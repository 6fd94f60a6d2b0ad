package dto

import "github.com/shopspring/decimal"

type MonetizationSettingsResponse struct {
	TagihanFee         decimal.Decimal `json:"tagihanFee"`
	TopupFee           decimal.Decimal `json:"topupFee"`
	KoperasiCommission decimal.Decimal `json:"koperasiCommission"`
}

type UpdateMonetizationSettingsRequest struct {
	TagihanFee         decimal.Decimal `json:"tagihanFee"`
	TopupFee           decimal.Decimal `json:"topupFee"`
	KoperasiCommission decimal.Decimal `json:"koperasiCommission"`
}
