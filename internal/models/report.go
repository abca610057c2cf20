package models

// MonthlyDelta es un mes del resumen anual con sus variaciones calculadas
type MonthlyDelta struct {
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	MonthName    string             `json:"month_name"`
	TotalValue   float64            `json:"total_value"`
	DeltaUSD     float64            `json:"delta_usd"`
	DeltaPercent float64            `json:"delta_percent"`
	BTCPrice     *float64           `json:"btc_price"`
	Wallets      map[string]float64 `json:"wallets"` // nombre de billetera -> valor
}

// YearlySummary es el resumen anual del portafolio
type YearlySummary struct {
	Year         int            `json:"year"`
	StartValue   float64        `json:"start_value"`
	EndValue     float64        `json:"end_value"`
	DeltaUSD     float64        `json:"delta_usd"`
	DeltaPercent float64        `json:"delta_percent"`
	MonthlyData  []MonthlyDelta `json:"monthly_data"`
}

// DailySnapshot es el total del portafolio en un día puntual
type DailySnapshot struct {
	Date         string             `json:"date"`
	TotalValue   float64            `json:"total_value"`
	DeltaPercent float64            `json:"delta_percent"`
	Wallets      map[string]float64 `json:"wallets"`
}

// PortfolioMetrics agrupa las métricas generales del portafolio
type PortfolioMetrics struct {
	CurrentValue         float64  `json:"current_value"`
	ATHValue             float64  `json:"ath_value"`
	ATHDate              *string  `json:"ath_date"`
	ROIPercent           float64  `json:"roi_percent"`
	DrawdownPercent      float64  `json:"drawdown_percent"`
	BTCComparisonPercent float64  `json:"btc_comparison_percent"`
	Variation24h         *float64 `json:"variation_24h"`
	Variation30d         *float64 `json:"variation_30d"`
}

// ROIDetails es el desglose del retorno sobre la inversión inicial
type ROIDetails struct {
	InitialInvestment    float64 `json:"initial_investment"`
	CurrentValue         float64 `json:"current_value"`
	ProfitLoss           float64 `json:"profit_loss"`
	ROIPercent           float64 `json:"roi_percent"`
	AnnualizedROIPercent float64 `json:"annualized_roi_percent"`
	MonthsTracked        int     `json:"months_tracked"`
}

// DrawdownPoint es un mes dentro del historial de drawdown
type DrawdownPoint struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Value           float64 `json:"value"`
	ATH             float64 `json:"ath"`
	DrawdownPercent float64 `json:"drawdown_percent"`
}

// DrawdownAnalysis es el análisis de caída desde el máximo histórico
type DrawdownAnalysis struct {
	CurrentDrawdownPercent float64         `json:"current_drawdown_percent"`
	MaxDrawdownPercent     float64         `json:"max_drawdown_percent"`
	MaxDrawdownPeriod      string          `json:"max_drawdown_period,omitempty"`
	CurrentATH             float64         `json:"current_ath"`
	ATHPeriod              string          `json:"ath_period,omitempty"`
	History                []DrawdownPoint `json:"history"`
}

// BTCComparisonPoint es un mes dentro de la comparación contra BTC
type BTCComparisonPoint struct {
	Year                 int     `json:"year"`
	Month                int     `json:"month"`
	PortfolioValue       float64 `json:"portfolio_value"`
	PortfolioPerfPercent float64 `json:"portfolio_perf_percent"`
	BTCValue             float64 `json:"btc_value"`
	BTCPerfPercent       float64 `json:"btc_perf_percent"`
	Outperformance       float64 `json:"outperformance"`
}

// BTCComparison compara el rendimiento del portafolio contra
// haber mantenido BTC desde el primer período con precio conocido
type BTCComparison struct {
	InitialPortfolioValue        float64              `json:"initial_portfolio_value"`
	InitialBTCPrice              float64              `json:"initial_btc_price"`
	BTCAmountEquivalent          float64              `json:"btc_amount_equivalent"` // 8 decimales
	CurrentOutperformancePercent float64              `json:"current_outperformance_percent"`
	History                      []BTCComparisonPoint `json:"history"`
}
