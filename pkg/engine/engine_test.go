package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

const cleanEdital = `EDITAL DE LEILÃO JUDICIAL E INTIMAÇÃO.
O Juízo da 2ª Vara Cível determina a alienação judicial do imóvel matrícula 12.345.
Edital publicado no Diário Oficial em 01/09/2025.
O 1º leilão será realizado em 15/09/2025 e o 2º leilão em 30/09/2025.
Imóvel avaliado em R$ 500.000,00. Valor da 2ª praça: R$ 300.000,00.
Ficam intimados o executado e sua cônjuge.
Débitos de IPTU no valor de R$ 12.000,00 serão quitados com o produto da arrematação.
O imóvel encontra-se desocupado, livre de pessoas e coisas.`

const riskyEdital = `Leilão do imóvel pertencente ao executado.
Avaliado em R$ 400.000,00, lance mínimo de R$ 150.000,00.
Publicado em 08/09/2025, com leilão marcado para 10/09/2025.
O imóvel foi invadido e é objeto de ação possessória.
Consta penhora e indisponibilidade de bens.
Eventuais débitos de condomínio no valor de R$ 30.000,00 correrão por conta do arrematante.`

func newEngine() *Engine {
	return New(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}))
}

func TestAnalyze(t *testing.T) {
	eng := newEngine()
	ctx := context.Background()

	t.Run("blank text is an input error", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := eng.Analyze(ctx, text, "")
			require.Error(t, err)
			assert.True(t, httperror.IsHTTPError(err))
			assert.Equal(t, 400, httperror.GetStatusCode(err))
		}
	})

	t.Run("unsupported language hint is rejected", func(t *testing.T) {
		_, err := eng.Analyze(ctx, cleanEdital, "deu")
		require.Error(t, err)
		assert.Equal(t, 400, httperror.GetStatusCode(err))
	})

	t.Run("clean judicial edital", func(t *testing.T) {
		out, err := eng.Analyze(ctx, cleanEdital, "por")
		require.NoError(t, err)

		assert.Equal(t, models.AuctionTypeJudicial, out.AuctionType)
		assert.Greater(t, out.AuctionTypeConfidence, 0.0)
		assert.NotEmpty(t, out.AuctionTypeIndicators)

		assert.Equal(t, models.ComplianceStatusCompliant, out.PublicationCompliance.Status)
		assert.True(t, out.ExecutadoNotification.Mentioned)
		assert.Equal(t, models.ComplianceStatusCompliant, out.ExecutadoNotification.Status)
		assert.Equal(t, models.ComplianceStatusCompliant, out.CPC889Compliance)

		require.NotNil(t, out.Valuation.MarketValue)
		assert.InDelta(t, 500000.0, *out.Valuation.MarketValue, 0.001)
		assert.False(t, out.Valuation.AnnulmentRisk)

		assert.InDelta(t, 12000.0, out.Debts.Amounts[models.DebtCategoryTax], 0.001)
		assert.Equal(t, models.DebtResponsibilityFromProceeds, out.Debts.Responsibility)

		assert.Equal(t, models.OccupancyVacant, out.PropertyStatus.Occupancy)
		assert.Empty(t, out.ComplianceIssues)
		assert.Less(t, out.OverallRiskScore, 30.0)
		assert.Greater(t, out.InvestmentViabilityScore, 70.0)
	})

	t.Run("risky edital", func(t *testing.T) {
		out, err := eng.Analyze(ctx, riskyEdital, "por")
		require.NoError(t, err)

		assert.Equal(t, models.ComplianceStatusNonCompliant, out.PublicationCompliance.Status)
		assert.True(t, out.Valuation.Below50Percent)
		assert.True(t, out.Valuation.AnnulmentRisk)
		assert.Equal(t, models.DebtResponsibilityBuyerPays, out.Debts.Responsibility)
		assert.Equal(t, models.OccupancyDisputed, out.PropertyStatus.Occupancy)
		assert.Equal(t, models.TransferRiskHigh, out.PropertyStatus.TransferRisk)
		assert.True(t, out.LegalRestrictions.JudicialUnavailability)
		assert.True(t, out.LegalRestrictions.HasLiens)

		assert.NotEmpty(t, out.ComplianceIssues)
		assert.Greater(t, out.OverallRiskScore, 60.0)
		assert.Less(t, out.InvestmentViabilityScore, 30.0)
	})

	t.Run("same text always yields identical output", func(t *testing.T) {
		first, err := eng.Analyze(ctx, riskyEdital, "por")
		require.NoError(t, err)
		a, err := json.Marshal(first)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			next, err := eng.Analyze(ctx, riskyEdital, "por")
			require.NoError(t, err)
			b, err := json.Marshal(next)
			require.NoError(t, err)
			assert.JSONEq(t, string(a), string(b))
		}
	})

	t.Run("default language is portuguese", func(t *testing.T) {
		hinted, err := eng.Analyze(ctx, cleanEdital, "por")
		require.NoError(t, err)
		defaulted, err := eng.Analyze(ctx, cleanEdital, "")
		require.NoError(t, err)
		assert.Equal(t, hinted, defaulted)
	})
}
