package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/engine"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

const baseEdital = `EDITAL DE LEILÃO JUDICIAL E INTIMAÇÃO
O Juízo da 3ª Vara Cível FAZ SABER que será levado a hasta pública o imóvel penhorado nos autos.
Valor de avaliação: R$ 850.000,00.
Lance mínimo: %s.
Imóvel desocupado, livre de pessoas e coisas.`

func newEngine() *engine.Engine {
	return engine.New(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}))
}

func editalWithMinimumBid(t *testing.T, bid string) string {
	t.Helper()
	return fmt.Sprintf(baseEdital, bid)
}

func TestEngineScenario_HalfOfAppraisal(t *testing.T) {
	assessment, err := newEngine().Analyze(context.Background(), editalWithMinimumBid(t, "R$ 425.000,00"), engine.LanguagePortuguese)
	require.NoError(t, err)

	assert.Equal(t, models.AuctionTypeJudicial, assessment.AuctionType)
	require.NotNil(t, assessment.Valuation.MarketValue)
	assert.Equal(t, 850000.0, *assessment.Valuation.MarketValue)
	assert.False(t, assessment.Valuation.Below50Percent)
	assert.False(t, assessment.Valuation.AnnulmentRisk)
	assert.Equal(t, models.OccupancyVacant, assessment.PropertyStatus.Occupancy)
	assert.LessOrEqual(t, assessment.OverallRiskScore, 40.0)
}

func TestEngineScenario_BelowHalfOfAppraisal(t *testing.T) {
	t.Run("annulment risk without authorization", func(t *testing.T) {
		assessment, err := newEngine().Analyze(context.Background(), editalWithMinimumBid(t, "R$ 300.000,00"), engine.LanguagePortuguese)
		require.NoError(t, err)

		assert.True(t, assessment.Valuation.Below50Percent)
		assert.True(t, assessment.Valuation.AnnulmentRisk)
		assert.Contains(t, assessment.ComplianceIssues, "sale floor below 50% of appraisal without judicial authorization")
	})

	t.Run("authorization phrase waives the annulment risk", func(t *testing.T) {
		text := editalWithMinimumBid(t, "R$ 300.000,00") + "\nVenda por valor inferior à avaliação autorizada pelo juízo."

		assessment, err := newEngine().Analyze(context.Background(), text, engine.LanguagePortuguese)
		require.NoError(t, err)

		assert.True(t, assessment.Valuation.Below50Percent)
		assert.False(t, assessment.Valuation.AnnulmentRisk)
	})
}

func TestEngineScenario_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		assessment, err := newEngine().Analyze(context.Background(), text, engine.LanguagePortuguese)

		require.Error(t, err)
		assert.Nil(t, assessment)
		assert.True(t, httperror.IsHTTPError(err))
	}
}

func TestEngineScenario_ResultIsSerializable(t *testing.T) {
	assessment, err := newEngine().Analyze(context.Background(), editalWithMinimumBid(t, "R$ 425.000,00"), engine.LanguagePortuguese)
	require.NoError(t, err)

	data, err := json.Marshal(assessment)
	require.NoError(t, err)

	var decoded models.RiskAssessment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, assessment.AuctionType, decoded.AuctionType)
}
