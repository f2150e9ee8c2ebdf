// Package vocab centralizes the keyword vocabularies consumed by the
// analysis stages. Tables are read-only after init; stages must never
// mutate them. Bump Version when any table changes so stored results can be
// traced back to the vocabulary that produced them.
package vocab

import "github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"

// Version identifies the vocabulary revision
const Version = "2025.08"

// Term is a weighted indicator phrase
type Term struct {
	Text   string
	Weight float64
}

// JudicialIndicators are phrases that signal a judicial auction
var JudicialIndicators = []Term{
	{Text: "leilão judicial", Weight: 2.0},
	{Text: "hasta pública", Weight: 2.0},
	{Text: "alienação judicial", Weight: 2.0},
	{Text: "vara cível", Weight: 1.5},
	{Text: "vara de execuções", Weight: 1.5},
	{Text: "processo de execução", Weight: 1.5},
	{Text: "execução fiscal", Weight: 1.5},
	{Text: "expropriação", Weight: 1.0},
	{Text: "arrematação", Weight: 1.0},
	{Text: "leiloeiro oficial", Weight: 1.0},
	{Text: "determinação judicial", Weight: 1.0},
	{Text: "juízo da", Weight: 0.5},
}

// ExtrajudicialIndicators are phrases that signal an extrajudicial sale
var ExtrajudicialIndicators = []Term{
	{Text: "leilão extrajudicial", Weight: 2.0},
	{Text: "alienação fiduciária", Weight: 2.0},
	{Text: "consolidação da propriedade", Weight: 2.0},
	{Text: "lei 9.514", Weight: 2.0},
	{Text: "lei nº 9.514", Weight: 2.0},
	{Text: "credor fiduciário", Weight: 1.5},
	{Text: "venda extrajudicial", Weight: 1.5},
	{Text: "leilão particular", Weight: 1.0},
}

// NotificationVerbs are the verbs that evidence a party was notified
var NotificationVerbs = []string{
	"intimado", "intimada", "intimados", "intimadas", "intimação",
	"notificado", "notificada", "notificados", "notificadas", "notificação",
	"citado", "citada", "citados", "citadas", "citação",
	"cientificado", "cientificada", "ciência",
}

// RoleTerms maps each CPC Art. 889 party role to the phrases that mention it
var RoleTerms = map[models.NotificationRole][]string{
	models.RoleExecutado: {
		"executado", "executada", "executados", "devedor", "devedora",
	},
	models.RoleSpouse: {
		"cônjuge", "esposa", "esposo", "companheiro", "companheira", "meeira", "meeiro",
	},
	models.RoleCoOwners: {
		"coproprietário", "coproprietária", "co-proprietário", "condômino", "condômina",
	},
	models.RoleUsufructHolders: {
		"usufrutuário", "usufrutuária", "usufruto", "uso e habitação",
	},
	models.RoleMortgageCreditors: {
		"credor hipotecário", "credora hipotecária", "credor pignoratício",
		"credor anticrético", "credor fiduciário",
	},
	models.RolePromissoryBuyers: {
		"promitente comprador", "promitente compradora", "promissário comprador",
		"compromisso de compra e venda",
	},
	models.RoleTaxAuthorities: {
		"fazenda pública", "fazenda nacional", "fazenda estadual",
		"fazenda municipal", "união federal", "procuradoria",
	},
	models.RoleOtherInterested: {
		"terceiro interessado", "terceiros interessados", "demais interessados",
	},
}

// GazetteTerms evidence publication in an official gazette
var GazetteTerms = []string{
	"diário oficial", "diário da justiça", "imprensa oficial", "diário eletrônico",
}

// NewspaperTerms evidence publication in a newspaper
var NewspaperTerms = []string{
	"jornal de grande circulação", "jornal de ampla circulação", "jornal local",
}

// PublicationContext marks a date as a publication date when nearby
var PublicationContext = []string{
	"publicado", "publicada", "publicação", "afixado", "divulgado",
}

// AuctionContext marks a date as an auction date when nearby
var AuctionContext = []string{
	"leilão", "praça", "hasta", "pregão", "realizar-se-á", "será realizado",
	"terá início", "encerramento",
}

// ValuationLabels tag currency amounts by their preceding label
var ValuationLabels = map[string][]string{
	"market": {
		"avaliação", "avaliado em", "avaliada em", "valor de avaliação",
		"laudo de avaliação", "valor de mercado",
	},
	"first_auction": {
		"1ª praça", "1a praça", "primeira praça", "1º leilão", "1o leilão", "primeiro leilão",
	},
	"second_auction": {
		"2ª praça", "2a praça", "segunda praça", "2º leilão", "2o leilão", "segundo leilão",
	},
	"minimum_bid": {
		"lance mínimo", "lanço mínimo", "valor mínimo", "lance inicial", "preço mínimo",
	},
}

// DebtTerms tag currency amounts by debt category
var DebtTerms = map[models.DebtCategory][]string{
	models.DebtCategoryTax: {
		"iptu", "débito fiscal", "débitos fiscais", "dívida ativa",
		"débitos tributários", "tributos",
	},
	models.DebtCategoryCondominium: {
		"condomínio", "condominial", "condominiais", "cota condominial",
	},
	models.DebtCategoryMortgage: {
		"hipoteca", "saldo devedor", "financiamento",
	},
	models.DebtCategoryOther: {
		"custas processuais", "emolumentos", "despesas de leilão",
	},
}

// ProceedsTerms state debts are settled from the auction proceeds
var ProceedsTerms = []string{
	"quitado com o produto da arrematação", "quitados com o produto",
	"sub-rogam-se no preço", "sub-rogação no preço",
	"pagos com o produto da alienação", "quitadas com o produto",
}

// BuyerPaysTerms state the winning bidder assumes the debts
var BuyerPaysTerms = []string{
	"por conta do arrematante", "responsabilidade do arrematante",
	"a cargo do arrematante", "assumidos pelo arrematante",
}

// AuthorizationTerms are the judicial-authorization phrases that waive the
// below-50% annulment presumption
var AuthorizationTerms = []string{
	"autorizado pelo juízo", "autorizada pelo juízo", "autorização judicial",
	"mediante autorização do juiz", "deferido pelo juízo",
}

// OccupancyTerms maps occupancy categories to their indicator phrases.
// Keys are the occupancy.<category> suffixes carried on keyword hits.
var OccupancyTerms = map[string][]string{
	"vacant": {
		"desocupado", "desocupada", "imóvel desocupado",
		"livre de pessoas e coisas", "livre de ocupantes",
	},
	"tenant": {
		"locatário", "locatária", "alugado", "alugada", "inquilino",
		"contrato de locação", "locação vigente",
	},
	"owner_occupied": {
		"ocupado pelo proprietário", "ocupado pelo executado",
		"ocupada pelo executado", "residência do executado",
	},
	"squatter": {
		"invadido", "invadida", "invasão", "ocupação irregular", "posseiro",
	},
	"disputed": {
		"litígio", "disputa de posse", "ação possessória",
		"reintegração de posse", "posse controvertida",
	},
}

// RestrictionTerms maps restriction categories to their indicator phrases
var RestrictionTerms = map[string][]string{
	"judicial_unavailability": {
		"indisponibilidade", "indisponível por determinação judicial",
		"indisponibilidade de bens",
	},
	"lien": {
		"penhora", "penhorado", "penhorada", "auto de penhora",
	},
	"mortgage": {
		"hipoteca", "hipotecado", "hipotecada", "garantia hipotecária",
	},
	"seizure": {
		"arresto", "sequestro", "arrestado", "sequestrado", "apreensão judicial",
	},
}
