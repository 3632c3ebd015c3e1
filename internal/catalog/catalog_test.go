package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestRegistrySizes() {
	s.Len(catalog.BodyParts(), 31)
	s.Len(catalog.Actions(), 11)
	s.Len(catalog.Races(), 29)
	s.Len(catalog.Items(), 9)
}

func (s *CatalogTestSuite) TestBodyPartLookups() {
	testCases := []struct {
		name   string
		query  string
		wantID catalog.PartID
	}{
		{name: "primary alias", query: "欧派", wantID: catalog.PartChest},
		{name: "secondary alias", query: "龟头", wantID: catalog.PartGlans},
		{name: "english key", query: "vagina", wantID: catalog.PartVagina},
		{name: "english key any case", query: "Tail", wantID: catalog.PartTail},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			part, err := catalog.BodyPartByName(tc.query)
			s.Require().NoError(err)
			s.Equal(tc.wantID, part.ID)
		})
	}
}

func (s *CatalogTestSuite) TestBodyPartByID() {
	part, err := catalog.BodyPartByID(catalog.PartClitoris)
	s.Require().NoError(err)
	s.Equal("clitoris", part.Key)
	s.Equal(850, part.BaseSensitivity)

	_, err = catalog.BodyPartByID(999)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestUnknownNameSuggests() {
	_, err := catalog.BodyPartByName("shouldr")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("shoulder", catalog.Suggestion(err))

	_, err = catalog.ActionByName("strok")
	s.True(errors.IsNotFound(err))
	s.Equal("stroke", catalog.Suggestion(err))

	_, err = catalog.ItemByName("completely unrelated")
	s.True(errors.IsNotFound(err))
	s.Empty(catalog.Suggestion(err))
}

func (s *CatalogTestSuite) TestSupports() {
	vagina, err := catalog.BodyPartByID(catalog.PartVagina)
	s.Require().NoError(err)
	head, err := catalog.BodyPartByID(catalog.PartHead)
	s.Require().NoError(err)
	insert, err := catalog.ActionByID(catalog.ActionInsert)
	s.Require().NoError(err)
	stroke, err := catalog.ActionByID(catalog.ActionStroke)
	s.Require().NoError(err)

	s.True(vagina.Supports(insert))
	s.True(vagina.Supports(stroke))
	s.True(head.Supports(stroke))
	s.False(head.Supports(insert))
}

func (s *CatalogTestSuite) TestActionStrength() {
	whip, err := catalog.ActionByName("鞭打")
	s.Require().NoError(err)

	s.Equal(catalog.StrengthSevere, whip.ResolveStrength(catalog.StrengthNormal))
	s.Equal(catalog.StrengthSoft, whip.ResolveStrength(catalog.StrengthSoft))
}

func (s *CatalogTestSuite) TestRaceOptionalParts() {
	dragon, err := catalog.RaceByName("龙娘")
	s.Require().NoError(err)
	s.True(dragon.HasOptionalPart(catalog.PartWing))
	s.True(dragon.HasOptionalPart(catalog.PartTail))
	s.False(dragon.HasOptionalPart(catalog.PartHalo))
	s.Equal("龙娘", dragon.Name())

	_, err = catalog.RaceByName("orc")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestItemLookup() {
	item, err := catalog.ItemByName("催情药")
	s.Require().NoError(err)
	s.Equal(catalog.ItemAphrodisiac, item.ID)
	s.Equal(catalog.ScopeTarget, item.Scope)
	s.True(item.AllowsSex(catalog.SexNone))

	toMale, err := catalog.ItemByID(catalog.ItemToMale)
	s.Require().NoError(err)
	s.False(toMale.AllowsSex(catalog.SexDouble))
}

func (s *CatalogTestSuite) TestCopiesAreIsolated() {
	parts := catalog.BodyParts()
	parts[0].Names[0] = "mutated"

	head, err := catalog.BodyPartByID(catalog.PartHead)
	s.Require().NoError(err)
	s.Equal("头", head.Names[0])
}

func TestSignMatches(t *testing.T) {
	assert.True(t, catalog.SignPositive.Matches(0.01))
	assert.False(t, catalog.SignPositive.Matches(0))
	assert.True(t, catalog.SignNegative.Matches(-0.01))
	assert.True(t, catalog.SignZero.Matches(0))
}

func TestParseStrength(t *testing.T) {
	got, err := catalog.ParseStrength("")
	require.NoError(t, err)
	assert.Equal(t, catalog.StrengthNormal, got)

	got, err = catalog.ParseStrength("Severe")
	require.NoError(t, err)
	assert.Equal(t, catalog.StrengthSevere, got)

	_, err = catalog.ParseStrength("brutal")
	assert.True(t, errors.IsNotFound(err))
}

func TestParseSex(t *testing.T) {
	testCases := []struct {
		input string
		want  catalog.Sex
	}{
		{input: "", want: catalog.SexSingle},
		{input: "Double", want: catalog.SexDouble},
		{input: " none ", want: catalog.SexNone},
		{input: "双", want: catalog.SexDouble},
	}

	for _, tc := range testCases {
		got, err := catalog.ParseSex(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}

	_, err := catalog.ParseSex("triple")
	assert.True(t, errors.IsNotFound(err))
}
