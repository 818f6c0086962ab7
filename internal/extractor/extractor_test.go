package extractor

import (
	"testing"

	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityExtractor_Dates(t *testing.T) {
	extractor := NewEntityExtractor(zerolog.Nop())

	bag := extractor.Extract("Signed on 12/31/2023, effective Jan 5, 2024 and again on 1-2-24.")

	assert.Contains(t, bag[models.EntityDate], "12/31/2023")
	assert.Contains(t, bag[models.EntityDate], "Jan 5, 2024")
	assert.Contains(t, bag[models.EntityDate], "1-2-24")
}

func TestEntityExtractor_Emails(t *testing.T) {
	extractor := NewEntityExtractor(zerolog.Nop())

	bag := extractor.Extract("Contact alice@example.com or bob.smith+tag@corp.co.uk today.")

	assert.Equal(t, []string{"alice@example.com", "bob.smith+tag@corp.co.uk"}, bag[models.EntityEmail])
}

func TestEntityExtractor_Amounts(t *testing.T) {
	extractor := NewEntityExtractor(zerolog.Nop())

	bag := extractor.Extract("Invoice total $1,250.00 plus a fee of 300 EUR.")

	assert.Contains(t, bag[models.EntityAmount], "$1,250.00")
	assert.Contains(t, bag[models.EntityAmount], "300 EUR")
}

func TestEntityExtractor_DuplicatesRetained(t *testing.T) {
	extractor := NewEntityExtractor(zerolog.Nop())

	bag := extractor.Extract("pay $50 then pay $50 again")

	count := 0
	for _, v := range bag[models.EntityAmount] {
		if v == "$50" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestEntityExtractor_EmptyText(t *testing.T) {
	extractor := NewEntityExtractor(zerolog.Nop())

	bag := extractor.Extract("")

	for _, kind := range models.EntityKinds {
		assert.Empty(t, bag[kind])
	}
}

func TestMultisetComparator_IdenticalBags(t *testing.T) {
	comparator := NewMultisetComparator()
	bag := models.EntityBag{
		models.EntityDate:   {"12/31/2023"},
		models.EntityEmail:  {"a@b.com", "a@b.com"},
		models.EntityAmount: {"$10"},
		models.EntityPhone:  {},
	}

	result := comparator.Compare(bag, bag)

	assert.Equal(t, 100, result.MatchPercent)
	assert.Empty(t, result.Mismatches)
}

func TestMultisetComparator_BothEmpty(t *testing.T) {
	comparator := NewMultisetComparator()

	result := comparator.Compare(models.EntityBag{}, models.EntityBag{})

	assert.Equal(t, 100, result.MatchPercent)
	assert.Empty(t, result.Mismatches)
}

func TestMultisetComparator_CountMismatch(t *testing.T) {
	comparator := NewMultisetComparator()
	bagA := models.EntityBag{
		models.EntityAmount: {"$10", "$10", "$25"},
	}
	bagB := models.EntityBag{
		models.EntityAmount: {"$10", "$25"},
	}

	result := comparator.Compare(bagA, bagB)

	// $10: min 1 of 2; $25: 1 of 1 -> 2 matches over 3 items.
	assert.Equal(t, 67, result.MatchPercent)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, models.EntityAmount, result.Mismatches[0].Kind)
	assert.Equal(t, "$10", result.Mismatches[0].Value)
	assert.Equal(t, 2, result.Mismatches[0].CountInA)
	assert.Equal(t, 1, result.Mismatches[0].CountInB)
}

func TestMultisetComparator_DeterministicOrdering(t *testing.T) {
	comparator := NewMultisetComparator()
	bagA := models.EntityBag{
		models.EntityEmail: {"z@z.com", "a@a.com"},
		models.EntityDate:  {"1/1/2020"},
	}
	bagB := models.EntityBag{}

	first := comparator.Compare(bagA, bagB)
	second := comparator.Compare(bagA, bagB)

	assert.Equal(t, first, second)
	// Dates come before emails; emails sorted by value.
	require.Len(t, first.Mismatches, 3)
	assert.Equal(t, models.EntityDate, first.Mismatches[0].Kind)
	assert.Equal(t, "a@a.com", first.Mismatches[1].Value)
	assert.Equal(t, "z@z.com", first.Mismatches[2].Value)
}
