package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

func filterFixture() []domain.ProductRecord {
	return []domain.ProductRecord{
		{SKU: "1", Category: domain.NewCategories("luma-products:Shoes", "luma-products:Men")},
		{SKU: "2", Category: domain.NewCategories("luma-products:Women")},
		{SKU: "3", Category: domain.NewCategories("luma:snowshoes")},
		{SKU: "4"},
		{SKU: "5", Category: domain.NewCategories()},
		{SKU: "6", Category: domain.NewCategories("TOPS")},
	}
}

func skus(records []domain.ProductRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.SKU)
	}
	return out
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "shoes", NormalizeTag("luma-products:Shoes"))
	assert.Equal(t, "men/tops", NormalizeTag(" ns:Men/Tops "))
	assert.Equal(t, "b:c", NormalizeTag("a:b:c"))
	assert.Equal(t, "plain", NormalizeTag("Plain"))
	assert.Equal(t, "", NormalizeTag("ns:"))
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.TagFilter
		want   []string
	}{
		{"single tag", domain.TagFilter{"luma:women"}, []string{"2"}},
		// substring match is intentional: "shoe" also hits "snowshoes"
		{"substring match", domain.TagFilter{"shoe"}, []string{"1", "3"}},
		{"any of several", domain.TagFilter{"women", "tops"}, []string{"2", "6"}},
		{"case insensitive", domain.TagFilter{"MEN"}, []string{"1", "2"}},
		{"no match", domain.TagFilter{"bags"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skus(FilterByCategory(filterFixture(), tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterByCategory() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterByCategory_EmptyFilterIsNoop(t *testing.T) {
	records := filterFixture()

	for _, filter := range []domain.TagFilter{nil, {}, {" ", ""}, {"ns:"}} {
		got := FilterByCategory(records, filter)
		assert.Equal(t, records, got)
	}
}

func TestFilterByCategory_DropsMissingCategories(t *testing.T) {
	got := FilterByCategory(filterFixture(), domain.TagFilter{"a", "e", "o"})

	for _, r := range got {
		assert.True(t, r.Category.IsList, "record %s has no category list", r.SKU)
		assert.NotEmpty(t, r.Category.Values)
	}
	assert.NotContains(t, skus(got), "4")
	assert.NotContains(t, skus(got), "5")
}

func TestFilterByCategory_Idempotent(t *testing.T) {
	filters := []domain.TagFilter{
		{"men"},
		{"shoe", "women"},
		{"ns:tops"},
		{"zzz"},
		nil,
	}

	for _, filter := range filters {
		once := FilterByCategory(filterFixture(), filter)
		twice := FilterByCategory(once, filter)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("filter %v not idempotent (-once +twice):\n%s", filter, diff)
		}
	}
}

func TestFilterByCategory_PreservesOrderAndInput(t *testing.T) {
	records := filterFixture()
	before := filterFixture()

	got := FilterByCategory(records, domain.TagFilter{"s"})

	assert.Equal(t, []string{"1", "3", "6"}, skus(got))
	assert.Equal(t, before, records)
}
