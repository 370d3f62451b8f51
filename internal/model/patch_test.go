package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleProduct() Product {
	cat := "ceramics"
	return Product{
		ID:          "p-1",
		Name:        "Glazed Vase",
		Description: "Hand thrown",
		Price:       4500,
		Stock:       3,
		Images:      []string{"a.jpg"},
		Category:    &cat,
		Tags:        []string{"vase", "blue"},
		Status:      ProductLive,
	}
}

func TestProductPatchEmptyIsIdentity(t *testing.T) {
	p := sampleProduct()
	got := ProductPatch{}.Apply(p)
	assert.Equal(t, p, got)
}

func TestProductPatchOverridesOnlyPresentFields(t *testing.T) {
	p := sampleProduct()

	name := "Matte Vase"
	price := int64(5200)
	got := ProductPatch{Name: &name, Price: &price}.Apply(p)

	assert.Equal(t, "Matte Vase", got.Name)
	assert.Equal(t, int64(5200), got.Price)
	assert.Equal(t, p.Description, got.Description)
	assert.Equal(t, p.Stock, got.Stock)
	assert.Equal(t, p.Tags, got.Tags)
	assert.Equal(t, p.Status, got.Status)
}

func TestProductPatchExplicitEmptyValues(t *testing.T) {
	p := sampleProduct()

	// A present-but-empty value is a real write, not an omission.
	empty := ""
	noTags := []string{}
	got := ProductPatch{Description: &empty, Tags: &noTags}.Apply(p)

	assert.Equal(t, "", got.Description)
	assert.Empty(t, got.Tags)
	assert.Equal(t, p.Name, got.Name)
}

func TestProductPatchDoesNotMutateInput(t *testing.T) {
	p := sampleProduct()
	name := "Changed"
	ProductPatch{Name: &name}.Apply(p)
	assert.Equal(t, "Glazed Vase", p.Name)
}

func TestDropPatchMergesScalarsOnly(t *testing.T) {
	d := Drop{
		ID:          "d-1",
		Title:       "Spring Drop",
		Description: "First run",
		ScheduledAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:      DropScheduled,
	}

	title := "Summer Drop"
	status := DropLive
	ids := []string{"p-1"}
	got := DropPatch{Title: &title, Status: &status, ProductIDs: &ids}.Apply(d)

	assert.Equal(t, "Summer Drop", got.Title)
	assert.Equal(t, DropLive, got.Status)
	assert.Equal(t, d.Description, got.Description)
	assert.Equal(t, d.ScheduledAt, got.ScheduledAt)
	// Membership is reconciled by the store, never by the merge.
	assert.Nil(t, got.Products)
}

func TestUnionStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, UnionStrings([]string{"a", "b"}, []string{"b", "c"}))
	assert.Equal(t, []string{"a"}, UnionStrings(nil, []string{"a", "", "a"}))
	assert.Equal(t, []string{"a", "b"}, UnionStrings([]string{"a", "b"}, nil))
}
