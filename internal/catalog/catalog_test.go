package catalog

import (
	"testing"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestProducts_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, Products())
}

func TestGetByID(t *testing.T) {
	product, ok := GetByID("sleep_classic")
	assert.True(t, ok)
	assert.Equal(t, "Deep Rest Blend", product.Name)
	assert.Equal(t, int64(2800), product.PriceCents)

	_, ok = GetByID("does-not-exist")
	assert.False(t, ok)
}

func TestBlendType_TotalFunction(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		want    string
	}{
		{"sleep goal", &entity.Product{Goals: []string{"sleep"}}, "Sleep"},
		{"energy goal", &entity.Product{Goals: []string{"energy"}}, "Energy"},
		{"digest goal", &entity.Product{Goals: []string{"digest"}}, "Digestion"},
		{"immunity goal", &entity.Product{Goals: []string{"immunity"}}, "Immunity"},
		{"unknown goal", &entity.Product{Goals: []string{"mystery"}}, "Wellness"},
		{"no goals", &entity.Product{}, "Wellness"},
		{"nil product", nil, "Wellness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BlendType(tt.product))
		})
	}
}

func TestEveryCatalogProductHasDefinedBlendType(t *testing.T) {
	for i := range products {
		assert.NotEmpty(t, BlendType(&products[i]))
	}
}
