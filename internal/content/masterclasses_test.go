package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasterclasses_Library(t *testing.T) {
	classes := Masterclasses()
	assert.NotEmpty(t, classes)

	for _, class := range classes {
		assert.NotEmpty(t, class.ID)
		assert.NotEmpty(t, class.Title)
		assert.NotEmpty(t, class.Type)
	}
}

func TestGetMasterclassByID(t *testing.T) {
	classes := Masterclasses()

	found, ok := GetMasterclassByID(classes[0].ID)
	assert.True(t, ok)
	assert.Equal(t, classes[0].Title, found.Title)

	_, ok = GetMasterclassByID("does-not-exist")
	assert.False(t, ok)
}
