package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"alfredoptarigan/talent-matcher/internal/models"
)

func TestStringList_ColumnType(t *testing.T) {
	pg := &gorm.DB{Config: &gorm.Config{Dialector: postgres.New(postgres.Config{})}}
	lite := &gorm.DB{Config: &gorm.Config{Dialector: sqlite.Open(":memory:")}}

	assert.Equal(t, "text", models.StringList{}.GormDataType())
	assert.Equal(t, "text[]", models.StringList{}.GormDBDataType(pg, nil))
	assert.Equal(t, "text", models.StringList{}.GormDBDataType(lite, nil))
}

func TestStringList_ValueScan(t *testing.T) {
	in := models.StringList{"Go", "C++, embedded"}

	v, err := in.Value()
	require.NoError(t, err)

	var out models.StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}
