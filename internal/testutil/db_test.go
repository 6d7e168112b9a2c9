package testutil_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/testutil"
)

func TestModelsParse(t *testing.T) {
	listColumns := map[string][]string{
		"candidates": {"Skills"},
		"jobs":       {"RequiredSkills", "PreferredSkills"},
		"matches":    {"SkillMatches"},
	}

	for _, model := range models.Tables() {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, name := range listColumns[s.Table] {
			field := s.LookUpField(name)
			require.NotNil(t, field, "%s.%s", s.Table, name)
			assert.Equal(t, schema.DataType("text"), field.DataType, "%s.%s", s.Table, name)
		}
	}
}

func TestNewDB_MigratesTables(t *testing.T) {
	db := testutil.NewDB(t)

	for _, model := range models.Tables() {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasColumn(&models.Job{}, "required_skills"))
	assert.True(t, db.Migrator().HasColumn(&models.Job{}, "salary_min"))
}
