package postgres

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Las queries de este paquete y el DDL versionado tienen que hablar de las
// mismas columnas; una discrepancia (p. ej. password vs password_hash) solo
// aparecería contra un PostgreSQL real.
func TestSchema_ColumnasDeLosRepos(t *testing.T) {
	raw, err := os.ReadFile("../../../migrations/001_schema.sql")
	require.NoError(t, err)
	ddl := string(raw)

	tables := map[string]string{
		"users":      userColumns,
		"companies":  companyColumns,
		"insurances": insuranceColumns,
		"employees":  "id, auth_id, company_id",
		"customers":  "id, auth_id, phone_number, address",
		"issues":     "id, insurance_id, subject, status",
		"api_tokens": "id, user_id, name, created_at, expires_at",
	}

	for table, columns := range tables {
		block := tableBlock(t, ddl, table)
		for _, col := range strings.Split(columns, ", ") {
			assert.Contains(t, block, col,
				"la tabla %s no declara la columna %s que usan las queries", table, col)
		}
	}
}

// tableBlock extrae el CREATE TABLE de una tabla concreta del DDL.
func tableBlock(t *testing.T, ddl, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(ddl, marker)
	require.GreaterOrEqual(t, start, 0, "falta el CREATE TABLE de %s", table)
	rest := ddl[start:]
	end := strings.Index(rest, ");")
	require.GreaterOrEqual(t, end, 0)
	return rest[:end]
}
