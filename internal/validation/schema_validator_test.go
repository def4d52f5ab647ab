package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "plant.schema.json", `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"level": {"type": "integer", "minimum": 1, "maximum": 100}
		},
		"required": ["name"]
	}`)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid", `{"name": "Orchid", "level": 3}`, ""},
		{"optional field omitted", `{"name": "Cactus"}`, ""},
		{"missing required", `{"level": 3}`, "required"},
		{"wrong type", `{"name": "Fern", "level": "three"}`, "/level"},
		{"above maximum", `{"name": "Fern", "level": 101}`, "maximum"},
		{"malformed JSON", `{"name": }`, "parse JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "any.schema.json", `{"type": "object"}`)

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")

	err = v.ValidateFile(writeFile(t, dir, "data.json", `{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "obj.schema.json", `{"type": "object"}`)

	require.NoError(t, v.ValidateBytes([]byte(`{}`), schemaPath))
	require.NoError(t, v.ValidateBytes([]byte(`{"a": 1}`), schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestCatalogSchemas_AcceptShippedConfigs(t *testing.T) {
	v := NewSchemaValidator()
	tests := []struct {
		data   string
		schema string
	}{
		{"configs/achievements.json", AchievementsSchemaPath},
		{"configs/challenges.json", ChallengesSchemaPath},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			path, err := ResolvePath(tt.data)
			require.NoError(t, err)
			assert.NoError(t, v.ValidateFile(path, tt.schema))
		})
	}
}

func TestCatalogSchemas_RejectBadDefinitions(t *testing.T) {
	v := NewSchemaValidator()
	tests := []struct {
		name   string
		schema string
		data   string
	}{
		{"unknown criteria", AchievementsSchemaPath,
			`{"version":"1.0","achievements":[{"code":"X","title":"X","rarity":"common","criteria":{"type":"streak"},"reward":{}}]}`},
		{"unknown rarity", AchievementsSchemaPath,
			`{"version":"1.0","achievements":[{"code":"X","title":"X","rarity":"mythic","criteria":{"type":"level_reach","level":5},"reward":{}}]}`},
		{"zero requirement count", ChallengesSchemaPath,
			`{"version":"1.0","challenges":[{"code":"X","title":"X","duration_hours":1,"requirements":[{"action":"water","count":0}],"reward":{},"difficulty":"easy","category":"daily"}]}`},
		{"no requirements", ChallengesSchemaPath,
			`{"version":"1.0","challenges":[{"code":"X","title":"X","duration_hours":1,"requirements":[],"reward":{},"difficulty":"easy","category":"daily"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), tt.schema)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestResolvePath(t *testing.T) {
	path, err := ResolvePath("go.mod")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path) || path == "go.mod")

	_, err = ResolvePath("configs/does-not-exist.json")
	assert.Error(t, err)
}
