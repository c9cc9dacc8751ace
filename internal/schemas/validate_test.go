package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord_AcceptsWellFormedTree(t *testing.T) {
	tree := map[string]interface{}{
		"identity": map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
		"summary": "Backend engineer.",
		"experience": []interface{}{
			map[string]interface{}{
				"company":      "Acme",
				"role":         "Engineer",
				"start_date":   "2022-01",
				"achievements": []interface{}{"Cut latency by 40%"},
			},
		},
		"skills": map[string]interface{}{
			"Languages": []interface{}{"Go", "Python"},
		},
	}

	assert.NoError(t, ValidateRecord(tree))
}

func TestValidateRecord_RejectsWrongShapes(t *testing.T) {
	tests := []struct {
		name  string
		tree  map[string]interface{}
		field string
	}{
		{
			name: "identity as string",
			tree: map[string]interface{}{
				"identity": "Jane Doe",
			},
			field: "identity",
		},
		{
			name: "experience as object",
			tree: map[string]interface{}{
				"experience": map[string]interface{}{"company": "Acme"},
			},
			field: "experience",
		},
		{
			name: "skills bucket with non-string member",
			tree: map[string]interface{}{
				"skills": map[string]interface{}{
					"Languages": []interface{}{"Go", 42},
				},
			},
			field: "skills.Languages.1",
		},
		{
			name: "unknown key inside cv_config",
			tree: map[string]interface{}{
				"cv_config": map[string]interface{}{"font_familly": "Arial"},
			},
			field: "cv_config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.tree)
			require.Error(t, err)

			var serr *SchemaError
			require.ErrorAs(t, err, &serr)
			require.NotEmpty(t, serr.Errors)
			assert.Equal(t, tt.field, serr.Errors[0].Field)
		})
	}
}

func TestValidateRecord_UnknownTopLevelKeysPass(t *testing.T) {
	// Unknown top-level keys become custom sections downstream; the
	// schema must not reject them.
	tree := map[string]interface{}{
		"identity": map[string]interface{}{"name": "Jane Doe"},
		"awards":   []interface{}{"Best CV 2026"},
	}
	assert.NoError(t, ValidateRecord(tree))
}

func TestSchemaError_ListsEveryField(t *testing.T) {
	err := ValidateRecord(map[string]interface{}{
		"identity": "nope",
		"summary":  7,
	})
	require.Error(t, err)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Len(t, serr.Errors, 2)
	assert.Contains(t, serr.Error(), "identity")
	assert.Contains(t, serr.Error(), "summary")
}
