package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	out, err := NewJSON().MarshalCanonical(map[string]interface{}{
		"name":  "Mimosa",
		"breed": "Nelore",
		"attributes": []map[string]interface{}{
			{"value": 450, "trait_type": "Weight"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"attributes":[{"trait_type":"Weight","value":450}],"breed":"Nelore","name":"Mimosa"}`, string(out))
}
