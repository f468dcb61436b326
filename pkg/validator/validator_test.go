package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type idRequest struct {
	ID string `json:"id" validate:"required,objectid"`
}

func TestObjectIDRule(t *testing.T) {
	errs := ValidateStruct(&idRequest{ID: primitive.NewObjectID().Hex()})
	assert.Empty(t, errs)

	errs = ValidateStruct(&idRequest{ID: "nope"})
	require.Len(t, errs, 1)
	assert.Equal(t, "objectid", errs[0].Tag)

	// Decodes, but not the canonical lowercase encoding.
	upper := strings.ToUpper(primitive.NewObjectID().Hex())
	errs = ValidateStruct(&idRequest{ID: upper})
	require.Len(t, errs, 1)
	assert.Equal(t, "objectid", errs[0].Tag)
}

func TestRequiredReportedBeforeObjectID(t *testing.T) {
	errs := ValidateStruct(&idRequest{})
	require.NotEmpty(t, errs)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "idRequest.ID", errs[0].FailedField)
}
