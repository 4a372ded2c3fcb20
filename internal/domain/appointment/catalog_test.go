package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

func TestResolve_Catalog(t *testing.T) {
	tests := []struct {
		typ      Type
		services string
		want     Resolved
	}{
		{TypeSimple, "Corte", Resolved{TypeSimple, 30, 500, "Corte"}},
		{TypeExpress, " Barba ", Resolved{TypeExpress, 20, 900, "Barba"}},
		{TypeCombo, "", Resolved{TypeCombo, 45, 700, "Corte-Barba"}},
		{TypeCombo, "Tintura", Resolved{TypeCombo, 45, 700, "Corte-Barba"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got, err := Resolve(tt.typ, tt.services)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UnknownType(t *testing.T) {
	_, err := Resolve("Deluxe", "Corte")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnknownType))
}

func TestResolve_ServicesRequired(t *testing.T) {
	_, err := Resolve(TypeSimple, "   ")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestTypes_StableOrder(t *testing.T) {
	var names []Type
	for _, e := range Types() {
		names = append(names, e.Type)
	}
	assert.Equal(t, []Type{TypeSimple, TypeExpress, TypeCombo}, names)
}
