package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-api/internal/application/catalog"
	"github.com/invorya/erp-api/internal/application/validate"
	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/infrastructure/document"
)

func newUseCase() *catalog.UseCase {
	return catalog.NewUseCase(document.NewMemoryStore(), validate.New())
}

// Crear y listar: el documento vuelve con su id y con los defaults aplicados.
func TestCreate_ProductoConDefaults(t *testing.T) {
	uc := newUseCase()

	p := &entity.Product{SKU: "SKU-1", Name: "Widget"}
	id, err := uc.Create(context.Background(), catalog.Products, p, p.SKU)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, err := uc.List(context.Background(), catalog.Products)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, id, out[0]["id"])
	assert.Equal(t, "SKU-1", out[0]["sku"])
	assert.Equal(t, "unit", out[0]["uom"], "uom default")
	assert.Equal(t, true, out[0]["is_active"], "is_active default")
}

// La clave de negocio se verifica por consulta: el segundo insert con el
// mismo sku devuelve ErrDuplicate.
func TestCreate_SKURepetido(t *testing.T) {
	uc := newUseCase()

	p1 := &entity.Product{SKU: "SKU-1", Name: "Widget"}
	_, err := uc.Create(context.Background(), catalog.Products, p1, p1.SKU)
	require.NoError(t, err)

	p2 := &entity.Product{SKU: "SKU-1", Name: "Otro"}
	_, err = uc.Create(context.Background(), catalog.Products, p2, p2.SKU)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.List(context.Background(), catalog.Products)
	require.NoError(t, err)
	assert.Len(t, out, 1, "el duplicado no debe insertarse")
}

// Los recursos sin clave de negocio (clientes) aceptan registros repetidos.
func TestCreate_ClienteSinUnicidad(t *testing.T) {
	uc := newUseCase()

	for i := 0; i < 2; i++ {
		c := &entity.Customer{Name: "ACME"}
		_, err := uc.Create(context.Background(), catalog.Customers, c, "")
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), catalog.Customers)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// Registro inválido → *validate.Error, nada se inserta.
func TestCreate_RegistroInvalido(t *testing.T) {
	uc := newUseCase()

	w := &entity.Warehouse{Name: "Principal"} // falta code
	_, err := uc.Create(context.Background(), catalog.Warehouses, w, w.Code)
	require.Error(t, err)

	_, ok := err.(*validate.Error)
	assert.True(t, ok)

	out, err := uc.List(context.Background(), catalog.Warehouses)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// Listar una colección vacía devuelve [] y no null.
func TestList_ColeccionVacia(t *testing.T) {
	uc := newUseCase()

	out, err := uc.List(context.Background(), catalog.Taxes)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// Sin almacén configurado → ErrStoreUnavailable en create y list.
func TestUseCase_SinAlmacen(t *testing.T) {
	uc := catalog.NewUseCase(nil, validate.New())

	p := &entity.Product{SKU: "SKU-1", Name: "Widget"}
	_, err := uc.Create(context.Background(), catalog.Products, p, p.SKU)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = uc.List(context.Background(), catalog.Products)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
