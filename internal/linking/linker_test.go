package linking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinker_URI_Order(t *testing.T) {
	l, err := NewLinker("http://localhost:8080")
	require.NoError(t, err)

	uri, err := l.URI(RouteOrder, Params{"orderId": "123"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/orders/123", uri)
}

func TestLinker_URI_BasePathAndTrailingSlash(t *testing.T) {
	l, err := NewLinker("https://api.example.com/restbucks/")
	require.NoError(t, err)

	uri, err := l.URI(RouteOrder, Params{"orderId": "7"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/restbucks/orders/7", uri)

	uri, err = l.URI(RouteOrders, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/restbucks/orders", uri)
}

func TestLinker_URI_EscapesParams(t *testing.T) {
	l, err := NewLinker("http://localhost")
	require.NoError(t, err)

	uri, err := l.URI(RouteProduct, Params{"productId": "a b/c"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/products/a%20b%2Fc", uri)
}

func TestLinker_URI_Deterministic(t *testing.T) {
	l, err := NewLinker("http://localhost:8080")
	require.NoError(t, err)

	a, err := l.URI(RouteOrder, Params{"orderId": "42"})
	require.NoError(t, err)
	b, err := l.URI(RouteOrder, Params{"orderId": "42"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLinker_URI_Errors(t *testing.T) {
	l, err := NewLinker("http://localhost:8080")
	require.NoError(t, err)

	_, err = l.URI("orders.delete", Params{"orderId": "1"})
	assert.ErrorIs(t, err, ErrUnknownRoute)

	_, err = l.URI(RouteOrder, Params{})
	assert.ErrorIs(t, err, ErrMissingParam)

	_, err = l.URI(RouteOrder, Params{"orderId": ""})
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestNewLinker_RequiresAbsoluteURL(t *testing.T) {
	_, err := NewLinker("/orders")
	assert.Error(t, err)

	_, err = NewLinker("://bad")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/orders/:orderId", Path(RouteOrder))
	assert.Panics(t, func() { Path("missing") })
}
