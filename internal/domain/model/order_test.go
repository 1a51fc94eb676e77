package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in      string
		want    Location
		wantErr bool
	}{
		{in: "", want: LocationInShop},
		{in: "in-shop", want: LocationInShop},
		{in: "takeaway", want: LocationTakeAway},
		{in: "InShop", wantErr: true},
		{in: "drive-through", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocation(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrder_Total(t *testing.T) {
	o := Order{Items: []OrderItem{
		{UnitPrice: decimal.RequireFromString("2.50"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("1.80"), Quantity: 1},
	}}
	assert.True(t, decimal.RequireFromString("6.80").Equal(o.Total()), "total=%s", o.Total())

	assert.True(t, decimal.Zero.Equal(Order{}.Total()))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	in := time.Date(2026, 10, 18, 23, 59, 59, 999, loc)

	got := DateOf(in)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestOrder_Column(t *testing.T) {
	o := &Order{ID: 7, Location: LocationTakeAway, Status: OrderStatusUnpaid}

	v, ok := o.Column("location")
	assert.True(t, ok)
	assert.Equal(t, LocationTakeAway, v)

	_, ok = o.Column("nope")
	assert.False(t, ok)

	o.AssignID(9)
	assert.Equal(t, int64(9), o.EntityID())
}
