package rabbitmq

import (
	"encoding/json"
	"testing"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	in := model.NotificationEvent{
		Type:      constant.EventPaymentCompleted,
		Order:     model.Order{ID: "ORD-1", CustomerName: "Rahim", TotalAmount: 1700},
		PaymentID: "BKASH-1",
	}
	body, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := decodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, constant.EventPaymentCompleted, out.Type)
	assert.Equal(t, "ORD-1", out.Order.ID)
	assert.Equal(t, int64(1700), out.Order.TotalAmount)
	assert.Equal(t, "BKASH-1", out.PaymentID)

	_, err = decodeEvent([]byte("not json"))
	assert.Error(t, err)
}
