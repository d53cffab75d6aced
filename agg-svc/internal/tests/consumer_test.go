package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"overcooked-pos/agg-svc/internal/domain"
	"overcooked-pos/agg-svc/internal/mocks"
	"overcooked-pos/agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var paidAt = time.Date(2024, 3, 15, 19, 10, 0, 0, time.UTC)

func orderPaid(id string) domain.KafkaMessage {
	return domain.KafkaMessage{
		Type:        domain.OrderPaid,
		OrderID:     id,
		TableID:     "t1",
		TableNumber: 1,
		Total:       decimal.RequireFromString("32.00"),
		Timestamp:   paidAt,
		Items: []domain.SoldItem{
			{InventoryItemID: "1", Name: "Hamburger", Category: "Food", Quantity: 2, Total: decimal.RequireFromString("25.00")},
			{InventoryItemID: "5", Name: "Cola", Category: "Drinks", Quantity: 2, Total: decimal.RequireFromString("7.00")},
		},
	}
}

func TestConsumer_ProcessOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
		wantErr        bool
	}{
		{
			name:         "success",
			inputMessage: orderPaid("h1"),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("ApplyOrder", ctx, orderPaid("h1")).Return(true, nil)
			},
		},
		{
			name:         "duplicate order",
			inputMessage: orderPaid("h1"),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("ApplyOrder", ctx, orderPaid("h1")).Return(false, nil)
			},
		},
		{
			name:         "redis error",
			inputMessage: orderPaid("h2"),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("ApplyOrder", ctx, mock.Anything).Return(false, errors.New("redis down"))
			},
			wantErr: true,
		},
		{
			name:           "other event type",
			inputMessage:   domain.KafkaMessage{Type: "table_cleared", OrderID: "h4"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore)
			err := consumer.ProcessOrder(ctx, testCase.inputMessage)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_StartRetriesBeforeCommit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	value, err := json.Marshal(orderPaid("h1"))
	require.NoError(t, err)
	garbage := kafka.Message{Offset: 1, Value: []byte("not json")}
	order := kafka.Message{Offset: 2, Value: value}

	reader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)

	reader.On("FetchMessage", ctx).Return(garbage, nil).Once()
	reader.On("FetchMessage", ctx).Return(order, nil).Once()
	reader.On("FetchMessage", ctx).Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	reader.On("CommitMessages", ctx, garbage).Return(nil).Once()
	reader.On("CommitMessages", ctx, order).Return(nil).Once()

	isOrder := mock.MatchedBy(func(msg domain.KafkaMessage) bool {
		return msg.OrderID == "h1" && msg.Total.Equal(decimal.NewFromInt(32)) && len(msg.Items) == 2
	})
	mockStore.On("ApplyOrder", ctx, isOrder).Return(false, errors.New("WRONGTYPE")).Once()
	mockStore.On("ApplyOrder", ctx, isOrder).Return(true, nil).Once()

	consumer := service.NewConsumer(reader, mockStore)
	consumer.RetryDelay = time.Millisecond

	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}

func TestConsumer_StartStopsWhileRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	value, err := json.Marshal(orderPaid("h1"))
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)

	reader.On("FetchMessage", ctx).Return(kafka.Message{Value: value}, nil).Once()
	mockStore.On("ApplyOrder", ctx, mock.Anything).Run(func(mock.Arguments) { cancel() }).
		Return(false, errors.New("redis down")).Once()

	consumer := service.NewConsumer(reader, mockStore)
	consumer.RetryDelay = time.Hour

	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer kept retrying after cancel")
	}
	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
}
