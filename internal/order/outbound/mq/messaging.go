package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/gocommerce/internal/order/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/messaging"
	"github.com/shandysiswandi/gocommerce/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishOrderPlaced(ctx context.Context, msg usecase.OrderPlacedEvent) error {
	ctx, span := m.ins.Tracer("order.outbound.mq").Start(ctx, "PublishOrderPlaced")
	defer span.End()

	items := make([]event.OrderPlacedItem, 0, len(msg.Items))
	for _, item := range msg.Items {
		items = append(items, event.OrderPlacedItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		})
	}

	body, err := json.Marshal(event.OrderPlacedMessage{
		OrderID:    msg.OrderID,
		UserID:     msg.UserID,
		Email:      msg.Email,
		TotalCents: msg.TotalCents,
		Items:      items,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.OrderPlacedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
