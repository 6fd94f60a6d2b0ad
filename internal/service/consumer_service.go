package service

import (
	"context"
	"encoding/json"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/logger"
	"santripay-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains activity messages off the bus and posts them into
// the tenant transaction feed.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal activity message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads never become valid, drop them
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	transaction := entity.Transaction{
		Id:          uuid.New(),
		PesantrenId: payload.PesantrenId,
		Type:        payload.Type,
		Description: payload.Description,
		Amount:      payload.Amount,
		CreatedAt:   time.Now(),
	}

	if err := uow.TransactionRepository().Create(ctx, &transaction); err != nil {
		cs.logger.Error("ConsumerService", "Failed to post activity row", map[string]interface{}{
			"error":        err.Error(),
			"pesantren_id": payload.PesantrenId.String(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Activity posted", map[string]interface{}{
		"pesantren_id": payload.PesantrenId.String(),
		"type":         payload.Type,
	})
	msg.Ack()
}
