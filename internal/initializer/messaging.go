package initializer

import (
	"quickdraw-service/config"
	"quickdraw-service/infra/messaging"
)

func InitMessaging(appConfig config.Config) (*messaging.Publisher, error) {
	return messaging.NewPublisher(messaging.Config{
		Brokers:      appConfig.Kafka.Brokers,
		Topic:        appConfig.Kafka.Topic,
		ClientID:     appConfig.Kafka.ClientID,
		WriteTimeout: appConfig.Kafka.WriteTimeout,
		MaxAttempts:  appConfig.Kafka.MaxAttempts,
	})
}
