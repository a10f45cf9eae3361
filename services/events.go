package services

import (
	"encoding/json"
	"log"
	"time"

	"articlehub/config"
	"articlehub/global"
	"articlehub/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StatusChangeEvent is published to RabbitMQ whenever an article moves
// between lifecycle states, so downstream consumers (moderation
// dashboards, notification senders) can react without polling.
type StatusChangeEvent struct {
	ArticleID uint                 `json:"article_id"`
	Previous  models.ArticleStatus `json:"previous"`
	Next      models.ArticleStatus `json:"next"`
	ActorID   uint                 `json:"actor_id"`
	At        time.Time            `json:"at"`
}

// publishStatusChange is best-effort: with no channel configured it is
// a no-op, and a publish failure never fails the request that caused it.
func publishStatusChange(event StatusChangeEvent) {
	if global.RabbitChannel == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Println("failed to encode status event:", err)
		return
	}

	queue := config.AppConfig.RabbitMQ.Queue
	if queue == "" {
		queue = "article.status"
	}
	err = global.RabbitChannel.Publish("", queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Println("failed to publish status event:", err)
	}
}
