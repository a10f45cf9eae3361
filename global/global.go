// Package global holds the process-wide handles shared by the config
// initialisers and the layers that consume them. RedisDB and the
// Rabbit handles stay nil when the backing service is not configured;
// consumers treat nil as "feature off".
package global

import (
	"github.com/go-redis/redis"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

var (
	Db            *gorm.DB
	RedisDB       *redis.Client
	RabbitConn    *amqp.Connection
	RabbitChannel *amqp.Channel
)
