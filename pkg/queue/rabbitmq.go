package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/360Pawan/360Tube/pkg/config"
	"github.com/360Pawan/360Tube/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	MailQueueName  = "mail_queue"
	MailExchange   = "mail"
	MailRoutingKey = "send_mail"
)

// MailTask is delivered to the out-of-process mail worker. The worker
// owns SMTP; the API only publishes.
type MailTask struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Kind     string `json:"kind"`
	Token    string `json:"token"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		MailExchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		MailQueueName, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		MailQueueName,
		MailRoutingKey,
		MailExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishMailTask hands an email off to the mail worker. Delivery is
// best effort; callers log and move on when this fails.
func (c *Client) PublishMailTask(task MailTask) error {
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	err = c.channel.Publish(
		MailExchange,   // exchange
		MailRoutingKey, // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         taskJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish mail task to exchange=%s: %v", MailExchange, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published mail task kind=%s to=%s", task.Kind, task.To)
	return nil
}

// ConsumeMailTasks feeds queued mail tasks to handler, acking on
// success and requeueing on failure.
func (c *Client) ConsumeMailTasks(handler func(task MailTask) error) error {
	msgs, err := c.channel.Consume(
		MailQueueName, // queue
		"",            // consumer
		false,         // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for msg := range msgs {
		var task MailTask
		if err := json.Unmarshal(msg.Body, &task); err != nil {
			c.logger.Error("[RABBITMQ] Failed to decode mail task: %v", err)
			msg.Nack(false, false)
			continue
		}

		if err := handler(task); err != nil {
			c.logger.Error("[RABBITMQ] Mail task failed, requeueing: %v", err)
			msg.Nack(false, true)
			continue
		}
		msg.Ack(false)
	}

	return nil
}
