package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/queue"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Append confirmed bookings from RabbitMQ to a log file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		cfg, log := setup()
		defer func() { _ = log.Sync() }()

		c := &queue.Consumer{URL: cfg.AMQPURL, Dir: dir, Log: log}
		log.Info("booking-consumer: started", zap.String("queue", queue.BookingConfirmedQueue), zap.String("dir", dir))
		if err := c.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		log.Info("booking-consumer: stopped")
		return nil
	},
}

func init() {
	consumeCmd.Flags().String("dir", "logs", "directory of booking.log")
}
