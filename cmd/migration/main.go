package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/drivers/logger"
	"clinic-booking-service/internal/app/services/core/bookings"
	"clinic-booking-service/internal/app/services/core/payments"
	"clinic-booking-service/internal/app/services/core/treatments"
	"clinic-booking-service/internal/app/services/core/users"
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

const commandTimeout = 2 * time.Minute

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	rootCmd := &cobra.Command{
		Use:   "migration",
		Short: "Database maintenance for the clinic booking service",
	}
	rootCmd.AddCommand(indexesCmd(driverConfig, internalConfig, log))
	rootCmd.AddCommand(seedCmd(driverConfig, internalConfig, log))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("migration failed")
		os.Exit(1)
	}
}

func connect(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *mongo.Client {
	return database.NewMongoDB(driverConfig, logger.NewZapLogger(driverConfig, internalConfig))
}

func indexesCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the unique and lookup indexes every collection relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			client := connect(driverConfig, internalConfig)
			defer client.Disconnect(context.Background())

			dbName := driverConfig.MongoDB.DbName
			return EnsureIndexes(ctx, log, []IndexedRepository{
				{Name: "treatment options", Repository: treatments.NewTreatmentOptionMongoRepository(client, dbName)},
				{Name: "bookings", Repository: bookings.NewBookingMongoRepository(client, dbName)},
				{Name: "payments", Repository: payments.NewPaymentMongoRepository(client, dbName)},
				{Name: "users", Repository: users.NewUserMongoRepository(client, dbName)},
			})
		},
	}
}

func seedCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the treatment option catalog by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			raw := defaultCatalog
			if file != "" {
				content, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				raw = content
			}

			options, err := ParseCatalog(raw)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			client := connect(driverConfig, internalConfig)
			defer client.Disconnect(context.Background())

			repo := treatments.NewTreatmentOptionMongoRepository(client, driverConfig.MongoDB.DbName)
			_, err = SeedCatalog(ctx, log, repo, options)
			return err
		},
	}
	cmd.Flags().String("file", "", "path to a JSON catalog, the embedded catalog is used when empty")
	return cmd
}
