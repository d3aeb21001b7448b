package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tobrik/TMS/schema"
	"github.com/Tobrik/TMS/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("tms")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS tms`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO tms").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Patient{},
		&schema.Doctor{},
		&schema.DiaryDay{},
		&schema.DiarySymptom{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.DiarySymptom{}).
		AddIndex("idx_diary_symptoms_code", "symptom_code").Error; err != nil {
		panic(err)
	}

	if seed := viper.GetString("doctor.seeds"); seed != "" {
		if err := store.SeedDoctors(db, seed); err != nil {
			panic(err)
		}
	}

	if err := migrateMongo(); err != nil {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, _ := mongo.NewClient(opts)
	_ = client.Connect(ctx)

	if err := setupCollectionLabResults(ctx, client); err != nil {
		fmt.Println("failed to set up collection `labResults`: ", err)
		return err
	}

	return nil
}

func setupCollectionLabResults(ctx context.Context, client *mongo.Client) error {
	fmt.Println("initialize labResults collection")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.LabResultCollection)

	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patient_id", Value: 1},
				{Key: "ts", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "result_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return err
}
