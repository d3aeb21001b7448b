package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tobrik/TMS/external/alert"
	"github.com/Tobrik/TMS/store"
)

// TaskNotifyRedZone is queued by the analysis endpoint whenever a submission
// lands in the red zone.
const TaskNotifyRedZone = "notify_red_zone"

// BackgroundManager is a struct for the triage background manager
type BackgroundManager struct {
	store store.TMSCore

	notifier alert.Notifier

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	cipher, err := store.NewFieldCipher(viper.GetString("crypto.fieldkey"))
	if err != nil {
		panic(err)
	}

	tmsCore := store.NewTMSStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		cipher,
	), cipher)

	n := alert.New(
		viper.GetString("alert.endpoint"),
		viper.GetString("alert.token"),
	)

	return &BackgroundManager{
		store:      tmsCore,
		notifier:   n,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("tms-worker", 5)
	return m.worker.Launch()
}
